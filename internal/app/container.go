package app

import (
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/cookbook-backend/internal/adapter/postgres"
	"github.com/heartmarshall/cookbook-backend/internal/adapter/postgres/association"
	"github.com/heartmarshall/cookbook-backend/internal/adapter/postgres/audit"
	"github.com/heartmarshall/cookbook-backend/internal/adapter/postgres/ingredient"
	"github.com/heartmarshall/cookbook-backend/internal/adapter/postgres/membership"
	"github.com/heartmarshall/cookbook-backend/internal/adapter/postgres/proposal"
	"github.com/heartmarshall/cookbook-backend/internal/adapter/postgres/recipe"
	"github.com/heartmarshall/cookbook-backend/internal/adapter/postgres/tag"
	"github.com/heartmarshall/cookbook-backend/internal/adapter/postgres/unit"
	"github.com/heartmarshall/cookbook-backend/internal/config"
	"github.com/heartmarshall/cookbook-backend/internal/domain"
	"github.com/heartmarshall/cookbook-backend/internal/eventbus"
	"github.com/heartmarshall/cookbook-backend/internal/service/merge"
	membershipsvc "github.com/heartmarshall/cookbook-backend/internal/service/membership"
	"github.com/heartmarshall/cookbook-backend/internal/service/moderation"
	"github.com/heartmarshall/cookbook-backend/internal/service/orphan"
	unitsvc "github.com/heartmarshall/cookbook-backend/internal/service/unit"
)

// Container holds the wired services shared by the server and the CLI.
type Container struct {
	Bus *eventbus.Bus

	Ingredients     *moderation.Service
	Tags            *moderation.Service
	IngredientMerge *merge.Service
	TagMerge        *merge.Service
	Units           *unitsvc.Service
	Orphans         *orphan.Service
	Members         *membershipsvc.Service

	Audit *audit.Repo
}

// NewContainer wires repositories and services on top of pool. Events go to
// bus; subscribers are attached by the caller.
func NewContainer(cfg *config.Config, pool *pgxpool.Pool, bus *eventbus.Bus, logger *slog.Logger) *Container {
	tx := postgres.NewTxManager(pool, postgres.WithLockTimeout(cfg.Database.LockTimeout))

	ingredients := ingredient.New(pool)
	tags := tag.New(pool)
	units := unit.New(pool)
	members := membership.New(pool)
	recipes := recipe.New(pool)
	proposals := proposal.New(pool)
	ingredientAssocs := association.NewIngredientRepo(pool)
	tagAssocs := association.NewTagRepo(pool)
	auditRepo := audit.New(pool)

	orphans := orphan.NewService(logger, recipes, proposals, ingredientAssocs, auditRepo, tx)

	return &Container{
		Bus: bus,

		Ingredients: moderation.NewService(logger, domain.EntityKindIngredient,
			ingredients, ingredientAssocs, units, members, auditRepo, tx, bus, cfg.Moderation),
		Tags: moderation.NewService(logger, domain.EntityKindTag,
			tags, tagAssocs, nil, members, auditRepo, tx, bus, cfg.Moderation),

		IngredientMerge: merge.NewService(logger, domain.EntityKindIngredient,
			ingredients, ingredientAssocs, members, auditRepo, tx, bus),
		TagMerge: merge.NewService(logger, domain.EntityKindTag,
			tags, tagAssocs, members, auditRepo, tx, bus),

		Units:   unitsvc.NewService(logger, units, auditRepo, tx),
		Orphans: orphans,
		Members: membershipsvc.NewService(logger, members, orphans, auditRepo, tx),

		Audit: auditRepo,
	}
}

// Moderation returns the moderation and merge services for kind.
func (c *Container) Moderation(kind domain.EntityKind) (*moderation.Service, *merge.Service) {
	if kind == domain.EntityKindTag {
		return c.Tags, c.TagMerge
	}
	return c.Ingredients, c.IngredientMerge
}
