// Package cli implements catalogctl, the operator command line for catalog
// moderation. Every mutating command runs with admin rights on behalf of the
// operator named by --actor.
package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/cookbook-backend/internal/domain"
	"github.com/heartmarshall/cookbook-backend/internal/service/merge"
	"github.com/heartmarshall/cookbook-backend/internal/service/moderation"
	"github.com/heartmarshall/cookbook-backend/internal/service/orphan"
)

//go:generate moq -out moderator_mock_test.go -pkg cli . moderator
//go:generate moq -out merger_mock_test.go -pkg cli . merger
//go:generate moq -out departure_handler_mock_test.go -pkg cli . departureHandler
//go:generate moq -out token_issuer_mock_test.go -pkg cli . TokenIssuer

type moderator interface {
	Approve(ctx context.Context, input moderation.ApproveInput) (*domain.CatalogEntity, error)
	Reject(ctx context.Context, input moderation.RejectInput) error
}

type merger interface {
	Merge(ctx context.Context, input merge.MergeInput) (*merge.MergeResult, error)
}

type departureHandler interface {
	HandleDeparture(ctx context.Context, input orphan.DepartureInput) (orphan.DepartureResult, error)
}

// TokenIssuer signs bearer tokens for the token command.
type TokenIssuer interface {
	Issue(userID uuid.UUID, role domain.UserRole, ttl time.Duration) (string, error)
}

// Services are the operations catalogctl drives.
type Services struct {
	Ingredients     moderator
	Tags            moderator
	IngredientMerge merger
	TagMerge        merger
	Orphans         departureHandler
}

func (s *Services) forKind(kind domain.EntityKind) (moderator, merger) {
	if kind == domain.EntityKindTag {
		return s.Tags, s.TagMerge
	}
	return s.Ingredients, s.IngredientMerge
}

// Env supplies the command dependencies. Open is called once per command
// that touches the database; the returned func releases its resources.
type Env struct {
	Open   func(ctx context.Context) (*Services, func(), error)
	Issuer func() (TokenIssuer, error)
}

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Actor  string
	Kind   string
	Format string

	actorID uuid.UUID
	kind    domain.EntityKind
}

// NewRootCommand creates the catalogctl root command.
func NewRootCommand(env Env) *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "catalogctl",
		Short: "Operate the recipe catalog moderation queue",
		Long: `catalogctl approves, rejects and merges catalog entities and replays
community departures. Mutations are audited under the --actor user id.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve()
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Actor, "actor", "", "operator user id recorded in the audit log")
	cmd.PersistentFlags().StringVar(&opts.Kind, "kind", "ingredient", "entity kind (ingredient|tag)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(newApproveCommand(opts, env))
	cmd.AddCommand(newRejectCommand(opts, env))
	cmd.AddCommand(newMergeCommand(opts, env))
	cmd.AddCommand(newDepartureCommand(opts, env))
	cmd.AddCommand(newTokenCommand(opts, env))

	return cmd
}

func (o *RootOptions) resolve() error {
	switch strings.ToLower(o.Kind) {
	case "ingredient":
		o.kind = domain.EntityKindIngredient
	case "tag":
		o.kind = domain.EntityKindTag
	default:
		return fmt.Errorf("invalid kind %q: must be ingredient or tag", o.Kind)
	}

	if o.Format != "text" && o.Format != "json" {
		return fmt.Errorf("invalid format %q: must be json or text", o.Format)
	}

	if o.Actor != "" {
		id, err := uuid.Parse(o.Actor)
		if err != nil {
			return fmt.Errorf("invalid --actor: %w", err)
		}
		o.actorID = id
	}
	return nil
}

func (o *RootOptions) requireActor() (uuid.UUID, error) {
	if o.actorID == uuid.Nil {
		return uuid.Nil, fmt.Errorf("--actor is required")
	}
	return o.actorID, nil
}
