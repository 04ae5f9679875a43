package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/cookbook-backend/internal/domain"
	"github.com/heartmarshall/cookbook-backend/internal/service/merge"
	"github.com/heartmarshall/cookbook-backend/internal/service/orphan"
)

type entityResponse struct {
	ID            uuid.UUID  `json:"id"`
	Kind          string     `json:"kind"`
	Name          string     `json:"name"`
	Status        string     `json:"status"`
	CreatedBy     *uuid.UUID `json:"createdBy,omitempty"`
	CommunityID   *uuid.UUID `json:"communityId,omitempty"`
	DefaultUnitID *uuid.UUID `json:"defaultUnitId,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

func toEntityResponse(e *domain.CatalogEntity) entityResponse {
	return entityResponse{
		ID:            e.ID,
		Kind:          e.Kind.String(),
		Name:          e.Name,
		Status:        e.Status.String(),
		CreatedBy:     e.CreatedBy,
		CommunityID:   e.CommunityID,
		DefaultUnitID: e.DefaultUnitID,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

type mergeResponse struct {
	Target       entityResponse `json:"target"`
	Migrated     int            `json:"migrated"`
	Deduplicated int            `json:"deduplicated"`
}

func toMergeResponse(res *merge.MergeResult) mergeResponse {
	return mergeResponse{
		Target:       toEntityResponse(res.Target),
		Migrated:     res.Migrated,
		Deduplicated: res.Deduplicated,
	}
}

type unitResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Abbreviation *string   `json:"abbreviation,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

func toUnitResponse(u domain.Unit) unitResponse {
	return unitResponse{ID: u.ID, Name: u.Name, Abbreviation: u.Abbreviation, CreatedAt: u.CreatedAt}
}

type departureResponse struct {
	ProcessedRecipes      int `json:"processedRecipes"`
	AutoRejectedProposals int `json:"autoRejectedProposals"`
	CreatedVariants       int `json:"createdVariants"`
}

func toDepartureResponse(res orphan.DepartureResult) departureResponse {
	return departureResponse{
		ProcessedRecipes:      res.ProcessedRecipes,
		AutoRejectedProposals: res.AutoRejectedProposals,
		CreatedVariants:       res.CreatedVariants,
	}
}

type auditResponse struct {
	ID         uuid.UUID      `json:"id"`
	Type       string         `json:"type"`
	ActorID    *uuid.UUID     `json:"actorId,omitempty"`
	TargetType string         `json:"targetType"`
	TargetID   uuid.UUID      `json:"targetId"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	CreatedAt  time.Time      `json:"createdAt"`
}

func toAuditResponse(e domain.AuditLogEntry) auditResponse {
	return auditResponse{
		ID:         e.ID,
		Type:       e.Type.String(),
		ActorID:    e.ActorID,
		TargetType: e.TargetType.String(),
		TargetID:   e.TargetID,
		Metadata:   e.Metadata,
		CreatedAt:  e.CreatedAt,
	}
}
