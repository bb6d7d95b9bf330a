package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"poolworks/internal/domain/entities"
	"poolworks/internal/domain/extract"
	"poolworks/internal/domain/pricing"
	"poolworks/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrEstimateNotFound  = errors.New("estimate not found")
	ErrSessionNotFound   = errors.New("session not found")
	ErrInvalidEstimateID = errors.New("invalid estimate id")
)

// IEstimateUseCase exposes the estimate operations:
//   - generate: extract project parameters from the session conversation,
//     run the pricing engine and persist the result
//   - status lifecycle: approve / reject / cancel
//   - fetch for rendering (panel, PDF) and deposit collection
type IEstimateUseCase interface {
	GenerateForSession(ctx context.Context, sessionID string, override *entities.ProjectDescription) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	ApproveByID(ctx context.Context, id string) (entities.Estimate, error)
	RejectByID(ctx context.Context, id string) (entities.Estimate, error)
	CancelByID(ctx context.Context, id string) (entities.Estimate, error)
}

type EstimateUseCase struct {
	repo      interfaces.IEstimateRepository
	sessions  interfaces.ISessionStore
	assistant interfaces.IAssistant
	catalog   pricing.Catalog
	log       *zap.Logger
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

// NewEstimateUseCase wires estimate generation. assistant may be nil; the
// keyword extractor then works over the raw conversation text.
func NewEstimateUseCase(
	repo interfaces.IEstimateRepository,
	sessions interfaces.ISessionStore,
	assistant interfaces.IAssistant,
	catalog pricing.Catalog,
	log *zap.Logger,
) *EstimateUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &EstimateUseCase{repo: repo, sessions: sessions, assistant: assistant, catalog: catalog, log: log}
}

func (u *EstimateUseCase) GenerateForSession(ctx context.Context, sessionID string, override *entities.ProjectDescription) (entities.Estimate, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.Estimate{}, ErrInvalidSessionID
	}

	conv, err := u.sessions.Get(ctx, sessionID)
	if err != nil {
		return entities.Estimate{}, err
	}
	if len(conv.Messages) == 0 {
		return entities.Estimate{}, ErrSessionNotFound
	}

	project := u.resolveProject(ctx, conv, override)
	breakdown := pricing.ComputeEstimate(project, u.catalog)

	now := time.Now().UTC()
	e := entities.Estimate{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Project:   project,
		Breakdown: breakdown,
		Status:    entities.EstimateStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	u.log.Info("estimate generated",
		zap.String("estimate_id", e.ID),
		zap.String("session_id", sessionID),
		zap.Int("sqft", project.Size.Sqft),
		zap.Float64("total", breakdown.Total),
	)
	return u.repo.Create(ctx, e)
}

// resolveProject picks the best available project description: the explicit
// caller override wins, then assistant extraction, then the keyword scan over
// the conversation text, then the default policy. Always returns a
// normalized project, never fails.
func (u *EstimateUseCase) resolveProject(ctx context.Context, conv entities.Conversation, override *entities.ProjectDescription) entities.ProjectDescription {
	if override != nil {
		o := *override
		o.Normalize()
		return o
	}

	if u.assistant != nil {
		p, err := u.assistant.ExtractProject(ctx, conv.Messages)
		if err == nil {
			p.Normalize()
			return p
		}
		u.log.Warn("assistant extraction failed, falling back to keyword scan",
			zap.String("session_id", conv.SessionID), zap.Error(err))
	}

	var parts []string
	for _, m := range conv.Messages {
		parts = append(parts, m.Content)
	}
	p, err := extract.ParseProject(strings.Join(parts, " "))
	if err == nil {
		return p
	}
	return entities.DefaultProject()
}

func (u *EstimateUseCase) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return e, nil
}

func (u *EstimateUseCase) ApproveByID(ctx context.Context, id string) (entities.Estimate, error) {
	return u.updateStatusByID(ctx, id, entities.EstimateStatusApproved)
}

func (u *EstimateUseCase) RejectByID(ctx context.Context, id string) (entities.Estimate, error) {
	return u.updateStatusByID(ctx, id, entities.EstimateStatusRejected)
}

func (u *EstimateUseCase) CancelByID(ctx context.Context, id string) (entities.Estimate, error) {
	return u.updateStatusByID(ctx, id, entities.EstimateStatusCanceled)
}

func (u *EstimateUseCase) updateStatusByID(ctx context.Context, id string, status entities.EstimateStatus) (entities.Estimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}

	updated, err := u.repo.UpdateStatusByID(ctx, id, status)
	if err != nil {
		return entities.Estimate{}, err
	}
	if updated.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return updated, nil
}
