package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"poolworks/internal/domain/entities"
	"poolworks/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const DefaultDepositRate = 0.10

var (
	ErrDepositNotFound            = errors.New("deposit not found")
	ErrInvalidDepositPayload      = errors.New("invalid deposit payload")
	ErrEstimateNotApproved        = errors.New("estimate not approved")
	ErrPaymentGatewayNotReady     = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
)

// IDepositUseCase encapsulates collecting a down payment on an approved
// estimate through the payment gateway and persisting the result.
type IDepositUseCase interface {
	CollectByEstimateID(ctx context.Context, estimateID string, payload json.RawMessage) (entities.Deposit, error)
	GetLatestByEstimateID(ctx context.Context, estimateID string) (entities.Deposit, error)
}

type DepositUseCase struct {
	repo         interfaces.IDepositRepository
	estimateRepo interfaces.IEstimateRepository
	gateway      interfaces.IPaymentGateway
	rate         float64
	log          *zap.Logger
}

var _ IDepositUseCase = (*DepositUseCase)(nil)

// NewDepositUseCase wires the deposit flow. rate is the fraction of the
// estimate total charged as deposit; values outside (0, 1] fall back to the
// default 10%.
func NewDepositUseCase(
	repo interfaces.IDepositRepository,
	estimateRepo interfaces.IEstimateRepository,
	gateway interfaces.IPaymentGateway,
	rate float64,
	log *zap.Logger,
) *DepositUseCase {
	if rate <= 0 || rate > 1 {
		rate = DefaultDepositRate
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &DepositUseCase{repo: repo, estimateRepo: estimateRepo, gateway: gateway, rate: rate, log: log}
}

func (u *DepositUseCase) CollectByEstimateID(ctx context.Context, estimateID string, payload json.RawMessage) (entities.Deposit, error) {
	estimateID = strings.TrimSpace(estimateID)
	if estimateID == "" {
		return entities.Deposit{}, ErrInvalidEstimateID
	}
	if len(payload) > 0 && !json.Valid(payload) {
		return entities.Deposit{}, ErrInvalidDepositPayload
	}
	if u.gateway == nil {
		return entities.Deposit{}, ErrPaymentGatewayNotReady
	}

	est, err := u.estimateRepo.GetByID(ctx, estimateID)
	if err != nil {
		return entities.Deposit{}, err
	}
	if est.ID == "" {
		return entities.Deposit{}, ErrEstimateNotFound
	}
	if est.Status != entities.EstimateStatusApproved {
		u.log.Info("deposit refused, estimate not approved",
			zap.String("estimate_id", estimateID), zap.String("status", string(est.Status)))
		return entities.Deposit{}, ErrEstimateNotApproved
	}

	amount := math.Round(est.Breakdown.Total*u.rate*100) / 100

	// The estimate in the database is the source of truth for the amount;
	// the caller payload only contributes payment-method details.
	req := map[string]any{}
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &req); err != nil {
			return entities.Deposit{}, ErrInvalidDepositPayload
		}
	}
	if _, ok := req["external_reference"]; !ok {
		req["external_reference"] = estimateID
	}
	if _, ok := req["description"]; !ok {
		req["description"] = fmt.Sprintf("Deposit for estimate %s", estimateID)
	}
	req["transaction_amount"] = amount

	enriched, err := json.Marshal(req)
	if err != nil {
		return entities.Deposit{}, err
	}

	u.log.Info("collecting deposit",
		zap.String("estimate_id", estimateID), zap.Float64("amount", amount))
	providerID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, enriched)
	if err != nil {
		u.log.Error("payment gateway failed", zap.String("estimate_id", estimateID), zap.Error(err))
		if isGatewayUnauthorized(err) {
			return entities.Deposit{}, ErrPaymentGatewayUnauthorized
		}
		if isGatewayBadRequest(err) {
			return entities.Deposit{}, ErrPaymentGatewayBadRequest
		}
		return entities.Deposit{}, err
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		u.log.Warn("provider response not parseable", zap.String("estimate_id", estimateID), zap.Error(err))
	}

	d := entities.Deposit{
		ID:                 providerID,
		EstimateID:         estimateID,
		Amount:             amount,
		Date:               time.Now().UTC(),
		Status:             depositStatusFromProvider(providerStatus),
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}

	created, err := u.repo.Create(ctx, d)
	if err != nil {
		return entities.Deposit{}, err
	}
	u.log.Info("deposit collected",
		zap.String("estimate_id", estimateID),
		zap.String("deposit_id", created.ID),
		zap.String("status", string(created.Status)))
	return created, nil
}

func (u *DepositUseCase) GetLatestByEstimateID(ctx context.Context, estimateID string) (entities.Deposit, error) {
	estimateID = strings.TrimSpace(estimateID)
	if estimateID == "" {
		return entities.Deposit{}, ErrInvalidEstimateID
	}

	deposits, err := u.repo.ListByEstimateID(ctx, estimateID)
	if err != nil {
		return entities.Deposit{}, err
	}
	if len(deposits) == 0 {
		return entities.Deposit{}, ErrDepositNotFound
	}

	latest := deposits[0]
	for _, d := range deposits[1:] {
		if d.Date.After(latest.Date) {
			latest = d
		}
	}
	return latest, nil
}

func depositStatusFromProvider(status string) entities.DepositStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved", "accredited":
		return entities.DepositStatusApproved
	case "rejected", "cancelled", "denied":
		return entities.DepositStatusDenied
	default:
		return entities.DepositStatusPending
	}
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}
