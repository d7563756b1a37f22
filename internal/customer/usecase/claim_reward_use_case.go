package usecase

import (
	"context"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"barista/internal/domain"
	"barista/internal/dto"
	apperrors "barista/internal/errors"
)

type ClaimService interface {
	ClaimReward(ctx context.Context, phone string) (*domain.Customer, error)
}

type ClaimRewardUseCase struct {
	claimSvc         ClaimService
	logger           *zap.Logger
	maxRetryAttempts int
}

func NewClaimRewardUseCase(claimSvc ClaimService, logger *zap.Logger, maxRetryAttempts int) *ClaimRewardUseCase {
	return &ClaimRewardUseCase{
		claimSvc:         claimSvc,
		logger:           logger,
		maxRetryAttempts: maxRetryAttempts,
	}
}

func (uc *ClaimRewardUseCase) ClaimReward(ctx context.Context, req dto.ClaimRequest) (*dto.ClaimResponse, error) {
	uc.logger.Info("claim started", zap.String("phone", req.Phone))

	customer, err := uc.claimWithRetry(ctx, req.Phone)
	if err != nil {
		return nil, err
	}

	return &dto.ClaimResponse{
		Message:   "Reward claimed successfully",
		Customer:  MapCustomer(*customer),
		Reward:    MapRewardStatus(customer.RewardStatus()),
		Timestamp: time.Now(),
	}, nil
}

func (uc *ClaimRewardUseCase) claimWithRetry(ctx context.Context, phone string) (*domain.Customer, error) {
	maxAttempts := uc.maxRetryAttempts
	backoffs := []time.Duration{0, 100 * time.Millisecond, 200 * time.Millisecond}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		customer, err := uc.claimSvc.ClaimReward(ctx, phone)
		if err == nil {
			return customer, nil
		}

		if IsRetryableMySQLError(err) {
			if attempt < maxAttempts {
				base := backoffs[(attempt-1)%len(backoffs)]
				jitter := time.Duration(float64(base) * (0.8 + rand.Float64()*0.4))
				time.Sleep(jitter)
				uc.logger.Warn("claim conflicted, retrying",
					zap.Int("attempt", attempt),
					zap.Int("maxAttempts", maxAttempts),
					zap.String("phone", phone),
				)
				continue
			}
			break
		}

		// NotFound and precondition failures are final; a claim is
		// never silently downgraded to a no-op.
		return nil, err
	}

	return nil, apperrors.NewConflictError("max retries exceeded")
}
