package usecase

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/go-sql-driver/mysql"
	"go.uber.org/zap"

	"barista/internal/domain"
	"barista/internal/dto"
	apperrors "barista/internal/errors"
	"barista/internal/notifier"
)

type PurchaseService interface {
	RecordPurchase(ctx context.Context, phone, name string, category domain.DrinkCategory, menuItemID uint) (*domain.Customer, error)
}

type RecordPurchaseUseCase struct {
	purchaseSvc      PurchaseService
	reminders        notifier.ReminderPublisher
	logger           *zap.Logger
	maxRetryAttempts int
}

func NewRecordPurchaseUseCase(
	purchaseSvc PurchaseService,
	reminders notifier.ReminderPublisher,
	logger *zap.Logger,
	maxRetryAttempts int,
) *RecordPurchaseUseCase {
	return &RecordPurchaseUseCase{
		purchaseSvc:      purchaseSvc,
		reminders:        reminders,
		logger:           logger,
		maxRetryAttempts: maxRetryAttempts,
	}
}

func (uc *RecordPurchaseUseCase) RecordPurchase(ctx context.Context, req dto.PurchaseRequest) (*dto.PurchaseResponse, error) {
	uc.logger.Info("purchase started",
		zap.String("phone", req.CustomerPhone),
		zap.String("drinkType", req.DrinkType),
		zap.Uint("itemId", req.ItemID),
	)

	customer, err := uc.recordWithRetry(ctx, req)
	if err != nil {
		return nil, err
	}

	status := customer.RewardStatus()
	uc.publishReminder(ctx, customer, status)

	return &dto.PurchaseResponse{
		Message:   "Purchase added successfully",
		Customer:  MapCustomer(*customer),
		Reward:    MapRewardStatus(status),
		Timestamp: time.Now(),
	}, nil
}

func (uc *RecordPurchaseUseCase) recordWithRetry(ctx context.Context, req dto.PurchaseRequest) (*domain.Customer, error) {
	maxAttempts := uc.maxRetryAttempts
	backoffs := []time.Duration{0, 100 * time.Millisecond, 200 * time.Millisecond}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		customer, err := uc.purchaseSvc.RecordPurchase(
			ctx, req.CustomerPhone, req.CustomerName,
			domain.DrinkCategory(req.DrinkType), req.ItemID,
		)
		if err == nil {
			return customer, nil
		}

		if IsRetryableMySQLError(err) {
			if attempt < maxAttempts {
				base := backoffs[(attempt-1)%len(backoffs)]
				jitter := time.Duration(float64(base) * (0.8 + rand.Float64()*0.4))
				time.Sleep(jitter)
				uc.logger.Warn("purchase conflicted, retrying",
					zap.Int("attempt", attempt),
					zap.Int("maxAttempts", maxAttempts),
					zap.String("phone", req.CustomerPhone),
				)
				continue
			}
			break
		}

		return nil, err
	}

	return nil, apperrors.NewConflictError("max retries exceeded")
}

func (uc *RecordPurchaseUseCase) publishReminder(ctx context.Context, customer *domain.Customer, status domain.RewardStatus) {
	if status.State != domain.StateUpcoming && status.State != domain.StateReady {
		return
	}

	reminder := notifier.Reminder{
		Phone:             customer.Phone,
		Name:              customer.Name,
		State:             string(status.State),
		DrinksUntilReward: status.DrinksUntilReward,
		Message:           notifier.FormatMessage(customer.Name, status.DrinksUntilReward),
		SentAt:            time.Now(),
	}

	// The reminder is best effort; a broker hiccup must not fail the
	// purchase that already committed.
	if err := uc.reminders.PublishReminder(ctx, reminder); err != nil {
		uc.logger.Warn("failed to publish reminder",
			zap.String("phone", customer.Phone),
			zap.Error(err),
		)
	}
}

// IsRetryableMySQLError reports whether the purchase should be retried:
// lock wait timeouts, deadlocks, and the duplicate-phone race between
// two first purchases.
func IsRetryableMySQLError(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1213 || mysqlErr.Number == 1205 || mysqlErr.Number == 1062
	}
	return false
}
