package service

import (
	"context"
	"database/sql"
	"time"

	"barista/internal/domain"
	"barista/internal/errors"

	"go.uber.org/zap"
)

type ClaimService struct {
	db           TransactionManager
	customerRepo CustomerRepository
	logger       *zap.Logger
	txTimeout    time.Duration
}

func NewClaimService(
	db TransactionManager,
	customerRepo CustomerRepository,
	logger *zap.Logger,
	txTimeout time.Duration,
) *ClaimService {
	return &ClaimService{
		db:           db,
		customerRepo: customerRepo,
		logger:       logger,
		txTimeout:    txTimeout,
	}
}

// ClaimReward converts a ready reward into a zero-price ledger entry.
// The reward order and the rewardsRedeemed increment commit in one
// transaction under the customer row lock, so a racing claim either
// sees the incremented counter (and fails the ready check) or waits on
// the lock.
func (s *ClaimService) ClaimReward(ctx context.Context, phone string) (*domain.Customer, error) {
	txCtx, cancel := context.WithTimeout(ctx, s.txTimeout)
	defer cancel()

	tx, err := s.db.BeginTx(txCtx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead})
	if err != nil {
		s.logger.Error("failed to begin transaction", zap.Error(err))
		return nil, err
	}
	defer tx.Rollback()

	customer, err := s.customerRepo.FindByPhoneForUpdate(txCtx, tx, phone)
	if err != nil {
		return nil, err
	}

	status := customer.RewardStatus()
	if status.State != domain.StateReady {
		s.logger.Warn("claim rejected",
			zap.String("phone", phone),
			zap.String("state", string(status.State)),
			zap.Int("drinksUntilReward", status.DrinksUntilReward),
		)
		return nil, errors.NewPreconditionError("reward is not ready to claim")
	}

	order := domain.Order{
		CustomerID: customer.ID,
		Category:   lastPaidCategory(customer),
		ItemName:   domain.RewardItemName,
		MenuItemID: nil,
		Price:      0,
		IsReward:   true,
		CreatedAt:  time.Now(),
	}

	orderID, err := s.customerRepo.AppendOrder(txCtx, tx, order)
	if err != nil {
		s.logger.Error("failed to append reward order", zap.String("phone", phone), zap.Error(err))
		return nil, err
	}
	order.ID = orderID

	if err := s.customerRepo.IncrementRewardsRedeemed(txCtx, tx, customer.ID); err != nil {
		s.logger.Error("failed to increment rewardsRedeemed", zap.String("phone", phone), zap.Error(err))
		return nil, err
	}

	if err := s.customerRepo.Touch(txCtx, tx, customer.ID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("failed to commit claim", zap.String("phone", phone), zap.Error(err))
		return nil, err
	}

	customer.Orders = append(customer.Orders, order)
	customer.RewardsRedeemed++

	s.logger.Info("reward claimed",
		zap.String("phone", phone),
		zap.Uint("orderId", order.ID),
		zap.Int("rewardsRedeemed", customer.RewardsRedeemed),
	)

	return customer, nil
}

// lastPaidCategory picks the category stamped on the reward order for
// reporting. Falls back to milkshake for a ledger with no paid orders,
// which the ready check makes unreachable in practice.
func lastPaidCategory(customer *domain.Customer) domain.DrinkCategory {
	for i := len(customer.Orders) - 1; i >= 0; i-- {
		if !customer.Orders[i].IsReward {
			return customer.Orders[i].Category
		}
	}
	return domain.CategoryMilkshake
}
