package service

import (
	"context"
	"database/sql"
	"time"

	"barista/internal/domain"
	"barista/internal/errors"

	"go.uber.org/zap"
)

type TransactionManager interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

type CustomerRepository interface {
	FindByPhoneForUpdate(ctx context.Context, tx *sql.Tx, phone string) (*domain.Customer, error)
	Insert(ctx context.Context, tx *sql.Tx, name, phone string) (uint, error)
	AppendOrder(ctx context.Context, tx *sql.Tx, order domain.Order) (uint, error)
	IncrementRewardsRedeemed(ctx context.Context, tx *sql.Tx, customerID uint) error
	Touch(ctx context.Context, tx *sql.Tx, customerID uint) error
}

type MenuItemResolver interface {
	FindByID(ctx context.Context, id uint) (*domain.MenuItem, error)
}

type PurchaseService struct {
	db           TransactionManager
	customerRepo CustomerRepository
	menuResolver MenuItemResolver
	logger       *zap.Logger
	txTimeout    time.Duration
}

func NewPurchaseService(
	db TransactionManager,
	customerRepo CustomerRepository,
	menuResolver MenuItemResolver,
	logger *zap.Logger,
	txTimeout time.Duration,
) *PurchaseService {
	return &PurchaseService{
		db:           db,
		customerRepo: customerRepo,
		menuResolver: menuResolver,
		logger:       logger,
		txTimeout:    txTimeout,
	}
}

// RecordPurchase appends a paid order to the customer's ledger,
// creating the customer on first purchase. The order is priced from
// the catalog, never from the request.
//
// Recording a purchase never mints a reward order. Reward issuance is
// always an explicit claim, so the ledger stays auditable and a drink
// can never be credited twice.
func (s *PurchaseService) RecordPurchase(
	ctx context.Context,
	phone, name string,
	category domain.DrinkCategory,
	menuItemID uint,
) (*domain.Customer, error) {
	item, err := s.menuResolver.FindByID(ctx, menuItemID)
	if err != nil {
		if _, ok := errors.IsNotFoundError(err); ok {
			return nil, errors.NewNotFoundError("menu item not found")
		}
		return nil, err
	}

	if !item.IsActive {
		return nil, errors.NewValidationError("menu item is not active", errors.ValidationDetail{
			Field:   "itemId",
			Message: "menu item is not available for purchase",
		})
	}

	txCtx, cancel := context.WithTimeout(ctx, s.txTimeout)
	defer cancel()

	tx, err := s.db.BeginTx(txCtx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead})
	if err != nil {
		s.logger.Error("failed to begin transaction", zap.Error(err))
		return nil, err
	}
	// Rollback is a no-op once the transaction has committed.
	defer tx.Rollback()

	customer, err := s.customerRepo.FindByPhoneForUpdate(txCtx, tx, phone)
	if err != nil {
		if _, ok := errors.IsNotFoundError(err); !ok {
			return nil, err
		}

		id, insertErr := s.customerRepo.Insert(txCtx, tx, name, phone)
		if insertErr != nil {
			// A concurrent first purchase may have taken the phone;
			// the duplicate-key error bubbles up and the use case
			// retries, finding the row on the next attempt.
			return nil, insertErr
		}

		now := time.Now()
		customer = &domain.Customer{
			ID:        id,
			Name:      name,
			Phone:     phone,
			CreatedAt: now,
			UpdatedAt: now,
		}
		s.logger.Info("new customer created", zap.String("phone", phone))
	}

	order := domain.Order{
		CustomerID: customer.ID,
		Category:   category,
		ItemName:   item.Name,
		MenuItemID: &item.ID,
		Price:      item.Price,
		IsReward:   false,
		CreatedAt:  time.Now(),
	}

	orderID, err := s.customerRepo.AppendOrder(txCtx, tx, order)
	if err != nil {
		s.logger.Error("failed to append order", zap.String("phone", phone), zap.Error(err))
		return nil, err
	}
	order.ID = orderID

	if err := s.customerRepo.Touch(txCtx, tx, customer.ID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("failed to commit purchase", zap.String("phone", phone), zap.Error(err))
		return nil, err
	}

	customer.Orders = append(customer.Orders, order)

	s.logger.Info("purchase recorded",
		zap.String("phone", phone),
		zap.Uint("orderId", order.ID),
		zap.String("category", string(category)),
		zap.Float64("price", order.Price),
		zap.Int("totalOrders", customer.TotalOrders()),
	)

	return customer, nil
}
