package usecase

import (
	"context"
	"testing"

	"github.com/go-sql-driver/mysql"
	"go.uber.org/zap"

	"barista/internal/domain"
	"barista/internal/dto"
	apperrors "barista/internal/errors"
	"barista/internal/notifier"
)

// Helper to create a MySQL deadlock error for testing
func createDeadlockError() error {
	return &mysql.MySQLError{Number: 1213}
}

type mockPurchaseService struct {
	RecordPurchaseFunc func(ctx context.Context, phone, name string, category domain.DrinkCategory, menuItemID uint) (*domain.Customer, error)
}

func (m *mockPurchaseService) RecordPurchase(ctx context.Context, phone, name string, category domain.DrinkCategory, menuItemID uint) (*domain.Customer, error) {
	return m.RecordPurchaseFunc(ctx, phone, name, category, menuItemID)
}

type mockReminderPublisher struct {
	published []notifier.Reminder
	err       error
}

func (m *mockReminderPublisher) PublishReminder(_ context.Context, reminder notifier.Reminder) error {
	m.published = append(m.published, reminder)
	return m.err
}

func (m *mockReminderPublisher) Close() {}

func customerWithPaidDrinks(n int) *domain.Customer {
	c := &domain.Customer{ID: 1, Name: "Arjun", Phone: "9876543210"}
	itemID := uint(7)
	for i := 0; i < n; i++ {
		c.Orders = append(c.Orders, domain.Order{
			CustomerID: 1,
			Category:   domain.CategoryMilkshake,
			ItemName:   "Oreo Shake",
			MenuItemID: &itemID,
			Price:      70,
		})
	}
	return c
}

func testRequest() dto.PurchaseRequest {
	return dto.PurchaseRequest{
		CustomerName:  "Arjun",
		CustomerPhone: "9876543210",
		DrinkType:     "Milkshake",
		ItemID:        7,
		ItemName:      "Oreo Shake",
		Price:         70,
	}
}

func TestRecordPurchase_Success(t *testing.T) {
	svc := &mockPurchaseService{
		RecordPurchaseFunc: func(ctx context.Context, phone, name string, category domain.DrinkCategory, menuItemID uint) (*domain.Customer, error) {
			return customerWithPaidDrinks(2), nil
		},
	}
	reminders := &mockReminderPublisher{}

	uc := NewRecordPurchaseUseCase(svc, reminders, zap.NewNop(), 3)

	resp, err := uc.RecordPurchase(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if resp.Customer.TotalOrders != 2 {
		t.Errorf("expected 2 total orders, got %d", resp.Customer.TotalOrders)
	}
	if resp.Reward.State != string(domain.StateProgress) {
		t.Errorf("expected progress state, got %s", resp.Reward.State)
	}
	if len(reminders.published) != 0 {
		t.Errorf("expected no reminder for progress state, got %d", len(reminders.published))
	}
}

func TestRecordPurchase_PublishesReminderWhenUpcoming(t *testing.T) {
	svc := &mockPurchaseService{
		RecordPurchaseFunc: func(ctx context.Context, phone, name string, category domain.DrinkCategory, menuItemID uint) (*domain.Customer, error) {
			return customerWithPaidDrinks(4), nil
		},
	}
	reminders := &mockReminderPublisher{}

	uc := NewRecordPurchaseUseCase(svc, reminders, zap.NewNop(), 3)

	_, err := uc.RecordPurchase(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(reminders.published) != 1 {
		t.Fatalf("expected 1 reminder, got %d", len(reminders.published))
	}
	reminder := reminders.published[0]
	if reminder.State != string(domain.StateUpcoming) {
		t.Errorf("expected upcoming reminder, got %s", reminder.State)
	}
	if reminder.DrinksUntilReward != 1 {
		t.Errorf("expected drinksUntilReward 1, got %d", reminder.DrinksUntilReward)
	}
}

func TestRecordPurchase_PublishesReminderWhenReady(t *testing.T) {
	svc := &mockPurchaseService{
		RecordPurchaseFunc: func(ctx context.Context, phone, name string, category domain.DrinkCategory, menuItemID uint) (*domain.Customer, error) {
			return customerWithPaidDrinks(5), nil
		},
	}
	reminders := &mockReminderPublisher{}

	uc := NewRecordPurchaseUseCase(svc, reminders, zap.NewNop(), 3)

	resp, err := uc.RecordPurchase(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if resp.Reward.State != string(domain.StateReady) {
		t.Errorf("expected ready state, got %s", resp.Reward.State)
	}
	if len(reminders.published) != 1 {
		t.Fatalf("expected 1 reminder, got %d", len(reminders.published))
	}
	if reminders.published[0].DrinksUntilReward != 0 {
		t.Errorf("expected drinksUntilReward 0, got %d", reminders.published[0].DrinksUntilReward)
	}
}

func TestRecordPurchase_ReminderFailureDoesNotFailPurchase(t *testing.T) {
	svc := &mockPurchaseService{
		RecordPurchaseFunc: func(ctx context.Context, phone, name string, category domain.DrinkCategory, menuItemID uint) (*domain.Customer, error) {
			return customerWithPaidDrinks(5), nil
		},
	}
	reminders := &mockReminderPublisher{err: createDeadlockError()}

	uc := NewRecordPurchaseUseCase(svc, reminders, zap.NewNop(), 3)

	_, err := uc.RecordPurchase(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("expected purchase to succeed despite reminder failure, got %v", err)
	}
}

func TestRecordPurchase_RetriesOnDeadlock(t *testing.T) {
	attempts := 0
	svc := &mockPurchaseService{
		RecordPurchaseFunc: func(ctx context.Context, phone, name string, category domain.DrinkCategory, menuItemID uint) (*domain.Customer, error) {
			attempts++
			if attempts < 3 {
				return nil, createDeadlockError()
			}
			return customerWithPaidDrinks(1), nil
		},
	}

	uc := NewRecordPurchaseUseCase(svc, &mockReminderPublisher{}, zap.NewNop(), 3)

	_, err := uc.RecordPurchase(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("expected success after retries, got %v", err)
	}
	if attempts != 3 {
		t.Errorf("expected 3 attempts, got %d", attempts)
	}
}

func TestRecordPurchase_ConflictAfterMaxRetries(t *testing.T) {
	attempts := 0
	svc := &mockPurchaseService{
		RecordPurchaseFunc: func(ctx context.Context, phone, name string, category domain.DrinkCategory, menuItemID uint) (*domain.Customer, error) {
			attempts++
			return nil, createDeadlockError()
		},
	}

	uc := NewRecordPurchaseUseCase(svc, &mockReminderPublisher{}, zap.NewNop(), 3)

	_, err := uc.RecordPurchase(context.Background(), testRequest())
	if err == nil {
		t.Fatal("expected conflict error, got nil")
	}
	if _, ok := apperrors.IsConflictError(err); !ok {
		t.Errorf("expected ConflictError, got %T", err)
	}
	if attempts != 3 {
		t.Errorf("expected 3 attempts, got %d", attempts)
	}
}

func TestRecordPurchase_NonRetryableErrorReturnsImmediately(t *testing.T) {
	attempts := 0
	svc := &mockPurchaseService{
		RecordPurchaseFunc: func(ctx context.Context, phone, name string, category domain.DrinkCategory, menuItemID uint) (*domain.Customer, error) {
			attempts++
			return nil, apperrors.NewNotFoundError("menu item not found")
		},
	}

	uc := NewRecordPurchaseUseCase(svc, &mockReminderPublisher{}, zap.NewNop(), 3)

	_, err := uc.RecordPurchase(context.Background(), testRequest())
	if _, ok := apperrors.IsNotFoundError(err); !ok {
		t.Errorf("expected NotFoundError, got %v", err)
	}
	if attempts != 1 {
		t.Errorf("expected 1 attempt, got %d", attempts)
	}
}

func TestIsRetryableMySQLError(t *testing.T) {
	if !IsRetryableMySQLError(&mysql.MySQLError{Number: 1213}) {
		t.Error("deadlock should be retryable")
	}
	if !IsRetryableMySQLError(&mysql.MySQLError{Number: 1205}) {
		t.Error("lock wait timeout should be retryable")
	}
	if !IsRetryableMySQLError(&mysql.MySQLError{Number: 1062}) {
		t.Error("duplicate key should be retryable")
	}
	if IsRetryableMySQLError(&mysql.MySQLError{Number: 1064}) {
		t.Error("syntax error should not be retryable")
	}
	if IsRetryableMySQLError(apperrors.NewNotFoundError("nope")) {
		t.Error("app errors should not be retryable")
	}
}
