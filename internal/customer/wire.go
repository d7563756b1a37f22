package customer

import (
	"database/sql"

	"go.uber.org/zap"

	"barista/internal/config"
	"barista/internal/customer/controller"
	"barista/internal/customer/repository"
	"barista/internal/customer/service"
	"barista/internal/customer/usecase"
	menurepo "barista/internal/menu/repository"
	"barista/internal/notifier"
)

type Module struct {
	Purchase  *controller.PurchaseController
	Claim     *controller.ClaimController
	Customers *controller.CustomersController
	Repo      *repository.MySQLCustomerRepository
}

func NewModule(db *sql.DB, cfg *config.Config, reminders notifier.ReminderPublisher, logger *zap.Logger) *Module {
	customerRepo := repository.NewMySQLCustomerRepository(db)
	menuItemRepo := menurepo.NewMySQLMenuItemRepository(db)

	purchaseSvc := service.NewPurchaseService(db, customerRepo, menuItemRepo, logger, cfg.Purchase.TxTimeout)
	claimSvc := service.NewClaimService(db, customerRepo, logger, cfg.Purchase.TxTimeout)

	purchaseUC := usecase.NewRecordPurchaseUseCase(purchaseSvc, reminders, logger, cfg.Purchase.MaxRetryAttempts)
	claimUC := usecase.NewClaimRewardUseCase(claimSvc, logger, cfg.Purchase.MaxRetryAttempts)
	customersUC := usecase.NewGetCustomersUseCase(customerRepo)

	return &Module{
		Purchase:  controller.NewPurchaseController(purchaseUC, logger),
		Claim:     controller.NewClaimController(claimUC, logger),
		Customers: controller.NewCustomersController(customersUC, logger),
		Repo:      customerRepo,
	}
}
