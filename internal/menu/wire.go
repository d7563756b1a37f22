package menu

import (
	"database/sql"

	"go.uber.org/zap"

	"barista/internal/menu/controller"
	"barista/internal/menu/repository"
	"barista/internal/menu/service"
	"barista/internal/menu/usecase"
)

func NewModule(db *sql.DB, logger *zap.Logger) *controller.MenuController {
	repo := repository.NewMySQLMenuItemRepository(db)
	svc := service.NewService(repo)
	uc := usecase.NewMenuUseCase(svc)
	return controller.NewMenuController(uc, logger)
}
