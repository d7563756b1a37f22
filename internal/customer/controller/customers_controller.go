package controller

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"barista/internal/dto"
)

type GetCustomersUseCase interface {
	ListCustomers(ctx context.Context) ([]dto.CustomerDTO, error)
	GetCustomerSummary(ctx context.Context, phone string) (*dto.CustomerSummaryDTO, error)
}

type CustomersController struct {
	useCase GetCustomersUseCase
	logger  *zap.Logger
}

func NewCustomersController(useCase GetCustomersUseCase, logger *zap.Logger) *CustomersController {
	return &CustomersController{
		useCase: useCase,
		logger:  logger,
	}
}

// HandleGetCustomers lists every customer, or looks up a single one
// when a phone query parameter is supplied.
func (c *CustomersController) HandleGetCustomers(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	if phone := r.URL.Query().Get("phone"); phone != "" {
		summary, err := c.useCase.GetCustomerSummary(r.Context(), phone)
		if err != nil {
			writeDomainError(w, logger, traceID, err)
			return
		}
		writeJSON(w, logger, http.StatusOK, summary)
		return
	}

	customers, err := c.useCase.ListCustomers(r.Context())
	if err != nil {
		writeDomainError(w, logger, traceID, err)
		return
	}

	if customers == nil {
		customers = []dto.CustomerDTO{}
	}
	writeJSON(w, logger, http.StatusOK, customers)
}
