package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"barista/internal/domain"
	"barista/internal/dto"
	apperrors "barista/internal/errors"
)

type RecordPurchaseUseCase interface {
	RecordPurchase(ctx context.Context, req dto.PurchaseRequest) (*dto.PurchaseResponse, error)
}

type PurchaseController struct {
	useCase RecordPurchaseUseCase
	logger  *zap.Logger
}

func NewPurchaseController(useCase RecordPurchaseUseCase, logger *zap.Logger) *PurchaseController {
	return &PurchaseController{
		useCase: useCase,
		logger:  logger,
	}
}

func (c *PurchaseController) HandlePurchase(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.PurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		writeValidationError(w, logger, traceID, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if err := validatePurchaseRequest(req); err != nil {
		ve, _ := apperrors.IsValidationError(err)
		writeValidationError(w, logger, traceID, ve.Message, ve.Details...)
		return
	}

	resp, err := c.useCase.RecordPurchase(r.Context(), req)
	if err != nil {
		writeDomainError(w, logger, traceID, err)
		return
	}

	resp.TraceID = traceID
	writeJSON(w, logger, http.StatusCreated, resp)
}

func validatePurchaseRequest(req dto.PurchaseRequest) error {
	var details []apperrors.ValidationDetail

	if strings.TrimSpace(req.CustomerName) == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "customerName",
			Message: "customerName is required",
		})
	}

	if strings.TrimSpace(req.CustomerPhone) == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "customerPhone",
			Message: "customerPhone is required",
		})
	}

	if strings.TrimSpace(req.DrinkType) == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "drinkType",
			Message: "drinkType is required",
		})
	} else if !domain.IsValidDrinkCategory(domain.DrinkCategory(req.DrinkType)) {
		details = append(details, apperrors.ValidationDetail{
			Field:   "drinkType",
			Message: "drinkType must be one of: Mojito, Ice Cream, Milkshake, Waffle",
		})
	}

	if req.ItemID == 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "itemId",
			Message: "itemId is required",
		})
	}

	if req.Price <= 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "price",
			Message: "price must be a positive number",
		})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}

	return nil
}
