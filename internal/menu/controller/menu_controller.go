package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"barista/internal/domain"
	"barista/internal/dto"
	apperrors "barista/internal/errors"
)

type MenuUseCase interface {
	GetMenu(ctx context.Context) ([]dto.MenuItemDTO, error)
	GetItem(ctx context.Context, id uint) (*dto.MenuItemDTO, error)
	CreateItem(ctx context.Context, req dto.CreateMenuItemRequest) (*dto.MenuItemDTO, error)
	UpdateItem(ctx context.Context, id uint, req dto.UpdateMenuItemRequest) (*dto.MenuItemDTO, error)
	DeleteItem(ctx context.Context, id uint) error
}

type MenuController struct {
	useCase MenuUseCase
	logger  *zap.Logger
}

func NewMenuController(useCase MenuUseCase, logger *zap.Logger) *MenuController {
	return &MenuController{
		useCase: useCase,
		logger:  logger,
	}
}

func (c *MenuController) HandleGetMenu(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	items, err := c.useCase.GetMenu(r.Context())
	if err != nil {
		c.writeError(w, logger, traceID, err)
		return
	}

	if items == nil {
		items = []dto.MenuItemDTO{}
	}
	c.writeJSON(w, logger, http.StatusOK, items)
}

func (c *MenuController) HandleGetItem(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	id, ok := c.parseItemID(w, logger, traceID, r)
	if !ok {
		return
	}

	item, err := c.useCase.GetItem(r.Context(), id)
	if err != nil {
		c.writeError(w, logger, traceID, err)
		return
	}

	c.writeJSON(w, logger, http.StatusOK, item)
}

func (c *MenuController) HandleCreateItem(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.CreateMenuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidation(w, logger, traceID, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if err := validateCreateRequest(req); err != nil {
		ve, _ := apperrors.IsValidationError(err)
		c.writeValidation(w, logger, traceID, ve.Message, ve.Details...)
		return
	}

	item, err := c.useCase.CreateItem(r.Context(), req)
	if err != nil {
		c.writeError(w, logger, traceID, err)
		return
	}

	logger.Info("menu item created", zap.Uint("itemId", item.ID), zap.String("name", item.Name))
	c.writeJSON(w, logger, http.StatusCreated, item)
}

func (c *MenuController) HandleUpdateItem(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	id, ok := c.parseItemID(w, logger, traceID, r)
	if !ok {
		return
	}

	var req dto.UpdateMenuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidation(w, logger, traceID, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if err := validateUpdateRequest(req); err != nil {
		ve, _ := apperrors.IsValidationError(err)
		c.writeValidation(w, logger, traceID, ve.Message, ve.Details...)
		return
	}

	item, err := c.useCase.UpdateItem(r.Context(), id, req)
	if err != nil {
		c.writeError(w, logger, traceID, err)
		return
	}

	c.writeJSON(w, logger, http.StatusOK, item)
}

func (c *MenuController) HandleDeleteItem(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	id, ok := c.parseItemID(w, logger, traceID, r)
	if !ok {
		return
	}

	if err := c.useCase.DeleteItem(r.Context(), id); err != nil {
		c.writeError(w, logger, traceID, err)
		return
	}

	logger.Info("menu item deleted", zap.Uint("itemId", id))
	c.writeJSON(w, logger, http.StatusOK, map[string]string{"message": "menu item deleted"})
}

func (c *MenuController) parseItemID(w http.ResponseWriter, logger *zap.Logger, traceID string, r *http.Request) (uint, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil || id == 0 {
		c.writeValidation(w, logger, traceID, "invalid id", apperrors.ValidationDetail{
			Field:   "id",
			Message: "id must be a positive integer",
		})
		return 0, false
	}
	return uint(id), true
}

func validateCreateRequest(req dto.CreateMenuItemRequest) error {
	var details []apperrors.ValidationDetail

	if strings.TrimSpace(req.Name) == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !domain.IsValidDrinkCategory(domain.DrinkCategory(req.Category)) {
		details = append(details, apperrors.ValidationDetail{
			Field:   "category",
			Message: "category must be one of: Mojito, Ice Cream, Milkshake, Waffle",
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

func validateUpdateRequest(req dto.UpdateMenuItemRequest) error {
	var details []apperrors.ValidationDetail

	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if req.Category != nil && !domain.IsValidDrinkCategory(domain.DrinkCategory(*req.Category)) {
		details = append(details, apperrors.ValidationDetail{
			Field:   "category",
			Message: "category must be one of: Mojito, Ice Cream, Milkshake, Waffle",
		})
	}

	if req.Price != nil && *req.Price <= 0 {
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

type validationErrorResponse struct {
	TraceID string                       `json:"traceId"`
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func (c *MenuController) writeValidation(w http.ResponseWriter, logger *zap.Logger, traceID, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, logger, http.StatusBadRequest, validationErrorResponse{
		TraceID: traceID,
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

func (c *MenuController) writeError(w http.ResponseWriter, logger *zap.Logger, traceID string, err error) {
	if nfe, ok := apperrors.IsNotFoundError(err); ok {
		c.writeJSON(w, logger, http.StatusNotFound, dto.ErrorResponse{
			TraceID: traceID, Error: "NOT_FOUND", Message: nfe.Message,
		})
		return
	}
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeValidation(w, logger, traceID, ve.Message, ve.Details...)
		return
	}

	logger.Error("menu request failed", zap.Error(err))
	c.writeJSON(w, logger, http.StatusInternalServerError, dto.ErrorResponse{
		TraceID: traceID, Error: "INTERNAL_ERROR", Message: "an unexpected error occurred",
	})
}

func (c *MenuController) writeJSON(w http.ResponseWriter, logger *zap.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode response", zap.Error(err))
	}
}
