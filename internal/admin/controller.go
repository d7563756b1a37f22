package admin

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"barista/internal/dto"
	apperrors "barista/internal/errors"
)

type Controller struct {
	service *Service
	logger  *zap.Logger
}

func NewController(service *Service, logger *zap.Logger) *Controller {
	return &Controller{
		service: service,
		logger:  logger,
	}
}

func (c *Controller) HandleLogin(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeError(w, logger, traceID, apperrors.NewValidationError("invalid JSON body"))
		return
	}

	if strings.TrimSpace(req.Username) == "" || strings.TrimSpace(req.Password) == "" {
		c.writeError(w, logger, traceID, apperrors.NewValidationError("username and password are required"))
		return
	}

	token, admin, err := c.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		c.writeError(w, logger, traceID, err)
		return
	}

	c.writeJSON(w, logger, http.StatusOK, dto.LoginResponse{
		Token:    token,
		Username: admin.Username,
	})
}

func (c *Controller) HandleChangePassword(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	username, ok := UsernameFromContext(r.Context())
	if !ok {
		writeUnauthorized(w)
		return
	}

	var req dto.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeError(w, logger, traceID, apperrors.NewValidationError("invalid JSON body"))
		return
	}

	if len(req.NewPassword) < 8 {
		c.writeError(w, logger, traceID, apperrors.NewValidationError("validation failed", apperrors.ValidationDetail{
			Field:   "newPassword",
			Message: "new password must be at least 8 characters",
		}))
		return
	}

	if err := c.service.ChangePassword(r.Context(), username, req.CurrentPassword, req.NewPassword); err != nil {
		c.writeError(w, logger, traceID, err)
		return
	}

	c.writeJSON(w, logger, http.StatusOK, map[string]string{"message": "password changed"})
}

func (c *Controller) HandleProfile(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	username, ok := UsernameFromContext(r.Context())
	if !ok {
		writeUnauthorized(w)
		return
	}

	admin, err := c.service.Profile(r.Context(), username)
	if err != nil {
		c.writeError(w, logger, traceID, err)
		return
	}

	c.writeJSON(w, logger, http.StatusOK, dto.ProfileResponse{Username: admin.Username})
}

func (c *Controller) writeError(w http.ResponseWriter, logger *zap.Logger, traceID string, err error) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeJSON(w, logger, http.StatusBadRequest, dto.ErrorResponse{
			TraceID: traceID, Error: "VALIDATION_ERROR", Message: ve.Message,
		})
		return
	}
	if nfe, ok := apperrors.IsNotFoundError(err); ok {
		c.writeJSON(w, logger, http.StatusNotFound, dto.ErrorResponse{
			TraceID: traceID, Error: "NOT_FOUND", Message: nfe.Message,
		})
		return
	}

	logger.Error("admin request failed", zap.Error(err))
	c.writeJSON(w, logger, http.StatusInternalServerError, dto.ErrorResponse{
		TraceID: traceID, Error: "INTERNAL_ERROR", Message: "an unexpected error occurred",
	})
}

func (c *Controller) writeJSON(w http.ResponseWriter, logger *zap.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode response", zap.Error(err))
	}
}
