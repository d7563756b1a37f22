package controller

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"barista/internal/dto"
	apperrors "barista/internal/errors"
)

func writeJSON(w http.ResponseWriter, logger *zap.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode response", zap.Error(err))
	}
}

type validationErrorResponse struct {
	TraceID string                       `json:"traceId"`
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func writeValidationError(w http.ResponseWriter, logger *zap.Logger, traceID, message string, details ...apperrors.ValidationDetail) {
	writeJSON(w, logger, http.StatusBadRequest, validationErrorResponse{
		TraceID: traceID,
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

// writeDomainError maps the error taxonomy onto HTTP statuses.
func writeDomainError(w http.ResponseWriter, logger *zap.Logger, traceID string, err error) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		writeValidationError(w, logger, traceID, ve.Message, ve.Details...)
		return
	}
	if nfe, ok := apperrors.IsNotFoundError(err); ok {
		writeJSON(w, logger, http.StatusNotFound, dto.ErrorResponse{
			TraceID: traceID, Error: "NOT_FOUND", Message: nfe.Message,
		})
		return
	}
	if pe, ok := apperrors.IsPreconditionError(err); ok {
		writeJSON(w, logger, http.StatusConflict, dto.ErrorResponse{
			TraceID: traceID, Error: "PRECONDITION_FAILED", Message: pe.Message,
		})
		return
	}
	if ce, ok := apperrors.IsConflictError(err); ok {
		writeJSON(w, logger, http.StatusConflict, dto.ErrorResponse{
			TraceID: traceID, Error: "CONFLICT", Message: ce.Message,
		})
		return
	}
	if ue, ok := apperrors.IsUnavailableError(err); ok {
		writeJSON(w, logger, http.StatusServiceUnavailable, dto.ErrorResponse{
			TraceID: traceID, Error: "UNAVAILABLE", Message: ue.Message,
		})
		return
	}

	logger.Error("unexpected error", zap.String("traceId", traceID), zap.Error(err))
	writeJSON(w, logger, http.StatusInternalServerError, dto.ErrorResponse{
		TraceID: traceID, Error: "INTERNAL_ERROR", Message: "an unexpected error occurred",
	})
}
