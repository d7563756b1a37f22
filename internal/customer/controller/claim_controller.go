package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"barista/internal/dto"
	apperrors "barista/internal/errors"
)

type ClaimRewardUseCase interface {
	ClaimReward(ctx context.Context, req dto.ClaimRequest) (*dto.ClaimResponse, error)
}

type ClaimController struct {
	useCase ClaimRewardUseCase
	logger  *zap.Logger
}

func NewClaimController(useCase ClaimRewardUseCase, logger *zap.Logger) *ClaimController {
	return &ClaimController{
		useCase: useCase,
		logger:  logger,
	}
}

func (c *ClaimController) HandleClaim(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.ClaimRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		writeValidationError(w, logger, traceID, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if strings.TrimSpace(req.Phone) == "" {
		writeValidationError(w, logger, traceID, "validation failed", apperrors.ValidationDetail{
			Field:   "phone",
			Message: "phone is required",
		})
		return
	}

	resp, err := c.useCase.ClaimReward(r.Context(), req)
	if err != nil {
		writeDomainError(w, logger, traceID, err)
		return
	}

	resp.TraceID = traceID
	writeJSON(w, logger, http.StatusOK, resp)
}
