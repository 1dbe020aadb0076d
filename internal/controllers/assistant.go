package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/services"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/utils"
)

type AssistantController struct {
	scorer         services.HealthScorer
	supportService services.SupportServiceInterface
	logger         *zap.Logger
}

func NewAssistantController(
	scorer services.HealthScorer,
	supportService services.SupportServiceInterface,
	logger *zap.Logger,
) *AssistantController {
	return &AssistantController{
		scorer:         scorer,
		supportService: supportService,
		logger:         logger,
	}
}

// ScoreHealth exposes the scorer directly so clients can evaluate arbitrary
// counter pairs without an equipment record.
func (c *AssistantController) ScoreHealth(ctx echo.Context) error {
	var payload dto.HealthScoreInputDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.ErrBadRequest, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	score, err := c.scorer.Score(ctx.Request().Context(), payload.BreakdownFrequency, payload.OverdueTasks)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, dto.HealthScoreOutputDTO{HealthScore: string(score)}, "Health scored", http.StatusOK)
}

func (c *AssistantController) Support(ctx echo.Context) error {
	var payload dto.SupportQueryDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.ErrBadRequest, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	answer, err := c.supportService.Answer(ctx.Request().Context(), payload.Query)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, dto.SupportAnswerDTO{Answer: answer}, "Answer generated", http.StatusOK)
}
