package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/services"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/utils"
)

type CalendarController struct {
	requestService *services.RequestService
	logger         *zap.Logger
}

func NewCalendarController(requestService *services.RequestService, logger *zap.Logger) *CalendarController {
	return &CalendarController{requestService: requestService, logger: logger}
}

// MonthView serves GET /calendar?year=YYYY&month=M. Missing parameters
// default to the current UTC month.
func (c *CalendarController) MonthView(ctx echo.Context) error {
	now := time.Now().UTC()
	year, month := now.Year(), int(now.Month())

	if v := ctx.QueryParam("year"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return utils.ErrorResponse(ctx, apperrors.NewInvalidInputError("year must be a number"), c.logger)
		}
		year = parsed
	}
	if v := ctx.QueryParam("month"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 || parsed > 12 {
			return utils.ErrorResponse(ctx, apperrors.NewInvalidInputError("month must be between 1 and 12"), c.logger)
		}
		month = parsed
	}

	res, err := c.requestService.MonthView(ctx.Request().Context(), year, time.Month(month))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Calendar built", http.StatusOK)
}
