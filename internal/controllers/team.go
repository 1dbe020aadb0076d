package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/repositories"
	"gearguard/pkg/utils"
)

// TeamController serves the reference lists the request form and the board
// filters need. Teams and technicians are read-only through the API; the
// seeders own their lifecycle.
type TeamController struct {
	teamRepo       repositories.TeamRepositoryInterface
	technicianRepo repositories.TechnicianRepositoryInterface
	logger         *zap.Logger
}

func NewTeamController(
	teamRepo repositories.TeamRepositoryInterface,
	technicianRepo repositories.TechnicianRepositoryInterface,
	logger *zap.Logger,
) *TeamController {
	return &TeamController{
		teamRepo:       teamRepo,
		technicianRepo: technicianRepo,
		logger:         logger,
	}
}

func (c *TeamController) GetTeams(ctx echo.Context) error {
	res, err := c.teamRepo.GetTeams(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Teams fetched", http.StatusOK)
}

func (c *TeamController) GetTechnicians(ctx echo.Context) error {
	res, err := c.technicianRepo.GetTechnicians(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Technicians fetched", http.StatusOK)
}
