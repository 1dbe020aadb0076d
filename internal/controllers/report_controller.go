package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"gearguard/internal/entities"
	"gearguard/internal/services"
	"gearguard/pkg/utils"
)

type ReportController struct {
	reportService services.ReportServiceInterface
	logger        *zap.Logger
}

func NewReportController(reportService services.ReportServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{reportService: reportService, logger: logger}
}

func (c *ReportController) GetReport(ctx echo.Context) error {
	filter, format := c.parseFilters(ctx)
	c.logger.Debug("report requested", zap.Any("filter", filter), zap.String("format", format))

	data, err := c.reportService.GetReport(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if format == "xlsx" {
		return c.respondWithXLSX(ctx, data)
	}
	return utils.SuccessResponse(ctx, data, "Report generated", http.StatusOK)
}

func (c *ReportController) parseFilters(ctx echo.Context) (entities.ReportFilter, string) {
	var filter entities.ReportFilter
	format := strings.ToLower(ctx.QueryParam("format"))

	if df := ctx.QueryParam("date_from"); df != "" {
		if t, err := time.Parse(time.RFC3339, df); err == nil {
			filter.DateFrom = &t
		}
	}
	if dt := ctx.QueryParam("date_to"); dt != "" {
		if t, err := time.Parse(time.RFC3339, dt); err == nil {
			filter.DateTo = &t
		}
	}

	parseList := func(name string) []string {
		if arr, ok := ctx.QueryParams()[name+"[]"]; ok {
			return arr
		}
		if s := ctx.QueryParam(name); s != "" {
			return strings.Split(s, ",")
		}
		return nil
	}

	for _, s := range parseList("statuses") {
		if status := entities.RequestStatus(s); status.Valid() {
			filter.Statuses = append(filter.Statuses, status)
		}
	}
	for _, t := range parseList("types") {
		switch rt := entities.RequestType(t); rt {
		case entities.TypeCorrective, entities.TypePreventive:
			filter.Types = append(filter.Types, rt)
		}
	}
	filter.EquipmentID = ctx.QueryParam("equipment_id")

	return filter, format
}

var reportHeaders = []string{
	"Request ID", "Subject", "Equipment", "Serial Number", "Team", "Technician",
	"Type", "Status", "Priority", "Scheduled Date", "Duration (hours)",
	"Root Cause", "Created By", "Overdue", "SLA Breached",
}

func rowToSlice(item entities.ReportItem) []interface{} {
	yesNo := func(b bool) string {
		if b {
			return "yes"
		}
		return "no"
	}
	return []interface{}{
		item.RequestID, item.Subject, item.EquipmentName, item.SerialNumber,
		item.TeamName, item.TechnicianName, string(item.Type), string(item.Status),
		string(item.Priority), item.ScheduledDate.Format("02.01.2006"),
		fmt.Sprintf("%.2f", item.DurationHours), item.RootCause, item.CreatedBy,
		yesNo(item.Overdue), yesNo(item.SLABreached),
	}
}

func (c *ReportController) respondWithXLSX(ctx echo.Context, data []entities.ReportItem) error {
	f := excelize.NewFile()
	sheet := "Maintenance Report"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &reportHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "O1", style)

	for i, item := range data {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := rowToSlice(item)
		f.SetSheetRow(sheet, cell, &row)
	}
	f.SetColWidth(sheet, "A", "B", 30)
	f.SetColWidth(sheet, "C", "F", 22)
	f.SetColWidth(sheet, "J", "L", 20)

	fileName := fmt.Sprintf("maintenance_report_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}
