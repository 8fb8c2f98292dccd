package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/expense_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/expense_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/expense_ledger_app/internal/dto"
	"github.com/SscSPs/expense_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type forecastHandler struct {
	forecastService portssvc.ForecastSvcFacade
}

// RegisterForecastRoutes registers routes related to forecasts.
func RegisterForecastRoutes(rg *gin.RouterGroup, forecastService portssvc.ForecastSvcFacade) {
	h := &forecastHandler{forecastService: forecastService}

	forecasts := rg.Group("/forecasts", middleware.RequireRoles(domain.RoleAdmin, domain.RoleAccountant))
	{
		forecasts.POST("", h.createForecast)
		forecasts.GET("", h.listForecasts)
		forecasts.GET("/total", h.calculateForecast)
		forecasts.GET("/:forecastID", h.getForecast)
		forecasts.PUT("/:forecastID", h.updateForecast)
		forecasts.DELETE("/:forecastID", h.removeForecast)
	}
}

// createForecast godoc
// @Summary Create a forecast
// @Description Creates one forecast, or twelve (April to March) sharing one group when isGenerateForAllMonth is set
// @Tags forecasts
// @Accept  json
// @Produce  json
// @Param   forecast body dto.CreateForecastRequest true "Forecast details"
// @Success 201 {array} dto.ForecastResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Referenced entity not found"
// @Failure 500 {object} ErrorResponse "Failed to create forecast"
// @Security BearerAuth
// @Router /forecasts [post]
func (h *forecastHandler) createForecast(c *gin.Context) {
	var req dto.CreateForecastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := actorID(c)
	if !ok {
		return
	}

	forecasts, err := h.forecastService.CreateForecast(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create forecast")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Forecast created", slog.Int("count", len(forecasts)))
	c.JSON(http.StatusCreated, dto.ToListForecastResponse(forecasts))
}

// getForecast godoc
// @Summary Get a forecast
// @Tags forecasts
// @Produce  json
// @Param   forecastID path string true "Forecast ID"
// @Success 200 {object} dto.ForecastResponse
// @Failure 404 {object} ErrorResponse "Forecast not found"
// @Security BearerAuth
// @Router /forecasts/{forecastID} [get]
func (h *forecastHandler) getForecast(c *gin.Context) {
	forecastID, ok := pathID(c, "forecastID")
	if !ok {
		return
	}
	forecast, err := h.forecastService.GetForecastByID(c.Request.Context(), forecastID)
	if err != nil {
		respondError(c, err, "Failed to retrieve forecast")
		return
	}
	c.JSON(http.StatusOK, dto.ToForecastResponse(forecast))
}

// listForecasts godoc
// @Summary List forecasts
// @Tags forecasts
// @Produce  json
// @Param   companyID query string false "Company ID"
// @Param   limit query int false "Page size" default(20)
// @Param   offset query int false "Offset" default(0)
// @Success 200 {array} dto.ForecastResponse
// @Security BearerAuth
// @Router /forecasts [get]
func (h *forecastHandler) listForecasts(c *gin.Context) {
	var params dto.ListForecastsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	forecasts, err := h.forecastService.ListForecasts(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to list forecasts")
		return
	}
	c.JSON(http.StatusOK, dto.ToListForecastResponse(forecasts))
}

// updateForecast godoc
// @Summary Update a forecast
// @Description Replaces the editable fields. With updateWholeGroup every forecast of the group changes; each keeps its month and takes the day of payDate.
// @Tags forecasts
// @Accept  json
// @Produce  json
// @Param   forecastID path string true "Forecast ID"
// @Param   forecast body dto.UpdateForecastRequest true "Forecast details"
// @Success 200 {array} dto.ForecastResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Forecast not found"
// @Security BearerAuth
// @Router /forecasts/{forecastID} [put]
func (h *forecastHandler) updateForecast(c *gin.Context) {
	forecastID, ok := pathID(c, "forecastID")
	if !ok {
		return
	}
	var req dto.UpdateForecastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := actorID(c)
	if !ok {
		return
	}

	forecasts, err := h.forecastService.UpdateForecast(c.Request.Context(), forecastID, req, req.UpdateWholeGroup, userID)
	if err != nil {
		respondError(c, err, "Failed to update forecast")
		return
	}
	c.JSON(http.StatusOK, dto.ToListForecastResponse(forecasts))
}

// removeForecast godoc
// @Summary Delete a forecast
// @Description Deletes the whole group when the forecast belongs to one
// @Tags forecasts
// @Produce  json
// @Param   forecastID path string true "Forecast ID"
// @Success 200 {object} dto.RemoveForecastResponse
// @Failure 404 {object} ErrorResponse "Forecast not found"
// @Security BearerAuth
// @Router /forecasts/{forecastID} [delete]
func (h *forecastHandler) removeForecast(c *gin.Context) {
	forecastID, ok := pathID(c, "forecastID")
	if !ok {
		return
	}
	removed, err := h.forecastService.RemoveForecast(c.Request.Context(), forecastID)
	if err != nil {
		respondError(c, err, "Failed to delete forecast")
		return
	}
	c.JSON(http.StatusOK, dto.RemoveForecastResponse{Removed: removed})
}

// calculateForecast godoc
// @Summary Total forecast amount
// @Tags forecasts
// @Produce  json
// @Param   month query int false "Month of pay date (1-12)"
// @Param   companyID query string false "Company ID"
// @Success 200 {object} dto.TotalResponse
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Security BearerAuth
// @Router /forecasts/total [get]
func (h *forecastHandler) calculateForecast(c *gin.Context) {
	var params dto.CalculateForecastParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	total, err := h.forecastService.CalculateForecast(c.Request.Context(), params.Month, params.CompanyID)
	if err != nil {
		respondError(c, err, "Failed to calculate forecast")
		return
	}
	c.JSON(http.StatusOK, dto.TotalResponse{Total: total})
}
