package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushq/studentportal/internal/app/models/dto"
	"github.com/campushq/studentportal/internal/app/services"
	"github.com/campushq/studentportal/internal/middleware"
)

// DashboardController serves the staff-only aggregate overview
type DashboardController struct {
	dashboardService *services.DashboardService
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(dashboardService *services.DashboardService) *DashboardController {
	return &DashboardController{dashboardService: dashboardService}
}

// Overview returns portal-wide totals, per-course enrollment counts and
// the grade distribution
// @Summary Staff dashboard aggregates
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.DashboardResponse}
// @Failure 403 {object} dto.ErrorResponse "Non-staff caller"
// @Router /admin-dashboard/ [get]
func (c *DashboardController) Overview(ctx *gin.Context) {
	resp, err := c.dashboardService.Overview(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}
