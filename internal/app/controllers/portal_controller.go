package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushq/studentportal/internal/app/models"
	"github.com/campushq/studentportal/internal/app/models/dto"
	"github.com/campushq/studentportal/internal/app/services"
	"github.com/campushq/studentportal/internal/middleware"
)

// PortalController serves the landing page and the portal sections
type PortalController struct {
	portalService *services.PortalService
}

// NewPortalController creates a new PortalController
func NewPortalController(portalService *services.PortalService) *PortalController {
	return &PortalController{portalService: portalService}
}

// Home serves the public landing page context
// @Summary Landing page content and portal navigation
// @Tags portal
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.HomeResponse}
// @Router / [get]
func (c *PortalController) Home(ctx *gin.Context) {
	resp, err := c.portalService.Home(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// Index lists the portal sections available to the authenticated user
// @Summary Portal navigation list
// @Tags portal
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.HomeResponse}
// @Router /portal/ [get]
func (c *PortalController) Index(ctx *gin.Context) {
	resp, err := c.portalService.Home(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// GetPage resolves one portal section by its key
// @Summary Portal page content plus its entity listing
// @Tags portal
// @Produce json
// @Security BearerAuth
// @Param pageKey path string true "Page key" Enums(dashboard, courses, grades, profile, finance, library, events, help)
// @Param search query string false "Free-text filter"
// @Param type query string false "Transaction direction (finance only)" Enums(credit, debit)
// @Param category query string false "Category filter (events and help)"
// @Success 200 {object} dto.APIResponse{data=dto.PageResponse}
// @Failure 404 {object} dto.ErrorResponse "Unknown page key"
// @Router /portal/{pageKey} [get]
func (c *PortalController) GetPage(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	var query dto.PageQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid query parameters")))
		return
	}

	key := models.PageKey(ctx.Param("pageKey"))
	resp, err := c.portalService.GetPage(ctx.Request.Context(), userID, key, query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// Help serves the FAQ listing, same context as the help page key
// @Summary FAQ listing with search and category filters
// @Tags portal
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.PageResponse}
// @Router /help/ [get]
func (c *PortalController) Help(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	var query dto.PageQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid query parameters")))
		return
	}

	resp, err := c.portalService.GetPage(ctx.Request.Context(), userID, models.PageHelp, query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}
