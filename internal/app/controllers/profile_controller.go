package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushq/studentportal/internal/app/models/dto"
	"github.com/campushq/studentportal/internal/app/services"
	"github.com/campushq/studentportal/internal/middleware"
	"github.com/campushq/studentportal/internal/pkg/logger"
)

// ProfileController handles viewing and editing the caller's profile
type ProfileController struct {
	profileService *services.ProfileService
}

// NewProfileController creates a new ProfileController
func NewProfileController(profileService *services.ProfileService) *ProfileController {
	return &ProfileController{profileService: profileService}
}

// Get returns the caller's profile, creating an empty one if missing
// @Summary Get own profile
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.Profile}
// @Router /profile/ [get]
func (c *ProfileController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	profile, err := c.profileService.Get(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(profile))
}

// Update applies a multipart profile form submission. The picture part
// is optional; callers can only ever touch their own row.
// @Summary Update own profile
// @Tags profile
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param phone formData string false "Phone number"
// @Param address formData string false "Postal address"
// @Param bio formData string false "Free-text bio"
// @Param picture formData file false "Profile picture"
// @Success 200 {object} dto.APIResponse{data=models.Profile}
// @Failure 400 {object} dto.ErrorResponse "Validation failure with field"
// @Router /profile/ [put]
func (c *ProfileController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBind(&req); err != nil {
		logger.Warn().Err(err).Int64("userID", userID).Msg("Invalid profile form")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid form submission").WithDetails(err.Error())))
		return
	}

	// Absent file part means keep the current picture.
	picture, err := ctx.FormFile("picture")
	if err != nil {
		picture = nil
	}

	profile, err := c.profileService.Update(ctx.Request.Context(), userID, &req, picture)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(profile))
}
