package dto

// UpdateProfileRequest represents a profile form submission. The picture
// arrives as a separate multipart file part and is optional; omitting it
// keeps the existing one.
type UpdateProfileRequest struct {
	Phone   string `form:"phone" binding:"max=20"`
	Address string `form:"address" binding:"max=255"`
	Bio     string `form:"bio" binding:"max=2000"`
}
