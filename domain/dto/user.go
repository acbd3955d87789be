package dto

// UpdateSettingsRequest changes the display name and/or password.
// Empty fields leave the stored value alone.
type UpdateSettingsRequest struct {
	OldPassword string `json:"oldPassword" form:"oldPassword"`
	NewPassword string `json:"newPassword" form:"newPassword"`
	Name        string `json:"name" form:"name"`
}
