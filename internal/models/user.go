package models

const (
	RoleAdmin          = "admin"
	RoleProjectManager = "project_manager"
	RoleEmployee       = "employee"
)

type User struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Role       string  `json:"role"`
	AvatarURL  string  `json:"avatarUrl,omitempty"`
	HourlyRate float64 `json:"hourlyRate"`
}
