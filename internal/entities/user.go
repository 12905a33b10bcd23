package entities

import "time"

// Role is an account role. Roles gate what a logged-in user can do: admins
// manage accounts and any campaign, DMs run campaigns and NPCs, players own
// their characters.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleDM     Role = "dm"
	RolePlayer Role = "player"
)

// Valid reports whether the role is one of the three known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleDM, RolePlayer:
		return true
	}
	return false
}

// User is an account record.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"password_hash"`
	Role         Role      `json:"role"`
	DisplayName  string    `json:"display_name"`
	CreatedAt    time.Time `json:"created_at"`
}

// Display returns the display name, falling back to the username.
func (u *User) Display() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Username
}
