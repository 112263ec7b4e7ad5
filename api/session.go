package api

import "time"

// Role is one of the board's actor roles.
type Role string

const (
	RoleGuest         Role = "guest"
	RoleMember        Role = "member"
	RoleModerator     Role = "moderator"
	RoleAdministrator Role = "administrator"
)

// Credentials identifies an actor to the authentication endpoints.
type Credentials struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name,omitempty"`
}

// Session is the credential set returned by a join or login call. It is a
// plain value passed explicitly to each authenticated operation; the Client
// itself holds no notion of "who is logged in". A nil *Session means the
// request is made as a guest, with no Authorization header.
type Session struct {
	UserID   string    `json:"id"`
	Role     Role      `json:"role"`
	Token    string    `json:"token"`
	IssuedAt time.Time `json:"issued_at"`
}
