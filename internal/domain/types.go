package domain

// Caller is the authenticated identity attached to a request.
// Admin callers come from a JWT, intake callers from an API key.
type Caller struct {
	UserID int64  `json:"userId"`
	Role   string `json:"role"`
	Source string `json:"source"` // jwt / api_key
}

const (
	RoleAdmin  = "admin"
	RoleStaff  = "staff"
	RoleIntake = "intake"
)

// IsAdmin reports whether the caller may manage catalog data.
func (c Caller) IsAdmin() bool {
	return c.Role == RoleAdmin
}
