package models

// User is a dashboard account.
type User struct {
	ID           int64  `db:"id" json:"id"`
	Username     string `db:"username" json:"username"`
	Email        string `db:"email" json:"email"`
	PasswordHash string `db:"password_hash" json:"-"`
	Role         string `db:"role" json:"role"`
	Status       string `db:"status" json:"status"`
}

// Active reports whether the account may log in.
func (u User) Active() bool {
	return u.Status == "" || u.Status == "active"
}
