package models

// User is an admin credential record. Password holds a bcrypt hash,
// never clear text.
type User struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	CreatedAt string `json:"created_at,omitempty"`
}

// SafeUser is the user shape safe to return to clients.
type SafeUser struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	CreatedAt string `json:"created_at,omitempty"`
}

func (u User) Safe() SafeUser {
	return SafeUser{ID: u.ID, Username: u.Username, CreatedAt: u.CreatedAt}
}
