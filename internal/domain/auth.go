package domain

// Session is produced by a successful login and is never persisted.
type Session struct {
	Token    string
	UserID   string
	Username string
}
