package entity

// User represents a registered account. PasswordHash is the bcrypt digest
// of the user's password and never leaves the persistence boundary.
type User struct {
	Username     string
	Email        string
	PasswordHash string
	Bio          string
	Image        string
}

// Profile is the viewer-relative public view of a user.
type Profile struct {
	Username  string
	Bio       string
	Image     string
	Following bool
}
