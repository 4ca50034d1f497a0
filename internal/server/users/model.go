package users

// User is an account in the credential store. Accounts are created by the
// seed step only; there is no registration endpoint.
type User struct {
	ID           int64
	UserName     string
	PasswordHash string
}
