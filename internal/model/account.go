package model

// Account represents an application user record as stored in the
// `accounts` table. The username doubles as the primary key; there
// is no numeric surrogate id. Passwords are stored as bcrypt hashes,
// never in plain text.
//
// Fields:
//  Username     – unique login name, primary key of the accounts table.
//  PasswordHash – bcrypt hashed password.
type Account struct {
	Username     string // accounts.username
	PasswordHash string // accounts.password_hash
}
