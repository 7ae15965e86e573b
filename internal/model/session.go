package model

import "time"

// Session identifies an authenticated user. It is a plain value
// returned by Login and passed explicitly into every operation that
// requires authorization; nothing in the system relies on ambient
// "current user" state. The Token field holds a signed HS256 JWT so
// a session cannot be forged by constructing the struct by hand.
//
// Fields:
//  Username  – the account this session is bound to.
//  Token     – serialized signed JWT proving the binding.
//  ExpiresAt – UTC instant after which the session is rejected even
//              if it was never logged out.
type Session struct {
	Username  string
	Token     string
	ExpiresAt time.Time
}
