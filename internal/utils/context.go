// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, JWT token generation and validation,
// and other common operations.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// AuthVerdict is the per-request authentication result produced once by the
// auth gate middleware and consumed by every operation that needs identity.
//
// IsAuthenticated is false whenever a token was missing, malformed, expired,
// or carried a bad signature. The gate never rejects a request on its own;
// operations that require identity check the verdict and fail with 401.
type AuthVerdict struct {
	// IsAuthenticated reports whether both the access token and the
	// anti-forgery token verified successfully.
	IsAuthenticated bool

	// UserID is the identifier extracted from the verified access token.
	// Zero when IsAuthenticated is false.
	UserID int64
}

// authVerdictCtxKey is the key used to store the [AuthVerdict] in the context.
var authVerdictCtxKey = contextKey("authVerdict")

// WithAuthVerdict returns a child context carrying the given verdict.
//
// Example of writing a value to the context:
//
//	ctx := utils.WithAuthVerdict(ctx, utils.AuthVerdict{IsAuthenticated: true, UserID: 42})
func WithAuthVerdict(ctx context.Context, verdict AuthVerdict) context.Context {
	return context.WithValue(ctx, authVerdictCtxKey, verdict)
}

// GetAuthVerdict retrieves the authentication verdict from the context.
//
// Returns the verdict and an ok flag:
//   - ok == true  — a verdict was attached by the auth gate
//   - ok == false — the request never passed through the gate; callers must
//     treat this the same as an anonymous request
func GetAuthVerdict(ctx context.Context) (AuthVerdict, bool) {
	verdict, ok := ctx.Value(authVerdictCtxKey).(AuthVerdict)
	return verdict, ok
}
