package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [jwt.RegisteredClaims] for standard claim access (subject, expiry, etc.).
//
// SignedString holds the compact serialized form of the token (header.payload.signature)
// ready to be transmitted in HTTP headers, cookies, or response bodies.
//
// Subject is a cached copy of the "sub" claim. Access tokens carry the user
// identifier there; anti-forgery tokens carry the user's email. Keeping the
// raw string avoids repeated claim lookups after parsing.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides access to the standard JWT claim set
	// (sub, exp, iat, nbf, iss, aud, jti) as defined by RFC 7519.
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	// Excluded from JSON serialization; use [Token.String] to retrieve it.
	SignedString string `json:"-"`

	// Subject is the identity claim extracted from "sub".
	// Excluded from JSON serialization; it is an internal server-side cache.
	Subject string `json:"-"`
}

// String returns the compact JWS serialization of the token
// (the signed, base64url-encoded header.payload.signature string).
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}

// Session bundles everything issued to a caller after successful
// authentication: the authenticated user record plus the freshly signed
// token set.
//
// RefreshToken is populated only by the login flow; the refresh flow mirrors
// login's short-lived issuance but does not mint a new long-lived token.
type Session struct {
	User User

	AccessToken  Token
	CsrfToken    Token
	RefreshToken Token
}
