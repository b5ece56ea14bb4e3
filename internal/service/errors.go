package service

import "errors"

var (
	// ErrIncorrectLoginDetails is returned by Login for both "unknown
	// identifier" and "wrong password". Collapsing the two into one message
	// prevents account enumeration.
	ErrIncorrectLoginDetails = errors.New("Incorrect Login Details")

	// ErrUnauthenticated is returned when an operation requires a verified
	// caller identity and none is available.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrTokenIsExpired is returned when a token's expiry claim has passed.
	ErrTokenIsExpired = errors.New("token is expired")

	// ErrTokenIsExpiredOrInvalid is returned when a token fails verification
	// for any reason: bad signature, wrong issuer, malformed payload or
	// expiry.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrTokenCreationFailed is returned when signing a new token fails.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrNotNoteOwner is returned when an authenticated caller targets a note
	// owned by somebody else.
	ErrNotNoteOwner = errors.New("caller is not the note owner")

	// ErrHashingPassword is returned when the adaptive password hash cannot
	// be computed.
	ErrHashingPassword = errors.New("failed to hash password")
)
