// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer itself, before any service
// call runs. Callers can match against them with [errors.Is].
var (
	// ErrInvalidJSONBody is returned when the request body cannot be decoded
	// as JSON.
	ErrInvalidJSONBody = errors.New("invalid JSON was passed")

	// ErrUnknownOperation is returned when the dispatcher receives an
	// operation name it does not recognise.
	ErrUnknownOperation = errors.New("unknown operation")

	// ErrMissingRefreshToken is returned by refreshToken when neither the
	// refresh cookie nor the refresh header carries a token.
	ErrMissingRefreshToken = errors.New("missing refresh token")
)
