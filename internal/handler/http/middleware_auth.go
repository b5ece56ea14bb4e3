package http

import (
	"net/http"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
)

// Token carrier names shared by the auth gate and the account handlers.
const (
	accessTokenCookie  = "access_token"
	refreshTokenCookie = "refresh_token"

	csrfTokenHeader    = "X-Csrf-Token"
	refreshTokenHeader = "X-Refresh-Token"
)

// withAuthVerdict is the authentication gate. It runs once per inbound
// request, before any operation resolves.
//
// The gate extracts the access token (from the "access_token" cookie or the
// "Authorization" bearer header) and its paired anti-forgery token (from the
// "X-Csrf-Token" header), verifies both via the AuthService, and attaches an
// [utils.AuthVerdict] to the request context.
//
// The gate NEVER rejects a request. Missing, malformed, expired or forged
// tokens all produce an anonymous verdict and the request proceeds; each
// downstream operation decides whether anonymity is acceptable. This lets
// anonymous operations (login, createAccount) share the pipeline with
// authenticated ones.
func (h *Handler) withAuthVerdict(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		ctx := r.Context()

		verdict := utils.AuthVerdict{}

		accessToken := accessTokenFromRequest(r)
		csrfToken := r.Header.Get(csrfTokenHeader)

		if accessToken != "" && csrfToken != "" {
			userID, err := h.services.AuthService.VerifyRequestTokens(ctx, accessToken, csrfToken)
			if err != nil {
				log.Debug().Err(err).Msg("token verification failed, proceeding as anonymous")
			} else {
				verdict.IsAuthenticated = true
				verdict.UserID = userID
			}
		}

		next.ServeHTTP(w, r.WithContext(utils.WithAuthVerdict(ctx, verdict)))
	})
}

// accessTokenFromRequest extracts the raw access token, preferring the
// cookie over the bearer header.
func accessTokenFromRequest(r *http.Request) string {
	if cookie, err := r.Cookie(accessTokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		if token, err := utils.ParseBearerToken(authHeader); err == nil {
			return token
		}
	}

	return ""
}
