package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

// createAccount handles the sign-up operation. Anonymous by design.
//
// The response never carries the password hash or any token material; the
// caller is expected to follow up with a login call.
func (h *Handler) createAccount(w http.ResponseWriter, r *http.Request, input json.RawMessage) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var accountInput models.CreateAccountInput
	if err := decodeInput(input, &accountInput); err != nil {
		log.Err(err).Msg("invalid createAccount input")
		writeError(w, err)
		return
	}

	if _, err := h.services.AuthService.CreateAccount(ctx, accountInput); err != nil {
		log.Err(err).Msg("account creation failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{
		Message: "Account created successfully!",
		Status:  http.StatusCreated,
	}, http.StatusCreated)
}

// login handles the credential-exchange operation. Anonymous by design.
//
// On success the access token is also set as an HttpOnly cookie and the
// long-lived refresh token as a second HttpOnly cookie, so browser clients
// need only echo the anti-forgery token header on subsequent requests.
func (h *Handler) login(w http.ResponseWriter, r *http.Request, input json.RawMessage) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var loginInput models.LoginInput
	if err := decodeInput(input, &loginInput); err != nil {
		log.Err(err).Msg("invalid login input")
		writeError(w, err)
		return
	}

	session, err := h.services.AuthService.Login(ctx, loginInput)
	if err != nil {
		log.Err(err).Msg("login failed")
		writeError(w, err)
		return
	}

	setTokenCookie(w, accessTokenCookie, session.AccessToken.String())
	setTokenCookie(w, refreshTokenCookie, session.RefreshToken.String())

	utils.WriteJSON(w, models.LoginResponse{
		Message:      "Login successful!",
		Status:       http.StatusOK,
		AccessToken:  session.AccessToken.String(),
		CsrfToken:    session.CsrfToken.String(),
		RefreshToken: session.RefreshToken.String(),
		User:         models.UserInfo{Name: session.User.Username},
	}, http.StatusOK)
}

// refreshToken exchanges the long-lived refresh token for a fresh access and
// anti-forgery pair, without re-submitting credentials.
//
// The refresh token is read from the "refresh_token" cookie or, for
// non-browser clients, the "X-Refresh-Token" header. Driven entirely by
// these carriers, the operation takes no explicit input.
func (h *Handler) refreshToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	refreshToken := refreshTokenFromRequest(r)
	if refreshToken == "" {
		log.Debug().Msg("no refresh token supplied")
		writeError(w, ErrMissingRefreshToken)
		return
	}

	session, err := h.services.AuthService.Refresh(ctx, refreshToken)
	if err != nil {
		log.Err(err).Msg("token refresh failed")
		writeError(w, err)
		return
	}

	setTokenCookie(w, accessTokenCookie, session.AccessToken.String())

	utils.WriteJSON(w, models.RefreshResponse{
		Message:     "Token refreshed successfully!",
		AccessToken: session.AccessToken.String(),
		CsrfToken:   session.CsrfToken.String(),
	}, http.StatusOK)
}

// refreshTokenFromRequest extracts the raw refresh token, preferring the
// cookie over the header.
func refreshTokenFromRequest(r *http.Request) string {
	if cookie, err := r.Cookie(refreshTokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	return r.Header.Get(refreshTokenHeader)
}

// setTokenCookie attaches a token as an HttpOnly session cookie scoped to
// the whole API.
func setTokenCookie(w http.ResponseWriter, name, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
