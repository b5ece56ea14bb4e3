package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// verdictCapture is a terminal handler that records the verdict the gate
// attached to the request context.
type verdictCapture struct {
	verdict utils.AuthVerdict
	ok      bool
	called  bool
}

func (c *verdictCapture) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	c.called = true
	c.verdict, c.ok = utils.GetAuthVerdict(r.Context())
	w.WriteHeader(http.StatusOK)
}

// ─────────────────────────────────────────────
// withAuthVerdict — the soft gate
// ─────────────────────────────────────────────

func TestWithAuthVerdict_NoTokens_ProceedsAnonymous(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _ := newTestHandler(t, ctrl)

	capture := &verdictCapture{}
	gate := h.withAuthVerdict(capture)

	req := httptest.NewRequest(http.MethodPost, "/api/query", nil)
	rec := httptest.NewRecorder()
	gate.ServeHTTP(rec, req)

	require.True(t, capture.called, "the gate must never reject a request")
	require.True(t, capture.ok, "a verdict must always be attached")
	assert.False(t, capture.verdict.IsAuthenticated)
	assert.Zero(t, capture.verdict.UserID)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWithAuthVerdict_ValidTokens_AttachesIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockAuth, _ := newTestHandler(t, ctrl)

	mockAuth.EXPECT().
		VerifyRequestTokens(gomock.Any(), "access-jwt", "csrf-jwt").
		Return(int64(42), nil)

	capture := &verdictCapture{}
	gate := h.withAuthVerdict(capture)

	req := httptest.NewRequest(http.MethodPost, "/api/query", nil)
	req.AddCookie(&http.Cookie{Name: accessTokenCookie, Value: "access-jwt"})
	req.Header.Set(csrfTokenHeader, "csrf-jwt")

	rec := httptest.NewRecorder()
	gate.ServeHTTP(rec, req)

	require.True(t, capture.ok)
	assert.True(t, capture.verdict.IsAuthenticated)
	assert.Equal(t, int64(42), capture.verdict.UserID)
}

func TestWithAuthVerdict_BearerHeaderFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockAuth, _ := newTestHandler(t, ctrl)

	mockAuth.EXPECT().
		VerifyRequestTokens(gomock.Any(), "access-jwt", "csrf-jwt").
		Return(int64(42), nil)

	capture := &verdictCapture{}
	gate := h.withAuthVerdict(capture)

	req := httptest.NewRequest(http.MethodPost, "/api/query", nil)
	req.Header.Set("Authorization", "Bearer access-jwt")
	req.Header.Set(csrfTokenHeader, "csrf-jwt")

	rec := httptest.NewRecorder()
	gate.ServeHTTP(rec, req)

	require.True(t, capture.ok)
	assert.True(t, capture.verdict.IsAuthenticated)
}

func TestWithAuthVerdict_VerificationFailure_ProceedsAnonymous(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockAuth, _ := newTestHandler(t, ctrl)

	mockAuth.EXPECT().
		VerifyRequestTokens(gomock.Any(), "forged-jwt", "csrf-jwt").
		Return(int64(0), errors.New("signature is invalid"))

	capture := &verdictCapture{}
	gate := h.withAuthVerdict(capture)

	req := httptest.NewRequest(http.MethodPost, "/api/query", nil)
	req.AddCookie(&http.Cookie{Name: accessTokenCookie, Value: "forged-jwt"})
	req.Header.Set(csrfTokenHeader, "csrf-jwt")

	rec := httptest.NewRecorder()
	gate.ServeHTTP(rec, req)

	require.True(t, capture.called, "a bad token downgrades to anonymous, never rejects")
	assert.False(t, capture.verdict.IsAuthenticated)
	assert.Equal(t, http.StatusOK, rec.Code)
}

// TestWithAuthVerdict_AccessTokenAlone_SkipsVerification pins the pairing
// rule: without the anti-forgery header no verification is even attempted.
func TestWithAuthVerdict_AccessTokenAlone_SkipsVerification(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no VerifyRequestTokens expectation: a call would fail the test
	h, _, _ := newTestHandler(t, ctrl)

	capture := &verdictCapture{}
	gate := h.withAuthVerdict(capture)

	req := httptest.NewRequest(http.MethodPost, "/api/query", nil)
	req.AddCookie(&http.Cookie{Name: accessTokenCookie, Value: "access-jwt"})

	rec := httptest.NewRecorder()
	gate.ServeHTTP(rec, req)

	require.True(t, capture.called)
	assert.False(t, capture.verdict.IsAuthenticated)
}

// ─────────────────────────────────────────────
// accessTokenFromRequest
// ─────────────────────────────────────────────

func TestAccessTokenFromRequest_CookieWinsOverHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/query", nil)
	req.AddCookie(&http.Cookie{Name: accessTokenCookie, Value: "cookie-jwt"})
	req.Header.Set("Authorization", "Bearer header-jwt")

	assert.Equal(t, "cookie-jwt", accessTokenFromRequest(req))
}

func TestAccessTokenFromRequest_MalformedBearerIgnored(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/query", nil)
	req.Header.Set("Authorization", "Bearer")

	assert.Empty(t, accessTokenFromRequest(req))
}

func TestAccessTokenFromRequest_NoCarriers(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/query", nil)

	assert.Empty(t, accessTokenFromRequest(req))
}
