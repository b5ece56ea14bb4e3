package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/mock"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/validators"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (*authService, *mock.MockUserRepository) {
	t.Helper()

	mockUsers := mock.NewMockUserRepository(ctrl)

	cfg := config.Auth{
		AccessTokenSecret: "access-secret",
		CsrfTokenSecret:   "csrf-secret",
		TokenIssuer:       "note-keeper-test",
		TokenDuration:     time.Hour,
	}

	svc := NewAuthService(mockUsers, cfg, logger.Nop()).(*authService)
	return svc, mockUsers
}

func mustHashPassword(t *testing.T, password string) string {
	t.Helper()
	// lowest cost keeps the test fast; verification ignores the cost factor
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

// ── CreateAccount ────────────────────────────────────────────────────────────

func TestAuthService_CreateAccount_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	input := models.CreateAccountInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
	}

	gomock.InOrder(
		mockUsers.EXPECT().
			FindUserByEmailAndUsername(ctx, input.Email, input.Username).
			Return(models.User{}, store.ErrUserNotFound),
		mockUsers.EXPECT().
			CreateUser(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
				assert.Equal(t, input.Username, u.Username)
				assert.Equal(t, input.Email, u.Email)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(input.Password)),
					"stored hash must verify against the plaintext password")
				u.UserID = 1
				return u, nil
			}),
	)

	created, err := svc.CreateAccount(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.UserID)
}

func TestAuthService_CreateAccount_ValidationFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.CreateAccount(context.Background(), models.CreateAccountInput{
		Username: "ab",
		Email:    "not-an-email",
		Password: "123",
	})
	require.Error(t, err)

	var validationErr *validators.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Len(t, validationErr.Violations, 3)
}

func TestAuthService_CreateAccount_DuplicateAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	input := models.CreateAccountInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
	}

	mockUsers.EXPECT().
		FindUserByEmailAndUsername(ctx, input.Email, input.Username).
		Return(models.User{UserID: 1}, nil)

	_, err := svc.CreateAccount(ctx, input)
	assert.ErrorIs(t, err, store.ErrUserAlreadyExists)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_ByEmail_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	user := models.User{
		UserID:       7,
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: mustHashPassword(t, "secret123"),
	}

	mockUsers.EXPECT().
		FindUserByEmail(ctx, user.Email).
		Return(user, nil)

	session, err := svc.Login(ctx, models.LoginInput{LoginID: user.Email, Password: "secret123"})
	require.NoError(t, err)

	assert.Equal(t, user.UserID, session.User.UserID)
	assert.NotEmpty(t, session.AccessToken.String())
	assert.NotEmpty(t, session.CsrfToken.String())
	assert.NotEmpty(t, session.RefreshToken.String(), "login must mint the long-lived refresh token")

	// access token: user-id subject, has expiry
	assert.Equal(t, "7", session.AccessToken.Subject)
	// anti-forgery tokens: email subject
	assert.Equal(t, user.Email, session.CsrfToken.Subject)
	assert.Equal(t, user.Email, session.RefreshToken.Subject)
}

func TestAuthService_Login_ByUsernameDisambiguation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	user := models.User{
		UserID:       7,
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: mustHashPassword(t, "secret123"),
	}

	// no "@" means username lookup, never email lookup
	mockUsers.EXPECT().
		FindUserByUsername(ctx, "alice").
		Return(user, nil)

	_, err := svc.Login(ctx, models.LoginInput{LoginID: "alice", Password: "secret123"})
	require.NoError(t, err)
}

func TestAuthService_Login_UnknownUserAndWrongPasswordCollapse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().
		FindUserByUsername(ctx, "nosuchuser").
		Return(models.User{}, store.ErrUserNotFound)

	_, unknownUserErr := svc.Login(ctx, models.LoginInput{LoginID: "nosuchuser", Password: "anything"})

	user := models.User{
		UserID:       7,
		Email:        "alice@example.com",
		PasswordHash: mustHashPassword(t, "secret123"),
	}
	mockUsers.EXPECT().
		FindUserByEmail(ctx, user.Email).
		Return(user, nil)

	_, wrongPasswordErr := svc.Login(ctx, models.LoginInput{LoginID: user.Email, Password: "wrongpass"})

	// both failure modes are indistinguishable to the caller
	assert.ErrorIs(t, unknownUserErr, ErrIncorrectLoginDetails)
	assert.ErrorIs(t, wrongPasswordErr, ErrIncorrectLoginDetails)
	assert.Equal(t, unknownUserErr.Error(), wrongPasswordErr.Error())
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.Login(context.Background(), models.LoginInput{})
	assert.ErrorIs(t, err, ErrIncorrectLoginDetails)
}

// ── Refresh ──────────────────────────────────────────────────────────────────

func TestAuthService_Refresh_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	user := models.User{
		UserID:       7,
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: mustHashPassword(t, "secret123"),
	}

	mockUsers.EXPECT().
		FindUserByEmail(ctx, user.Email).
		Return(user, nil).
		Times(2)

	loginSession, err := svc.Login(ctx, models.LoginInput{LoginID: user.Email, Password: "secret123"})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(ctx, loginSession.RefreshToken.String())
	require.NoError(t, err)

	assert.NotEmpty(t, refreshed.AccessToken.String())
	assert.NotEmpty(t, refreshed.CsrfToken.String())
	assert.Empty(t, refreshed.RefreshToken.String(), "refresh must not mint a new long-lived token")
}

func TestAuthService_Refresh_InvalidToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.Refresh(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_Refresh_UserNoLongerExists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	session, err := svc.issueSession(ctx, models.User{UserID: 7, Email: "gone@example.com"}, true)
	require.NoError(t, err)

	mockUsers.EXPECT().
		FindUserByEmail(ctx, "gone@example.com").
		Return(models.User{}, store.ErrUserNotFound)

	_, err = svc.Refresh(ctx, session.RefreshToken.String())
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

// ── VerifyRequestTokens ──────────────────────────────────────────────────────

func TestAuthService_VerifyRequestTokens_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	session, err := svc.issueSession(ctx, models.User{UserID: 7, Email: "alice@example.com"}, false)
	require.NoError(t, err)

	userID, err := svc.VerifyRequestTokens(ctx, session.AccessToken.String(), session.CsrfToken.String())
	require.NoError(t, err)
	assert.Equal(t, int64(7), userID)
}

func TestAuthService_VerifyRequestTokens_SwappedSecretsRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	session, err := svc.issueSession(ctx, models.User{UserID: 7, Email: "alice@example.com"}, false)
	require.NoError(t, err)

	// a csrf-signed token can never pass as an access token and vice versa
	_, err = svc.VerifyRequestTokens(ctx, session.CsrfToken.String(), session.AccessToken.String())
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_VerifyRequestTokens_ExpiredAccessToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)
	svc.tokenDuration = -time.Minute
	ctx := context.Background()

	session, err := svc.issueSession(ctx, models.User{UserID: 7, Email: "alice@example.com"}, false)
	require.NoError(t, err)

	_, err = svc.VerifyRequestTokens(ctx, session.AccessToken.String(), session.CsrfToken.String())
	assert.ErrorIs(t, err, ErrTokenIsExpired)
}

func TestAuthService_VerifyRequestTokens_GarbageTokens(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.VerifyRequestTokens(context.Background(), "garbage", "garbage")
	require.Error(t, err)
	assert.False(t, errors.Is(err, jwt.ErrTokenExpired))
}
