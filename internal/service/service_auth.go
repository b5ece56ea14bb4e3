package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/internal/validators"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// passwordHashCost is the bcrypt cost factor applied to every stored
// password. Raising it invalidates no existing hashes; bcrypt records the
// cost inside the hash itself.
const passwordHashCost = 12

// authService is the concrete implementation of AuthService.
// It handles account creation, credential verification and the JWT token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// accountValidator checks sign-up input before any persistence happens.
	accountValidator validators.Validator

	// accessTokenSecret is the HMAC secret used to sign and verify access
	// tokens (user-id subject).
	accessTokenSecret string

	// csrfTokenSecret is the HMAC secret used to sign and verify
	// anti-forgery tokens (email subject), including the long-lived refresh
	// form. Independent from accessTokenSecret so that compromise of one
	// does not compromise the other.
	csrfTokenSecret string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued short-lived token
	// remains valid. The refresh token ignores it and never expires.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:    userRepository,
		accountValidator:  validators.NewAccountValidator(),
		accessTokenSecret: cfg.AccessTokenSecret,
		csrfTokenSecret:   cfg.CsrfTokenSecret,
		tokenIssuer:       cfg.TokenIssuer,
		tokenDuration:     cfg.TokenDuration,
		logger:            logger,
	}
}

// CreateAccount registers a new user account.
//
// It validates the input (accumulating every field violation), checks for an
// existing account with the same email AND username, hashes the password
// with bcrypt and delegates persistence to the UserRepository.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - *[validators.ValidationError] listing every violated field.
//   - [store.ErrUserAlreadyExists] when both identity fields are taken.
//   - A wrapped storage error if the repository call fails.
func (a *authService) CreateAccount(ctx context.Context, input models.CreateAccountInput) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.accountValidator.Validate(ctx, input); err != nil {
		log.Debug().Err(err).Str("email", input.Email).Msg("sign-up input failed validation")
		return models.User{}, err
	}

	// duplicate pre-check: exact match on both identity fields
	_, err := a.userRepository.FindUserByEmailAndUsername(ctx, input.Email, input.Username)
	if err == nil {
		log.Warn().
			Str("func", "authService.CreateAccount").
			Str("email", input.Email).
			Str("username", input.Username).
			Msg("account already exists")
		return models.User{}, store.ErrUserAlreadyExists
	}
	if !errors.Is(err, store.ErrUserNotFound) {
		log.Err(err).Str("func", "authService.CreateAccount").Msg("duplicate pre-check failed")
		return models.User{}, fmt.Errorf("duplicate pre-check failed: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), passwordHashCost)
	if err != nil {
		log.Err(err).Str("func", "authService.CreateAccount").Msg("failed to hash password")
		return models.User{}, fmt.Errorf("%w: %w", ErrHashingPassword, err)
	}

	user := models.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
	}

	createdUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "authService.CreateAccount").Str("email", input.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().
		Str("func", "authService.CreateAccount").
		Int64("user_id", createdUser.UserID).
		Msg("account created")

	return createdUser, nil
}

// Login authenticates an existing user.
//
// The login identifier is either an email or a username, disambiguated by
// the presence of "@". Lookup failure and password mismatch both collapse to
// [ErrIncorrectLoginDetails] so that callers cannot tell which part was
// wrong.
//
// On success it issues the full token set: a short-lived access and
// anti-forgery pair plus a long-lived refresh token.
func (a *authService) Login(ctx context.Context, input models.LoginInput) (models.Session, error) {
	log := logger.FromContext(ctx)

	if input.LoginID == "" || input.Password == "" {
		log.Debug().Str("func", "authService.Login").Msg("empty login identifier or password")
		return models.Session{}, ErrIncorrectLoginDetails
	}

	foundUser, err := a.findByLoginID(ctx, input.LoginID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug().Str("func", "authService.Login").Msg("no account matches login identifier")
			return models.Session{}, ErrIncorrectLoginDetails
		}

		log.Err(err).Str("func", "authService.Login").Msg("user lookup failed")
		return models.Session{}, fmt.Errorf("user lookup failed: %w", err)
	}

	if compareErr := bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(input.Password)); compareErr != nil {
		log.Debug().
			Str("func", "authService.Login").
			Int64("user_id", foundUser.UserID).
			Msg("password mismatch")
		return models.Session{}, ErrIncorrectLoginDetails
	}

	session, err := a.issueSession(ctx, foundUser, true)
	if err != nil {
		return models.Session{}, err
	}

	log.Info().
		Str("func", "authService.Login").
		Int64("user_id", foundUser.UserID).
		Msg("login succeeded")

	return session, nil
}

// Refresh exchanges a long-lived refresh token for a fresh short-lived
// access and anti-forgery pair, mirroring the issuance step of Login without
// requiring the password again.
//
// Returns:
//   - [ErrTokenIsExpiredOrInvalid] when the token fails verification.
//   - [ErrUnauthenticated] when the embedded email no longer resolves to an
//     account.
func (a *authService) Refresh(ctx context.Context, refreshToken string) (models.Session, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(refreshToken, a.csrfTokenSecret, a.tokenIssuer)
	if err != nil {
		log.Debug().Err(err).Str("func", "authService.Refresh").Msg("refresh token failed verification")
		return models.Session{}, ErrTokenIsExpiredOrInvalid
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, token.Subject)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Warn().Str("func", "authService.Refresh").Msg("refresh token subject no longer resolves to an account")
			return models.Session{}, ErrUnauthenticated
		}

		log.Err(err).Str("func", "authService.Refresh").Msg("user lookup failed")
		return models.Session{}, fmt.Errorf("user lookup failed: %w", err)
	}

	session, err := a.issueSession(ctx, foundUser, false)
	if err != nil {
		return models.Session{}, err
	}

	log.Info().
		Str("func", "authService.Refresh").
		Int64("user_id", foundUser.UserID).
		Msg("token pair refreshed")

	return session, nil
}

// VerifyRequestTokens checks an access token together with its paired
// anti-forgery token and returns the verified caller identifier.
//
// Both tokens must verify against their respective secrets and carry the
// configured issuer. Expired tokens yield [ErrTokenIsExpired]; every other
// verification failure yields [ErrTokenIsExpiredOrInvalid]. The auth gate
// treats any error as an anonymous verdict, never as a rejection.
func (a *authService) VerifyRequestTokens(ctx context.Context, accessToken, csrfToken string) (int64, error) {
	access, err := utils.ValidateAndParseJWTToken(accessToken, a.accessTokenSecret, a.tokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrTokenIsExpired
		}
		return 0, ErrTokenIsExpiredOrInvalid
	}

	if _, err = utils.ValidateAndParseJWTToken(csrfToken, a.csrfTokenSecret, a.tokenIssuer); err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrTokenIsExpired
		}
		return 0, ErrTokenIsExpiredOrInvalid
	}

	userID, err := utils.SubjectAsUserID(access.Subject)
	if err != nil {
		return 0, ErrTokenIsExpiredOrInvalid
	}

	return userID, nil
}

// findByLoginID resolves a login identifier to a user record. Identifiers
// containing "@" are treated as emails, everything else as usernames.
func (a *authService) findByLoginID(ctx context.Context, loginID string) (models.User, error) {
	if strings.Contains(loginID, "@") {
		return a.userRepository.FindUserByEmail(ctx, loginID)
	}

	return a.userRepository.FindUserByUsername(ctx, loginID)
}

// issueSession signs the token set for an authenticated user: always the
// short-lived access and anti-forgery pair, plus the non-expiring refresh
// token when withRefresh is set.
//
// The access token's subject is the user ID; both anti-forgery tokens carry
// the email, so a long-lived refresh token survives internal id changes.
func (a *authService) issueSession(ctx context.Context, user models.User, withRefresh bool) (models.Session, error) {
	log := logger.FromContext(ctx)

	accessToken, err := utils.GenerateJWTToken(a.tokenIssuer, strconv.FormatInt(user.UserID, 10), a.tokenDuration, a.accessTokenSecret)
	if err != nil {
		log.Err(err).Str("func", "authService.issueSession").Msg("failed to sign access token")
		return models.Session{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	csrfToken, err := utils.GenerateJWTToken(a.tokenIssuer, user.Email, a.tokenDuration, a.csrfTokenSecret)
	if err != nil {
		log.Err(err).Str("func", "authService.issueSession").Msg("failed to sign anti-forgery token")
		return models.Session{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	session := models.Session{
		User:        user,
		AccessToken: accessToken,
		CsrfToken:   csrfToken,
	}

	if withRefresh {
		refreshToken, refreshErr := utils.GenerateJWTToken(a.tokenIssuer, user.Email, 0, a.csrfTokenSecret)
		if refreshErr != nil {
			log.Err(refreshErr).Str("func", "authService.issueSession").Msg("failed to sign refresh token")
			return models.Session{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, refreshErr)
		}
		session.RefreshToken = refreshToken
	}

	return session, nil
}
