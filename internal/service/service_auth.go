package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/hoteldesk/internal/config"
	"github.com/MKhiriev/hoteldesk/internal/logger"
	"github.com/MKhiriev/hoteldesk/internal/store"
	"github.com/MKhiriev/hoteldesk/internal/utils"
	"github.com/MKhiriev/hoteldesk/models"
)

// defaultTokenTTL bounds token lifetime when the configured duration is zero
// or negative. A token must never be issued without an expiry.
const defaultTokenTTL = 15 * time.Minute

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for password
// digesting.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// bcryptCost is the work factor for password digests. Zero selects the
	// bcrypt library default.
	bcryptCost int

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		bcryptCost:     cfg.BcryptCost,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// It validates that Username, Email and Password are non-empty, digests the
// password with bcrypt, and delegates persistence to the UserRepository. The
// plain-text password never reaches the store; uniqueness of the username is
// enforced by the store's unique index, so concurrent duplicate signups
// cannot both succeed.
//
// Returns the persisted user (with server-assigned UserID and CreatedAt) or:
//   - ErrInvalidDataProvided if a required field is empty.
//   - store.ErrUserAlreadyExists (wrapped) if the username is taken.
//   - A wrapped storage error if the repository call fails.
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Username == "" || user.Email == "" || user.Password == "" {
		log.Error().Str("username", user.Username).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	digest, err := utils.HashPassword(user.Password, a.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password digest computation failed")
		return models.User{}, fmt.Errorf("password digest computation failed: %w", err)
	}
	user.PasswordDigest = digest
	user.Password = ""

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// It validates that both Username and Password are non-empty, looks up the
// account and verifies the password against the stored bcrypt digest.
//
// Both an unknown username and a wrong password fail with
// ErrInvalidCredentials so the response does not reveal which of the two was
// wrong; the digest comparison itself is constant-time inside bcrypt.
func (a *authService) Login(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Username == "" || user.Password == "" {
		log.Error().Str("username", user.Username).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, user.Username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug().Str("username", user.Username).Msg("login attempt for unknown username")
			return models.User{}, ErrInvalidCredentials
		}

		log.Err(err).Str("username", user.Username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !utils.VerifyPassword(user.Password, foundUser.PasswordDigest) {
		log.Debug().Str("username", user.Username).Msg("login attempt with wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim and the username as the "sub" claim, and
// expires after tokenDuration. An unset duration falls back to
// defaultTokenTTL so a token is never unbounded.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	duration := a.tokenDuration
	if duration <= 0 {
		duration = defaultTokenTTL
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.Username, duration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ValidateToken validates and parses a raw JWT string, then resolves its
// subject to a stored user record.
//
// Signature, issuer and expiry checks are delegated to
// utils.ValidateAndParseJWTToken; any validation failure — including a
// subject that no longer matches an existing user — is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect
// low-level JWT errors.
func (a *authService) ValidateToken(ctx context.Context, tokenString string) (models.User, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.User{}, ErrTokenIsExpiredOrInvalid
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, token.Username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug().Str("username", token.Username).Msg("valid token for a user that no longer exists")
			return models.User{}, ErrTokenIsExpiredOrInvalid
		}

		log.Err(err).Str("username", token.Username).Msg("user search by token subject failed")
		return models.User{}, fmt.Errorf("user search by token subject failed: %w", err)
	}

	return foundUser, nil
}

// CurrentUser looks up a user record by username.
func (a *authService) CurrentUser(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	return foundUser, nil
}
