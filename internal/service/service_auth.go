package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avdeyev/go-blog-api/internal/config"
	"github.com/avdeyev/go-blog-api/internal/logger"
	"github.com/avdeyev/go-blog-api/internal/store"
	"github.com/avdeyev/go-blog-api/internal/utils"
	"github.com/avdeyev/go-blog-api/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
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

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// It validates that email and both password fields are non-empty and that
// the two passwords match, hashes the password with bcrypt, and delegates
// persistence to the UserRepository. When no username is supplied, the email
// is used in its place.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if email or either password field is empty.
//   - ErrPasswordsDoNotMatch if the two password fields differ.
//   - ErrPasswordUnusable if the password cannot be hashed (e.g. too long).
//   - A wrapped storage error if the repository call fails (e.g. email
//     already taken — see store.ErrEmailAlreadyExists).
func (a *authService) RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if request.Email == "" || request.Password == "" || request.VerifiedPassword == "" {
		log.Error().Str("email", request.Email).Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}
	if request.Password != request.VerifiedPassword {
		return models.User{}, ErrPasswordsDoNotMatch
	}

	hash, err := utils.HashPassword(request.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrPasswordUnusable, err)
	}

	username := request.Username
	if username == "" {
		username = request.Email
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     username,
		Email:        request.Email,
		PasswordHash: hash,
	})
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// It looks up the account by email and compares the supplied password against
// the stored bcrypt hash. A missing account and a wrong password produce the
// same ErrWrongCredentials, so a caller cannot probe which emails are
// registered.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - ErrWrongCredentials if the account is missing or the password is wrong.
//   - A wrapped storage error on any other repository failure.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if request.Email == "" || request.Password == "" {
		log.Error().Str("email", request.Email).Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, request.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, ErrWrongCredentials
		}

		log.Err(err).Str("email", request.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.CheckPasswordHash(request.Password, foundUser.PasswordHash) {
		log.Error().
			Int64("id", foundUser.UserID).
			Str("email", foundUser.Email).
			Msg("wrong password")
		return models.User{}, ErrWrongCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// Authenticate validates a raw JWT string and resolves its subject to a live
// user account.
//
// Signature, expiry, and issuer are verified first; the subject is then
// looked up so that a token for a since-removed account is rejected. Any
// validation failure is normalised to ErrTokenIsExpiredOrInvalid so that
// callers do not need to inspect low-level JWT errors.
func (a *authService) Authenticate(ctx context.Context, tokenString string) (models.User, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.User{}, ErrTokenIsExpiredOrInvalid
	}

	userID, err := token.GetUserID()
	if err != nil {
		return models.User{}, ErrTokenIsExpiredOrInvalid
	}

	foundUser, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, ErrTokenIsExpiredOrInvalid
		}
		return models.User{}, fmt.Errorf("token subject lookup failed: %w", err)
	}

	return foundUser, nil
}

// GetUser retrieves a user account by its identifier.
func (a *authService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("userId", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return foundUser, nil
}
