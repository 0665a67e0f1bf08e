package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"bookify/internal/domain/user"
	reqdto "bookify/internal/handler/dto/request"
	"bookify/internal/infra"
	"bookify/internal/pkg/clock"
	"bookify/internal/pkg/errs"
	"bookify/internal/pkg/jwt"
	"bookify/internal/pkg/password"
	"bookify/internal/usecase/shared"
)

var (
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserInactive         = errs.New("user inactive")
	ErrEmailAlreadyTaken    = errs.New("email already registered")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrRegistrationFailed   = errs.New("registration failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

type LoginResult struct {
	UserID      uuid.UUID
	Role        user.Role
	AccessToken string
	ExpiresAt   time.Time
}

type AuthCommands interface {
	Register(ctx context.Context, req reqdto.RegisterRequest) (uuid.UUID, error)
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	hasher     *password.Hasher
	jwtService *jwt.Service
	clock      clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, hasher *password.Hasher, jwtService *jwt.Service, clock clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		hasher:     hasher,
		jwtService: jwtService,
		clock:      clock,
	}
}

// Register always creates a customer; admins are provisioned out of band.
func (a *authCommandsImpl) Register(ctx context.Context, req reqdto.RegisterRequest) (uuid.UUID, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrRegistrationFailed)
	}

	hash, err := a.hasher.Hash(credentials.Password().Value())
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrRegistrationFailed)
	}

	newUser := user.NewUser(credentials.Email(), hash, user.RoleCustomer, a.clock.Now())

	var id uuid.UUID
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var createErr error
		id, createErr = tx.Users().Create(ctx, tx.DB(), newUser)
		return createErr
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, ErrEmailAlreadyTaken
		}
		return uuid.Nil, errs.Mark(err, ErrRegistrationFailed)
	}

	slog.InfoContext(ctx, "user registered", "user_id", id)
	return id, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	account, err := a.validateUser(ctx, credentials.Email(), credentials.Password())
	if err != nil {
		return nil, err
	}

	token, expiresAt, err := a.jwtService.GenerateToken(account.ID(), account.Role())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, tx.DB(), account.ID())
	})
	if err != nil {
		// Login already succeeded; only the last_login stamp is lost
		slog.WarnContext(ctx, "failed to update last login", "user_id", account.ID(), "error", err.Error())
	}

	return &LoginResult{
		UserID:      account.ID(),
		Role:        account.Role(),
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, email user.Email, pw user.Password) (*user.User, error) {
	account, err := a.uow.CommandReads().UserByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Same error as a password mismatch to prevent user enumeration
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	if !account.IsActive() {
		return nil, ErrUserInactive
	}

	if err := a.hasher.Compare(account.PasswordHash(), pw.Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	return account, nil
}
