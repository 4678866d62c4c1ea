// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "scubakeep/internal/delivery/context"
	"scubakeep/internal/domain/entity"
	domainerrors "scubakeep/internal/domain/errors"
	"scubakeep/internal/domain/repository"
	"scubakeep/internal/domain/service"
	"scubakeep/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	diverRepo    repository.DiverRepository
	diverUsecase usecase.DiverUsecase
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	DiverRepo    repository.DiverRepository
	DiverUsecase usecase.DiverUsecase
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		diverRepo:    params.DiverRepo,
		diverUsecase: params.DiverUsecase,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new diver account. Registration and the authenticated
// diver-create operation share the same rules, so this delegates to the
// diver usecase.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting diver registration", slog.String("username", input.Username))

	output, err := srv.diverUsecase.CreateDiver(ctx, input)
	if err != nil {
		return nil, errors.Wrap(err, "failed to register diver")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("diverID", output.Diver.ID))

	return &usecase.RegisterOutput{Diver: output.Diver}, nil
}

// IssueToken authenticates a diver by username or email and issues an access
// token. An unknown identifier and a wrong password produce the identical
// error so the response never reveals whether the account exists.
func (srv *authService) IssueToken(ctx context.Context, input *usecase.TokenInput) (*usecase.TokenOutput, error) {
	srv.log(ctx).Debug("Starting token issuance", slog.String("identifier", input.Identifier))

	diver, err := srv.resolveDiver(ctx, input.Identifier)
	if err != nil {
		srv.log(ctx).Warn("Token issuance failed", slog.String("identifier", input.Identifier), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "token issuance failed")
	}

	// Check password outside any transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, diver.PasswordHash) {
		srv.log(ctx).Warn("Token issuance failed", slog.String("identifier", input.Identifier))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "token issuance failed")
	}

	token, err := srv.tokenService.Issue(diver.ID, diver.Username, diver.Role)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token", slog.Any("diverID", diver.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue token")
	}

	srv.log(ctx).Debug("Token issued", slog.Any("diverID", diver.ID))

	return &usecase.TokenOutput{Token: token}, nil
}

// resolveDiver looks the identifier up as a username first, then as an email.
func (srv *authService) resolveDiver(ctx context.Context, identifier string) (*entity.Diver, error) {
	diver, err := srv.diverRepo.FindByUsername(ctx, identifier)
	if err == nil {
		return diver, nil
	}
	if !errors.Is(err, repository.ErrDiverNotFound) {
		return nil, errors.Wrap(err, "failed to find diver by username")
	}

	diver, err = srv.diverRepo.FindByEmail(ctx, identifier)
	if err != nil {
		if errors.Is(err, repository.ErrDiverNotFound) {
			return nil, repository.ErrDiverNotFound
		}

		return nil, errors.Wrap(err, "failed to find diver by email")
	}

	return diver, nil
}
