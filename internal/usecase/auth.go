package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	domainErrors "github.com/polkiloo/encomendas/internal/domain/errors"
	"github.com/polkiloo/encomendas/internal/domain/model"
	"github.com/polkiloo/encomendas/internal/domain/repository"
	pkgAuth "github.com/polkiloo/encomendas/internal/pkg/auth"
	"github.com/polkiloo/encomendas/internal/session"
)

// AuthUseCase handles user lifecycle and token management.
type AuthUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.Strategy
	audit  repository.AuditLog
	logger *slog.Logger
	domain string
}

// NewAuthUseCase constructs AuthUseCase. domain is appended to usernames without "@".
func NewAuthUseCase(
	users repository.UserRepository,
	hasher pkgAuth.PasswordHasher,
	strategy pkgAuth.Strategy,
	audit repository.AuditLog,
	logger *slog.Logger,
	domain string,
) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: strategy, audit: audit, logger: logger, domain: domain}
}

// SignUp creates a user and signs them in.
func (u *AuthUseCase) SignUp(ctx context.Context, in model.Registration) (model.Identity, string, error) {
	fullName := strings.TrimSpace(in.FullName)
	email := NormalizeUsername(in.Username, u.domain)
	if fullName == "" || email == "" || in.Password == "" || in.Confirmation == "" {
		return model.Identity{}, "", domainErrors.ErrInvalidCredentials
	}
	if in.Password != in.Confirmation {
		return model.Identity{}, "", domainErrors.ErrPasswordMismatch
	}

	hash, err := u.hasher.Hash(in.Password)
	if err != nil {
		return model.Identity{}, "", err
	}

	usr, err := u.users.Create(ctx, email, fullName, hash)
	if err != nil {
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			return model.Identity{}, "", domainErrors.ErrAlreadyExists
		}
		return model.Identity{}, "", err
	}

	return u.issue(ctx, "register", usr)
}

// SignIn validates credentials and returns the identity with its token.
func (u *AuthUseCase) SignIn(ctx context.Context, username, password string) (model.Identity, string, error) {
	email := NormalizeUsername(username, u.domain)
	if email == "" || password == "" {
		return model.Identity{}, "", domainErrors.ErrCredentialsRequired
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return model.Identity{}, "", domainErrors.ErrInvalidCredentials
		}
		return model.Identity{}, "", err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return model.Identity{}, "", domainErrors.ErrInvalidCredentials
	}

	return u.issue(ctx, "login", usr)
}

// SignOut records the logout of the identity in ctx. Tokens are stateless, so the
// caller drops its copy.
func (u *AuthUseCase) SignOut(ctx context.Context) error {
	identity, ok := session.IdentityFrom(ctx)
	if !ok {
		return nil
	}
	u.record(ctx, "logout", identity)
	return nil
}

// ParseToken resolves the identity carried by token.
func (u *AuthUseCase) ParseToken(token string) (model.Identity, error) {
	if token == "" {
		return model.Identity{}, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// CurrentUser returns the identity attached to ctx, if any.
func (u *AuthUseCase) CurrentUser(ctx context.Context) (model.Identity, bool) {
	return session.IdentityFrom(ctx)
}

// RequireAuth returns the identity attached to ctx or ErrUnauthenticated.
func (u *AuthUseCase) RequireAuth(ctx context.Context) (model.Identity, error) {
	identity, ok := session.IdentityFrom(ctx)
	if !ok {
		return model.Identity{}, domainErrors.ErrUnauthenticated
	}
	return identity, nil
}

// GetByID fetches user by identifier.
func (u *AuthUseCase) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}

func (u *AuthUseCase) issue(ctx context.Context, action string, usr *model.User) (model.Identity, string, error) {
	identity := model.IdentityOf(usr)
	token, err := u.tokens.IssueToken(identity)
	if err != nil {
		return model.Identity{}, "", err
	}
	u.record(ctx, action, identity)
	return identity, token, nil
}

func (u *AuthUseCase) record(ctx context.Context, action string, identity model.Identity) {
	if u.audit == nil {
		return
	}
	if err := u.audit.Append(ctx, action, map[string]any{"userId": identity.UserID, "email": identity.Email}); err != nil && u.logger != nil {
		u.logger.Warn("audit append failed", slog.String("action", action), slog.Any("error", err))
	}
}
