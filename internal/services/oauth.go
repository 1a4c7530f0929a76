package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"eventhub/internal/domain"
)

// oauthPasswordHash is the placeholder stored for accounts created via OAuth.
// It never matches a bcrypt comparison, so password login stays disabled for
// these accounts until a password is explicitly set.
const oauthPasswordHash = "oauth_password"

type oauthService struct {
	providers      map[string]domain.IdentityProvider
	userRepo       domain.UserRepository
	socialAuthRepo domain.SocialAuthRepository
	tokenIssuer    domain.TokenIssuer
	tokenExpiry    time.Duration
}

// NewOAuthService creates an OAuthService over the given identity providers,
// keyed by provider name (e.g. "google", "facebook").
func NewOAuthService(
	providers map[string]domain.IdentityProvider,
	userRepo domain.UserRepository,
	socialAuthRepo domain.SocialAuthRepository,
	tokenIssuer domain.TokenIssuer,
	tokenExpiry time.Duration,
) domain.OAuthService {
	return &oauthService{
		providers:      providers,
		userRepo:       userRepo,
		socialAuthRepo: socialAuthRepo,
		tokenIssuer:    tokenIssuer,
		tokenExpiry:    tokenExpiry,
	}
}

func (s *oauthService) Authenticate(ctx context.Context, provider, accessToken, role, platform string) (*domain.OAuthResult, error) {
	idp, ok := s.providers[provider]
	if !ok {
		return nil, fmt.Errorf("%w: unknown provider %q", domain.ErrInvalidInput, provider)
	}
	info, err := idp.UserInfo(ctx, accessToken, platform)
	if err != nil {
		return nil, fmt.Errorf("verify %s token: %w", provider, err)
	}
	if role == "" {
		role = defaultRole
	}

	user, created, err := s.findOrCreateUser(ctx, info, role)
	if err != nil {
		return nil, err
	}

	token, err := s.tokenIssuer.Issue(user.ID, user.Email, user.Role, s.tokenExpiry)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &domain.OAuthResult{User: user, Token: token, Created: created}, nil
}

// findOrCreateUser resolves the provider identity to a local user: an existing
// (provider, provider_id) link wins, then a user with the same email, then a
// fresh account. The identity link row is ensured in the latter two cases.
func (s *oauthService) findOrCreateUser(ctx context.Context, info *domain.OAuthUserInfo, role string) (*domain.User, bool, error) {
	userID, err := s.socialAuthRepo.GetUserID(ctx, info.Provider, info.ProviderID)
	if err == nil {
		user, err := s.userRepo.GetByID(ctx, userID)
		if err != nil {
			return nil, false, fmt.Errorf("get linked user: %w", err)
		}
		return user, false, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, false, fmt.Errorf("get social auth link: %w", err)
	}

	user, err := s.userRepo.GetByEmail(ctx, info.Email)
	created := false
	if errors.Is(err, domain.ErrNotFound) {
		user, err = s.createUserFromIdentity(ctx, info, role)
		if err != nil {
			return nil, false, err
		}
		created = true
	} else if err != nil {
		return nil, false, fmt.Errorf("get user by email: %w", err)
	}

	if err := s.socialAuthRepo.CreateLink(ctx, user.ID, info.Provider, info.ProviderID); err != nil {
		return nil, false, fmt.Errorf("create social auth link: %w", err)
	}
	return user, created, nil
}

func (s *oauthService) createUserFromIdentity(ctx context.Context, info *domain.OAuthUserInfo, role string) (*domain.User, error) {
	// Derive a unique username from the email local part.
	base := info.Email
	if i := strings.Index(base, "@"); i > 0 {
		base = base[:i]
	}
	username := base
	for counter := 1; ; counter++ {
		exists, err := s.userRepo.UsernameExists(ctx, username)
		if err != nil {
			return nil, fmt.Errorf("check username: %w", err)
		}
		if !exists {
			break
		}
		username = fmt.Sprintf("%s%d", base, counter)
	}

	user := domain.NewUser(username, info.Email, info.Name, role, time.Now())
	if err := s.userRepo.Create(ctx, user, oauthPasswordHash, ""); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}
