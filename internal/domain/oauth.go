package domain

import "context"

// OAuth providers supported for identity linking.
const (
	ProviderGoogle   = "google"
	ProviderFacebook = "facebook"
)

// OAuthUserInfo is the identity returned by a provider for a verified access token.
type OAuthUserInfo struct {
	Provider   string
	ProviderID string
	Email      string
	Name       string
}

// IdentityProvider verifies a provider access token and returns the user's
// identity. platform distinguishes client types where the provider cares
// (e.g. "web" vs "android" for Google); providers that don't may ignore it.
type IdentityProvider interface {
	UserInfo(ctx context.Context, accessToken, platform string) (*OAuthUserInfo, error)
}

// SocialAuthRepository defines storage for provider identity links.
type SocialAuthRepository interface {
	GetUserID(ctx context.Context, provider, providerID string) (int64, error)
	CreateLink(ctx context.Context, userID int64, provider, providerID string) error
}

// OAuthResult is the outcome of an OAuth login: the linked user and a session token.
type OAuthResult struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
	// Created is true when a new user account was created for this identity.
	Created bool `json:"created"`
}

// OAuthService links provider identities to local users.
type OAuthService interface {
	// Authenticate verifies the access token with the provider, finds or
	// creates the local user, ensures the identity link, and issues a session token.
	Authenticate(ctx context.Context, provider, accessToken, role, platform string) (*OAuthResult, error)
}
