package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"eventhub/internal/domain"
)

const (
	googleTokenInfoURL = "https://www.googleapis.com/oauth2/v3/tokeninfo"
	googleUserInfoURL  = "https://www.googleapis.com/oauth2/v3/userinfo"
)

type googleProvider struct {
	client          *http.Client
	androidClientID string
}

// NewGoogleProvider returns an IdentityProvider that verifies Google access
// tokens. androidClientID is the expected audience for tokens issued to the
// Android app; web tokens are verified against the userinfo endpoint directly.
func NewGoogleProvider(client *http.Client, androidClientID string) domain.IdentityProvider {
	if client == nil {
		client = http.DefaultClient
	}
	return &googleProvider{client: client, androidClientID: androidClientID}
}

type googleUserInfo struct {
	Sub           string `json:"sub"`
	Email         string `json:"email"`
	Name          string `json:"name"`
	EmailVerified bool   `json:"email_verified"`
}

type googleTokenInfo struct {
	Aud string `json:"aud"`
}

func (p *googleProvider) UserInfo(ctx context.Context, accessToken, platform string) (*domain.OAuthUserInfo, error) {
	// Android tokens carry an audience tied to the app; check it before
	// trusting the token for user info.
	if platform == "android" {
		info, err := p.tokenInfo(ctx, accessToken)
		if err != nil {
			return nil, err
		}
		if info.Aud != p.androidClientID {
			return nil, fmt.Errorf("token not intended for this app")
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, googleUserInfoURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch google userinfo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("google api returned status: %d", resp.StatusCode)
	}

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode google response: %w", err)
	}
	return &domain.OAuthUserInfo{
		Provider:   domain.ProviderGoogle,
		ProviderID: info.Sub,
		Email:      info.Email,
		Name:       info.Name,
	}, nil
}

func (p *googleProvider) tokenInfo(ctx context.Context, accessToken string) (*googleTokenInfo, error) {
	u := googleTokenInfoURL + "?access_token=" + url.QueryEscape(accessToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch google tokeninfo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("invalid google access token: status %d", resp.StatusCode)
	}

	var info googleTokenInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode tokeninfo response: %w", err)
	}
	return &info, nil
}
