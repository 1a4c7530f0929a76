package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"eventhub/internal/domain"
)

const facebookMeURL = "https://graph.facebook.com/me"

type facebookProvider struct {
	client *http.Client
}

// NewFacebookProvider returns an IdentityProvider that verifies Facebook
// access tokens against the Graph API. The platform argument is ignored.
func NewFacebookProvider(client *http.Client) domain.IdentityProvider {
	if client == nil {
		client = http.DefaultClient
	}
	return &facebookProvider{client: client}
}

type facebookUserInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (p *facebookProvider) UserInfo(ctx context.Context, accessToken, _ string) (*domain.OAuthUserInfo, error) {
	q := url.Values{}
	q.Set("fields", "id,name,email")
	q.Set("access_token", accessToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, facebookMeURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch facebook user: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("facebook api returned status: %d", resp.StatusCode)
	}

	var info facebookUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode facebook response: %w", err)
	}

	email := info.Email
	if email == "" {
		// Facebook accounts without an email still need a stable address for
		// the local account.
		email = info.ID + "@facebook.com"
	}
	return &domain.OAuthUserInfo{
		Provider:   domain.ProviderFacebook,
		ProviderID: info.ID,
		Email:      email,
		Name:       info.Name,
	}, nil
}
