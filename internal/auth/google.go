package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"golang.org/x/oauth2"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// GoogleProfile is the subset of the Google userinfo payload we need.
type GoogleProfile struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
}

// GoogleVerifier resolves a Google OAuth access token to the profile it
// belongs to.
type GoogleVerifier interface {
	Verify(ctx context.Context, accessToken string) (GoogleProfile, error)
}

// GoogleUserInfoVerifier verifies access tokens against the Google
// userinfo endpoint.
type GoogleUserInfoVerifier struct {
	endpoint string
}

// GoogleVerifierOption configures GoogleUserInfoVerifier.
type GoogleVerifierOption func(*GoogleUserInfoVerifier)

// WithGoogleEndpoint overrides the userinfo endpoint. Used in tests.
func WithGoogleEndpoint(endpoint string) GoogleVerifierOption {
	return func(v *GoogleUserInfoVerifier) {
		if endpoint != "" {
			v.endpoint = endpoint
		}
	}
}

// NewGoogleVerifier returns a verifier backed by the live Google API.
func NewGoogleVerifier(opts ...GoogleVerifierOption) *GoogleUserInfoVerifier {
	v := &GoogleUserInfoVerifier{endpoint: googleUserInfoURL}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Verify fetches the userinfo profile with the access token. Any provider
// rejection surfaces as ErrProviderTokenInvalid.
func (v *GoogleUserInfoVerifier) Verify(ctx context.Context, accessToken string) (GoogleProfile, error) {
	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken}))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.endpoint, nil)
	if err != nil {
		return GoogleProfile{}, errors.Join(ErrProviderTokenInvalid, err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return GoogleProfile{}, errors.Join(ErrProviderTokenInvalid, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return GoogleProfile{}, ErrProviderTokenInvalid
	}

	var profile GoogleProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return GoogleProfile{}, errors.Join(ErrProviderTokenInvalid, err)
	}
	if profile.Email == "" {
		return GoogleProfile{}, ErrProviderTokenInvalid
	}
	return profile, nil
}
