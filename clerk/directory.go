package clerk

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/oauth2"

	"github.com/Saluana/or3-provider-clerk/sdk/httputil"
	"github.com/Saluana/or3-provider-clerk/sdk/id"
)

// DefaultBaseURL is the public Clerk backend API.
const DefaultBaseURL = "https://api.clerk.com"

// EmailAddress is one email record from a Clerk user profile.
type EmailAddress struct {
	ID           string `json:"id"`
	EmailAddress string `json:"email_address"`
}

// User is the enriched profile returned by the vendor's user store.
type User struct {
	ID                    string         `json:"id"`
	FirstName             string         `json:"first_name"`
	Username              string         `json:"username"`
	PrimaryEmailAddressID string         `json:"primary_email_address_id"`
	EmailAddresses        []EmailAddress `json:"email_addresses"`
}

// PrimaryEmail locates the user's primary email by matching the primary
// email identifier against the email records. found is false when there is
// no match or the matched address is empty.
func (u *User) PrimaryEmail() (email string, found bool) {
	if u == nil {
		return "", false
	}
	for _, e := range u.EmailAddresses {
		if e.ID == u.PrimaryEmailAddressID && e.EmailAddress != "" {
			return e.EmailAddress, true
		}
	}
	return "", false
}

// BackendDirectory is a Directory backed by Clerk's backend API. Requests
// carry the secret key as a bearer token and a correlation id for log
// matching against vendor-side request logs.
type BackendDirectory struct {
	baseURL string
	client  *http.Client
	logger  hclog.Logger
}

// NewBackendDirectory creates a directory client authenticated with the
// Clerk secret key.
// Supported options: WithLogger, WithBaseURL, WithHTTPClient, WithProviderCA
func NewBackendDirectory(secret SecretKey, opt ...Option) (*BackendDirectory, error) {
	const op = "clerk.NewBackendDirectory"
	if secret == "" {
		return nil, fmt.Errorf("%s: missing secret key: %w", op, ErrInvalidParameter)
	}
	opts := getDirectoryOpts(opt...)

	baseURL := opts.withBaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("%s: base URL %q is invalid: %w", op, baseURL, err)
	}

	base := opts.withHTTPClient
	if base == nil {
		var err error
		base, err = httputil.NewClient(opts.withProviderCA)
		if err != nil {
			return nil, fmt.Errorf("%s: could not get an http client: %w", op, err)
		}
	}

	// Bearer auth is layered on the transport; per-call code never sees
	// the secret key.
	authCtx := context.WithValue(context.Background(), oauth2.HTTPClient, base)
	ts := oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: string(secret),
		TokenType:   "Bearer",
	})

	return &BackendDirectory{
		baseURL: baseURL,
		client:  oauth2.NewClient(authCtx, ts),
		logger:  opts.withLogger,
	}, nil
}

// GetUser fetches the user's enriched profile. All transport, status and
// decode failures wrap ErrProfileFetch; response bodies are never included
// in errors.
func (d *BackendDirectory) GetUser(ctx context.Context, userID string) (*User, error) {
	const op = "clerk.(BackendDirectory).GetUser"
	if userID == "" {
		return nil, fmt.Errorf("%s: missing user id: %w", op, ErrInvalidParameter)
	}

	endpoint := fmt.Sprintf("%s/v1/users/%s", d.baseURL, url.PathEscape(userID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: building request: %w", op, err)
	}
	reqID, err := id.New("req")
	if err == nil {
		req.Header.Set("X-Request-Id", reqID)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: user %q: %v: %w", op, userID, err, ErrProfileFetch)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: user %q: %s: %w", op, userID, resp.Status, ErrProfileFetch)
	}

	var u User
	if err := json.NewDecoder(resp.Body).Decode(&u); err != nil {
		return nil, fmt.Errorf("%s: decoding user %q: %v: %w", op, userID, err, ErrProfileFetch)
	}
	d.logger.Debug("fetched user profile", "user_id", userID, "request_id", reqID)
	return &u, nil
}
