// Package ads runs GAQL queries against the Google Ads API searchStream
// endpoint and streams the rows back.
package ads

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/bawdo/gaql/results"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const (
	// DefaultEndpoint is the public Google Ads API host.
	DefaultEndpoint = "https://googleads.googleapis.com"
	// DefaultVersion is the API version used when none is configured.
	DefaultVersion = "v21"

	adwordsScope = "https://www.googleapis.com/auth/adwords"
)

// Credentials are the OAuth2 installed-app credentials of the caller.
type Credentials struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
	// TokenURL overrides Google's token endpoint.
	TokenURL string
}

// Client queries one customer account.
type Client struct {
	endpoint        string
	version         string
	customerID      string
	loginCustomerID string
	developerToken  string
	httpClient      *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithEndpoint points the client at a different API host.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) { c.endpoint = strings.TrimRight(endpoint, "/") }
}

// WithVersion selects the API version, e.g. "v21".
func WithVersion(version string) Option {
	return func(c *Client) {
		if version != "" {
			c.version = version
		}
	}
}

// WithLoginCustomerID sets the manager account used to access the customer.
func WithLoginCustomerID(id string) Option {
	return func(c *Client) { c.loginCustomerID = normalizeCustomerID(id) }
}

// WithHTTPClient replaces the OAuth2 transport, for example in tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates a Client for customerID. Access tokens are minted from
// the refresh token on demand; ctx is used for those token requests.
func NewClient(ctx context.Context, customerID, developerToken string, creds Credentials, opts ...Option) *Client {
	endpoint := google.Endpoint
	if creds.TokenURL != "" {
		endpoint.TokenURL = creds.TokenURL
	}
	conf := &oauth2.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		Endpoint:     endpoint,
		Scopes:       []string{adwordsScope},
	}
	c := &Client{
		endpoint:       DefaultEndpoint,
		version:        DefaultVersion,
		customerID:     normalizeCustomerID(customerID),
		developerToken: developerToken,
		httpClient:     conf.Client(ctx, &oauth2.Token{RefreshToken: creds.RefreshToken}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Version reports the API version in use.
func (c *Client) Version() string { return c.version }

// CustomerID reports the customer the client queries.
func (c *Client) CustomerID() string { return c.customerID }

// normalizeCustomerID strips the dashes the Ads UI shows in customer IDs.
func normalizeCustomerID(id string) string {
	return strings.ReplaceAll(strings.TrimSpace(id), "-", "")
}

func (c *Client) searchStreamURL() string {
	return fmt.Sprintf("%s/%s/customers/%s/googleAds:searchStream", c.endpoint, c.version, c.customerID)
}

type searchRequest struct {
	Query string `json:"query"`
}

// searchStream posts the query and returns the open response body. Non-200
// responses are turned into a *QueryError.
func (c *Client) searchStream(ctx context.Context, gaql string) (io.ReadCloser, error) {
	data, err := json.Marshal(searchRequest{Query: gaql})
	if err != nil {
		return nil, fmt.Errorf("ads: failed to marshal search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.searchStreamURL(), bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("ads: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("developer-token", c.developerToken)
	if c.loginCustomerID != "" {
		req.Header.Set("login-customer-id", c.loginCustomerID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ads: search request failed: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		defer func() { _ = resp.Body.Close() }()
		body, _ := io.ReadAll(resp.Body)
		return nil, parseErrorBody(resp.StatusCode, body)
	}
	return resp.Body, nil
}

// Query runs gaql and streams its rows. Rows are decoded one batch at a
// time, so large reports never sit in memory as a whole. Breaking out of
// the loop closes the response.
func (c *Client) Query(ctx context.Context, gaql string) results.Seq {
	return func(yield func(results.Row, error) bool) {
		body, err := c.searchStream(ctx, gaql)
		if err != nil {
			yield(results.Row{}, err)
			return
		}
		defer func() { _ = body.Close() }()

		dec := json.NewDecoder(body)
		dec.UseNumber()
		if err := expectDelim(dec, '['); err != nil {
			yield(results.Row{}, err)
			return
		}
		for dec.More() {
			var batch streamBatch
			if err := dec.Decode(&batch); err != nil {
				yield(results.Row{}, fmt.Errorf("ads: decode stream: %w", err))
				return
			}
			if batch.Error != nil {
				yield(results.Row{}, batch.Error.queryError(http.StatusOK))
				return
			}
			paths := splitFieldMask(batch.FieldMask)
			for _, raw := range batch.Results {
				if !yield(flatten(raw, paths), nil) {
					return
				}
			}
		}
	}
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("ads: decode stream: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("ads: decode stream: expected %q, got %v", want, tok)
	}
	return nil
}
