package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/Mialde/Micheldekker/internal/common"
)

// Identity is the ambient identity issued by the external auth provider.
// It gates nothing by itself; the credential gate is a separate concern.
type Identity struct {
	UID       string `json:"uid"`
	Anonymous bool   `json:"anonymous"`
}

type Client interface {
	SignInWithCustomToken(ctx context.Context, token string) (*Identity, error)
	SignInAnonymously(ctx context.Context) (*Identity, error)
}

// HTTPClient talks to the auth provider. With no base URL configured it
// mints local anonymous identities so development needs no provider.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client

	mu        sync.Mutex
	listeners []func(*Identity)
}

func NewClient(baseURL string, httpClient *http.Client) *HTTPClient {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HTTPClient{baseURL: trimmed, httpClient: httpClient}
}

type signInRequest struct {
	Token string `json:"token"`
}

type signInResponse struct {
	UID       string `json:"uid"`
	Anonymous bool   `json:"anonymous"`
}

func (c *HTTPClient) SignInWithCustomToken(ctx context.Context, token string) (*Identity, error) {
	if strings.TrimSpace(token) == "" {
		return nil, common.NewError(common.CodeValidation, "custom token is empty", nil)
	}
	if c.baseURL == "" {
		return nil, common.NewError(common.CodeInternal, "custom token sign-in requires an auth provider", nil)
	}
	return c.signIn(ctx, "/v1/sessions", signInRequest{Token: strings.TrimSpace(token)}, false)
}

func (c *HTTPClient) SignInAnonymously(ctx context.Context) (*Identity, error) {
	if c.baseURL == "" {
		id := &Identity{UID: "anon-" + common.NewUUID().String(), Anonymous: true}
		c.emit(id)
		return id, nil
	}
	return c.signIn(ctx, "/v1/sessions/anonymous", signInRequest{}, true)
}

// OnIdentityChanged registers a callback invoked after every successful
// sign-in.
func (c *HTTPClient) OnIdentityChanged(fn func(*Identity)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}

func (c *HTTPClient) signIn(ctx context.Context, path string, payload signInRequest, anonymous bool) (*Identity, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode sign-in request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create sign-in request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send sign-in request: %w", err)
	}
	defer resp.Body.Close()
	payloadBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read sign-in response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, common.NewError(common.CodeUnauthorized, fmt.Sprintf("auth provider rejected sign-in: %s", strings.TrimSpace(string(payloadBytes))), nil)
	}
	var parsed signInResponse
	if err := json.Unmarshal(payloadBytes, &parsed); err != nil {
		return nil, fmt.Errorf("decode sign-in response: %w", err)
	}
	id := &Identity{UID: parsed.UID, Anonymous: parsed.Anonymous || anonymous}
	c.emit(id)
	return id, nil
}

func (c *HTTPClient) emit(id *Identity) {
	c.mu.Lock()
	listeners := append([]func(*Identity){}, c.listeners...)
	c.mu.Unlock()
	for _, fn := range listeners {
		fn(id)
	}
}
