package auth

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"streakd/internal/models"
	"streakd/internal/providers"
	"streakd/internal/structures"
)

// ProviderInterface is the passwordless auth backend: it issues
// one-time email codes, exchanges them for sessions and invalidates
// sessions. All errors it returns are *AuthError.
type ProviderInterface interface {
	SendCode(ctx context.Context, email string) error
	VerifyCode(ctx context.Context, email, code string) (models.Session, error)
	SignOut(ctx context.Context, accessToken string) error
}

// HTTPProvider talks to a GoTrue-style REST API.
type HTTPProvider struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
	logger  providers.Logger
}

func NewHTTPProvider(conf *structures.Config, logger providers.Logger) ProviderInterface {
	return &HTTPProvider{
		baseURL: strings.TrimRight(conf.Auth.BaseURL, "/"),
		apiKey:  conf.Auth.APIKey,
		httpc:   &http.Client{Timeout: conf.Auth.Timeout},
		logger:  logger,
	}
}

func (p *HTTPProvider) SendCode(ctx context.Context, email string) error {
	body := map[string]any{
		"email":       email,
		"create_user": true,
	}
	resp, err := p.post(ctx, "/otp", body, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		return p.decodeError(resp)
	}
	return nil
}

func (p *HTTPProvider) VerifyCode(ctx context.Context, email, code string) (models.Session, error) {
	body := map[string]any{
		"type":  "email",
		"email": email,
		"token": code,
	}
	resp, err := p.post(ctx, "/verify", body, "")
	if err != nil {
		return models.Session{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		return models.Session{}, p.decodeError(resp)
	}

	var out struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
		ExpiresIn    int64  `json:"expires_in"`
		User         struct {
			ID    string `json:"id"`
			Email string `json:"email"`
		} `json:"user"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return models.Session{}, newAuthError(resp.StatusCode, "auth service sent an unreadable reply")
	}
	if out.AccessToken == "" {
		return models.Session{}, newAuthError(resp.StatusCode, "auth service sent no session")
	}

	session := models.Session{
		AccessToken:  out.AccessToken,
		RefreshToken: out.RefreshToken,
		UserID:       out.User.ID,
		Email:        out.User.Email,
	}
	if out.ExpiresIn > 0 {
		session.ExpiresAt = time.Now().Add(time.Duration(out.ExpiresIn) * time.Second)
	}
	return session, nil
}

func (p *HTTPProvider) SignOut(ctx context.Context, accessToken string) error {
	resp, err := p.post(ctx, "/logout", nil, accessToken)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		return p.decodeError(resp)
	}
	return nil
}

func (p *HTTPProvider) post(ctx context.Context, path string, body any, bearer string) (*http.Response, error) {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, newAuthError(0, "could not encode auth request")
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, newAuthError(0, "could not build auth request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", p.apiKey)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := p.httpc.Do(req)
	if err != nil {
		p.logger.Errorf(providers.TypeApp, "Auth request to %s failed: %s", path, err)
		return nil, newAuthError(0, "auth service is unreachable, try again later")
	}
	return resp, nil
}

// decodeError extracts the human-readable message GoTrue puts in its
// error bodies, falling back to a generic one per status.
func (p *HTTPProvider) decodeError(resp *http.Response) error {
	var body struct {
		Msg              string `json:"msg"`
		Message          string `json:"message"`
		ErrorDescription string `json:"error_description"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&body)

	message := body.Msg
	if message == "" {
		message = body.Message
	}
	if message == "" {
		message = body.ErrorDescription
	}
	if message == "" {
		message = fmt.Sprintf("auth service replied with status %d", resp.StatusCode)
	}
	return newAuthError(resp.StatusCode, message)
}
