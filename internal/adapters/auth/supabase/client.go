package supabase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/pedroolvr19/PetPal-Connect/internal/platform/httpclient"
	"github.com/pedroolvr19/PetPal-Connect/internal/ports/auth"
)

var (
	ErrNotConfigured = errors.New("supabase client not configured")
	ErrUnauthorized  = errors.New("supabase unauthorized")
	ErrUpstream      = errors.New("supabase upstream error")
)

// Config del cliente de auth de Supabase (GoTrue).
// ProjectURL es la URL del proyecto (https://xyz.supabase.co) y AnonKey
// la API key pública que GoTrue exige en el header apikey.
type Config struct {
	ProjectURL string
	AnonKey    string

	Timeout time.Duration
}

type Client struct {
	anonKey string
	http    *httpclient.Client
}

func NewClient(cfg Config) (*Client, error) {
	hc, err := httpclient.NewWithBaseURL(strings.TrimSpace(cfg.ProjectURL), cfg.Timeout)
	if err != nil {
		return nil, err
	}
	return &Client{
		anonKey: strings.TrimSpace(cfg.AnonKey),
		http:    hc,
	}, nil
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.http != nil && c.http.BaseURL != "" && c.anonKey != ""
}

// GetUser resuelve el access token contra GoTrue y devuelve los claims
// del tutor. El nombre cae a "Tutor" si el perfil no lo tiene cargado.
func (c *Client) GetUser(ctx context.Context, accessToken string) (auth.Claims, error) {
	if !c.IsConfigured() {
		return auth.Claims{}, ErrNotConfigured
	}
	accessToken = strings.TrimSpace(accessToken)
	if accessToken == "" {
		return auth.Claims{}, ErrUnauthorized
	}

	var out struct {
		ID           string `json:"id"`
		Email        string `json:"email"`
		UserMetadata struct {
			FullName  string `json:"full_name"`
			AvatarURL string `json:"avatar_url"`
		} `json:"user_metadata"`
	}

	err := c.http.DoJSON(ctx, http.MethodGet, "/auth/v1/user", c.headers(accessToken), nil, &out)
	if err != nil {
		var httpErr *httpclient.HTTPError
		if errors.As(err, &httpErr) {
			if httpErr.StatusCode == http.StatusUnauthorized || httpErr.StatusCode == http.StatusForbidden {
				return auth.Claims{}, ErrUnauthorized
			}
			return auth.Claims{}, fmt.Errorf("%w: status=%d", ErrUpstream, httpErr.StatusCode)
		}
		return auth.Claims{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	out.ID = strings.TrimSpace(out.ID)
	if out.ID == "" {
		return auth.Claims{}, errors.New("supabase response missing user id")
	}

	fullName := strings.TrimSpace(out.UserMetadata.FullName)
	if fullName == "" {
		fullName = "Tutor"
	}

	return auth.Claims{
		UserID:    out.ID,
		Email:     strings.TrimSpace(out.Email),
		FullName:  fullName,
		AvatarURL: strings.TrimSpace(out.UserMetadata.AvatarURL),
	}, nil
}

// SignOut revoca el refresh token de la sesión en GoTrue. Un 401 acá no
// es fatal: la sesión ya estaba muerta.
func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	if !c.IsConfigured() {
		return ErrNotConfigured
	}
	accessToken = strings.TrimSpace(accessToken)
	if accessToken == "" {
		return ErrUnauthorized
	}

	err := c.http.DoJSON(ctx, http.MethodPost, "/auth/v1/logout", c.headers(accessToken), nil, nil)
	if err != nil {
		var httpErr *httpclient.HTTPError
		if errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusUnauthorized {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return nil
}

func (c *Client) headers(accessToken string) map[string]string {
	return map[string]string{
		"apikey":        c.anonKey,
		"Authorization": "Bearer " + accessToken,
	}
}
