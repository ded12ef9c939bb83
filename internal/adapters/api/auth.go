package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/filmoteca/filmoteca-cli/internal/domain/apperror"
	"github.com/filmoteca/filmoteca-cli/internal/domain/auth"
	"github.com/filmoteca/filmoteca-cli/internal/ports"
)

// AuthGateway performs login and registration. Both endpoints are public;
// errors carry the backend's message when it sends one.
type AuthGateway struct {
	client *Client
}

// NewAuthGateway builds an AuthGateway over the shared client.
func NewAuthGateway(client *Client) *AuthGateway {
	if client == nil {
		panic("api client is required")
	}
	return &AuthGateway{client: client}
}

var _ ports.AuthGateway = (*AuthGateway)(nil)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

type registerRequest struct {
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Password string   `json:"password"`
	Role     []string `json:"role"`
}

// errorBody is the backend's error envelope. Only message is used.
type errorBody struct {
	Message string `json:"message"`
}

func (g *AuthGateway) Login(ctx context.Context, identifier, password string) (ports.LoginResult, error) {
	body := loginRequest{Email: identifier, Password: password}

	resp, err := g.client.send(ctx, http.MethodPost, "/auth/login", body, "login")
	if err != nil {
		return ports.LoginResult{}, apperror.NewAuthError("", apperror.LoginFallbackMessage, err)
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return ports.LoginResult{}, rejectAuth(resp, apperror.LoginFallbackMessage)
	}

	var out loginResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&out); decodeErr != nil {
		return ports.LoginResult{}, apperror.NewAuthError("", apperror.LoginFallbackMessage,
			fmt.Errorf("decode login response: %w", decodeErr))
	}
	if out.Token == "" {
		return ports.LoginResult{}, apperror.NewAuthError("", apperror.LoginFallbackMessage,
			errors.New("login response carried no token"))
	}

	return ports.LoginResult{Token: out.Token, Role: auth.Role(out.Role)}, nil
}

func (g *AuthGateway) Register(ctx context.Context, username, email, password, role string) error {
	body := registerRequest{
		Username: username,
		Email:    email,
		Password: password,
		Role:     []string{auth.NormalizeRegistrationRole(role)},
	}

	resp, err := g.client.send(ctx, http.MethodPost, "/auth/register", body, "register")
	if err != nil {
		return apperror.NewAuthError("", apperror.RegisterFallbackMessage, err)
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return rejectAuth(resp, apperror.RegisterFallbackMessage)
	}
	return nil
}

// rejectAuth extracts the backend message from a non-2xx auth response,
// falling back to the generic localized message.
func rejectAuth(resp *http.Response, fallback string) error {
	var payload errorBody
	_ = json.NewDecoder(resp.Body).Decode(&payload)

	return apperror.NewAuthError(payload.Message, fallback,
		fmt.Errorf("auth endpoint returned status %d", resp.StatusCode))
}
