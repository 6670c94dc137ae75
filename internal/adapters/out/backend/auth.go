package backend

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/session"
	"logistics/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

// tokenClaims mirrors what the backend signs into its access tokens.
type tokenClaims struct {
	UserID uint64 `json:"uid"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Authenticate posts credentials to /api/login and decodes the returned token.
func (c *Client) Authenticate(ctx context.Context, email, password string) (session.Identity, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/api/login", nil, "", credentialsDTO{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return session.Identity{}, err
	}

	var resp loginResponseDTO
	if err = c.do("login", req, &resp); err != nil {
		return session.Identity{}, err
	}
	if resp.Token == "" {
		return session.Identity{}, fmt.Errorf("login: %w", errs.NewValueIsRequiredError("token"))
	}

	identity, err := c.parseToken(resp.Token)
	if err != nil {
		return session.Identity{}, err
	}
	identity.Email = strings.TrimSpace(email)
	return identity, nil
}

// Register creates a client account through /api/users.
func (c *Client) Register(ctx context.Context, email, password string) error {
	req, err := c.newRequest(ctx, http.MethodPost, "/api/users", nil, "", credentialsDTO{
		Email:    email,
		Password: password,
		Role:     session.RoleClient.String(),
	})
	if err != nil {
		return err
	}
	return c.do("register", req, nil)
}

// parseToken reads uid, role and exp from the token. Without a configured secret the
// signature is not checked and the backend stays the only authority on validity.
func (c *Client) parseToken(raw string) (session.Identity, error) {
	claims := &tokenClaims{}

	if len(c.jwtSecret) == 0 {
		if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
			return session.Identity{}, errs.NewValueIsInvalidErrorWithCause("token", err)
		}
	} else {
		_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
			return c.jwtSecret, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil {
			return session.Identity{}, errs.NewValueIsInvalidErrorWithCause("token", err)
		}
	}

	role, err := session.ParseRole(claims.Role)
	if err != nil {
		return session.Identity{}, err
	}

	identity := session.Identity{
		Token:  raw,
		UserID: kernel.ID(claims.UserID),
		Role:   role,
	}
	if claims.ExpiresAt != nil {
		identity.ExpiresAt = claims.ExpiresAt.Time
	}
	return identity, nil
}
