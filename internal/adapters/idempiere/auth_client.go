package idempiere

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/SscSPs/gl_gateway/internal/apperrors"
	portsrepo "github.com/SscSPs/gl_gateway/internal/core/ports/repositories"
)

// TokenIssuer logs users in through auth/tokens.
type TokenIssuer struct {
	client *Client
}

func newTokenIssuer(client *Client) *TokenIssuer {
	return &TokenIssuer{client: client}
}

var _ portsrepo.TokenIssuer = (*TokenIssuer)(nil)

type tokenRequest struct {
	UserName string `json:"userName"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

func (t *TokenIssuer) IssueToken(ctx context.Context, userName, password string) (string, error) {
	var out tokenResponse
	err := t.client.do(ctx, http.MethodPost, authTokens, nil, tokenRequest{UserName: userName, Password: password}, &out, false)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized {
			return "", fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
		}
		return "", err
	}
	if out.Token == "" {
		return "", fmt.Errorf("%w: empty token in ERP answer", apperrors.ErrTransport)
	}
	return out.Token, nil
}
