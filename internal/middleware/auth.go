package middleware

import (
	"context"
	"strings"

	"github.com/Doompy/event-reward-system/internal/model"
	"github.com/Doompy/event-reward-system/pkg/authenticator"
	"github.com/Doompy/event-reward-system/pkg/errorx"
	"github.com/Doompy/event-reward-system/pkg/router"
	"github.com/Doompy/event-reward-system/pkg/xcontext"
	"golang.org/x/exp/slices"
)

type AuthVerifier struct {
	tokenEngine authenticator.TokenEngine[model.AccessToken]
	roles       []string
}

func NewAuthVerifier(tokenEngine authenticator.TokenEngine[model.AccessToken]) *AuthVerifier {
	return &AuthVerifier{tokenEngine: tokenEngine}
}

// WithRoles restricts the verifier to tokens carrying one of the given roles.
func (v *AuthVerifier) WithRoles(roles ...string) *AuthVerifier {
	return &AuthVerifier{tokenEngine: v.tokenEngine, roles: roles}
}

func (v *AuthVerifier) Middleware() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		req := xcontext.HTTPRequest(ctx)
		if req == nil {
			return nil, errorx.New(errorx.Unauthenticated, "You need to authenticate before")
		}

		token := ""
		if auth := strings.Split(req.Header.Get("Authorization"), " "); len(auth) == 2 && auth[0] == "Bearer" {
			token = auth[1]
		}

		if token == "" {
			return nil, errorx.New(errorx.Unauthenticated, "You need to authenticate before")
		}

		info, err := v.tokenEngine.Verify(token)
		if err != nil {
			xcontext.Logger(ctx).Debugf("Cannot verify access token: %v", err)
			return nil, errorx.New(errorx.Unauthenticated, "Invalid access token")
		}

		if len(v.roles) > 0 && !slices.Contains(v.roles, info.Role) {
			return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
		}

		return xcontext.WithRequestUserID(ctx, info.ID), nil
	}
}
