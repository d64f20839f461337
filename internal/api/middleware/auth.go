package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/wedding-app/server/internal/api/services"
	"github.com/wedding-app/server/internal/utils"
)

type contextKey string

const claimsKey contextKey = "claims"

// Access is the requirement attached to one resource action.
type Access int

const (
	Privileged Access = iota
	Public
)

const (
	ActionList     = "list"
	ActionRetrieve = "retrieve"
	ActionCreate   = "create"
	ActionUpdate   = "update"
	ActionDelete   = "delete"
	ActionRSVP     = "rsvp"
	ActionReserve  = "reserve"
	ActionUpload   = "upload"
	ActionPresign  = "presign"
)

// Policy maps resource and action to the access it requires. Anything missing
// from the table is privileged.
type Policy map[string]map[string]Access

var DefaultPolicy = Policy{
	"guests": {
		ActionCreate: Public,
		ActionRSVP:   Public,
	},
	"gifts": {
		ActionList:     Public,
		ActionRetrieve: Public,
		ActionReserve:  Public,
	},
	"wishes": {
		ActionCreate: Public,
	},
	"gallery": {
		ActionCreate:   Public,
		ActionList:     Public,
		ActionRetrieve: Public,
		ActionUpload:   Public,
		ActionPresign:  Public,
	},
	"auth": {
		"init":     Public,
		"callback": Public,
	},
	"drive": {
		ActionUpload: Public,
	},
	"token": {
		"obtain":  Public,
		"refresh": Public,
	},
}

func (p Policy) Lookup(resource, action string) Access {
	if actions, ok := p[resource]; ok {
		if access, ok := actions[action]; ok {
			return access
		}
	}
	return Privileged
}

// Authenticator enforces the policy with HS256 bearer tokens.
type Authenticator struct {
	Tokens *services.TokenIssuer
	Policy Policy
}

func NewAuthenticator(tokens *services.TokenIssuer) *Authenticator {
	return &Authenticator{Tokens: tokens, Policy: DefaultPolicy}
}

// Authorize resolves the access for resource/action before next reads anything
// from the request. Privileged actions need a valid staff access token.
func (a *Authenticator) Authorize(resource, action string, next http.Handler) http.Handler {
	if a.Policy.Lookup(resource, action) == Public {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenStr, ok := bearerToken(r)
		if !ok {
			utils.ErrorResponse(w, http.StatusUnauthorized, "Authentication credentials were not provided.")
			return
		}

		claims, err := a.Tokens.Parse(tokenStr, services.AccessToken)
		if err != nil {
			w.Header().Set("WWW-Authenticate", `Bearer realm="api"`)
			utils.ErrorResponse(w, http.StatusUnauthorized, "Given token not valid for any token type")
			return
		}
		if !claims.IsStaff {
			utils.ErrorResponse(w, http.StatusForbidden, "You do not have permission to perform this action.")
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// ClaimsFromContext returns the staff claims of an authorized request.
func ClaimsFromContext(ctx context.Context) (*services.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*services.Claims)
	return claims, ok
}
