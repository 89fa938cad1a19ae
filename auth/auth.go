package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/a-h/respond"
)

// Anonymous is the user assigned to requests when no API keys are configured.
const Anonymous = "anonymous"

// New returns middleware that maps the Authorization header to a user. If
// apiKeyToUserName is empty, every request is allowed as Anonymous.
func New(apiKeyToUserName map[string]string, next http.Handler) *Auth {
	return &Auth{
		Next:             next,
		APIKeyToUserName: apiKeyToUserName,
	}
}

type Auth struct {
	Next             http.Handler
	APIKeyToUserName map[string]string
}

// LoadFromFile reads a JSON map of API keys to user names. An empty name
// disables authentication.
func LoadFromFile(name string) (apiKeyToUserName map[string]string, err error) {
	if name == "" {
		return nil, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open API keys file: %w", err)
	}
	defer f.Close()
	m := make(map[string]string)
	if err = json.NewDecoder(f).Decode(&m); err != nil {
		return nil, fmt.Errorf("failed to decode API keys file: %w", err)
	}
	return m, nil
}

type userContextKey int

const userKey userContextKey = 0

func GetUser(r *http.Request) (user string, ok bool) {
	user, ok = r.Context().Value(userKey).(string)
	return
}

func (a *Auth) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	user := Anonymous
	if len(a.APIKeyToUserName) > 0 {
		var ok bool
		user, ok = a.APIKeyToUserName[strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")]
		if !ok {
			respond.WithError(w, "unauthorized", http.StatusUnauthorized)
			return
		}
	}
	r = r.WithContext(context.WithValue(r.Context(), userKey, user))
	a.Next.ServeHTTP(w, r)
}
