package request

import (
	"net/http"

	"github.com/bookmate-app/bookmate/model"
)

type ContextKey int

const (
	ClientIPContextKey ContextKey = iota
	UserIDContextKey
	UserNameContextKey
	UserRoleContextKey
)

func getContextStringValue(r *http.Request, key ContextKey) string {
	if v := r.Context().Value(key); v != nil {
		if value, valid := v.(string); valid {
			return value
		}
	}
	return ""
}

func getContextIntValue(r *http.Request, key ContextKey) int {
	if v := r.Context().Value(key); v != nil {
		if value, valid := v.(int); valid {
			return value
		}
	}
	return 0
}

// ClientIP returns the client IP address stored in the context.
func ClientIP(r *http.Request) string {
	return getContextStringValue(r, ClientIPContextKey)
}

// GetUserID returns the authenticated user's id, 0 when anonymous.
func GetUserID(r *http.Request) int {
	return getContextIntValue(r, UserIDContextKey)
}

func GetUsername(r *http.Request) string {
	return getContextStringValue(r, UserNameContextKey)
}

func GetUserRole(r *http.Request) model.Role {
	if v := r.Context().Value(UserRoleContextKey); v != nil {
		if role, valid := v.(model.Role); valid {
			return role
		}
	}
	return ""
}
