package v1

import (
	"net/http"
	"strings"
)

var authenticationAllowlist = map[string]bool{
	"/api/v1/signup":        true,
	"/api/v1/signin":        true,
	"/api/v1/books":         true,
	"/api/v1/genres":        true,
	"/api/v1/catalog/stats": true,
}

// isUnauthorizeAllowed returns whether the request is exempted from
// authentication. Reading a single book is public, mutating one is not,
// so the /book/ prefix is only open for GET.
func isUnauthorizeAllowed(method, path string) bool {
	if authenticationAllowlist[path] {
		return true
	}
	if method == http.MethodGet && strings.HasPrefix(path, "/api/v1/book/") {
		return true
	}
	return false
}

var adminOnlyExact = map[string]bool{
	"POST /api/v1/book":           true,
	"POST /api/v1/catalog/import": true,
	"GET /api/v1/catalog/export":  true,
	"POST /api/v1/catalog/reset":  true,
	"GET /api/v1/users":           true,
}

// isOnlyForAdminAllowed returns true if the request may only be made by
// an admin.
func isOnlyForAdminAllowed(method, path string) bool {
	if adminOnlyExact[method+" "+path] {
		return true
	}
	if (method == http.MethodPut || method == http.MethodDelete) && strings.HasPrefix(path, "/api/v1/book/") {
		return true
	}
	return false
}
