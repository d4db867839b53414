package v1

import (
	"net/http"
	"testing"
)

func TestIsUnauthorizeAllowed(t *testing.T) {
	public := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/v1/signup"},
		{http.MethodPost, "/api/v1/signin"},
		{http.MethodGet, "/api/v1/books"},
		{http.MethodGet, "/api/v1/genres"},
		{http.MethodGet, "/api/v1/catalog/stats"},
		{http.MethodGet, "/api/v1/book/3"},
	}
	for _, tc := range public {
		if !isUnauthorizeAllowed(tc.method, tc.path) {
			t.Errorf("%s %s should be public", tc.method, tc.path)
		}
	}

	protected := []struct {
		method string
		path   string
	}{
		{http.MethodPut, "/api/v1/book/3"},
		{http.MethodDelete, "/api/v1/book/3"},
		{http.MethodPost, "/api/v1/book"},
		{http.MethodGet, "/api/v1/library/1"},
		{http.MethodPost, "/api/v1/recommendations"},
	}
	for _, tc := range protected {
		if isUnauthorizeAllowed(tc.method, tc.path) {
			t.Errorf("%s %s should require authentication", tc.method, tc.path)
		}
	}
}

func TestIsOnlyForAdminAllowed(t *testing.T) {
	admin := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/v1/book"},
		{http.MethodPut, "/api/v1/book/3"},
		{http.MethodDelete, "/api/v1/book/3"},
		{http.MethodPost, "/api/v1/catalog/import"},
		{http.MethodGet, "/api/v1/catalog/export"},
		{http.MethodPost, "/api/v1/catalog/reset"},
		{http.MethodGet, "/api/v1/users"},
	}
	for _, tc := range admin {
		if !isOnlyForAdminAllowed(tc.method, tc.path) {
			t.Errorf("%s %s should be admin only", tc.method, tc.path)
		}
	}

	if isOnlyForAdminAllowed(http.MethodGet, "/api/v1/book/3") {
		t.Error("Reading a book must not be admin only")
	}
	if isOnlyForAdminAllowed(http.MethodGet, "/api/v1/library/1") {
		t.Error("Library access is not admin only")
	}
}
