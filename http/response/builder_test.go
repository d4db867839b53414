package response

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCommonHeaders(t *testing.T) {
	r, err := http.NewRequest("GET", "/", nil)
	if err != nil {
		t.Fatal(err)
	}

	w := httptest.NewRecorder()
	New(w, r).Write()
	resp := w.Result()

	headers := map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "DENY",
	}

	for header, expected := range headers {
		actual := resp.Header.Get(header)
		if actual != expected {
			t.Fatalf(`Unexpected header value for %q, got %q instead of %q`, header, actual, expected)
		}
	}
}

func TestBuilderOverridesStatusAndBody(t *testing.T) {
	r, err := http.NewRequest("GET", "/", nil)
	if err != nil {
		t.Fatal(err)
	}

	w := httptest.NewRecorder()
	New(w, r).
		WithStatus(http.StatusTeapot).
		WithHeader("Content-Type", "text/plain").
		WithBody([]byte("hello")).
		Write()
	resp := w.Result()

	if resp.StatusCode != http.StatusTeapot {
		t.Fatalf(`Unexpected status code, got %d instead of %d`, resp.StatusCode, http.StatusTeapot)
	}
	if w.Body.String() != "hello" {
		t.Fatalf(`Unexpected body, got %q`, w.Body.String())
	}
	if resp.Header.Get("Content-Type") != "text/plain" {
		t.Fatalf(`Unexpected content type %q`, resp.Header.Get("Content-Type"))
	}
}
