package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"collabnex/cli/internal/apierr"
)

type staticTokens string

func (s staticTokens) Token() string { return string(s) }

func TestCall_AttachesBearerWhenPresent(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if r.Header.Get("X-Request-ID") == "" {
			t.Error("missing X-Request-ID header")
		}
		w.Write([]byte(`{"data":{"ok":true}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, staticTokens("tok123"), nil)
	if _, err := c.Get(context.Background(), "/events"); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if gotAuth != "Bearer tok123" {
		t.Errorf("Authorization = %q; want %q", gotAuth, "Bearer tok123")
	}
}

func TestCall_UnauthenticatedWhenNoToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := New(srv.URL, staticTokens(""), nil)
	if _, err := c.Post(context.Background(), "/auth/register", map[string]string{"email": "a@b.co"}); err != nil {
		t.Fatalf("Post failed: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("Authorization = %q; want empty", gotAuth)
	}
}

func TestCall_StatusClassification(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		kind   apierr.Kind
		msg    string
	}{
		{"unauthorized", 401, `{"message":"token expired"}`, apierr.Unauthorized, "token expired"},
		{"not found", 404, ``, apierr.NotFound, "Not Found"},
		{"conflict", 409, `{"message":"Email already registered"}`, apierr.Conflict, "Email already registered"},
		{"bad request", 400, `{"error":"title required"}`, apierr.ValidationFailed, "title required"},
		{"unprocessable", 422, `{"message":"invalid payload"}`, apierr.ValidationFailed, "invalid payload"},
		{"server error", 500, `boom`, apierr.ServerError, "boom"},
		{"bad gateway", 502, ``, apierr.ServerError, "Bad Gateway"},
		{"teapot is unknown", 418, ``, apierr.Unknown, "I'm a teapot"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := New(srv.URL, staticTokens(""), nil)
			_, err := c.Get(context.Background(), "/x")
			if err == nil {
				t.Fatal("expected error")
			}
			if got := apierr.KindOf(err); got != tt.kind {
				t.Errorf("kind = %v; want %v", got, tt.kind)
			}
			if got := apierr.MessageOf(err); got != tt.msg {
				t.Errorf("message = %q; want %q", got, tt.msg)
			}
		})
	}
}

func TestCall_NetworkErrorIsUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := New(srv.URL, staticTokens(""), nil)
	_, err := c.Get(context.Background(), "/events")
	if got := apierr.KindOf(err); got != apierr.NetworkUnreachable {
		t.Errorf("kind = %v; want %v", got, apierr.NetworkUnreachable)
	}
}

func TestParseBody_EnvelopeVariants(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantBody string
		wantMsg  string
	}{
		{"bare payload", `{"title":"x"}`, `{"title":"x"}`, ""},
		{"single envelope", `{"data":{"token":"t"}}`, `{"token":"t"}`, ""},
		{"double envelope", `{"data":{"data":{"token":"t"}}}`, `{"token":"t"}`, ""},
		{"message only", `{"message":"created"}`, `{"message":"created"}`, "created"},
		{"plain text", `oops`, ``, "oops"},
		{"empty", ``, ``, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := parseBody([]byte(tt.raw))
			if string(out.Body) != tt.wantBody {
				t.Errorf("Body = %s; want %s", out.Body, tt.wantBody)
			}
			if out.Message != tt.wantMsg {
				t.Errorf("Message = %q; want %q", out.Message, tt.wantMsg)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"accessToken":"a1","refreshToken":"r1"}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, staticTokens(""), nil)
	resp, err := c.Post(context.Background(), "/auth/login", map[string]string{})
	if err != nil {
		t.Fatalf("Post failed: %v", err)
	}

	var out struct {
		AccessToken  string `json:"accessToken"`
		RefreshToken string `json:"refreshToken"`
	}
	if err := resp.Decode(&out); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if out.AccessToken != "a1" || out.RefreshToken != "r1" {
		t.Errorf("decoded = %+v; want tokens a1/r1", out)
	}
}
