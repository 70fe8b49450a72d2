package orchid

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ipconfigure/go-orchid/httpclient"
)

// capture records the most recent request seen by the test server.
type capture struct {
	Method     string
	Path       string
	RawQuery   string
	Body       []byte
	AuthHeader string
	BasicUser  string
	BasicPass  string
	HasBasic   bool
	Header     http.Header
}

// newTestServer records requests and replies with status and body, sending
// the given content type when non-empty.
func newTestServer(t *testing.T, status int, contentType, respBody string, rec *capture) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			t.Errorf("read request body: %v", err)
		}
		rec.Method = r.Method
		rec.Path = r.URL.Path
		rec.RawQuery = r.URL.RawQuery
		rec.Body = body
		rec.AuthHeader = r.Header.Get("Authorization")
		rec.BasicUser, rec.BasicPass, rec.HasBasic = r.BasicAuth()
		rec.Header = r.Header.Clone()
		if contentType != "" {
			w.Header().Set("Content-Type", contentType)
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(respBody))
	}))
}

func mustNewClient(t *testing.T, address string, opts ...Option) *Client {
	t.Helper()
	c, err := New(address, opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(c.Close)
	return c
}

func TestClientServicePrefix(t *testing.T) {
	var rec capture
	srv := newTestServer(t, http.StatusOK, "application/json", "[]", &rec)
	defer srv.Close()

	c := mustNewClient(t, srv.URL)
	if _, err := c.GetCameras(context.Background()); err != nil {
		t.Fatalf("GetCameras() error = %v", err)
	}
	if rec.Path != "/service/cameras" {
		t.Errorf("path = %q, want /service/cameras", rec.Path)
	}
}

func TestClientBasicAuthRequest(t *testing.T) {
	var rec capture
	srv := newTestServer(t, http.StatusOK, "application/json", "{}", &rec)
	defer srv.Close()

	c := mustNewClient(t, srv.URL, WithBasicAuth("admin", "pass"))
	if _, err := c.GetCamera(context.Background(), 1); err != nil {
		t.Fatalf("GetCamera() error = %v", err)
	}
	if rec.Method != http.MethodGet {
		t.Errorf("method = %q, want GET", rec.Method)
	}
	if rec.Path != "/service/cameras/1" {
		t.Errorf("path = %q, want /service/cameras/1", rec.Path)
	}
	if len(rec.Body) != 0 {
		t.Errorf("body = %q, want empty", rec.Body)
	}
	if !rec.HasBasic || rec.BasicUser != "admin" || rec.BasicPass != "pass" {
		t.Errorf("basic auth = %q/%q (present=%v)", rec.BasicUser, rec.BasicPass, rec.HasBasic)
	}
}

func TestClientBearerAfterSetToken(t *testing.T) {
	var rec capture
	srv := newTestServer(t, http.StatusOK, "application/json", "{}", &rec)
	defer srv.Close()

	c := mustNewClient(t, srv.URL)
	c.SetBearerToken("abc")

	_, err := c.PatchCamera(context.Background(), 1, map[string]any{"name": "x"})
	if err != nil {
		t.Fatalf("PatchCamera() error = %v", err)
	}
	if rec.Method != http.MethodPatch {
		t.Errorf("method = %q, want PATCH", rec.Method)
	}
	if rec.Path != "/service/cameras/1" {
		t.Errorf("path = %q, want /service/cameras/1", rec.Path)
	}
	if rec.AuthHeader != "Bearer abc" {
		t.Errorf("Authorization = %q, want Bearer abc", rec.AuthHeader)
	}
	var got map[string]any
	if err := json.Unmarshal(rec.Body, &got); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if got["name"] != "x" {
		t.Errorf("body = %v, want name=x", got)
	}
}

func TestClientCredentialPrecedence(t *testing.T) {
	var rec capture
	srv := newTestServer(t, http.StatusOK, "application/json", "{}", &rec)
	defer srv.Close()

	// A username/password pair wins over a credential object.
	c := mustNewClient(t, srv.URL,
		WithAuth(httpclient.BearerAuth("token")),
		WithBasicAuth("admin", "pass"),
	)
	if _, err := c.GetVersion(context.Background()); err != nil {
		t.Fatalf("GetVersion() error = %v", err)
	}
	if !rec.HasBasic || rec.BasicUser != "admin" {
		t.Errorf("expected basic auth to win, Authorization = %q", rec.AuthHeader)
	}
}

func TestClientNoCredential(t *testing.T) {
	var rec capture
	srv := newTestServer(t, http.StatusOK, "application/json", "{}", &rec)
	defer srv.Close()

	c := mustNewClient(t, srv.URL)
	if _, err := c.GetVersion(context.Background()); err != nil {
		t.Fatalf("GetVersion() error = %v", err)
	}
	if rec.AuthHeader != "" {
		t.Errorf("Authorization = %q, want empty", rec.AuthHeader)
	}
}

func TestClientErrorStatusIsValue(t *testing.T) {
	var rec capture
	srv := newTestServer(t, http.StatusUnauthorized, "application/json", `{"error":"unauthorized"}`, &rec)
	defer srv.Close()

	c := mustNewClient(t, srv.URL)
	resp, err := c.GetCameras(context.Background())
	if err != nil {
		t.Fatalf("GetCameras() error = %v, want nil", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
	if !resp.IsError() {
		t.Error("IsError() = false")
	}
}

func TestSessionTokenFlow(t *testing.T) {
	var lastAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lastAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/service/sessions/user":
			_, _ = w.Write([]byte(`{"id":"sess-1","token":"tok-xyz"}`))
		default:
			_, _ = w.Write([]byte(`{}`))
		}
	}))
	defer srv.Close()

	c := mustNewClient(t, srv.URL, WithBasicAuth("admin", "pass"))

	resp, err := c.CreateUserSession(context.Background(), "admin", "pass", nil)
	if err != nil {
		t.Fatalf("CreateUserSession() error = %v", err)
	}
	var session struct {
		Token string `json:"token"`
	}
	if err := resp.JSON(&session); err != nil {
		t.Fatalf("decode session: %v", err)
	}
	if session.Token != "tok-xyz" {
		t.Fatalf("token = %q, want tok-xyz", session.Token)
	}

	c.SetBearerToken(session.Token)
	if _, err := c.GetSessionInfo(context.Background()); err != nil {
		t.Fatalf("GetSessionInfo() error = %v", err)
	}
	if lastAuth != "Bearer tok-xyz" {
		t.Errorf("Authorization = %q, want Bearer tok-xyz", lastAuth)
	}
}

func TestResponseTyping(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		wantJSON    bool
		wantText    bool
	}{
		{"json", "application/json; charset=utf-8", `{"id":1}`, true, false},
		{"text", "text/plain", "1700000000000", false, true},
		{"binary", "image/jpeg", "\xff\xd8\xff", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rec capture
			srv := newTestServer(t, http.StatusOK, tt.contentType, tt.body, &rec)
			defer srv.Close()

			c := mustNewClient(t, srv.URL)
			resp, err := c.GetServerTime(context.Background(), false)
			if err != nil {
				t.Fatalf("GetServerTime() error = %v", err)
			}
			if resp.IsJSON() != tt.wantJSON {
				t.Errorf("IsJSON() = %v, want %v", resp.IsJSON(), tt.wantJSON)
			}
			if resp.IsText() != tt.wantText {
				t.Errorf("IsText() = %v, want %v", resp.IsText(), tt.wantText)
			}
			if resp.Text() != tt.body {
				t.Errorf("Text() = %q, want %q", resp.Text(), tt.body)
			}
		})
	}
}

func TestWithHTTPClient(t *testing.T) {
	var rec capture
	srv := newTestServer(t, http.StatusOK, "application/json", "{}", &rec)
	defer srv.Close()

	hc, err := httpclient.New(httpclient.Config{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("httpclient.New() error = %v", err)
	}
	c := mustNewClient(t, "http://ignored.invalid", WithHTTPClient(hc))
	if _, err := c.GetVersion(context.Background()); err != nil {
		t.Fatalf("GetVersion() error = %v", err)
	}
	if rec.Path != "/service/version" {
		t.Errorf("path = %q, want /service/version", rec.Path)
	}
}
