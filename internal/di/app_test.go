package di

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"social-spectrum-server/internal/common/httpx"
	"social-spectrum-server/internal/config"
	"social-spectrum-server/internal/testutils"

	"github.com/gin-gonic/gin"
)

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		Server: config.ServerConfig{Mode: "release", FrontendOrigin: "http://localhost:5173"},
		JWT:    config.JWTConfig{Secret: "di-test-secret", ExpirationHours: 1},
		Admin:  config.AdminConfig{Email: "admin@example.com"},
		Limits: config.LimitsConfig{UploadMB: 1},
	}
	app, err := InitializeApplication(cfg, testutils.SetupDB(t), nil, testutils.NewMemoryBlobStore())
	if err != nil {
		t.Fatalf("InitializeApplication: %v", err)
	}
	r := gin.New()
	app.Router.Init(r)
	return r
}

func serve(r *gin.Engine, req *http.Request, session *http.Cookie) *httptest.ResponseRecorder {
	if session != nil {
		req.AddCookie(session)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func registerAndLogin(t *testing.T, r *gin.Engine, username string) (*http.Cookie, uint) {
	t.Helper()
	w := serve(r, testutils.JSONRequest(t, http.MethodPost, "/api/auth/register", map[string]string{
		"username": username,
		"email":    username + "@example.com",
		"password": "secret-password",
		"name":     strings.ToUpper(username),
	}), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("register %s: %d %s", username, w.Code, w.Body.String())
	}
	var created struct {
		CreatedUserID uint `json:"createdUserId"`
	}
	testutils.DecodeJSON(t, w, &created)

	w = serve(r, testutils.JSONRequest(t, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    username + "@example.com",
		"password": "secret-password",
	}), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("login %s: %d %s", username, w.Code, w.Body.String())
	}
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == httpx.SessionCookieName {
			return cookie, created.CreatedUserID
		}
	}
	t.Fatalf("login did not set the session cookie")
	return nil, 0
}

func TestApplication_PostLifecycle(t *testing.T) {
	r := newTestServer(t)
	author, authorID := registerAndLogin(t, r, "author")
	reader, _ := registerAndLogin(t, r, "reader")

	w := serve(r, testutils.JSONRequest(t, http.MethodPost, "/api/relationships", map[string]interface{}{"userIdToFollow": authorID}), reader)
	if w.Code != http.StatusOK {
		t.Fatalf("follow: %d %s", w.Code, w.Body.String())
	}

	req := testutils.MultipartRequest(t, http.MethodPost, "/api/posts", map[string]string{"textContent": "first light"})
	if w = serve(r, req, author); w.Code != http.StatusCreated {
		t.Fatalf("add post: %d %s", w.Code, w.Body.String())
	}

	w = serve(r, httptest.NewRequest(http.MethodGet, "/api/posts", nil), reader)
	var feed []map[string]interface{}
	testutils.DecodeJSON(t, w, &feed)
	if len(feed) != 1 || feed[0]["textContent"] != "first light" {
		t.Fatalf("unexpected reader feed: %s", w.Body.String())
	}
	postID := uint(feed[0]["id"].(float64))

	w = serve(r, testutils.JSONRequest(t, http.MethodPost, "/api/likes", map[string]interface{}{"postId": postID}), reader)
	if w.Code != http.StatusOK {
		t.Fatalf("like: %d %s", w.Code, w.Body.String())
	}
	w = serve(r, testutils.JSONRequest(t, http.MethodPost, "/api/likes", map[string]interface{}{"postId": postID}), reader)
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate like: expected 409, got %d", w.Code)
	}

	w = serve(r, httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/posts/%d", postID), nil), reader)
	if w.Code != http.StatusForbidden {
		t.Fatalf("foreign delete: expected 403, got %d", w.Code)
	}
	w = serve(r, httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/posts/%d", postID), nil), author)
	if w.Code != http.StatusOK {
		t.Fatalf("owner delete: %d %s", w.Code, w.Body.String())
	}
}

func TestApplication_SessionRequired(t *testing.T) {
	r := newTestServer(t)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/api/posts", nil), nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}

	w = serve(r, httptest.NewRequest(http.MethodGet, "/api/posts", nil), &http.Cookie{Name: httpx.SessionCookieName, Value: "garbage"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for a bad token, got %d", w.Code)
	}
}

func TestApplication_LogoutClearsCookie(t *testing.T) {
	r := newTestServer(t)
	session, _ := registerAndLogin(t, r, "leaver")

	w := serve(r, httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil), session)
	if w.Code != http.StatusOK {
		t.Fatalf("logout: %d %s", w.Code, w.Body.String())
	}
	cleared := false
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == httpx.SessionCookieName && cookie.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatalf("logout did not expire the cookie: %v", w.Header().Values("Set-Cookie"))
	}
}
