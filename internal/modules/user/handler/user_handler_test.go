package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"social-spectrum-server/internal/model"
	"social-spectrum-server/internal/testutils"
)

func TestGetUser_ReturnsArrayWithoutPassword(t *testing.T) {
	gdb, r, _ := setupTestRouter(t)
	user := testutils.CreateUser(t, gdb, "alice")

	w := testutils.Do(r, httptest.NewRequest(http.MethodGet, fmt.Sprintf("/users/%d", user.ID), nil), user.ID)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	var body []map[string]interface{}
	testutils.DecodeJSON(t, w, &body)
	if len(body) != 1 || body[0]["username"] != "alice" {
		t.Fatalf("unexpected body: %v", body)
	}
	if _, ok := body[0]["password"]; ok {
		t.Fatalf("password must not be exposed")
	}

	w = testutils.Do(r, httptest.NewRequest(http.MethodGet, "/users/abc", nil), user.ID)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad id, got %d", w.Code)
	}
	w = testutils.Do(r, httptest.NewRequest(http.MethodGet, "/users/4242", nil), user.ID)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for missing user, got %d", w.Code)
	}
}

func TestUpdateProfile_Multipart(t *testing.T) {
	gdb, r, blobs := setupTestRouter(t)
	user := testutils.CreateUser(t, gdb, "bob")

	req := testutils.MultipartRequest(t, http.MethodPatch, "/users", map[string]string{
		"name":       "Bob B",
		"username":   "bobby",
		"email":      "bob@example.com",
		"statusText": "hello",
	}, testutils.FilePart{Field: "bgPicture[]", Filename: "bg.png", Data: testutils.PNGBytes(t, 6, 6)})

	w := testutils.Do(r, req, user.ID)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"success"`) {
		t.Fatalf("expected success, got %d body=%s", w.Code, w.Body.String())
	}

	var got model.User
	gdb.First(&got, user.ID)
	if got.Username != "bobby" || got.StatusText == nil || *got.StatusText != "hello" || got.BgPicture == nil {
		t.Fatalf("unexpected user after update: %+v", got)
	}
	if blobs.Count() != 1 {
		t.Fatalf("expected one stored picture, got %d", blobs.Count())
	}
}

func TestUpdateVisibility_OtherUserForbidden(t *testing.T) {
	gdb, r, _ := setupTestRouter(t)
	user := testutils.CreateUser(t, gdb, "carol")
	other := testutils.CreateUser(t, gdb, "dave")

	req := testutils.JSONRequest(t, http.MethodPatch, fmt.Sprintf("/users/%d/status", user.ID), map[string]string{"visibility": "invisible"})
	w := testutils.Do(r, req, other.ID)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", w.Code, w.Body.String())
	}

	req = testutils.JSONRequest(t, http.MethodPatch, fmt.Sprintf("/users/%d/status", user.ID), map[string]string{"visibility": "invisible"})
	w = testutils.Do(r, req, user.ID)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestCheckPassword_WrongPassword(t *testing.T) {
	gdb, r, _ := setupTestRouter(t)
	user := testutils.CreateUser(t, gdb, "erin")

	req := testutils.JSONRequest(t, http.MethodPost, "/users/password-check", map[string]string{"password": "guess"})
	w := testutils.Do(r, req, user.ID)
	if w.Code != http.StatusUnauthorized || !strings.Contains(w.Body.String(), "Incorrect or missing password") {
		t.Fatalf("expected 401, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestDeleteAccount_SelfClearsCookie(t *testing.T) {
	gdb, r, _ := setupTestRouter(t)
	user := testutils.CreateUser(t, gdb, "frank")
	other := testutils.CreateUser(t, gdb, "gina")

	w := testutils.Do(r, httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/users/%d", user.ID), nil), other.ID)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}

	w = testutils.Do(r, httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/users/%d", user.ID), nil), user.ID)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Account deleted successfully") {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	if cookie := w.Header().Get("Set-Cookie"); !strings.Contains(cookie, "jwt=;") {
		t.Fatalf("expected cleared cookie, got %q", cookie)
	}
}

func TestSuggestedUsers_RequiresCaller(t *testing.T) {
	_, r, _ := setupTestRouter(t)

	w := testutils.Do(r, httptest.NewRequest(http.MethodGet, "/users/suggested", nil), 0)
	if w.Code != http.StatusUnauthorized || !strings.Contains(w.Body.String(), "jwt_error") {
		t.Fatalf("expected jwt_error, got %d body=%s", w.Code, w.Body.String())
	}
}
