package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"social-spectrum-server/internal/testutils"
)

func TestAddPost_MultipartCreated(t *testing.T) {
	gdb, r := setupTestRouter(t)
	me := testutils.CreateUser(t, gdb, "poster")

	req := testutils.MultipartRequest(t, http.MethodPost, "/posts", map[string]string{"textContent": "hello"},
		testutils.FilePart{Field: "image", Filename: "pic.png", Data: testutils.PNGBytes(t, 10, 10)})
	w := testutils.Do(r, req, me.ID)
	if w.Code != http.StatusCreated || !strings.Contains(w.Body.String(), "Post added successfully") {
		t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
	}

	w = testutils.Do(r, httptest.NewRequest(http.MethodGet, "/posts", nil), me.ID)
	var feed []map[string]interface{}
	testutils.DecodeJSON(t, w, &feed)
	if len(feed) != 1 || feed[0]["textContent"] != "hello" || feed[0]["blurhashString"] == nil {
		t.Fatalf("unexpected feed: %s", w.Body.String())
	}
	for _, key := range []string{"likesNum", "commentsNum", "isPostLikedByCurrentUser", "isPostSavedByCurrentUser", "name", "profilePicture"} {
		if _, ok := feed[0][key]; !ok {
			t.Fatalf("feed item missing %q: %v", key, feed[0])
		}
	}
}

func TestAddPost_EmptyText(t *testing.T) {
	gdb, r := setupTestRouter(t)
	me := testutils.CreateUser(t, gdb, "quiet")

	req := testutils.MultipartRequest(t, http.MethodPost, "/posts", map[string]string{})
	w := testutils.Do(r, req, me.ID)
	if w.Code != http.StatusBadRequest || !strings.Contains(w.Body.String(), "Post cannot be empty") {
		t.Fatalf("expected 400, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestGetPosts_ProfileFeedRoutes(t *testing.T) {
	gdb, r := setupTestRouter(t)
	me := testutils.CreateUser(t, gdb, "viewer")
	author := testutils.CreateUser(t, gdb, "author")
	testutils.CreatePost(t, gdb, author.ID, "by author")

	for _, target := range []string{
		fmt.Sprintf("/posts/%d", author.ID),
		fmt.Sprintf("/posts?specificUserId=%d", author.ID),
	} {
		w := testutils.Do(r, httptest.NewRequest(http.MethodGet, target, nil), me.ID)
		var feed []map[string]interface{}
		testutils.DecodeJSON(t, w, &feed)
		if w.Code != http.StatusOK || len(feed) != 1 || feed[0]["textContent"] != "by author" {
			t.Fatalf("%s: unexpected response %d %s", target, w.Code, w.Body.String())
		}
	}

	w := testutils.Do(r, httptest.NewRequest(http.MethodGet, "/posts/saved", nil), me.ID)
	if w.Code != http.StatusOK || strings.TrimSpace(w.Body.String()) != "[]" {
		t.Fatalf("saved feed should be an empty array, got %d %s", w.Code, w.Body.String())
	}
}

func TestDeletePost_ForbiddenForOthers(t *testing.T) {
	gdb, r := setupTestRouter(t)
	owner := testutils.CreateUser(t, gdb, "owner")
	other := testutils.CreateUser(t, gdb, "other")
	post := testutils.CreatePost(t, gdb, owner.ID, "mine")

	w := testutils.Do(r, httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/posts/%d", post.ID), nil), other.ID)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", w.Code, w.Body.String())
	}
	w = testutils.Do(r, httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/posts/%d", post.ID), nil), owner.ID)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Post deleted successfully") {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	w = testutils.Do(r, httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/posts/%d", post.ID), nil), owner.ID)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestSavePost_AcceptsStringID(t *testing.T) {
	gdb, r := setupTestRouter(t)
	me := testutils.CreateUser(t, gdb, "saver")
	post := testutils.CreatePost(t, gdb, me.ID, "keep")

	req := testutils.JSONRequest(t, http.MethodPost, "/posts/saved", map[string]string{"postId": fmt.Sprint(post.ID)})
	w := testutils.Do(r, req, me.ID)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
	}

	req = testutils.JSONRequest(t, http.MethodPost, "/posts/saved", map[string]uint{"postId": post.ID})
	w = testutils.Do(r, req, me.ID)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 on duplicate bookmark, got %d", w.Code)
	}

	w = testutils.Do(r, httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/posts/saved/%d", post.ID), nil), me.ID)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Post deleted from bookmarks successfully") {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}
}
