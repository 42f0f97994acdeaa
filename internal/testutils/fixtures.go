package testutils

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"social-spectrum-server/internal/model"

	"gorm.io/gorm"
)

// PNGBytes renders a w x h gradient PNG.
func PNGBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 255 / w), G: uint8(y * 255 / h), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

// HugePNG returns a tiny PNG whose header claims w x h pixels. Only the
// header is valid, which is all DecodeConfig reads.
func HugePNG(t *testing.T, w, h uint32) []byte {
	t.Helper()
	data := PNGBytes(t, 1, 1)
	// signature(8) + length(4), then "IHDR" and width/height
	ihdr := data[12 : 12+4+13]
	binary.BigEndian.PutUint32(ihdr[4:8], w)
	binary.BigEndian.PutUint32(ihdr[8:12], h)
	binary.BigEndian.PutUint32(data[12+4+13:], crc32.ChecksumIEEE(ihdr))
	return data
}

// FilePart is one file in a multipart body.
type FilePart struct {
	Field    string
	Filename string
	Data     []byte
}

// MultipartBody encodes fields and files and returns the body with its content type.
func MultipartBody(t *testing.T, fields map[string]string, files ...FilePart) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for k, v := range fields {
		if err := writer.WriteField(k, v); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	for _, f := range files {
		part, err := writer.CreateFormFile(f.Field, f.Filename)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := io.Copy(part, bytes.NewReader(f.Data)); err != nil {
			t.Fatalf("write form file: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}
	return body, writer.FormDataContentType()
}

// MultipartRequest builds a multipart request for handler tests.
func MultipartRequest(t *testing.T, method, target string, fields map[string]string, files ...FilePart) *http.Request {
	t.Helper()
	body, contentType := MultipartBody(t, fields, files...)
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", contentType)
	return req
}

// FileHeader returns the parsed header of a single uploaded file.
func FileHeader(t *testing.T, filename string, data []byte) *multipart.FileHeader {
	t.Helper()
	req := MultipartRequest(t, http.MethodPost, "/", nil, FilePart{Field: "file", Filename: filename, Data: data})
	if err := req.ParseMultipartForm(32 << 20); err != nil {
		t.Fatalf("parse multipart: %v", err)
	}
	return req.MultipartForm.File["file"][0]
}

// CreateUser inserts a user with a placeholder password hash.
func CreateUser(t *testing.T, gdb *gorm.DB, username string) *model.User {
	t.Helper()
	user := &model.User{
		Email:      username + "@example.com",
		Username:   username,
		Name:       username,
		Password:   "x",
		Role:       "user",
		Visibility: model.VisibilityOnline,
	}
	if err := gdb.Create(user).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return user
}

// Follow stores a follow edge from follower to followed.
func Follow(t *testing.T, gdb *gorm.DB, followerID, followedID uint) {
	t.Helper()
	edge := &model.UserRelationship{IsFollowingID: followerID, IsFollowedID: followedID}
	if err := gdb.Create(edge).Error; err != nil {
		t.Fatalf("follow %d -> %d: %v", followerID, followedID, err)
	}
}

// CreatePost inserts a post owned by userID.
func CreatePost(t *testing.T, gdb *gorm.DB, userID uint, text string) *model.Post {
	t.Helper()
	post := &model.Post{UserID: userID, TextContent: text}
	if err := gdb.Create(post).Error; err != nil {
		t.Fatalf("create post: %v", err)
	}
	return post
}
