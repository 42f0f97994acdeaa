package db_test

import (
	"context"
	"errors"
	"testing"

	"social-spectrum-server/internal/db"
	"social-spectrum-server/internal/model"
	"social-spectrum-server/internal/testutils"

	"gorm.io/gorm"
)

func createPost(t *testing.T, gdb *gorm.DB, userID uint) *model.Post {
	t.Helper()
	post := &model.Post{UserID: userID, TextContent: "hello"}
	if err := gdb.Create(post).Error; err != nil {
		t.Fatalf("create post: %v", err)
	}
	return post
}

func postExists(gdb *gorm.DB, id uint) bool {
	var count int64
	gdb.Model(&model.Post{}).Where("id = ?", id).Count(&count)
	return count == 1
}

// Verifies owner deletes succeed while other callers get ErrNotOwner.
func TestDeleteOwned_OwnerAndOther(t *testing.T) {
	gdb := testutils.SetupDB(t)
	owner := testutils.CreateUser(t, gdb, "owner")
	other := testutils.CreateUser(t, gdb, "other")
	post := createPost(t, gdb, owner.ID)
	ctx := context.Background()

	err := db.DeleteOwned(ctx, gdb, &model.Post{}, db.OwnedDelete{ID: post.ID, OwnerColumn: "user_id", CallerID: other.ID})
	if !errors.Is(err, db.ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
	if !postExists(gdb, post.ID) {
		t.Fatalf("post must survive a foreign delete")
	}

	if err := db.DeleteOwned(ctx, gdb, &model.Post{}, db.OwnedDelete{ID: post.ID, OwnerColumn: "user_id", CallerID: owner.ID}); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
	if postExists(gdb, post.ID) {
		t.Fatalf("post should be deleted")
	}
}

func TestDeleteOwned_AdminAndMissing(t *testing.T) {
	gdb := testutils.SetupDB(t)
	owner := testutils.CreateUser(t, gdb, "owner")
	admin := testutils.CreateUser(t, gdb, "admin")
	post := createPost(t, gdb, owner.ID)
	ctx := context.Background()

	if err := db.DeleteOwned(ctx, gdb, &model.Post{}, db.OwnedDelete{ID: post.ID, OwnerColumn: "user_id", CallerID: admin.ID, IsAdmin: true}); err != nil {
		t.Fatalf("admin delete: %v", err)
	}
	err := db.DeleteOwned(ctx, gdb, &model.Post{}, db.OwnedDelete{ID: post.ID, OwnerColumn: "user_id", CallerID: owner.ID})
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

// Verifies a failing BeforeCommit hook rolls the deletion back.
func TestDeleteOwned_RollbackOnHookFailure(t *testing.T) {
	gdb := testutils.SetupDB(t)
	owner := testutils.CreateUser(t, gdb, "owner")
	post := createPost(t, gdb, owner.ID)
	hookErr := errors.New("blob down")

	var loaded model.Post
	err := db.DeleteOwned(context.Background(), gdb, &loaded, db.OwnedDelete{
		ID:           post.ID,
		OwnerColumn:  "user_id",
		CallerID:     owner.ID,
		BeforeCommit: func() error { return hookErr },
	})
	if !errors.Is(err, hookErr) {
		t.Fatalf("expected hook error, got %v", err)
	}
	if loaded.TextContent != "hello" {
		t.Fatalf("expected row loaded into dest, got %+v", loaded)
	}
	if !postExists(gdb, post.ID) {
		t.Fatalf("deletion must be rolled back")
	}
}

func TestConstraintClassification(t *testing.T) {
	gdb := testutils.SetupDB(t)
	user := testutils.CreateUser(t, gdb, "alice")

	dup := gdb.Create(&model.User{Email: user.Email, Username: "other", Name: "x", Password: "x"}).Error
	if !db.IsDuplicateKey(dup) {
		t.Fatalf("expected duplicate key, got %v", dup)
	}

	fk := gdb.Create(&model.Like{LikeUserID: user.ID, LikePostID: 999}).Error
	if !db.IsForeignKeyViolation(fk) {
		t.Fatalf("expected foreign key violation, got %v", fk)
	}
	if db.IsDuplicateKey(nil) || db.IsForeignKeyViolation(nil) {
		t.Fatalf("nil is not a constraint error")
	}
}
