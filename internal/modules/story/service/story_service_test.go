package service

import (
	"context"
	"testing"
	"time"

	"social-spectrum-server/internal/common"
	"social-spectrum-server/internal/imaging"
	"social-spectrum-server/internal/model"
	moduledto "social-spectrum-server/internal/modules/story/dto"
	"social-spectrum-server/internal/storage"
	"social-spectrum-server/internal/testutils"

	"gorm.io/gorm"
)

func createStoryAt(t *testing.T, gdb *gorm.DB, userID uint, at time.Time) *model.Story {
	t.Helper()
	story := &model.Story{StoryUserID: userID, CreatedAt: at}
	if err := gdb.Create(story).Error; err != nil {
		t.Fatalf("create story: %v", err)
	}
	return story
}

func TestAddStory_WithImage(t *testing.T) {
	gdb, svc, blobs := setupTestService(t)
	me := testutils.CreateUser(t, gdb, "storyteller")

	story, err := svc.AddStory(context.Background(), me.ID, moduledto.AddStoryRequest{
		Image: testutils.FileHeader(t, "sunset.png", testutils.PNGBytes(t, 16, 16)),
	})
	if err != nil {
		t.Fatalf("AddStory: %v", err)
	}
	if story.ImageURL == nil || story.BlurhashString == nil {
		t.Fatalf("expected image and blurhash, got %+v", story)
	}
	if len(*story.BlurhashString) != imaging.BlurhashLength {
		t.Fatalf("unexpected blurhash %q", *story.BlurhashString)
	}
	if !blobs.Has(storage.BucketStories, storage.ObjectNameFromURL(*story.ImageURL)) {
		t.Fatalf("image not stored in stories bucket")
	}
}

func TestAddStory_WithoutImage(t *testing.T) {
	gdb, svc, blobs := setupTestService(t)
	me := testutils.CreateUser(t, gdb, "texter")

	story, err := svc.AddStory(context.Background(), me.ID, moduledto.AddStoryRequest{})
	if err != nil {
		t.Fatalf("AddStory: %v", err)
	}
	if story.ImageURL != nil || story.BlurhashString != nil {
		t.Fatalf("expected no image, got %+v", story)
	}
	if blobs.Count() != 0 {
		t.Fatalf("expected no uploads, got %d", blobs.Count())
	}
}

func TestVisibleStories_OwnAndFollowed(t *testing.T) {
	gdb, svc, _ := setupTestService(t)
	me := testutils.CreateUser(t, gdb, "me")
	friend := testutils.CreateUser(t, gdb, "friend")
	stranger := testutils.CreateUser(t, gdb, "stranger")
	testutils.Follow(t, gdb, me.ID, friend.ID)

	base := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	mine := createStoryAt(t, gdb, me.ID, base)
	friends := createStoryAt(t, gdb, friend.ID, base.Add(time.Minute))
	createStoryAt(t, gdb, stranger.ID, base.Add(2*time.Minute))

	stories, err := svc.VisibleStories(context.Background(), me.ID)
	if err != nil {
		t.Fatalf("VisibleStories: %v", err)
	}
	if len(stories) != 2 || stories[0].ID != friends.ID || stories[1].ID != mine.ID {
		t.Fatalf("unexpected stories: %+v", stories)
	}
	if stories[0].Name != "friend" {
		t.Fatalf("author not joined: %+v", stories[0])
	}
}

func TestUserStories_UsesRequestedUser(t *testing.T) {
	gdb, svc, _ := setupTestService(t)
	me := testutils.CreateUser(t, gdb, "me")
	other := testutils.CreateUser(t, gdb, "other")
	createStoryAt(t, gdb, me.ID, time.Now())
	theirs := createStoryAt(t, gdb, other.ID, time.Now())

	stories, err := svc.UserStories(context.Background(), other.ID)
	if err != nil {
		t.Fatalf("UserStories: %v", err)
	}
	if len(stories) != 1 || stories[0].ID != theirs.ID {
		t.Fatalf("unexpected stories: %+v", stories)
	}
}

func TestVisibleStories_EmptyIsNotNil(t *testing.T) {
	gdb, svc, _ := setupTestService(t)
	me := testutils.CreateUser(t, gdb, "nobody")

	stories, err := svc.VisibleStories(context.Background(), me.ID)
	if err != nil {
		t.Fatalf("VisibleStories: %v", err)
	}
	if stories == nil || len(stories) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", stories)
	}
}

func TestDeleteStory_OwnerRemovesImage(t *testing.T) {
	gdb, svc, blobs := setupTestService(t)
	me := testutils.CreateUser(t, gdb, "owner")
	story, err := svc.AddStory(context.Background(), me.ID, moduledto.AddStoryRequest{
		Image: testutils.FileHeader(t, "a.png", testutils.PNGBytes(t, 8, 8)),
	})
	if err != nil {
		t.Fatalf("AddStory: %v", err)
	}

	if err := svc.DeleteStory(context.Background(), me.ID, story.ID); err != nil {
		t.Fatalf("DeleteStory: %v", err)
	}
	if blobs.Count() != 0 {
		t.Fatalf("expected image removed, %d left", blobs.Count())
	}
	var count int64
	gdb.Model(&model.Story{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected story deleted, %d left", count)
	}
}

func TestDeleteStory_StrangerForbidden(t *testing.T) {
	gdb, svc, _ := setupTestService(t)
	owner := testutils.CreateUser(t, gdb, "owner")
	stranger := testutils.CreateUser(t, gdb, "stranger")
	story := createStoryAt(t, gdb, owner.ID, time.Now())

	err := svc.DeleteStory(context.Background(), stranger.ID, story.ID)
	testutils.RequireCode(t, err, common.ErrorCodeForbidden)

	var count int64
	gdb.Model(&model.Story{}).Count(&count)
	if count != 1 {
		t.Fatalf("story should survive, count=%d", count)
	}
}

func TestDeleteStory_AdminOverride(t *testing.T) {
	gdb, svc, _ := setupTestService(t)
	owner := testutils.CreateUser(t, gdb, "owner")
	admin := testutils.CreateUser(t, gdb, "admin")
	story := createStoryAt(t, gdb, owner.ID, time.Now())

	if err := svc.DeleteStory(context.Background(), admin.ID, story.ID); err != nil {
		t.Fatalf("admin DeleteStory: %v", err)
	}
}

func TestDeleteStory_Missing(t *testing.T) {
	gdb, svc, _ := setupTestService(t)
	me := testutils.CreateUser(t, gdb, "me")

	err := svc.DeleteStory(context.Background(), me.ID, 999)
	testutils.RequireCode(t, err, common.ErrorCodeNotFound)
}
