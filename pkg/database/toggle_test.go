package database_test

import (
	"context"
	"testing"

	"MyTube.com/cmd/model"
	"MyTube.com/pkg/constants"
	"MyTube.com/pkg/database"
	"MyTube.com/pkg/errno"
	"MyTube.com/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func likeSpec(db *gorm.DB, actor, videoID string) database.ToggleSpec[model.Like] {
	return database.ToggleSpec[model.Like]{
		Actor: actor,
		Match: map[string]interface{}{
			"liked_by":    actor,
			"target_kind": constants.LikeTargetVideo,
			"target_id":   videoID,
		},
		Precheck: func(ctx context.Context) error {
			ok, err := database.Exists(db, constants.VideoTableName, videoID)(ctx)
			if err != nil {
				return err
			}
			if !ok {
				return errno.NotFoundErr.WithMessage("Video not found")
			}
			return nil
		},
		New: func() *model.Like {
			return &model.Like{LikedBy: actor, TargetKind: constants.LikeTargetVideo, TargetID: videoID}
		},
	}
}

func TestTogglePairing(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	alice := testutil.CreateUser(t, db, "alice")
	video := testutil.CreateVideo(t, db, alice, "intro", 0, true)

	active, like, err := database.Toggle(ctx, db, likeSpec(db, alice.ID, video.ID))
	require.NoError(t, err)
	assert.True(t, active)
	require.NotNil(t, like)
	assert.Equal(t, video.ID, like.TargetID)

	var n int64
	db.Model(&model.Like{}).Count(&n)
	assert.EqualValues(t, 1, n)

	active, like, err = database.Toggle(ctx, db, likeSpec(db, alice.ID, video.ID))
	require.NoError(t, err)
	assert.False(t, active)
	assert.Nil(t, like)

	db.Model(&model.Like{}).Count(&n)
	assert.Zero(t, n)
}

func TestToggleMissingActor(t *testing.T) {
	db := testutil.NewDB(t)
	_, _, err := database.Toggle(context.Background(), db, likeSpec(db, "", "x"))
	assert.ErrorIs(t, err, errno.AuthorizationFailedErr)
}

func TestTogglePrecheckOnlyOnInsert(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	alice := testutil.CreateUser(t, db, "alice")
	video := testutil.CreateVideo(t, db, alice, "intro", 0, true)
	testutil.Like(t, db, alice, constants.LikeTargetVideo, video.ID)
	require.NoError(t, db.Delete(&model.Video{}, "id = ?", video.ID).Error)

	// 目标已删除，但已有的点赞仍然可以取消
	active, _, err := database.Toggle(ctx, db, likeSpec(db, alice.ID, video.ID))
	require.NoError(t, err)
	assert.False(t, active)

	_, _, err = database.Toggle(ctx, db, likeSpec(db, alice.ID, video.ID))
	assert.ErrorIs(t, err, errno.NotFoundErr)
}

func TestToggleGuardRunsFirst(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	alice := testutil.CreateUser(t, db, "alice")

	spec := database.ToggleSpec[model.Subscription]{
		Actor: alice.ID,
		Match: map[string]interface{}{"subscriber_id": alice.ID, "channel_id": alice.ID},
		Guard: func(ctx context.Context) error {
			return errno.ParamErr.WithMessage("You cannot subscribe to your own channel")
		},
		New: func() *model.Subscription {
			return &model.Subscription{SubscriberID: alice.ID, ChannelID: alice.ID}
		},
	}
	_, _, err := database.Toggle(ctx, db, spec)
	assert.ErrorIs(t, err, errno.ParamErr)

	var n int64
	db.Model(&model.Subscription{}).Count(&n)
	assert.Zero(t, n)
}

func TestUniqueIndexRejectsDuplicateLike(t *testing.T) {
	db := testutil.NewDB(t)
	alice := testutil.CreateUser(t, db, "alice")
	video := testutil.CreateVideo(t, db, alice, "intro", 0, true)
	testutil.Like(t, db, alice, constants.LikeTargetVideo, video.ID)

	err := db.Create(&model.Like{LikedBy: alice.ID, TargetKind: constants.LikeTargetVideo, TargetID: video.ID}).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}
