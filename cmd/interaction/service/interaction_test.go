package service

import (
	"context"
	"strings"
	"testing"

	"MyTube.com/cmd/interaction/dal/db"
	"MyTube.com/cmd/model"
	"MyTube.com/pkg/constants"
	"MyTube.com/pkg/errno"
	"MyTube.com/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const missingID = "00000000-0000-0000-0000-000000000000"

func setup(t *testing.T) {
	db.Init(testutil.NewDB(t))
}

func TestCommentLifecycle(t *testing.T) {
	setup(t)
	ctx := context.Background()
	alice := testutil.CreateUser(t, db.DB, "alice")
	bob := testutil.CreateUser(t, db.DB, "bob")
	v := testutil.CreateVideo(t, db.DB, alice, "clip", 0, true)
	svc := NewCommentService(ctx)

	_, err := svc.AddComment(v.ID, bob.ID, "   ")
	assert.ErrorIs(t, err, errno.ParamErr)
	_, err = svc.AddComment("bad", bob.ID, "hi")
	assert.ErrorIs(t, err, errno.ParamErr)
	_, err = svc.AddComment(missingID, bob.ID, "hi")
	assert.ErrorIs(t, err, errno.NotFoundErr)
	_, err = svc.AddComment(v.ID, bob.ID, strings.Repeat("x", MaxCommentLength+1))
	assert.ErrorIs(t, err, errno.ParamErr)

	c, err := svc.AddComment(v.ID, bob.ID, "  first  ")
	require.NoError(t, err)
	assert.Equal(t, "first", c.Content)

	page, err := svc.ListComments(v.ID, 1, 10)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "bob", page.Items[0].Owner.Username)
	assert.Equal(t, bob.Avatar.URL, page.Items[0].Owner.Avatar)

	// 非作者修改被视为不存在，内容不变
	_, err = svc.UpdateComment(c.ID, alice.ID, "hacked")
	assert.ErrorIs(t, err, errno.NotFoundErr)
	var stored model.Comment
	require.NoError(t, db.DB.First(&stored, "id = ?", c.ID).Error)
	assert.Equal(t, "first", stored.Content)

	updated, err := svc.UpdateComment(c.ID, bob.ID, "edited")
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Content)

	testutil.Like(t, db.DB, alice, constants.LikeTargetComment, c.ID)
	assert.ErrorIs(t, svc.DeleteComment(c.ID, alice.ID), errno.NotFoundErr)
	require.NoError(t, svc.DeleteComment(c.ID, bob.ID))
	var likes int64
	require.NoError(t, db.DB.Model(&model.Like{}).Count(&likes).Error)
	assert.Zero(t, likes)
}

func TestCommentPaginationOutOfRange(t *testing.T) {
	setup(t)
	alice := testutil.CreateUser(t, db.DB, "alice")
	v := testutil.CreateVideo(t, db.DB, alice, "clip", 0, true)
	for i := 0; i < 5; i++ {
		testutil.CreateComment(t, db.DB, alice, v, "c")
	}
	page, err := NewCommentService(context.Background()).ListComments(v.ID, 100, 10)
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.EqualValues(t, 5, page.TotalItems)
}

func TestToggleLikePairs(t *testing.T) {
	setup(t)
	ctx := context.Background()
	alice := testutil.CreateUser(t, db.DB, "alice")
	v := testutil.CreateVideo(t, db.DB, alice, "clip", 0, true)
	tw := testutil.CreateTweet(t, db.DB, alice, "hello")
	svc := NewLikeService(ctx)

	res, err := svc.ToggleLike(constants.LikeTargetVideo, v.ID, alice.ID)
	require.NoError(t, err)
	assert.True(t, res.Liked)
	require.NotNil(t, res.Like)
	assert.Equal(t, v.ID, res.Like.TargetID)

	res, err = svc.ToggleLike(constants.LikeTargetVideo, v.ID, alice.ID)
	require.NoError(t, err)
	assert.False(t, res.Liked)
	assert.Nil(t, res.Like)

	res, err = svc.ToggleLike(constants.LikeTargetTweet, tw.ID, alice.ID)
	require.NoError(t, err)
	assert.True(t, res.Liked)

	_, err = svc.ToggleLike(constants.LikeTargetComment, missingID, alice.ID)
	assert.ErrorIs(t, err, errno.NotFoundErr)
	_, err = svc.ToggleLike(constants.LikeTargetComment, "bad", alice.ID)
	assert.ErrorIs(t, err, errno.ParamErr)
	_, err = svc.ToggleLike(constants.LikeTargetVideo, v.ID, "")
	assert.ErrorIs(t, err, errno.AuthorizationFailedErr)
}

func TestLikedVideos(t *testing.T) {
	setup(t)
	ctx := context.Background()
	alice := testutil.CreateUser(t, db.DB, "alice")
	bob := testutil.CreateUser(t, db.DB, "bob")
	v1 := testutil.CreateVideo(t, db.DB, alice, "one", 3, true)
	v2 := testutil.CreateVideo(t, db.DB, alice, "two", 0, true)
	testutil.Like(t, db.DB, bob, constants.LikeTargetVideo, v1.ID)
	testutil.Like(t, db.DB, alice, constants.LikeTargetVideo, v2.ID)
	testutil.Like(t, db.DB, bob, constants.LikeTargetVideo, missingID)

	page, err := NewLikeService(ctx).LikedVideos(bob.ID, 1, 10)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.EqualValues(t, 1, page.TotalItems)
	assert.Equal(t, v1.ID, page.Items[0].Video.ID)
	assert.Equal(t, "one", page.Items[0].Video.Title)
	assert.Equal(t, v1.Thumbnail.URL, page.Items[0].Video.Thumbnail.URL)
	assert.Equal(t, "likedVideos", page.Labels.Docs)
}
