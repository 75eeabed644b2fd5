package service

import (
	"context"
	"testing"

	"MyTube.com/cmd/model"
	"MyTube.com/cmd/tweet/dal/db"
	"MyTube.com/pkg/constants"
	"MyTube.com/pkg/errno"
	"MyTube.com/pkg/oss"
	"MyTube.com/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) {
	db.Init(testutil.NewDB(t))
}

func TestCreateTweet(t *testing.T) {
	setup(t)
	ctx := context.Background()
	alice := testutil.CreateUser(t, db.DB, "alice")
	media := testutil.NewMediaStore()
	svc := NewTweetService(ctx, media)

	_, err := svc.CreateTweet(alice.ID, &TweetRequest{Content: " "})
	assert.ErrorIs(t, err, errno.ParamErr)

	tw, err := svc.CreateTweet(alice.ID, &TweetRequest{Content: "hello"})
	require.NoError(t, err)
	assert.True(t, tw.Image.IsZero())

	tw, err = svc.CreateTweet(alice.ID, &TweetRequest{
		Content:     "with picture",
		ImageUpload: testutil.FileHeader(t, "image", "p.jpg", []byte("img")),
	})
	require.NoError(t, err)
	assert.Contains(t, tw.Image.PublicID, constants.ImageFolder)
}

func TestChannelTweetsLikes(t *testing.T) {
	setup(t)
	ctx := context.Background()
	alice := testutil.CreateUser(t, db.DB, "alice")
	bob := testutil.CreateUser(t, db.DB, "bob")
	carol := testutil.CreateUser(t, db.DB, "carol")
	t1 := testutil.CreateTweet(t, db.DB, alice, "first")
	t2 := testutil.CreateTweet(t, db.DB, alice, "second")
	testutil.CreateTweet(t, db.DB, bob, "other channel")
	testutil.Like(t, db.DB, bob, constants.LikeTargetTweet, t1.ID)
	testutil.Like(t, db.DB, carol, constants.LikeTargetTweet, t1.ID)
	testutil.Like(t, db.DB, carol, constants.LikeTargetVideo, t2.ID)

	page, err := NewTweetService(ctx, testutil.NewMediaStore()).ChannelTweets(alice.ID, bob.ID, 1, 10)
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	byID := map[string]model.TweetItem{}
	for _, it := range page.Items {
		byID[it.ID] = it
	}
	assert.EqualValues(t, 2, byID[t1.ID].LikesCount)
	assert.True(t, byID[t1.ID].IsLikedByUser)
	assert.EqualValues(t, 0, byID[t2.ID].LikesCount)
	assert.False(t, byID[t2.ID].IsLikedByUser)
	assert.Equal(t, alice.ID, byID[t1.ID].OwnerID)

	page, err = NewTweetService(ctx, testutil.NewMediaStore()).ChannelTweets(alice.ID, "", 1, 10)
	require.NoError(t, err)
	for _, it := range page.Items {
		assert.False(t, it.IsLikedByUser)
	}

	_, err = NewTweetService(ctx, testutil.NewMediaStore()).ChannelTweets("00000000-0000-0000-0000-000000000000", "", 1, 10)
	assert.ErrorIs(t, err, errno.NotFoundErr)
}

func TestUpdateAndDeleteTweet(t *testing.T) {
	setup(t)
	ctx := context.Background()
	alice := testutil.CreateUser(t, db.DB, "alice")
	bob := testutil.CreateUser(t, db.DB, "bob")
	media := testutil.NewMediaStore()
	svc := NewTweetService(ctx, media)
	tw := testutil.CreateTweet(t, db.DB, alice, "draft")

	_, err := svc.UpdateTweet(tw.ID, alice.ID, &TweetRequest{})
	assert.ErrorIs(t, err, errno.ParamErr)
	_, err = svc.UpdateTweet(tw.ID, bob.ID, &TweetRequest{Content: "mine now"})
	assert.ErrorIs(t, err, errno.NotFoundErr)

	updated, err := svc.UpdateTweet(tw.ID, alice.ID, &TweetRequest{
		Content:     "final",
		ImageUpload: testutil.FileHeader(t, "image", "f.png", []byte("img")),
	})
	require.NoError(t, err)
	assert.Equal(t, "final", updated.Content)
	assert.NotEmpty(t, updated.Image.PublicID)

	testutil.Like(t, db.DB, bob, constants.LikeTargetTweet, tw.ID)
	assert.ErrorIs(t, svc.DeleteTweet(tw.ID, bob.ID), errno.NotFoundErr)
	require.NoError(t, svc.DeleteTweet(tw.ID, alice.ID))
	assert.Contains(t, media.Deleted, updated.Image.PublicID)

	var likes int64
	require.NoError(t, db.DB.Model(&model.Like{}).Count(&likes).Error)
	assert.Zero(t, likes)
}

func TestTweetImageMustBelongToOwner(t *testing.T) {
	setup(t)
	ctx := context.Background()
	alice := testutil.CreateUser(t, db.DB, "alice")
	mallory := testutil.CreateUser(t, db.DB, "mallory")
	media := testutil.NewMediaStore()
	svc := NewTweetService(ctx, media)

	victim, err := svc.CreateTweet(alice.ID, &TweetRequest{
		Content:     "holiday",
		ImageUpload: testutil.FileHeader(t, "image", "h.jpg", []byte("img")),
	})
	require.NoError(t, err)

	_, err = svc.CreateTweet(mallory.ID, &TweetRequest{Content: "copy", Image: victim.Image})
	assert.ErrorIs(t, err, errno.ParamErr)

	mine := testutil.CreateTweet(t, db.DB, mallory, "mine")
	_, err = svc.UpdateTweet(mine.ID, mallory.ID, &TweetRequest{Image: victim.Image})
	assert.ErrorIs(t, err, errno.ParamErr)
	require.NoError(t, svc.DeleteTweet(mine.ID, mallory.ID))
	assert.NotContains(t, media.Deleted, victim.Image.PublicID)

	ticket, err := media.PresignUpload(ctx, oss.KindImage, mallory.ID, "own.png")
	require.NoError(t, err)
	tw, err := svc.CreateTweet(mallory.ID, &TweetRequest{
		Content: "direct",
		Image:   model.MediaRef{URL: ticket.URL, PublicID: ticket.PublicID},
	})
	require.NoError(t, err)
	assert.Equal(t, ticket.PublicID, tw.Image.PublicID)

	// 原图原样提交只改内容
	updated, err := svc.UpdateTweet(tw.ID, mallory.ID, &TweetRequest{Content: "edited", Image: tw.Image})
	require.NoError(t, err)
	assert.Equal(t, tw.Image, updated.Image)
}
