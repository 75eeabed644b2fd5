package database_test

import (
	"context"
	"testing"

	"MyTube.com/cmd/model"
	"MyTube.com/pkg/database"
	"MyTube.com/pkg/errno"
	"MyTube.com/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOwnershipIsolation(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	alice := testutil.CreateUser(t, db, "alice")
	bob := testutil.CreateUser(t, db, "bob")
	video := testutil.CreateVideo(t, db, alice, "intro", 0, true)
	comment := testutil.CreateComment(t, db, alice, video, "first")

	err := database.UpdateOwned(ctx, db, &model.Comment{}, comment.ID, bob.ID,
		map[string]interface{}{"content": "hijacked"}, "Comment")
	require.Error(t, err)
	assert.ErrorIs(t, err, errno.NotFoundErr)
	assert.Equal(t, "Comment not found", errno.ConvertErr(err).ErrMsg)

	var stored model.Comment
	require.NoError(t, db.First(&stored, "id = ?", comment.ID).Error)
	assert.Equal(t, "first", stored.Content)

	err = database.DeleteOwned(ctx, db, &model.Comment{}, comment.ID, bob.ID, "Comment")
	assert.ErrorIs(t, err, errno.NotFoundErr)

	var found model.Comment
	err = database.FindOwned(ctx, db, &found, comment.ID, bob.ID, "Comment")
	assert.ErrorIs(t, err, errno.NotFoundErr)

	require.NoError(t, database.FindOwned(ctx, db, &found, comment.ID, alice.ID, "Comment"))
	assert.Equal(t, comment.ID, found.ID)
}

func TestUpdateOwnedUnchangedValue(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	alice := testutil.CreateUser(t, db, "alice")
	video := testutil.CreateVideo(t, db, alice, "intro", 0, true)
	comment := testutil.CreateComment(t, db, alice, video, "same")

	err := database.UpdateOwned(ctx, db, &model.Comment{}, comment.ID, alice.ID,
		map[string]interface{}{"content": "same"}, "Comment")
	assert.NoError(t, err)
}

func TestDeleteOwned(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	alice := testutil.CreateUser(t, db, "alice")
	tweet := testutil.CreateTweet(t, db, alice, "hello")

	require.NoError(t, database.DeleteOwned(ctx, db, &model.Tweet{}, tweet.ID, alice.ID, "Tweet"))

	var n int64
	db.Model(&model.Tweet{}).Count(&n)
	assert.Zero(t, n)

	err := database.DeleteOwned(ctx, db, &model.Tweet{}, tweet.ID, alice.ID, "Tweet")
	assert.ErrorIs(t, err, errno.NotFoundErr)
}
