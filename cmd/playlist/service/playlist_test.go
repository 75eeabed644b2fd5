package service

import (
	"context"
	"testing"

	"MyTube.com/cmd/model"
	"MyTube.com/cmd/playlist/dal/db"
	"MyTube.com/pkg/errno"
	"MyTube.com/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) {
	db.Init(testutil.NewDB(t))
}

func TestPlaylistCreateAndRename(t *testing.T) {
	setup(t)
	ctx := context.Background()
	alice := testutil.CreateUser(t, db.DB, "alice")
	bob := testutil.CreateUser(t, db.DB, "bob")
	svc := NewPlaylistService(ctx)

	_, err := svc.CreatePlaylist(alice.ID, &PlaylistRequest{Name: "mix"})
	assert.ErrorIs(t, err, errno.ParamErr)

	mix, err := svc.CreatePlaylist(alice.ID, &PlaylistRequest{Name: "mix", Description: "songs"})
	require.NoError(t, err)
	_, err = svc.CreatePlaylist(alice.ID, &PlaylistRequest{Name: "mix", Description: "again"})
	assert.ErrorIs(t, err, errno.ConflictErr)
	// 名称只在同一用户下唯一
	_, err = svc.CreatePlaylist(bob.ID, &PlaylistRequest{Name: "mix", Description: "bob's"})
	require.NoError(t, err)

	other, err := svc.CreatePlaylist(alice.ID, &PlaylistRequest{Name: "other", Description: "d"})
	require.NoError(t, err)
	_, err = svc.UpdatePlaylist(other.ID, alice.ID, &PlaylistRequest{Name: "mix"})
	assert.ErrorIs(t, err, errno.ConflictErr)
	_, err = svc.UpdatePlaylist(other.ID, alice.ID, &PlaylistRequest{})
	assert.ErrorIs(t, err, errno.ParamErr)
	_, err = svc.UpdatePlaylist(mix.ID, bob.ID, &PlaylistRequest{Name: "stolen"})
	assert.ErrorIs(t, err, errno.NotFoundErr)

	detail, err := svc.UpdatePlaylist(mix.ID, alice.ID, &PlaylistRequest{Description: "new"})
	require.NoError(t, err)
	assert.Equal(t, "mix", detail.Name)
	assert.Equal(t, "new", detail.Description)
	assert.Equal(t, "alice", detail.Owner.Username)
	assert.NotNil(t, detail.Videos)
}

func TestPlaylistVideos(t *testing.T) {
	setup(t)
	ctx := context.Background()
	alice := testutil.CreateUser(t, db.DB, "alice")
	bob := testutil.CreateUser(t, db.DB, "bob")
	v1 := testutil.CreateVideo(t, db.DB, bob, "one", 0, true)
	v2 := testutil.CreateVideo(t, db.DB, bob, "two", 0, true)
	svc := NewPlaylistService(ctx)
	pl, err := svc.CreatePlaylist(alice.ID, &PlaylistRequest{Name: "mix", Description: "d"})
	require.NoError(t, err)

	_, err = svc.AddVideo(pl.ID, v2.ID, alice.ID)
	require.NoError(t, err)
	detail, err := svc.AddVideo(pl.ID, v1.ID, alice.ID)
	require.NoError(t, err)
	require.Len(t, detail.Videos, 2)
	assert.Equal(t, v2.ID, detail.Videos[0].ID)
	assert.Equal(t, v1.ID, detail.Videos[1].ID)

	_, err = svc.AddVideo(pl.ID, v1.ID, alice.ID)
	assert.ErrorIs(t, err, errno.ConflictErr)
	var n int64
	require.NoError(t, db.DB.Model(&model.PlaylistVideo{}).Where("video_id = ?", v1.ID).Count(&n).Error)
	assert.EqualValues(t, 1, n)

	_, err = svc.AddVideo(pl.ID, "00000000-0000-0000-0000-000000000000", alice.ID)
	assert.ErrorIs(t, err, errno.NotFoundErr)
	_, err = svc.AddVideo(pl.ID, v1.ID, bob.ID)
	assert.ErrorIs(t, err, errno.NotFoundErr)

	detail, err = svc.RemoveVideo(pl.ID, v2.ID, alice.ID)
	require.NoError(t, err)
	require.Len(t, detail.Videos, 1)
	_, err = svc.RemoveVideo(pl.ID, v2.ID, alice.ID)
	assert.ErrorIs(t, err, errno.NotFoundErr)

	lists, err := svc.UserPlaylists(alice.ID)
	require.NoError(t, err)
	require.Len(t, lists, 1)
	require.Len(t, lists[0].Videos, 1)
	assert.Equal(t, "one", lists[0].Videos[0].Title)

	assert.ErrorIs(t, svc.DeletePlaylist(pl.ID, bob.ID), errno.NotFoundErr)
	require.NoError(t, svc.DeletePlaylist(pl.ID, alice.ID))
	require.NoError(t, db.DB.Model(&model.PlaylistVideo{}).Count(&n).Error)
	assert.Zero(t, n)
	_, err = svc.GetPlaylist(pl.ID)
	assert.ErrorIs(t, err, errno.NotFoundErr)
}
