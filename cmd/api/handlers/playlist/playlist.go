package handlers

import (
	"context"

	"MyTube.com/cmd/api/pack"
	"MyTube.com/cmd/playlist/service"
	"MyTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

func bindPlaylist(c *app.RequestContext) (*service.PlaylistRequest, bool) {
	var req service.PlaylistRequest
	if err := c.BindAndValidate(&req); err != nil {
		pack.SendResponse(c, errno.ParamErr.WithMessage(err.Error()), nil)
		return nil, false
	}
	return &req, true
}

func CreatePlaylist(ctx context.Context, c *app.RequestContext) {
	req, ok := bindPlaylist(c)
	if !ok {
		return
	}
	playlist, err := service.NewPlaylistService(ctx).CreatePlaylist(pack.UserID(c), req)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Created.WithMessage("Playlist created successfully"), playlist)
}

func GetPlaylist(ctx context.Context, c *app.RequestContext) {
	playlist, err := service.NewPlaylistService(ctx).GetPlaylist(c.Param("playlistId"))
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Success.WithMessage("Playlist fetched successfully"), playlist)
}

func UserPlaylists(ctx context.Context, c *app.RequestContext) {
	playlists, err := service.NewPlaylistService(ctx).UserPlaylists(c.Param("userId"))
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Success.WithMessage("Playlists fetched successfully"), playlists)
}

func UpdatePlaylist(ctx context.Context, c *app.RequestContext) {
	req, ok := bindPlaylist(c)
	if !ok {
		return
	}
	playlist, err := service.NewPlaylistService(ctx).UpdatePlaylist(c.Param("playlistId"), pack.UserID(c), req)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Success.WithMessage("Playlist updated successfully"), playlist)
}

func DeletePlaylist(ctx context.Context, c *app.RequestContext) {
	if err := service.NewPlaylistService(ctx).DeletePlaylist(c.Param("playlistId"), pack.UserID(c)); err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Success.WithMessage("Playlist deleted successfully"), nil)
}

func AddVideo(ctx context.Context, c *app.RequestContext) {
	playlist, err := service.NewPlaylistService(ctx).AddVideo(c.Param("playlistId"), c.Param("videoId"), pack.UserID(c))
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Success.WithMessage("Video added to playlist successfully"), playlist)
}

func RemoveVideo(ctx context.Context, c *app.RequestContext) {
	playlist, err := service.NewPlaylistService(ctx).RemoveVideo(c.Param("playlistId"), c.Param("videoId"), pack.UserID(c))
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Success.WithMessage("Video removed from playlist successfully"), playlist)
}
