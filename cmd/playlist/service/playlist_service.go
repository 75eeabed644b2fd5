package service

import (
	"context"
	"strings"

	"MyTube.com/cmd/model"
	"MyTube.com/cmd/playlist/dal/db"
	"MyTube.com/pkg/database"
	"MyTube.com/pkg/errno"
)

type PlaylistRequest struct {
	Name        string `json:"name" form:"name"`
	Description string `json:"description" form:"description"`
}

type PlaylistService struct {
	ctx context.Context
}

func NewPlaylistService(ctx context.Context) *PlaylistService {
	return &PlaylistService{ctx: ctx}
}

func checkID(id, what string) error {
	if !database.ValidID(id) {
		return errno.ParamErr.WithMessage("Invalid " + what + " id")
	}
	return nil
}

func (s *PlaylistService) CreatePlaylist(ownerID string, req *PlaylistRequest) (*model.Playlist, error) {
	name, description := strings.TrimSpace(req.Name), strings.TrimSpace(req.Description)
	if name == "" || description == "" {
		return nil, errno.ParamErr.WithMessage("Name and description are required")
	}
	p := &model.Playlist{Name: name, Description: description, OwnerID: ownerID}
	if err := db.CreatePlaylist(s.ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PlaylistService) GetPlaylist(playlistID string) (*model.PlaylistDetail, error) {
	if err := checkID(playlistID, "playlist"); err != nil {
		return nil, err
	}
	return db.GetPlaylist(s.ctx, playlistID)
}

func (s *PlaylistService) UserPlaylists(userID string) ([]model.PlaylistDetail, error) {
	if err := checkID(userID, "user"); err != nil {
		return nil, err
	}
	return db.UserPlaylists(s.ctx, userID)
}

// UpdatePlaylist 名称和描述至少提供一个
func (s *PlaylistService) UpdatePlaylist(playlistID, ownerID string, req *PlaylistRequest) (*model.PlaylistDetail, error) {
	if err := checkID(playlistID, "playlist"); err != nil {
		return nil, err
	}
	updates := map[string]interface{}{}
	if name := strings.TrimSpace(req.Name); name != "" {
		updates["name"] = name
	}
	if description := strings.TrimSpace(req.Description); description != "" {
		updates["description"] = description
	}
	if len(updates) == 0 {
		return nil, errno.ParamErr.WithMessage("Name or description is required")
	}
	if err := db.UpdatePlaylist(s.ctx, playlistID, ownerID, updates); err != nil {
		return nil, err
	}
	return db.GetPlaylist(s.ctx, playlistID)
}

func (s *PlaylistService) DeletePlaylist(playlistID, ownerID string) error {
	if err := checkID(playlistID, "playlist"); err != nil {
		return err
	}
	return db.DeletePlaylist(s.ctx, playlistID, ownerID)
}

func (s *PlaylistService) AddVideo(playlistID, videoID, ownerID string) (*model.PlaylistDetail, error) {
	if err := checkID(playlistID, "playlist"); err != nil {
		return nil, err
	}
	if err := checkID(videoID, "video"); err != nil {
		return nil, err
	}
	if err := db.AddVideo(s.ctx, playlistID, videoID, ownerID); err != nil {
		return nil, err
	}
	return db.GetPlaylist(s.ctx, playlistID)
}

func (s *PlaylistService) RemoveVideo(playlistID, videoID, ownerID string) (*model.PlaylistDetail, error) {
	if err := checkID(playlistID, "playlist"); err != nil {
		return nil, err
	}
	if err := checkID(videoID, "video"); err != nil {
		return nil, err
	}
	if err := db.RemoveVideo(s.ctx, playlistID, videoID, ownerID); err != nil {
		return nil, err
	}
	return db.GetPlaylist(s.ctx, playlistID)
}
