package service

import (
	"context"
	"mime/multipart"
	"strings"

	"MyTube.com/cmd/model"
	"MyTube.com/cmd/video/dal/db"
	"MyTube.com/pkg/errno"
	"MyTube.com/pkg/oss"
)

type UpdateVideoRequest struct {
	Title       string         `json:"title" form:"title"`
	Description string         `json:"description" form:"description"`
	Thumbnail   model.MediaRef `json:"thumbnail"`

	ThumbnailUpload *multipart.FileHeader `json:"-" form:"-"`
}

type UpdateVideoService struct {
	ctx   context.Context
	media oss.MediaStore
}

func NewUpdateVideoService(ctx context.Context, media oss.MediaStore) *UpdateVideoService {
	return &UpdateVideoService{ctx: ctx, media: media}
}

// Update 修改标题、简介或封面，替换封面后删除旧文件
func (s *UpdateVideoService) Update(videoID, ownerID string, req *UpdateVideoRequest) (*model.Video, error) {
	if err := checkVideoID(videoID); err != nil {
		return nil, err
	}
	title := strings.TrimSpace(req.Title)
	description := strings.TrimSpace(req.Description)
	newThumbnail := req.ThumbnailUpload != nil || req.Thumbnail.URL != ""
	if title == "" && description == "" && !newThumbnail {
		return nil, errno.ParamErr.WithMessage("Atleast one field is required to update")
	}

	old, err := db.GetOwnedVideo(s.ctx, videoID, ownerID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if title != "" {
		updates["title"] = title
	}
	if description != "" {
		updates["description"] = description
	}
	thumbnail := req.Thumbnail
	if newThumbnail && req.ThumbnailUpload == nil && thumbnail != old.Thumbnail {
		if err = oss.CheckRef(s.media, oss.KindImage, ownerID, thumbnail); err != nil {
			return nil, err
		}
	}
	if req.ThumbnailUpload != nil {
		if thumbnail, err = upload(s.ctx, s.media, oss.KindImage, req.ThumbnailUpload); err != nil {
			return nil, err
		}
	}
	if newThumbnail {
		updates["thumbnail_url"] = thumbnail.URL
		updates["thumbnail_public_id"] = thumbnail.PublicID
	}

	if err = db.UpdateVideo(s.ctx, videoID, ownerID, updates); err != nil {
		if req.ThumbnailUpload != nil {
			cleanup(s.ctx, s.media, thumbnail)
		}
		return nil, err
	}
	if newThumbnail && old.Thumbnail.PublicID != thumbnail.PublicID {
		cleanup(s.ctx, s.media, old.Thumbnail)
	}
	return db.GetOwnedVideo(s.ctx, videoID, ownerID)
}
