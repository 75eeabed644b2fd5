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

// PublishVideoRequest 媒体可以是表单文件，也可以是客户端直传后得到的引用
type PublishVideoRequest struct {
	Title       string         `json:"title" form:"title"`
	Description string         `json:"description" form:"description"`
	Duration    float64        `json:"duration" form:"duration"`
	VideoFile   model.MediaRef `json:"videoFile"`
	Thumbnail   model.MediaRef `json:"thumbnail"`

	VideoUpload     *multipart.FileHeader `json:"-" form:"-"`
	ThumbnailUpload *multipart.FileHeader `json:"-" form:"-"`
}

type PublishVideoService struct {
	ctx   context.Context
	media oss.MediaStore
}

func NewPublishVideoService(ctx context.Context, media oss.MediaStore) *PublishVideoService {
	return &PublishVideoService{ctx: ctx, media: media}
}

func (s *PublishVideoService) Publish(ownerID string, req *PublishVideoRequest) (*model.Video, error) {
	title := strings.TrimSpace(req.Title)
	description := strings.TrimSpace(req.Description)
	hasVideo := req.VideoUpload != nil || req.VideoFile.URL != ""
	hasThumbnail := req.ThumbnailUpload != nil || req.Thumbnail.URL != ""
	if title == "" || description == "" || !hasVideo || !hasThumbnail || req.Duration <= 0 {
		return nil, errno.ParamErr.WithMessage("All fields are required")
	}

	// 直传引用必须落在当前用户的目录下，避免引用并在之后删除他人的文件
	if req.VideoUpload == nil {
		if err := oss.CheckRef(s.media, oss.KindVideo, ownerID, req.VideoFile); err != nil {
			return nil, err
		}
	}
	if req.ThumbnailUpload == nil {
		if err := oss.CheckRef(s.media, oss.KindImage, ownerID, req.Thumbnail); err != nil {
			return nil, err
		}
	}

	videoFile, thumbnail := req.VideoFile, req.Thumbnail
	if req.VideoUpload != nil {
		ref, err := upload(s.ctx, s.media, oss.KindVideo, req.VideoUpload)
		if err != nil {
			return nil, err
		}
		videoFile = ref
	}
	if req.ThumbnailUpload != nil {
		ref, err := upload(s.ctx, s.media, oss.KindImage, req.ThumbnailUpload)
		if err != nil {
			if req.VideoUpload != nil {
				cleanup(s.ctx, s.media, videoFile)
			}
			return nil, err
		}
		thumbnail = ref
	}

	video := &model.Video{
		Title:       title,
		Description: description,
		VideoFile:   videoFile,
		Thumbnail:   thumbnail,
		Duration:    req.Duration,
		IsPublished: true,
		OwnerID:     ownerID,
	}
	if err := db.CreateVideo(s.ctx, video); err != nil {
		var uploaded []model.MediaRef
		if req.VideoUpload != nil {
			uploaded = append(uploaded, videoFile)
		}
		if req.ThumbnailUpload != nil {
			uploaded = append(uploaded, thumbnail)
		}
		cleanup(s.ctx, s.media, uploaded...)
		return nil, err
	}
	return video, nil
}
