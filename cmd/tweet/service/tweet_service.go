package service

import (
	"context"
	"mime/multipart"
	"strings"

	"MyTube.com/cmd/model"
	"MyTube.com/cmd/tweet/dal/db"
	"MyTube.com/pkg/database"
	"MyTube.com/pkg/errno"
	"MyTube.com/pkg/oss"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
)

type TweetRequest struct {
	Content string         `json:"content" form:"content"`
	Image   model.MediaRef `json:"image"`

	ImageUpload *multipart.FileHeader `json:"-" form:"-"`
}

type TweetService struct {
	ctx   context.Context
	media oss.MediaStore
}

func NewTweetService(ctx context.Context, media oss.MediaStore) *TweetService {
	return &TweetService{ctx: ctx, media: media}
}

func invalidTweetID() error {
	return errno.ParamErr.WithMessage("Invalid tweet id")
}

// uploadImage 没有表单文件时使用直传引用，current 为原图时不再校验
func (s *TweetService) uploadImage(ownerID string, req *TweetRequest, current model.MediaRef) (model.MediaRef, error) {
	if req.ImageUpload == nil {
		if req.Image.IsZero() || req.Image == current {
			return req.Image, nil
		}
		if err := oss.CheckRef(s.media, oss.KindImage, ownerID, req.Image); err != nil {
			return model.MediaRef{}, err
		}
		return req.Image, nil
	}
	f, err := req.ImageUpload.Open()
	if err != nil {
		return model.MediaRef{}, errno.ParamErr.WithMessage("Uploaded file is unreadable")
	}
	defer f.Close()
	ref, err := s.media.Upload(s.ctx, oss.KindImage, req.ImageUpload.Filename, f, req.ImageUpload.Size,
		req.ImageUpload.Header.Get("Content-Type"))
	return ref, errors.WithMessage(err, "upload tweet image failed")
}

func (s *TweetService) cleanup(ref model.MediaRef) {
	if ref.PublicID == "" {
		return
	}
	if err := s.media.Delete(s.ctx, ref.PublicID); err != nil {
		hlog.CtxWarnf(s.ctx, "delete tweet image %s failed: %v", ref.PublicID, err)
	}
}

// CreateTweet 图片可选
func (s *TweetService) CreateTweet(ownerID string, req *TweetRequest) (*model.Tweet, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, errno.ParamErr.WithMessage("Content is required to create a tweet")
	}
	image, err := s.uploadImage(ownerID, req, model.MediaRef{})
	if err != nil {
		return nil, err
	}
	t := &model.Tweet{Content: content, Image: image, OwnerID: ownerID}
	if err = db.CreateTweet(s.ctx, t); err != nil {
		if req.ImageUpload != nil {
			s.cleanup(image)
		}
		return nil, err
	}
	return t, nil
}

func (s *TweetService) ChannelTweets(channelID, viewerID string, page, limit int) (*database.Page[model.TweetItem], error) {
	if !database.ValidID(channelID) {
		return nil, errno.ParamErr.WithMessage("Invalid channel id")
	}
	found, err := db.UserExists(s.ctx, channelID)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.UserExists failed")
	}
	if !found {
		return nil, errno.NotFoundErr.WithMessage("Channel not found")
	}
	return db.ChannelTweets(s.ctx, channelID, viewerID, page, limit)
}

// UpdateTweet 内容和图片至少提供一个，替换图片后删除旧图
func (s *TweetService) UpdateTweet(tweetID, ownerID string, req *TweetRequest) (*model.Tweet, error) {
	if !database.ValidID(tweetID) {
		return nil, invalidTweetID()
	}
	content := strings.TrimSpace(req.Content)
	newImage := req.ImageUpload != nil || req.Image.URL != ""
	if content == "" && !newImage {
		return nil, errno.ParamErr.WithMessage("Content or image is required to update a tweet")
	}
	old, err := db.GetOwnedTweet(s.ctx, tweetID, ownerID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if content != "" {
		updates["content"] = content
	}
	var image model.MediaRef
	if newImage {
		if image, err = s.uploadImage(ownerID, req, old.Image); err != nil {
			return nil, err
		}
		updates["image_url"] = image.URL
		updates["image_public_id"] = image.PublicID
	}
	if err = db.UpdateTweet(s.ctx, tweetID, ownerID, updates); err != nil {
		if req.ImageUpload != nil {
			s.cleanup(image)
		}
		return nil, err
	}
	if newImage && old.Image.PublicID != image.PublicID {
		s.cleanup(old.Image)
	}
	return db.GetOwnedTweet(s.ctx, tweetID, ownerID)
}

func (s *TweetService) DeleteTweet(tweetID, ownerID string) error {
	if !database.ValidID(tweetID) {
		return invalidTweetID()
	}
	t, err := db.DeleteTweet(s.ctx, tweetID, ownerID)
	if err != nil {
		return err
	}
	s.cleanup(t.Image)
	return nil
}
