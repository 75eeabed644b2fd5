package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"MyTube.com/cmd/interaction/dal/db"
	"MyTube.com/cmd/model"
	"MyTube.com/pkg/database"
	"MyTube.com/pkg/errno"
	"github.com/pkg/errors"
)

// MaxCommentLength 评论最大字符数
const MaxCommentLength = 500

type CommentService struct {
	ctx context.Context
}

func NewCommentService(ctx context.Context) *CommentService {
	return &CommentService{ctx: ctx}
}

func validateContent(content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", errno.ParamErr.WithMessage("Comment Content is required")
	}
	if utf8.RuneCountInString(content) > MaxCommentLength {
		return "", errno.ParamErr.WithMessage("Comment is too long")
	}
	return content, nil
}

func (s *CommentService) checkVideo(videoID string) error {
	if !database.ValidID(videoID) {
		return errno.ParamErr.WithMessage("Invalid Video Id")
	}
	found, err := db.VideoExists(s.ctx, videoID)
	if err != nil {
		return errors.WithMessage(err, "dao.VideoExists failed")
	}
	if !found {
		return errno.NotFoundErr.WithMessage("Video not found")
	}
	return nil
}

func (s *CommentService) ListComments(videoID string, page, limit int) (*database.Page[model.CommentItem], error) {
	if err := s.checkVideo(videoID); err != nil {
		return nil, err
	}
	return db.ListComments(s.ctx, videoID, page, limit)
}

func (s *CommentService) AddComment(videoID, userID, content string) (*model.Comment, error) {
	content, err := validateContent(content)
	if err != nil {
		return nil, err
	}
	if err = s.checkVideo(videoID); err != nil {
		return nil, err
	}
	c := &model.Comment{Content: content, VideoID: videoID, OwnerID: userID}
	if err = db.CreateComment(s.ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// UpdateComment 只有评论作者可以修改
func (s *CommentService) UpdateComment(commentID, userID, content string) (*model.Comment, error) {
	if !database.ValidID(commentID) {
		return nil, errno.ParamErr.WithMessage("Invalid Comment Id")
	}
	content, err := validateContent(content)
	if err != nil {
		return nil, err
	}
	return db.UpdateComment(s.ctx, commentID, userID, content)
}

func (s *CommentService) DeleteComment(commentID, userID string) error {
	if !database.ValidID(commentID) {
		return errno.ParamErr.WithMessage("Invalid Comment Id")
	}
	return db.DeleteComment(s.ctx, commentID, userID)
}
