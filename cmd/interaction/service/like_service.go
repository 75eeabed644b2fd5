package service

import (
	"context"

	"MyTube.com/cmd/interaction/dal/db"
	"MyTube.com/cmd/model"
	"MyTube.com/pkg/constants"
	"MyTube.com/pkg/database"
	"MyTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// LikeResult 点赞开关的结果，取消点赞时 Like 为空
type LikeResult struct {
	Liked bool        `json:"liked"`
	Like  *model.Like `json:"like,omitempty"`
}

type LikeService struct {
	ctx context.Context
}

func NewLikeService(ctx context.Context) *LikeService {
	return &LikeService{ctx: ctx}
}

var invalidTargetMsg = map[string]string{
	constants.LikeTargetVideo:   "Invalid video id",
	constants.LikeTargetComment: "Invalid comment id",
	constants.LikeTargetTweet:   "Invalid tweet id",
}

// ToggleLike kind 为 video/comment/tweet
func (s *LikeService) ToggleLike(kind, targetID, userID string) (*LikeResult, error) {
	msg, ok := invalidTargetMsg[kind]
	if !ok {
		return nil, errno.ParamErr.WithMessage("Invalid like target")
	}
	if !database.ValidID(targetID) {
		return nil, errno.ParamErr.WithMessage(msg)
	}
	liked, like, err := db.ToggleLike(s.ctx, kind, targetID, userID)
	if err != nil {
		return nil, err
	}
	hlog.CtxDebugf(s.ctx, "user %s toggled %s like on %s: %v", userID, kind, targetID, liked)
	return &LikeResult{Liked: liked, Like: like}, nil
}

func (s *LikeService) LikedVideos(userID string, page, limit int) (*database.Page[model.LikedVideoItem], error) {
	if userID == "" {
		return nil, errno.AuthorizationFailedErr
	}
	return db.LikedVideos(s.ctx, userID, page, limit)
}
