package service

import (
	"context"
	"mime/multipart"

	"MyTube.com/cmd/model"
	"MyTube.com/cmd/user/dal/db"
	"MyTube.com/pkg/errno"
	"MyTube.com/pkg/oss"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
)

type UpdateAvatarService struct {
	ctx   context.Context
	media oss.MediaStore
}

func NewUpdateAvatarService(ctx context.Context, media oss.MediaStore) *UpdateAvatarService {
	return &UpdateAvatarService{ctx: ctx, media: media}
}

// UpdateAvatar 上传新头像，旧头像删除失败只记录日志
func (s *UpdateAvatarService) UpdateAvatar(userID string, file *multipart.FileHeader) (*model.User, error) {
	if file == nil {
		return nil, errno.ParamErr.WithMessage("Avatar file is missing")
	}
	user, err := NewGetUserInfoService(s.ctx).GetUserInfo(userID)
	if err != nil {
		return nil, err
	}

	f, err := file.Open()
	if err != nil {
		return nil, errno.ParamErr.WithMessage("Avatar file is unreadable")
	}
	defer f.Close()

	ref, err := s.media.Upload(s.ctx, oss.KindAvatar, file.Filename, f, file.Size, file.Header.Get("Content-Type"))
	if err != nil {
		return nil, errors.WithMessage(err, "upload avatar failed")
	}
	if err = db.UpdateAvatar(s.ctx, userID, ref); err != nil {
		return nil, err
	}

	if old := user.Avatar; old.PublicID != "" {
		if err := s.media.Delete(s.ctx, old.PublicID); err != nil {
			hlog.CtxWarnf(s.ctx, "delete old avatar %s failed: %v", old.PublicID, err)
		}
	}
	user.Avatar = ref
	hlog.CtxInfof(s.ctx, "用户 %s 头像更新成功: %s", userID, ref.URL)
	return user, nil
}
