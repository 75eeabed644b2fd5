package service

import (
	"context"

	"MyTube.com/cmd/model"
	"MyTube.com/cmd/user/dal/db"
	"MyTube.com/pkg/errno"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type GetUserInfoService struct {
	ctx context.Context
}

func NewGetUserInfoService(ctx context.Context) *GetUserInfoService {
	return &GetUserInfoService{ctx: ctx}
}

func (v *GetUserInfoService) GetUserInfo(userID string) (*model.User, error) {
	user, err := db.GetUserByID(v.ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errno.NotFoundErr.WithMessage("User not found")
	}
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetUserByID failed")
	}
	return user, nil
}
