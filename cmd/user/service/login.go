package service

import (
	"context"
	"strings"

	"MyTube.com/cmd/model"
	"MyTube.com/cmd/user/dal/db"
	"MyTube.com/pkg/errno"
	"MyTube.com/pkg/utils"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

type LoginService struct {
	ctx context.Context
}

func NewLoginService(ctx context.Context) *LoginService {
	return &LoginService{ctx: ctx}
}

var errInvalidCredentials = errno.AuthorizationFailedErr.WithMessage("Invalid user credentials")

// Login 支持邮箱或用户名登录
func (s *LoginService) Login(req *LoginRequest) (*model.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	username := strings.ToLower(strings.TrimSpace(req.Username))
	if (email == "" && username == "") || req.Password == "" {
		return nil, errno.ParamErr.WithMessage("Username or email and password are required")
	}

	var (
		user *model.User
		err  error
	)
	if email != "" {
		user, err = db.GetUserByEmail(s.ctx, email)
	} else {
		user, err = db.GetUserByUsername(s.ctx, username)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errInvalidCredentials
	}
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetUser failed")
	}
	if !user.Registered() || !utils.VerifyPassword(req.Password, user.PasswordHash) {
		return nil, errInvalidCredentials
	}
	return user, nil
}
