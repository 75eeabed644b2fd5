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

const minPasswordLength = 6

type RegisterRequest struct {
	Email    string `json:"email" form:"email"`
	Username string `json:"username" form:"username"`
	FullName string `json:"fullName" form:"fullName"`
	Password string `json:"password" form:"password"`
}

type RegisterService struct {
	ctx context.Context
}

func NewRegisterService(ctx context.Context) *RegisterService {
	return &RegisterService{ctx: ctx}
}

// Register 为已通过验证码校验的邮箱设置用户名和密码
func (s *RegisterService) Register(req *RegisterRequest) (*model.User, error) {
	email, err := NormalizeEmail(req.Email)
	if err != nil {
		return nil, err
	}
	username := strings.ToLower(strings.TrimSpace(req.Username))
	fullName := strings.TrimSpace(req.FullName)
	if username == "" || fullName == "" || req.Password == "" {
		return nil, errno.ParamErr.WithMessage("All fields are required")
	}
	if len(req.Password) < minPasswordLength {
		return nil, errno.ParamErr.WithMessage("Password must be at least 6 characters")
	}

	user, err := db.GetUserByEmail(s.ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errno.ParamErr.WithMessage("Email is not verified")
	}
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetUserByEmail failed")
	}
	if user.Registered() {
		return nil, errno.ConflictErr.WithMessage("Email is already registered")
	}
	if !user.Verified {
		return nil, errno.ParamErr.WithMessage("Email is not verified")
	}

	hash, err := utils.Crypt(req.Password)
	if err != nil {
		return nil, errors.WithMessage(err, "hash password failed")
	}
	ok, err := db.CompleteRegistration(s.ctx, user.ID, username, fullName, hash)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, errno.ConflictErr.WithMessage("Username is already taken")
	}
	if err != nil {
		return nil, errors.WithMessage(err, "dao.CompleteRegistration failed")
	}
	if !ok {
		return nil, errno.ConflictErr.WithMessage("Email is already registered")
	}
	return db.GetUserByID(s.ctx, user.ID)
}
