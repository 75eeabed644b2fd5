package model

import (
	"time"

	"MyTube.com/pkg/constants"
)

type User struct {
	Base
	Email        string     `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Username     *string    `gorm:"size:64;uniqueIndex" json:"username"`
	FullName     string     `gorm:"size:128" json:"fullName"`
	Avatar       MediaRef   `gorm:"embedded;embeddedPrefix:avatar_" json:"avatar"`
	PasswordHash string     `gorm:"size:255" json:"-"`
	Verified     bool       `gorm:"not null" json:"verified"`
	OTP          string     `gorm:"column:otp;size:16" json:"-"`
	OTPExpiry    *time.Time `gorm:"column:otp_expiry" json:"-"`
	OTPAttempts  int        `gorm:"column:otp_attempts;not null;default:0" json:"-"`
}

func (User) TableName() string {
	return constants.UserTableName
}

// Registered 邮箱验证后完成注册的用户才有密码
func (u *User) Registered() bool {
	return u.PasswordHash != ""
}
