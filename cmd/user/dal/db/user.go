package db

import (
	"context"
	"time"

	"MyTube.com/cmd/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func GetUserByID(ctx context.Context, userID string) (*model.User, error) {
	var user model.User
	if err := DB.WithContext(ctx).Where("id = ?", userID).Take(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail 未找到时返回 gorm.ErrRecordNotFound
func GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := DB.WithContext(ctx).Where("email = ?", email).Take(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	if err := DB.WithContext(ctx).Where("username = ?", username).Take(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// SaveOTP 为邮箱记录验证码，邮箱第一次出现时创建待注册用户
func SaveOTP(ctx context.Context, email, otp string, expiry time.Time) error {
	updates := map[string]interface{}{"otp": otp, "otp_expiry": expiry, "otp_attempts": 0}
	res := DB.WithContext(ctx).Model(&model.User{}).Where("email = ?", email).Updates(updates)
	if res.Error != nil {
		return errors.Wrapf(res.Error, "save otp for %s", email)
	}
	if res.RowsAffected > 0 {
		return nil
	}

	err := DB.WithContext(ctx).Create(&model.User{Email: email, OTP: otp, OTPExpiry: &expiry}).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// 同一邮箱的并发请求已经创建了记录
		err = DB.WithContext(ctx).Model(&model.User{}).Where("email = ?", email).Updates(updates).Error
	}
	return errors.Wrapf(err, "save otp for %s", email)
}

func ClearOTP(ctx context.Context, userID string) error {
	err := DB.WithContext(ctx).Model(&model.User{}).Where("id = ?", userID).
		Updates(map[string]interface{}{"otp": "", "otp_expiry": nil, "otp_attempts": 0}).Error
	return errors.Wrapf(err, "clear otp of %s", userID)
}

// RecordOTPFailure 累加输错次数，达到 limit 时清除验证码并返回 true
func RecordOTPFailure(ctx context.Context, userID string, limit int) (bool, error) {
	err := DB.WithContext(ctx).Model(&model.User{}).Where("id = ?", userID).
		Update("otp_attempts", gorm.Expr("otp_attempts + 1")).Error
	if err != nil {
		return false, errors.Wrapf(err, "record otp failure of %s", userID)
	}
	res := DB.WithContext(ctx).Model(&model.User{}).
		Where("id = ? AND otp_attempts >= ?", userID, limit).
		Updates(map[string]interface{}{"otp": "", "otp_expiry": nil, "otp_attempts": 0})
	if res.Error != nil {
		return false, errors.Wrapf(res.Error, "clear otp of %s", userID)
	}
	return res.RowsAffected > 0, nil
}

// MarkVerified 验证成功后标记邮箱并清除验证码
func MarkVerified(ctx context.Context, userID string) error {
	err := DB.WithContext(ctx).Model(&model.User{}).Where("id = ?", userID).
		Updates(map[string]interface{}{"verified": true, "otp": "", "otp_expiry": nil, "otp_attempts": 0}).Error
	return errors.Wrapf(err, "verify %s", userID)
}

// CompleteRegistration 只对已验证且尚未设置密码的记录生效，返回是否更新成功
func CompleteRegistration(ctx context.Context, userID, username, fullName, passwordHash string) (bool, error) {
	res := DB.WithContext(ctx).Model(&model.User{}).
		Where("id = ? AND verified = ? AND (password_hash = '' OR password_hash IS NULL)", userID, true).
		Updates(map[string]interface{}{
			"username":      username,
			"full_name":     fullName,
			"password_hash": passwordHash,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func UpdateAvatar(ctx context.Context, userID string, avatar model.MediaRef) error {
	err := DB.WithContext(ctx).Model(&model.User{}).Where("id = ?", userID).
		Updates(map[string]interface{}{"avatar_url": avatar.URL, "avatar_public_id": avatar.PublicID}).Error
	return errors.Wrapf(err, "update avatar of %s", userID)
}
