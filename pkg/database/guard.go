package database

import (
	"context"

	"MyTube.com/pkg/errno"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const ownedClause = "id = ? AND owner_id = ?"

func notFound(what string) error {
	return errno.NotFoundErr.WithMessage(what + " not found")
}

// FindOwned 读取 ownerID 名下的记录，不存在与不属于该用户一律视为 NotFound
func FindOwned(ctx context.Context, db *gorm.DB, dest interface{}, id, ownerID, what string) error {
	err := db.WithContext(ctx).Where(ownedClause, id, ownerID).Take(dest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound(what)
	}
	if err != nil {
		return errors.Wrapf(err, "find %s %s", what, id)
	}
	return nil
}

// UpdateOwned 更新 ownerID 名下的记录
func UpdateOwned(ctx context.Context, db *gorm.DB, model interface{}, id, ownerID string, updates map[string]interface{}, what string) error {
	res := db.WithContext(ctx).Model(model).Where(ownedClause, id, ownerID).Updates(updates)
	if res.Error != nil {
		return errors.Wrapf(res.Error, "update %s %s", what, id)
	}
	if res.RowsAffected > 0 {
		return nil
	}
	// MySQL 对值未变化的行返回 0
	var n int64
	if err := db.WithContext(ctx).Model(model).Where(ownedClause, id, ownerID).Count(&n).Error; err != nil {
		return errors.Wrapf(err, "update %s %s", what, id)
	}
	if n == 0 {
		return notFound(what)
	}
	return nil
}

// DeleteOwned 删除 ownerID 名下的记录
func DeleteOwned(ctx context.Context, db *gorm.DB, model interface{}, id, ownerID, what string) error {
	res := db.WithContext(ctx).Where(ownedClause, id, ownerID).Delete(model)
	if res.Error != nil {
		return errors.Wrapf(res.Error, "delete %s %s", what, id)
	}
	if res.RowsAffected == 0 {
		return notFound(what)
	}
	return nil
}
