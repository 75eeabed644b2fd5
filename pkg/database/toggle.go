package database

import (
	"context"

	"MyTube.com/pkg/errno"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ToggleSpec 描述一次开关操作：存在则删除，不存在则创建
type ToggleSpec[T any] struct {
	Actor string
	// Match 定位 (actor, target) 对应的行
	Match map[string]interface{}
	// Guard 在任何写操作之前执行
	Guard func(ctx context.Context) error
	// Precheck 仅在创建分支执行
	Precheck func(ctx context.Context) error
	New      func() *T
}

// Toggle 返回操作后的状态；active 为 true 时 record 为当前存在的记录
func Toggle[T any](ctx context.Context, db *gorm.DB, spec ToggleSpec[T]) (bool, *T, error) {
	if spec.Actor == "" {
		return false, nil, errno.AuthorizationFailedErr.WithMessage("Unauthorized request")
	}
	if spec.Guard != nil {
		if err := spec.Guard(ctx); err != nil {
			return false, nil, err
		}
	}

	res := db.WithContext(ctx).Where(spec.Match).Delete(new(T))
	if res.Error != nil {
		return false, nil, errors.Wrap(res.Error, "toggle delete")
	}
	if res.RowsAffected > 0 {
		return false, nil, nil
	}

	if spec.Precheck != nil {
		if err := spec.Precheck(ctx); err != nil {
			return false, nil, err
		}
	}
	record := spec.New()
	err := db.WithContext(ctx).Create(record).Error
	if err == nil {
		return true, record, nil
	}
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return false, nil, errors.Wrap(err, "toggle create")
	}

	// 并发的另一次请求已经创建
	winner := new(T)
	if err := db.WithContext(ctx).Where(spec.Match).Take(winner).Error; err != nil {
		return false, nil, errors.Wrap(err, "toggle reload")
	}
	return true, winner, nil
}
