package database

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// Counter 是一个具名的计数查询
type Counter struct {
	Name  string
	Count func(ctx context.Context) (int64, error)
}

// Stats 并发执行存在性检查和全部计数，任何一个失败则整体失败
func Stats(ctx context.Context, exists func(ctx context.Context) (bool, error), what string, counters ...Counter) (map[string]int64, error) {
	var (
		mu    sync.Mutex
		found = true
		out   = make(map[string]int64, len(counters))
	)
	g, gctx := errgroup.WithContext(ctx)
	if exists != nil {
		g.Go(func() error {
			ok, err := exists(gctx)
			if err != nil {
				return err
			}
			mu.Lock()
			found = ok
			mu.Unlock()
			return nil
		})
	}
	for _, c := range counters {
		c := c
		g.Go(func() error {
			n, err := c.Count(gctx)
			if err != nil {
				return errors.WithMessagef(err, "counter %s", c.Name)
			}
			mu.Lock()
			out[c.Name] = n
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if !found {
		return nil, notFound(what)
	}
	return out, nil
}

// Exists 按主键检查记录是否存在
func Exists(db *gorm.DB, table, id string) func(ctx context.Context) (bool, error) {
	return func(ctx context.Context) (bool, error) {
		var n int64
		if err := db.WithContext(ctx).Table(table).Where("id = ?", id).Count(&n).Error; err != nil {
			return false, errors.Wrapf(err, "check %s %s", table, id)
		}
		return n > 0, nil
	}
}

// Count 统计 table 中满足条件的行数
func Count(db *gorm.DB, table, query string, args ...interface{}) func(ctx context.Context) (int64, error) {
	return func(ctx context.Context) (int64, error) {
		var n int64
		err := db.WithContext(ctx).Table(table).Where(query, args...).Count(&n).Error
		return n, errors.Wrapf(err, "count %s", table)
	}
}

// Sum 对 column 求和，空集合为 0
func Sum(db *gorm.DB, table, column, query string, args ...interface{}) func(ctx context.Context) (int64, error) {
	return func(ctx context.Context) (int64, error) {
		var n int64
		err := db.WithContext(ctx).Table(table).Select("COALESCE(SUM("+column+"), 0)").Where(query, args...).Row().Scan(&n)
		return n, errors.Wrapf(err, "sum %s.%s", table, column)
	}
}

// JoinCount 先连接 join 再计数，如统计某频道所有视频获得的点赞
func JoinCount(db *gorm.DB, table, join, query string, args ...interface{}) func(ctx context.Context) (int64, error) {
	return func(ctx context.Context) (int64, error) {
		var n int64
		err := db.WithContext(ctx).Table(table).Joins(join).Where(query, args...).Count(&n).Error
		return n, errors.Wrapf(err, "count %s", table)
	}
}
