// Package testutil 为存储相关测试提供内存 SQLite 数据库
package testutil

import (
	"fmt"
	"testing"

	"MyTube.com/cmd/model"
	"MyTube.com/pkg/database"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB 每次调用返回一个独立的、已迁移的库，测试结束时关闭
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := database.Open(database.Options{
		Driver:   database.DriverSQLite,
		DSN:      dsn,
		LogLevel: logger.Silent,
	})
	require.NoError(t, err)
	require.NoError(t, model.AutoMigrate(db))
	t.Cleanup(func() { database.Close(db) })
	return db
}

// CreateUser 写入一个已注册的用户
func CreateUser(t testing.TB, db *gorm.DB, username string) *model.User {
	t.Helper()
	name := username
	u := &model.User{
		Email:        username + "@example.com",
		Username:     &name,
		FullName:     username,
		PasswordHash: "x",
		Verified:     true,
		Avatar:       model.MediaRef{URL: "http://media/" + username + ".png", PublicID: username},
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func CreateVideo(t testing.TB, db *gorm.DB, owner *model.User, title string, views int64, published bool) *model.Video {
	t.Helper()
	v := &model.Video{
		Title:       title,
		Description: title + " description",
		VideoFile:   model.MediaRef{URL: "http://media/" + title + ".mp4", PublicID: "mytube/videos/" + title},
		Thumbnail:   model.MediaRef{URL: "http://media/" + title + ".jpg", PublicID: "mytube/thumbnails/" + title},
		Duration:    12.5,
		Views:       views,
		IsPublished: published,
		OwnerID:     owner.ID,
	}
	require.NoError(t, db.Create(v).Error)
	return v
}

func CreateComment(t testing.TB, db *gorm.DB, owner *model.User, video *model.Video, content string) *model.Comment {
	t.Helper()
	c := &model.Comment{Content: content, VideoID: video.ID, OwnerID: owner.ID}
	require.NoError(t, db.Create(c).Error)
	return c
}

func CreateTweet(t testing.TB, db *gorm.DB, owner *model.User, content string) *model.Tweet {
	t.Helper()
	tw := &model.Tweet{Content: content, OwnerID: owner.ID}
	require.NoError(t, db.Create(tw).Error)
	return tw
}

func Like(t testing.TB, db *gorm.DB, by *model.User, kind, targetID string) {
	t.Helper()
	require.NoError(t, db.Create(&model.Like{TargetKind: kind, TargetID: targetID, LikedBy: by.ID}).Error)
}

func Subscribe(t testing.TB, db *gorm.DB, subscriber, channel *model.User) {
	t.Helper()
	require.NoError(t, db.Create(&model.Subscription{SubscriberID: subscriber.ID, ChannelID: channel.ID}).Error)
}
