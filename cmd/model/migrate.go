package model

import "gorm.io/gorm"

// Tables 按依赖顺序列出全部实体
func Tables() []interface{} {
	return []interface{}{
		&User{},
		&Video{},
		&Comment{},
		&Like{},
		&Subscription{},
		&Tweet{},
		&Playlist{},
		&PlaylistVideo{},
	}
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(Tables()...)
}
