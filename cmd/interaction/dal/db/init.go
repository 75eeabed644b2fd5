package db

import "gorm.io/gorm"

var DB *gorm.DB

// Init 使用共享连接
func Init(db *gorm.DB) {
	DB = db
}
