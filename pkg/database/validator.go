package database

import "github.com/google/uuid"

// ValidID 只接受规范形式的 UUID，不检查记录是否存在
func ValidID(id string) bool {
	if len(id) != 36 {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}
