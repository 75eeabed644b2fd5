package utils

import (
	"strings"

	"MyTube.com/config"
)

func GetMysqlDsn() string {
	charset := config.ConfigInfo.Mysql.Charset
	if charset == "" {
		charset = "utf8mb4"
	}
	return strings.Join([]string{config.ConfigInfo.Mysql.Username, ":",
		config.ConfigInfo.Mysql.Password, "@tcp(", config.ConfigInfo.Mysql.Addr, ")/",
		config.ConfigInfo.Mysql.Database, "?charset=" + charset + "&parseTime=True&loc=Local"}, "") //nolint:lll
}

// GetSqliteDsn 单机部署时使用
func GetSqliteDsn() string {
	return "file:" + config.ConfigInfo.Sqlite.Path + "?_journal_mode=WAL&_busy_timeout=5000"
}
