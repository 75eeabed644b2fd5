package utils

import (
	"context"
	"strings"
	"testing"

	"MyTube.com/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOTP(t *testing.T) {
	for i := 0; i < 50; i++ {
		otp, err := GenerateOTP(4)
		require.NoError(t, err)
		assert.Len(t, otp, 4)
		assert.NotEqual(t, byte('0'), otp[0])
		for _, r := range otp {
			assert.True(t, r >= '0' && r <= '9')
		}
	}
}

func TestCryptAndVerify(t *testing.T) {
	hash, err := Crypt("s3cret")
	require.NoError(t, err)
	assert.True(t, VerifyPassword("s3cret", hash))
	assert.False(t, VerifyPassword("wrong", hash))
	assert.False(t, VerifyPassword("s3cret", ""))
}

func TestBuildMessage(t *testing.T) {
	msg := string(BuildMessage("a@x.com", "b@y.com", "Your OTP Code", "1234"))
	assert.True(t, strings.HasPrefix(msg, "From: a@x.com\r\nTo: b@y.com\r\nSubject: Your OTP Code\r\n"))
	assert.True(t, strings.HasSuffix(msg, "\r\n\r\n1234"))
}

func TestGetMysqlDsn(t *testing.T) {
	config.ConfigInfo.Mysql.Username = "root"
	config.ConfigInfo.Mysql.Password = "pw"
	config.ConfigInfo.Mysql.Addr = "db:3306"
	config.ConfigInfo.Mysql.Database = "mytube"
	config.ConfigInfo.Mysql.Charset = ""
	assert.Equal(t, "root:pw@tcp(db:3306)/mytube?charset=utf8mb4&parseTime=True&loc=Local", GetMysqlDsn())
}

func TestLogNotifier(t *testing.T) {
	assert.NoError(t, LogNotifier{}.Notify(context.Background(), "a@b.c", "s", "b"))
}
