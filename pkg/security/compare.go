package security

import "crypto/subtle"

// SecureCompare 常量时间比较，用于验证码等短密钥
func SecureCompare(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
