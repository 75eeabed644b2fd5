package security

import (
	"crypto/tls"
	"crypto/x509"
	"os"

	"github.com/pkg/errors"
)

// TLSConfig HTTPS 证书配置，CertFile 为空时不启用
type TLSConfig struct {
	CertFile string
	KeyFile  string
	// CAFile 非空时要求客户端证书
	CAFile string
}

func NewTLSConfig(certFile, keyFile, caFile string) *TLSConfig {
	return &TLSConfig{
		CertFile: certFile,
		KeyFile:  keyFile,
		CAFile:   caFile,
	}
}

func (tc *TLSConfig) Enabled() bool {
	return tc != nil && tc.CertFile != ""
}

// GetServerTLSConfig 获取服务端TLS配置
func (tc *TLSConfig) GetServerTLSConfig() (*tls.Config, error) {
	cert, err := tls.LoadX509KeyPair(tc.CertFile, tc.KeyFile)
	if err != nil {
		return nil, errors.Wrap(err, "load server certificate")
	}

	config := &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   tls.VersionTLS12, // 强制使用TLS 1.2+
		CipherSuites: []uint16{
			tls.TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384,
			tls.TLS_ECDHE_RSA_WITH_CHACHA20_POLY1305,
			tls.TLS_ECDHE_ECDSA_WITH_AES_256_GCM_SHA384,
			tls.TLS_ECDHE_ECDSA_WITH_CHACHA20_POLY1305,
		},
	}

	if tc.CAFile != "" {
		caCert, err := os.ReadFile(tc.CAFile)
		if err != nil {
			return nil, errors.Wrap(err, "read CA certificate")
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(caCert) {
			return nil, errors.Errorf("no certificate found in %s", tc.CAFile)
		}
		config.ClientCAs = pool
		config.ClientAuth = tls.RequireAndVerifyClientCert
	}
	return config, nil
}
