package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var ConfigInfo config

func setDefaults() {
	viper.SetDefault("server.name", "mytube")
	viper.SetDefault("server.addr", ":8000")
	viper.SetDefault("server.cors_origins", []string{"*"})

	viper.SetDefault("database.driver", "mysql")
	viper.SetDefault("database.max_open_conns", 50)
	viper.SetDefault("database.max_idle_conns", 10)
	viper.SetDefault("database.conn_max_lifetime", "1h")
	viper.SetDefault("database.auto_migrate", true)

	viper.SetDefault("mysql.addr", "127.0.0.1:3306")
	viper.SetDefault("mysql.database", "mytube")
	viper.SetDefault("mysql.username", "root")
	viper.SetDefault("mysql.charset", "utf8mb4")
	viper.SetDefault("sqlite.path", "mytube.db")

	viper.SetDefault("redis.addr", "127.0.0.1:6379")
	viper.SetDefault("rabbitmq.addr", "127.0.0.1:5672")
	viper.SetDefault("rabbitmq.username", "guest")
	viper.SetDefault("rabbitmq.password", "guest")

	viper.SetDefault("minio.endpoint", "127.0.0.1:9000")
	viper.SetDefault("minio.bucket", "mytube")
	viper.SetDefault("minio.presign_expiry", "15m")

	viper.SetDefault("jwt.secret", "mytube-secret")
	viper.SetDefault("jwt.timeout", "24h")
	viper.SetDefault("jwt.max_refresh", "240h")

	viper.SetDefault("smtp.port", 587)
	viper.SetDefault("otp.send_limit", 3)
	viper.SetDefault("otp.send_window", "10m")
	viper.SetDefault("notify.mode", "log")

	viper.SetDefault("jaeger.agent_addr", "127.0.0.1:6831")
	viper.SetDefault("jaeger.sample_rate", 1.0)
	viper.SetDefault("sentinel.qps", 1000.0)

	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.max_size", 100)
	viper.SetDefault("log.max_backups", 5)
	viper.SetDefault("log.max_age", 30)
}

// Init 读取 config.yml，环境变量可覆盖同名键，例如 MYSQL_ADDR 覆盖 mysql.addr
func Init() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logrus.Warnf("load .env: %v", err)
	}

	wd, _ := os.Getwd()
	logrus.Infof("Current working directory: %s", wd)

	viper.SetConfigType("yaml")
	viper.SetConfigName("config.yml")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	setDefaults()

	configPaths := []string{
		"../../config",
		"./config",
		"../config",
		".",
	}
	for _, path := range configPaths {
		viper.AddConfigPath(path)
		absPath, _ := filepath.Abs(path)
		logrus.Debugf("Added config path: %s (absolute: %s)", path, absPath)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logrus.Warnf("config file not found, using defaults: %v", err)
		} else {
			logrus.Errorf("config error: %v", err)
		}
	} else {
		logrus.Infof("Successfully read config file: %s", viper.ConfigFileUsed())
	}

	load()

	logrus.Infof("Config loaded - driver: %s, MySQL: %s:%s@%s/%s",
		ConfigInfo.Database.Driver, ConfigInfo.Mysql.Username, "***", ConfigInfo.Mysql.Addr, ConfigInfo.Mysql.Database)
}

// 手动从viper获取配置值，避免Unmarshal问题
func load() {
	ConfigInfo.Server.Name = viper.GetString("server.name")
	ConfigInfo.Server.Addr = viper.GetString("server.addr")
	ConfigInfo.Server.PprofAddr = viper.GetString("server.pprof_addr")
	ConfigInfo.Server.Origins = viper.GetStringSlice("server.cors_origins")
	ConfigInfo.Server.TLSCert = viper.GetString("server.tls_cert_file")
	ConfigInfo.Server.TLSKey = viper.GetString("server.tls_key_file")
	ConfigInfo.Server.TLSCA = viper.GetString("server.tls_ca_file")

	ConfigInfo.Database.Driver = viper.GetString("database.driver")
	ConfigInfo.Database.MaxOpenConns = viper.GetInt("database.max_open_conns")
	ConfigInfo.Database.MaxIdleConns = viper.GetInt("database.max_idle_conns")
	ConfigInfo.Database.ConnMaxLifetime = viper.GetString("database.conn_max_lifetime")
	ConfigInfo.Database.AutoMigrate = viper.GetBool("database.auto_migrate")
	ConfigInfo.Database.Trace = viper.GetBool("database.trace")

	ConfigInfo.Mysql.Addr = viper.GetString("mysql.addr")
	ConfigInfo.Mysql.Database = viper.GetString("mysql.database")
	ConfigInfo.Mysql.Username = viper.GetString("mysql.username")
	ConfigInfo.Mysql.Password = viper.GetString("mysql.password")
	ConfigInfo.Mysql.Charset = viper.GetString("mysql.charset")
	ConfigInfo.Sqlite.Path = viper.GetString("sqlite.path")

	ConfigInfo.Redis.Addr = viper.GetString("redis.addr")
	ConfigInfo.Redis.Password = viper.GetString("redis.password")
	ConfigInfo.Redis.DB = viper.GetInt("redis.db")

	ConfigInfo.RabbitMq.Addr = viper.GetString("rabbitmq.addr")
	ConfigInfo.RabbitMq.Username = viper.GetString("rabbitmq.username")
	ConfigInfo.RabbitMq.Password = viper.GetString("rabbitmq.password")

	ConfigInfo.Minio.Endpoint = viper.GetString("minio.endpoint")
	ConfigInfo.Minio.AccessKey = viper.GetString("minio.access_key")
	ConfigInfo.Minio.SecretKey = viper.GetString("minio.secret_key")
	ConfigInfo.Minio.Bucket = viper.GetString("minio.bucket")
	ConfigInfo.Minio.UseSSL = viper.GetBool("minio.use_ssl")
	ConfigInfo.Minio.PublicURL = viper.GetString("minio.public_url")
	ConfigInfo.Minio.PresignExpiry = viper.GetString("minio.presign_expiry")

	ConfigInfo.Jwt.Secret = viper.GetString("jwt.secret")
	ConfigInfo.Jwt.Timeout = viper.GetString("jwt.timeout")
	ConfigInfo.Jwt.MaxRefresh = viper.GetString("jwt.max_refresh")

	ConfigInfo.Smtp.Host = viper.GetString("smtp.host")
	ConfigInfo.Smtp.Port = viper.GetInt("smtp.port")
	ConfigInfo.Smtp.Username = viper.GetString("smtp.username")
	ConfigInfo.Smtp.Password = viper.GetString("smtp.password")
	ConfigInfo.Smtp.From = viper.GetString("smtp.from")

	ConfigInfo.Otp.SendLimit = viper.GetInt("otp.send_limit")
	ConfigInfo.Otp.SendWindow = viper.GetString("otp.send_window")
	ConfigInfo.Notify.Mode = viper.GetString("notify.mode")

	ConfigInfo.Jaeger.Enabled = viper.GetBool("jaeger.enabled")
	ConfigInfo.Jaeger.AgentAddr = viper.GetString("jaeger.agent_addr")
	ConfigInfo.Jaeger.SampleRate = viper.GetFloat64("jaeger.sample_rate")

	ConfigInfo.Sentinel.Enabled = viper.GetBool("sentinel.enabled")
	ConfigInfo.Sentinel.QPS = viper.GetFloat64("sentinel.qps")

	ConfigInfo.Log.Level = viper.GetString("log.level")
	ConfigInfo.Log.File = viper.GetString("log.file")
	ConfigInfo.Log.MaxSize = viper.GetInt("log.max_size")
	ConfigInfo.Log.MaxBackups = viper.GetInt("log.max_backups")
	ConfigInfo.Log.MaxAge = viper.GetInt("log.max_age")
}

// Duration 解析时长配置，格式错误时使用默认值
func Duration(value string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		logrus.Errorf("Failed to parse duration %q: %v, using default: %s", value, err, fallback)
		return fallback
	}
	return d
}
