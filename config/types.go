package config

type config struct {
	Server   server   `yaml:"server" mapstructure:"server"`
	Database database `yaml:"database" mapstructure:"database"`
	Mysql    mysql    `yaml:"mysql" mapstructure:"mysql"`
	Sqlite   sqlite   `yaml:"sqlite" mapstructure:"sqlite"`
	Redis    redis    `yaml:"redis" mapstructure:"redis"`
	RabbitMq rabbitmq `yaml:"rabbitmq" mapstructure:"rabbitmq"`
	Minio    minio    `yaml:"minio" mapstructure:"minio"`
	Jwt      jwt      `yaml:"jwt" mapstructure:"jwt"`
	Smtp     smtp     `yaml:"smtp" mapstructure:"smtp"`
	Otp      otp      `yaml:"otp" mapstructure:"otp"`
	Notify   notify   `yaml:"notify" mapstructure:"notify"`
	Jaeger   jaeger   `yaml:"jaeger" mapstructure:"jaeger"`
	Sentinel sentinel `yaml:"sentinel" mapstructure:"sentinel"`
	Log      log      `yaml:"log" mapstructure:"log"`
}

type server struct {
	Name      string   `yaml:"name"`
	Addr      string   `yaml:"addr"`
	PprofAddr string   `yaml:"pprof_addr" mapstructure:"pprof_addr"`
	Origins   []string `yaml:"cors_origins" mapstructure:"cors_origins"`
	TLSCert   string   `yaml:"tls_cert_file" mapstructure:"tls_cert_file"`
	TLSKey    string   `yaml:"tls_key_file" mapstructure:"tls_key_file"`
	TLSCA     string   `yaml:"tls_ca_file" mapstructure:"tls_ca_file"`
}

type database struct {
	Driver          string `yaml:"driver"`
	MaxOpenConns    int    `yaml:"max_open_conns" mapstructure:"max_open_conns"`
	MaxIdleConns    int    `yaml:"max_idle_conns" mapstructure:"max_idle_conns"`
	ConnMaxLifetime string `yaml:"conn_max_lifetime" mapstructure:"conn_max_lifetime"`
	AutoMigrate     bool   `yaml:"auto_migrate" mapstructure:"auto_migrate"`
	Trace           bool   `yaml:"trace"`
}

type mysql struct {
	Addr     string `yaml:"addr"`
	Database string `yaml:"database"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Charset  string `yaml:"charset"`
}

type sqlite struct {
	Path string `yaml:"path"`
}

type redis struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type rabbitmq struct {
	Addr     string `yaml:"addr"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

type minio struct {
	Endpoint      string `yaml:"endpoint"`
	AccessKey     string `yaml:"access_key" mapstructure:"access_key"`
	SecretKey     string `yaml:"secret_key" mapstructure:"secret_key"`
	Bucket        string `yaml:"bucket"`
	UseSSL        bool   `yaml:"use_ssl" mapstructure:"use_ssl"`
	PublicURL     string `yaml:"public_url" mapstructure:"public_url"`
	PresignExpiry string `yaml:"presign_expiry" mapstructure:"presign_expiry"`
}

type jwt struct {
	Secret     string `yaml:"secret"`
	Timeout    string `yaml:"timeout"`
	MaxRefresh string `yaml:"max_refresh" mapstructure:"max_refresh"`
}

type smtp struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
}

type otp struct {
	SendLimit  int    `yaml:"send_limit" mapstructure:"send_limit"`
	SendWindow string `yaml:"send_window" mapstructure:"send_window"`
}

type notify struct {
	// smtp | mq | log
	Mode string `yaml:"mode"`
}

type jaeger struct {
	Enabled    bool    `yaml:"enabled"`
	AgentAddr  string  `yaml:"agent_addr" mapstructure:"agent_addr"`
	SampleRate float64 `yaml:"sample_rate" mapstructure:"sample_rate"`
}

type sentinel struct {
	Enabled bool    `yaml:"enabled"`
	QPS     float64 `yaml:"qps"`
}

type log struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSize    int    `yaml:"max_size" mapstructure:"max_size"`
	MaxBackups int    `yaml:"max_backups" mapstructure:"max_backups"`
	MaxAge     int    `yaml:"max_age" mapstructure:"max_age"`
}
