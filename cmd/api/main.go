package main

import (
	"context"
	"io"
	"time"

	"MyTube.com/cmd/api/infras"
	"MyTube.com/cmd/api/pack"
	"MyTube.com/cmd/api/router"
	dashboarddb "MyTube.com/cmd/dashboard/dal/db"
	interactiondb "MyTube.com/cmd/interaction/dal/db"
	"MyTube.com/cmd/model"
	playlistdb "MyTube.com/cmd/playlist/dal/db"
	relationdb "MyTube.com/cmd/relation/dal/db"
	tweetdb "MyTube.com/cmd/tweet/dal/db"
	userdb "MyTube.com/cmd/user/dal/db"
	videodb "MyTube.com/cmd/video/dal/db"
	"MyTube.com/config"
	"MyTube.com/config/jaeger"
	"MyTube.com/config/pprof"
	"MyTube.com/pkg/database"
	"MyTube.com/pkg/errno"
	"MyTube.com/pkg/logger"
	"MyTube.com/pkg/middleware"
	"MyTube.com/pkg/security"
	"MyTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/middlewares/server/recovery"
	"github.com/cloudwego/hertz/pkg/app/server"
	hconfig "github.com/cloudwego/hertz/pkg/common/config"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/network/standard"
	"github.com/hertz-contrib/cors"
	"gorm.io/gorm"
)

const maxRequestBodySize = 1 << 30

func initDB() *gorm.DB {
	c := config.ConfigInfo.Database
	dsn := utils.GetMysqlDsn()
	if c.Driver == database.DriverSQLite {
		dsn = utils.GetSqliteDsn()
	}
	db, err := database.Open(database.Options{
		Driver:          c.Driver,
		DSN:             dsn,
		MaxOpenConns:    c.MaxOpenConns,
		MaxIdleConns:    c.MaxIdleConns,
		ConnMaxLifetime: config.Duration(c.ConnMaxLifetime, time.Hour),
		Trace:           c.Trace && config.ConfigInfo.Jaeger.Enabled,
	})
	if err != nil {
		hlog.Fatalf("init database: %v", err)
	}
	if c.AutoMigrate {
		if err = model.AutoMigrate(db); err != nil {
			hlog.Fatalf("auto migrate: %v", err)
		}
	}

	userdb.Init(db)
	videodb.Init(db)
	interactiondb.Init(db)
	relationdb.Init(db)
	tweetdb.Init(db)
	playlistdb.Init(db)
	dashboarddb.Init(db)
	return db
}

func Init(ctx context.Context) (*gorm.DB, io.Closer) {
	config.Init()
	cfg := config.ConfigInfo
	logger.Init(logger.Options{
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSize:    cfg.Log.MaxSize,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAge,
	})

	var closer io.Closer
	if cfg.Jaeger.Enabled {
		_, closer = jaeger.InitJaeger(cfg.Server.Name, cfg.Jaeger.AgentAddr, cfg.Jaeger.SampleRate)
	}
	pprof.Load(cfg.Server.PprofAddr)

	db := initDB()

	if err := infras.InitMedia(ctx); err != nil {
		hlog.Fatalf("%v", err)
	}
	if err := infras.InitNotifier(); err != nil {
		hlog.Fatalf("%v", err)
	}
	infras.InitOtpLimiter()
	return db, closer
}

func main() {
	ctx := context.Background()
	db, closer := Init(ctx)
	defer database.Close(db)
	defer infras.Close()
	if closer != nil {
		defer closer.Close()
	}
	cfg := config.ConfigInfo

	opts := []hconfig.Option{
		server.WithHostPorts(cfg.Server.Addr),
		server.WithHandleMethodNotAllowed(true),
		server.WithMaxRequestBodySize(maxRequestBodySize),
	}
	// netpoll 不支持 TLS，启用证书时切换到标准库传输层
	if tc := security.NewTLSConfig(cfg.Server.TLSCert, cfg.Server.TLSKey, cfg.Server.TLSCA); tc.Enabled() {
		tlsCfg, err := tc.GetServerTLSConfig()
		if err != nil {
			hlog.Fatalf("init tls: %v", err)
		}
		opts = append(opts, server.WithTLS(tlsCfg), server.WithTransport(standard.NewTransporter))
	}
	h := server.New(opts...)

	// 配置 CORS
	h.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.Origins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 错误处理
	h.Use(recovery.Recovery(recovery.WithRecoveryHandler(
		func(ctx context.Context, c *app.RequestContext, err interface{}, stack []byte) {
			hlog.SystemLogger().CtxErrorf(ctx, "[Recovery] err=%v\nstack=%s", err, stack)
			pack.SendResponse(c, errno.ServiceErr.WithMessage("Internal server error"), nil)
		})))

	if cfg.Jaeger.Enabled {
		h.Use(middleware.Tracing())
	}
	if cfg.Sentinel.Enabled {
		h.Use(middleware.Sentinel(middleware.RouteResource, func(ctx context.Context, c *app.RequestContext) {
			pack.SendResponse(c, errno.TooManyRequestsErr, nil)
		}))
	}

	if err := router.Register(h.Engine, db, router.Options{
		JwtSecret:     cfg.Jwt.Secret,
		JwtTimeout:    config.Duration(cfg.Jwt.Timeout, 24*time.Hour),
		JwtMaxRefresh: config.Duration(cfg.Jwt.MaxRefresh, 240*time.Hour),
	}); err != nil {
		hlog.Fatalf("register routes: %v", err)
	}

	// 每条路由模板一条流控规则
	if cfg.Sentinel.Enabled {
		resources := make([]string, 0)
		for _, r := range h.Routes() {
			resources = append(resources, r.Method+" "+r.Path)
		}
		if err := middleware.InitSentinel(cfg.Sentinel.QPS, resources...); err != nil {
			hlog.Fatalf("init sentinel: %v", err)
		}
	}

	h.Spin()
}
