package handlers

import (
	"context"

	"MyTube.com/cmd/api/pack"
	"MyTube.com/pkg/database"
	"MyTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"gorm.io/gorm"
)

// Healthcheck 数据库不可达时返回 500
func Healthcheck(db *gorm.DB) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		if err := database.Ping(ctx, db); err != nil {
			pack.SendResponse(c, errno.ServiceErr.WithMessage("Database unavailable"), nil)
			return
		}
		pack.SendResponse(c, errno.Success.WithMessage("OK"), map[string]string{"status": "ok"})
	}
}
