package authfunc

import (
	"context"

	"MyTube.com/cmd/api/pack"
	"MyTube.com/pkg/errno"
	myjwt "MyTube.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/hertz-contrib/jwt"
)

// Auth 要求请求携带有效 token
func Auth(mw *jwt.HertzJWTMiddleware) []app.HandlerFunc {
	return append(make([]app.HandlerFunc, 0),
		mw.MiddlewareFunc(),
		requireIdentity(),
	)
}

// LazyAuth 身份可选，token 无效时按未登录处理
func LazyAuth(mw *jwt.HertzJWTMiddleware) []app.HandlerFunc {
	return append(make([]app.HandlerFunc, 0),
		myjwt.Lazy(mw),
	)
}

func requireIdentity() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		if pack.UserID(c) == "" {
			pack.SendResponse(c, errno.AuthorizationFailedErr, nil)
			c.Abort()
			return
		}
		c.Next(ctx)
	}
}
