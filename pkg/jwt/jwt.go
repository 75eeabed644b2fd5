package jwt

import (
	"context"
	"time"

	"MyTube.com/pkg/constants"
	"MyTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol"
	"github.com/hertz-contrib/jwt"
)

// Identity 是写入 token 的载荷
type Identity struct {
	UserID string
}

type Options struct {
	Secret     string
	Timeout    time.Duration
	MaxRefresh time.Duration

	// Authenticator 校验登录凭证并返回 *Identity
	Authenticator func(ctx context.Context, c *app.RequestContext) (interface{}, error)
	Unauthorized  func(ctx context.Context, c *app.RequestContext, code int, message string)
	LoginResponse func(ctx context.Context, c *app.RequestContext, code int, token string, expire time.Time)
	// RefreshResponse 为空时复用 LoginResponse
	RefreshResponse func(ctx context.Context, c *app.RequestContext, code int, token string, expire time.Time)
}

// New 创建以用户 id 为身份标识的 JWT 中间件
func New(opts Options) (*jwt.HertzJWTMiddleware, error) {
	refresh := opts.RefreshResponse
	if refresh == nil {
		refresh = opts.LoginResponse
	}
	return jwt.New(&jwt.HertzJWTMiddleware{
		Realm:          "mytube",
		Key:            []byte(opts.Secret),
		Timeout:        opts.Timeout,
		MaxRefresh:     opts.MaxRefresh,
		IdentityKey:    constants.IdentityKey,
		TokenLookup:    "header: Authorization, query: token, cookie: accessToken",
		TokenHeadName:  "Bearer",
		TimeFunc:       time.Now,
		SendCookie:     true,
		CookieName:     "accessToken",
		CookieHTTPOnly: true,
		CookieSameSite: protocol.CookieSameSiteLaxMode,
		PayloadFunc: func(data interface{}) jwt.MapClaims {
			if v, ok := data.(*Identity); ok {
				return jwt.MapClaims{constants.IdentityKey: v.UserID}
			}
			return jwt.MapClaims{}
		},
		IdentityHandler: func(ctx context.Context, c *app.RequestContext) interface{} {
			claims := jwt.ExtractClaims(ctx, c)
			id, _ := claims[constants.IdentityKey].(string)
			return id
		},
		Authenticator:   opts.Authenticator,
		Unauthorized:    opts.Unauthorized,
		LoginResponse:   opts.LoginResponse,
		RefreshResponse: refresh,
		HTTPStatusMessageFunc: func(e error, ctx context.Context, c *app.RequestContext) string {
			return errno.ConvertErr(e).ErrMsg
		},
	})
}

// Lazy 只在 token 有效时写入身份，不拒绝请求
func Lazy(mw *jwt.HertzJWTMiddleware) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		claims, err := mw.GetClaimsFromJWT(ctx, c)
		if err == nil {
			if exp, ok := claims["exp"].(float64); ok && int64(exp) >= mw.TimeFunc().Unix() {
				c.Set("JWT_PAYLOAD", claims)
				if id := mw.IdentityHandler(ctx, c); id != nil {
					c.Set(constants.IdentityKey, id)
				}
			}
		}
		c.Next(ctx)
	}
}

// Token 为已认证的用户签发 token，用于注册后直接登录
func Token(mw *jwt.HertzJWTMiddleware, userID string) (string, time.Time, error) {
	return mw.TokenGenerator(&Identity{UserID: userID})
}
