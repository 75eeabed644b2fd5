// Package pack 统一的响应格式
package pack

import (
	"errors"

	"MyTube.com/pkg/constants"
	"MyTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type Response struct {
	StatusCode int64       `json:"statusCode"`
	Data       interface{} `json:"data"`
	Message    string      `json:"message"`
	Success    bool        `json:"success"`
}

type ErrorResponse struct {
	StatusCode int64    `json:"statusCode"`
	Message    string   `json:"message"`
	Success    bool     `json:"success"`
	Errors     []string `json:"errors"`
}

// SendResponse 按 errno 写出响应，HTTP 状态码与 statusCode 一致，未知错误只记录日志不返回细节
func SendResponse(c *app.RequestContext, err error, data interface{}) {
	Err := errno.ConvertErr(err)
	if known := (errno.ErrNo{}); err != nil && !errors.As(err, &known) {
		hlog.Errorf("%s %s failed: %+v", c.Method(), c.FullPath(), err)
		Err = errno.ServiceErr.WithMessage("Internal server error")
	}
	if Err.ErrCode >= errno.ParamErrCode {
		c.JSON(int(Err.ErrCode), ErrorResponse{
			StatusCode: Err.ErrCode,
			Message:    Err.ErrMsg,
			Success:    false,
			Errors:     []string{},
		})
		return
	}
	c.JSON(int(Err.ErrCode), Response{
		StatusCode: Err.ErrCode,
		Data:       data,
		Message:    Err.ErrMsg,
		Success:    true,
	})
}

// UserID 返回认证中间件写入的用户 id，未登录时为空
func UserID(c *app.RequestContext) string {
	v, ok := c.Get(constants.IdentityKey)
	if !ok {
		return ""
	}
	id, _ := v.(string)
	return id
}
