package middleware

import (
	"context"

	sentinel "github.com/alibaba/sentinel-golang/api"
	"github.com/alibaba/sentinel-golang/core/base"
	"github.com/alibaba/sentinel-golang/core/flow"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// InitSentinel 为每个资源加载同一个 QPS 阈值，超出直接拒绝
func InitSentinel(qps float64, resources ...string) error {
	if err := sentinel.InitDefault(); err != nil {
		return err
	}
	rules := make([]*flow.Rule, 0, len(resources))
	for _, res := range resources {
		rules = append(rules, &flow.Rule{
			Resource:               res,
			TokenCalculateStrategy: flow.Direct,
			ControlBehavior:        flow.Reject,
			Threshold:              qps,
			StatIntervalInMs:       1000,
		})
	}
	_, err := flow.LoadRules(rules)
	return err
}

// Sentinel 以 "METHOD 路由" 作为资源名做入口流控，blocked 负责写出被拒绝的响应
func Sentinel(resource func(c *app.RequestContext) string, blocked app.HandlerFunc) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		name := resource(c)
		e, b := sentinel.Entry(name, sentinel.WithTrafficType(base.Inbound))
		if b != nil {
			hlog.CtxWarnf(ctx, "request blocked by sentinel: resource=%s reason=%s", name, b.BlockMsg())
			blocked(ctx, c)
			c.Abort()
			return
		}
		defer e.Exit()
		c.Next(ctx)
	}
}

// RouteResource 使用注册时的路由模板，避免每个 id 成为独立资源
func RouteResource(c *app.RequestContext) string {
	return string(c.Method()) + " " + c.FullPath()
}
