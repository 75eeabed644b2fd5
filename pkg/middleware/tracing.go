package middleware

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
)

// Tracing 为每个请求开启 span 并放入 ctx，数据库插件会把 SQL span 挂在它下面
func Tracing() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		tracer := opentracing.GlobalTracer()
		carrier := opentracing.TextMapCarrier{}
		c.Request.Header.VisitAll(func(k, v []byte) {
			carrier[string(k)] = string(v)
		})

		opts := []opentracing.StartSpanOption{ext.SpanKindRPCServer}
		if parent, err := tracer.Extract(opentracing.TextMap, carrier); err == nil {
			opts = append(opts, opentracing.ChildOf(parent))
		}
		span := tracer.StartSpan(RouteResource(c), opts...)
		defer span.Finish()

		ext.HTTPMethod.Set(span, string(c.Method()))
		ext.HTTPUrl.Set(span, string(c.Request.URI().Path()))

		c.Next(opentracing.ContextWithSpan(ctx, span))

		ext.HTTPStatusCode.Set(span, uint16(c.Response.StatusCode()))
		if c.Response.StatusCode() >= 500 {
			ext.Error.Set(span, true)
		}
	}
}
