package middleware

import (
	"context"
	"net/http"
	"testing"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/config"
	"github.com/cloudwego/hertz/pkg/common/ut"
	"github.com/cloudwego/hertz/pkg/route"
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/mocktracer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ok(ctx context.Context, c *app.RequestContext) {
	c.String(http.StatusOK, "ok")
}

func TestTracingRecordsSpan(t *testing.T) {
	tracer := mocktracer.New()
	prev := opentracing.GlobalTracer()
	opentracing.SetGlobalTracer(tracer)
	defer opentracing.SetGlobalTracer(prev)

	engine := route.NewEngine(config.NewOptions([]config.Option{}))
	engine.GET("/videos/:videoId", Tracing(), func(ctx context.Context, c *app.RequestContext) {
		assert.NotNil(t, opentracing.SpanFromContext(ctx))
		ok(ctx, c)
	})

	w := ut.PerformRequest(engine, http.MethodGet, "/videos/abc", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	spans := tracer.FinishedSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "GET /videos/:videoId", spans[0].OperationName)
	assert.EqualValues(t, http.StatusOK, spans[0].Tag("http.status_code"))
}

func TestSentinelBlocks(t *testing.T) {
	if err := InitSentinel(1, "GET /limited"); err != nil {
		t.Skipf("sentinel init failed: %v", err)
	}
	engine := route.NewEngine(config.NewOptions([]config.Option{}))
	blocked := func(ctx context.Context, c *app.RequestContext) {
		c.String(http.StatusTooManyRequests, "slow down")
	}
	engine.GET("/limited", Sentinel(RouteResource, blocked), ok)

	codes := map[int]int{}
	for i := 0; i < 5; i++ {
		w := ut.PerformRequest(engine, http.MethodGet, "/limited", nil)
		codes[w.Code]++
	}
	assert.GreaterOrEqual(t, codes[http.StatusOK], 1)
	assert.GreaterOrEqual(t, codes[http.StatusTooManyRequests], 1)
}
