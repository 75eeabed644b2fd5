package pack

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"MyTube.com/pkg/constants"
	"MyTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/config"
	"github.com/cloudwego/hertz/pkg/common/ut"
	"github.com/cloudwego/hertz/pkg/route"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendResponse(t *testing.T) {
	engine := route.NewEngine(config.NewOptions([]config.Option{}))
	engine.GET("/ok", func(ctx context.Context, c *app.RequestContext) {
		SendResponse(c, errno.Created.WithMessage("made"), map[string]int{"n": 1})
	})
	engine.GET("/fail", func(ctx context.Context, c *app.RequestContext) {
		SendResponse(c, errors.WithMessage(errno.NotFoundErr.WithMessage("Video not found"), "dao"), nil)
	})
	engine.GET("/boom", func(ctx context.Context, c *app.RequestContext) {
		SendResponse(c, errors.New("db down"), nil)
	})

	w := ut.PerformRequest(engine, http.MethodGet, "/ok", nil)
	assert.Equal(t, http.StatusCreated, w.Code)
	var ok map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ok))
	assert.Equal(t, true, ok["success"])
	assert.Equal(t, "made", ok["message"])
	assert.EqualValues(t, 201, ok["statusCode"])
	assert.Equal(t, map[string]interface{}{"n": float64(1)}, ok["data"])

	w = ut.PerformRequest(engine, http.MethodGet, "/fail", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	var fail map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fail))
	assert.Equal(t, false, fail["success"])
	assert.Equal(t, "Video not found", fail["message"])
	assert.Equal(t, []interface{}{}, fail["errors"])

	w = ut.PerformRequest(engine, http.MethodGet, "/boom", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "db down")
}

func TestUserID(t *testing.T) {
	c := app.NewContext(0)
	assert.Empty(t, UserID(c))
	c.Set(constants.IdentityKey, "u-1")
	assert.Equal(t, "u-1", UserID(c))
}
