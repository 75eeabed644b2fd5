package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"MyTube.com/cmd/api/infras"
	dashboarddb "MyTube.com/cmd/dashboard/dal/db"
	interactiondb "MyTube.com/cmd/interaction/dal/db"
	playlistdb "MyTube.com/cmd/playlist/dal/db"
	relationdb "MyTube.com/cmd/relation/dal/db"
	tweetdb "MyTube.com/cmd/tweet/dal/db"
	userdb "MyTube.com/cmd/user/dal/db"
	videodb "MyTube.com/cmd/video/dal/db"
	"MyTube.com/pkg/testutil"
	"github.com/cloudwego/hertz/pkg/common/config"
	"github.com/cloudwego/hertz/pkg/common/ut"
	"github.com/cloudwego/hertz/pkg/route"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type envelope struct {
	StatusCode int             `json:"statusCode"`
	Data       json.RawMessage `json:"data"`
	Message    string          `json:"message"`
	Success    bool            `json:"success"`
	Errors     []string        `json:"errors"`
}

func newEngine(t *testing.T) (*route.Engine, *gorm.DB) {
	db := testutil.NewDB(t)
	userdb.Init(db)
	videodb.Init(db)
	interactiondb.Init(db)
	relationdb.Init(db)
	tweetdb.Init(db)
	playlistdb.Init(db)
	dashboarddb.Init(db)

	infras.Media = testutil.NewMediaStore()
	infras.Notifier = &testutil.Notifier{}
	infras.OtpLimiter = nil

	engine := route.NewEngine(config.NewOptions([]config.Option{}))
	require.NoError(t, Register(engine, db, Options{
		JwtSecret:     "test-secret",
		JwtTimeout:    time.Hour,
		JwtMaxRefresh: time.Hour,
	}))
	return engine, db
}

func do(t *testing.T, engine *route.Engine, method, path, token string, body interface{}) (int, envelope) {
	t.Helper()
	var headers []ut.Header
	if token != "" {
		headers = append(headers, ut.Header{Key: "Authorization", Value: "Bearer " + token})
	}
	var reqBody *ut.Body
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = &ut.Body{Body: bytes.NewReader(raw), Len: len(raw)}
		headers = append(headers, ut.Header{Key: "Content-Type", Value: "application/json"})
	}
	w := ut.PerformRequest(engine, method, path, reqBody, headers...)
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w.Code, env
}

// signup 走完整的验证码注册流程并返回登录 token
func signup(t *testing.T, engine *route.Engine, username string) (string, string) {
	t.Helper()
	email := username + "@example.com"

	code, env := do(t, engine, http.MethodPost, "/api/v1/otp/send-otp", "", map[string]string{"email": email})
	require.Equal(t, http.StatusOK, code, env.Message)

	u, err := userdb.GetUserByEmail(context.Background(), email)
	require.NoError(t, err)
	code, env = do(t, engine, http.MethodPost, "/api/v1/otp/verify-otp", "",
		map[string]string{"email": email, "otp": u.OTP})
	require.Equal(t, http.StatusOK, code, env.Message)

	code, env = do(t, engine, http.MethodPost, "/api/v1/users/register", "", map[string]string{
		"email": email, "username": username, "fullName": "Test " + username, "password": "secret123",
	})
	require.Equal(t, http.StatusCreated, code, env.Message)

	code, env = do(t, engine, http.MethodPost, "/api/v1/users/login", "",
		map[string]string{"username": username, "password": "secret123"})
	require.Equal(t, http.StatusOK, code, env.Message)
	var login struct {
		User        struct{ ID string `json:"_id"` } `json:"user"`
		AccessToken string                          `json:"accessToken"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &login))
	require.NotEmpty(t, login.AccessToken)
	return login.AccessToken, login.User.ID
}

func TestHealthcheck(t *testing.T) {
	engine, _ := newEngine(t)

	for _, path := range []string{"/healthcheck", "/api/v1/healthcheck"} {
		code, env := do(t, engine, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusOK, code)
		assert.True(t, env.Success)
		assert.Equal(t, 200, env.StatusCode)
	}
}

func TestSignupAndCurrentUser(t *testing.T) {
	engine, _ := newEngine(t)
	token, id := signup(t, engine, "alice")

	code, env := do(t, engine, http.MethodGet, "/api/v1/users/current-user", token, nil)
	require.Equal(t, http.StatusOK, code)
	var u struct {
		ID       string `json:"_id"`
		Username string `json:"username"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &u))
	assert.Equal(t, id, u.ID)
	assert.Equal(t, "alice", u.Username)
}

func TestLoginFailureEnvelope(t *testing.T) {
	engine, _ := newEngine(t)
	signup(t, engine, "bob")

	code, env := do(t, engine, http.MethodPost, "/api/v1/users/login", "",
		map[string]string{"username": "bob", "password": "wrong-password"})
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.False(t, env.Success)
	assert.Equal(t, "Invalid user credentials", env.Message)
	assert.NotNil(t, env.Errors)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	engine, _ := newEngine(t)

	routes := []struct{ method, path string }{
		{http.MethodGet, "/api/v1/users/current-user"},
		{http.MethodPost, "/api/v1/videos"},
		{http.MethodPost, "/api/v1/likes/toggle/v/abc"},
		{http.MethodGet, "/api/v1/likes/videos"},
		{http.MethodPost, "/api/v1/subscriptions/c/abc"},
		{http.MethodPost, "/api/v1/playlist"},
		{http.MethodGet, "/api/v1/upload/signature?type=image&filename=a.png"},
	}
	for _, r := range routes {
		code, env := do(t, engine, r.method, r.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, code, r.path)
		assert.False(t, env.Success, r.path)
	}

	code, _ := do(t, engine, http.MethodGet, "/api/v1/users/current-user", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestCommentAndLikeToggle(t *testing.T) {
	engine, db := newEngine(t)
	token, _ := signup(t, engine, "carol")
	owner := testutil.CreateUser(t, db, "dave")
	v := testutil.CreateVideo(t, db, owner, "intro", 0, true)

	code, env := do(t, engine, http.MethodPost, "/api/v1/comments/"+v.ID, token, map[string]string{"content": "nice"})
	require.Equal(t, http.StatusOK, code, env.Message)

	code, env = do(t, engine, http.MethodGet, "/api/v1/comments/"+v.ID, "", nil)
	require.Equal(t, http.StatusOK, code)
	var comments struct {
		TotalComments int64 `json:"totalComments"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &comments))
	assert.EqualValues(t, 1, comments.TotalComments)

	var like struct {
		Liked bool `json:"liked"`
	}
	code, env = do(t, engine, http.MethodPost, "/api/v1/likes/toggle/v/"+v.ID, token, nil)
	require.Equal(t, http.StatusOK, code, env.Message)
	require.NoError(t, json.Unmarshal(env.Data, &like))
	assert.True(t, like.Liked)

	code, env = do(t, engine, http.MethodPost, "/api/v1/likes/toggle/v/"+v.ID, token, nil)
	require.Equal(t, http.StatusOK, code, env.Message)
	require.NoError(t, json.Unmarshal(env.Data, &like))
	assert.False(t, like.Liked)

	code, env = do(t, engine, http.MethodPost, "/api/v1/likes/toggle/v/not-a-uuid", token, nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.False(t, env.Success)
}

func TestSelfSubscriptionRejected(t *testing.T) {
	engine, _ := newEngine(t)
	token, id := signup(t, engine, "erin")

	code, env := do(t, engine, http.MethodPost, "/api/v1/subscriptions/c/"+id, token, nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "You cannot subscribe to your own channel", env.Message)
}

func TestUnpublishedVideoHiddenFromOthers(t *testing.T) {
	engine, db := newEngine(t)
	token, _ := signup(t, engine, "frank")
	owner := testutil.CreateUser(t, db, "gina")
	draft := testutil.CreateVideo(t, db, owner, "draft", 0, false)

	code, env := do(t, engine, http.MethodGet, "/api/v1/videos/"+draft.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Video not found", env.Message)

	code, _ = do(t, engine, http.MethodGet, "/api/v1/videos/"+draft.ID, "", nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestRefreshToken(t *testing.T) {
	engine, _ := newEngine(t)
	token, _ := signup(t, engine, "hana")

	code, env := do(t, engine, http.MethodGet, "/api/v1/users/refresh-token", token, nil)
	require.Equal(t, http.StatusOK, code, env.Message)
	var res struct {
		AccessToken string `json:"accessToken"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.NotEmpty(t, res.AccessToken)

	code, _ = do(t, engine, http.MethodGet, "/api/v1/users/refresh-token", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
}
