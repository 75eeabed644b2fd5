// Package router 注册 /api/v1 下的全部路由
package router

import (
	"time"

	dashboard "MyTube.com/cmd/api/handlers/dashboard"
	health "MyTube.com/cmd/api/handlers/health"
	interaction "MyTube.com/cmd/api/handlers/interaction"
	playlist "MyTube.com/cmd/api/handlers/playlist"
	relation "MyTube.com/cmd/api/handlers/relation"
	tweet "MyTube.com/cmd/api/handlers/tweet"
	upload "MyTube.com/cmd/api/handlers/upload"
	user "MyTube.com/cmd/api/handlers/user"
	video "MyTube.com/cmd/api/handlers/video"
	"MyTube.com/cmd/api/router/authfunc"
	"MyTube.com/pkg/constants"
	myjwt "MyTube.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/route"
	"gorm.io/gorm"
)

type Options struct {
	JwtSecret     string
	JwtTimeout    time.Duration
	JwtMaxRefresh time.Duration
}

// with 复制中间件链后追加处理函数
func with(chain []app.HandlerFunc, handlers ...app.HandlerFunc) []app.HandlerFunc {
	out := make([]app.HandlerFunc, 0, len(chain)+len(handlers))
	out = append(out, chain...)
	return append(out, handlers...)
}

func Register(r *route.Engine, db *gorm.DB, opts Options) error {
	mw, err := myjwt.New(myjwt.Options{
		Secret:          opts.JwtSecret,
		Timeout:         opts.JwtTimeout,
		MaxRefresh:      opts.JwtMaxRefresh,
		Authenticator:   user.Authenticator,
		Unauthorized:    user.Unauthorized,
		LoginResponse:   user.LoginResponse,
		RefreshResponse: user.RefreshResponse,
	})
	if err != nil {
		return err
	}
	auth := authfunc.Auth(mw)
	lazy := authfunc.LazyAuth(mw)

	r.GET("/healthcheck", health.Healthcheck(db))
	v1 := r.Group("/api/v1")
	v1.GET("/healthcheck", health.Healthcheck(db))

	users := v1.Group("/users")
	users.POST("/register", user.Register)
	users.POST("/login", mw.LoginHandler)
	users.GET("/refresh-token", mw.RefreshHandler)
	users.GET("/current-user", with(auth, user.CurrentUser)...)
	users.PATCH("/avatar", with(auth, user.UpdateAvatar)...)

	otp := v1.Group("/otp")
	otp.POST("/send-otp", user.SendOtp)
	otp.POST("/verify-otp", user.VerifyOtp)

	v1.GET("/upload/signature", with(auth, upload.Signature)...)

	videos := v1.Group("/videos")
	videos.GET("", video.ListVideos)
	videos.POST("", with(auth, video.PublishVideo)...)
	videos.GET("/:videoId", with(lazy, video.GetVideo)...)
	videos.GET("/:videoId/stats", video.VideoStats)
	videos.PATCH("/:videoId", with(auth, video.UpdateVideo)...)
	videos.DELETE("/:videoId", with(auth, video.DeleteVideo)...)
	videos.PATCH("/toggle/publish/:videoId", with(auth, video.TogglePublish)...)

	comments := v1.Group("/comments")
	comments.GET("/:videoId", interaction.ListComment)
	comments.POST("/:videoId", with(auth, interaction.AddComment)...)
	comments.PATCH("/c/:commentId", with(auth, interaction.UpdateComment)...)
	comments.DELETE("/c/:commentId", with(auth, interaction.DeleteComment)...)

	likes := v1.Group("/likes")
	likes.POST("/toggle/v/:id", with(auth, interaction.ToggleLike(constants.LikeTargetVideo))...)
	likes.POST("/toggle/c/:id", with(auth, interaction.ToggleLike(constants.LikeTargetComment))...)
	likes.POST("/toggle/t/:id", with(auth, interaction.ToggleLike(constants.LikeTargetTweet))...)
	likes.GET("/videos", with(auth, interaction.LikedVideos)...)

	subscriptions := v1.Group("/subscriptions")
	subscriptions.POST("/c/:channelId", with(auth, relation.ToggleSubscription)...)
	subscriptions.GET("/c/:channelId", relation.ChannelSubscribers)
	subscriptions.GET("/u/:subscriberId", relation.SubscribedChannels)

	tweets := v1.Group("/tweets")
	tweets.POST("", with(auth, tweet.CreateTweet)...)
	tweets.GET("/channel/:channelId", with(auth, tweet.ChannelTweets)...)
	tweets.PATCH("/:tweetId", with(auth, tweet.UpdateTweet)...)
	tweets.DELETE("/:tweetId", with(auth, tweet.DeleteTweet)...)

	playlists := v1.Group("/playlist")
	playlists.POST("", with(auth, playlist.CreatePlaylist)...)
	playlists.GET("/:playlistId", playlist.GetPlaylist)
	playlists.PATCH("/:playlistId", with(auth, playlist.UpdatePlaylist)...)
	playlists.DELETE("/:playlistId", with(auth, playlist.DeletePlaylist)...)
	playlists.PATCH("/add/:videoId/:playlistId", with(auth, playlist.AddVideo)...)
	playlists.PATCH("/remove/:videoId/:playlistId", with(auth, playlist.RemoveVideo)...)
	playlists.GET("/user/:userId", playlist.UserPlaylists)

	dash := v1.Group("/dashboard")
	dash.GET("/stats/:channelId", dashboard.ChannelStats)
	dash.GET("/videos/:channelId", with(lazy, dashboard.ChannelVideos)...)
	return nil
}
