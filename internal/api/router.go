package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vidtube/video-platform/internal/api/handler"
	"github.com/vidtube/video-platform/internal/api/middleware"
	"github.com/vidtube/video-platform/internal/core/ports"
	"github.com/vidtube/video-platform/internal/core/service"
	mongorepo "github.com/vidtube/video-platform/internal/infrastructure/db/mongo"
	redisinfra "github.com/vidtube/video-platform/internal/infrastructure/db/redis"
	"github.com/vidtube/video-platform/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The watch enqueuer is constructed by the caller so its worker pool can be
// started and stopped alongside the process.
func NewRouter(db *mongo.Database, rdb *redis.Client, files ports.FileStore, watch service.WatchEnqueuer, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("vidtube"))

	// --- Repositories ---
	users := mongorepo.NewUserRepository(db)
	videos := mongorepo.NewVideoRepository(db)
	comments := mongorepo.NewCommentRepository(db)
	tweets := mongorepo.NewTweetRepository(db)
	playlists := mongorepo.NewPlaylistRepository(db)
	likes := mongorepo.NewLikeRepository(db)
	subs := mongorepo.NewSubscriptionRepository(db)

	// --- Services ---
	tokenService := service.NewTokenService(users, cfg.Auth.AccessSecret, cfg.Auth.RefreshSecret, cfg.Auth.AccessTTL, cfg.Auth.RefreshTTL, log)
	userService := service.NewUserService(users, videos, subs, tokenService, files, log)
	videoService := service.NewVideoService(videos, files, watch, log)
	commentService := service.NewCommentService(comments, videos, log)
	tweetService := service.NewTweetService(tweets, users, log)
	playlistService := service.NewPlaylistService(playlists, videos, log)
	likeService := service.NewLikeService(likes, log)
	subscriptionService := service.NewSubscriptionService(subs, users, log)
	dashboardService := service.NewDashboardService(videos, subs, likes, redisinfra.NewStatsCache(rdb), log)

	// --- Handlers ---
	userHandler := handler.NewUserHandler(userService)
	videoHandler := handler.NewVideoHandler(videoService)
	commentHandler := handler.NewCommentHandler(commentService)
	tweetHandler := handler.NewTweetHandler(tweetService)
	playlistHandler := handler.NewPlaylistHandler(playlistService)
	likeHandler := handler.NewLikeHandler(likeService)
	subscriptionHandler := handler.NewSubscriptionHandler(subscriptionService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	healthHandler := handler.NewHealthHandler(db, rdb)

	auth := middleware.Auth(tokenService, users)
	optionalAuth := middleware.OptionalAuth(tokenService, users)

	v1 := e.Group("/api/v1")

	// --- Users ---
	u := v1.Group("/users")
	u.POST("/register", userHandler.Register)
	u.POST("/login", userHandler.Login)
	u.POST("/refresh-token", userHandler.Refresh)
	u.POST("/logout", userHandler.Logout, auth)
	u.POST("/change-password", userHandler.ChangePassword, auth)
	u.GET("/current-user", userHandler.CurrentUser, auth)
	u.PATCH("/update-account", userHandler.UpdateAccount, auth)
	u.PATCH("/avatar", userHandler.UpdateAvatar, auth)
	u.PATCH("/cover-image", userHandler.UpdateCoverImage, auth)
	u.GET("/c/:username", userHandler.ChannelProfile, optionalAuth)
	u.GET("/history", userHandler.WatchHistory, auth)

	// --- Videos ---
	vg := v1.Group("/videos")
	vg.GET("", videoHandler.List)
	vg.POST("", videoHandler.Publish, auth)
	vg.GET("/:videoId", videoHandler.Get, optionalAuth)
	vg.PATCH("/:videoId", videoHandler.Update, auth)
	vg.DELETE("/:videoId", videoHandler.Delete, auth)
	vg.PATCH("/toggle/publish/:videoId", videoHandler.TogglePublish, auth)

	// --- Comments ---
	cg := v1.Group("/comments")
	cg.GET("/:videoId", commentHandler.List)
	cg.POST("/:videoId", commentHandler.Add, auth)
	cg.PATCH("/c/:commentId", commentHandler.Update, auth)
	cg.DELETE("/c/:commentId", commentHandler.Delete, auth)

	// --- Tweets ---
	tg := v1.Group("/tweets")
	tg.POST("", tweetHandler.Create, auth)
	tg.GET("/user/:userId", tweetHandler.ListByUser)
	tg.PATCH("/:tweetId", tweetHandler.Update, auth)
	tg.DELETE("/:tweetId", tweetHandler.Delete, auth)

	// --- Playlists ---
	pg := v1.Group("/playlists")
	pg.POST("", playlistHandler.Create, auth)
	pg.GET("", playlistHandler.ListOwn, auth)
	pg.GET("/:playlistId", playlistHandler.Get)
	pg.PATCH("/:playlistId", playlistHandler.Update, auth)
	pg.DELETE("/:playlistId", playlistHandler.Delete, auth)
	pg.PATCH("/:playlistId/videos/:videoId", playlistHandler.AddVideo, auth)
	pg.DELETE("/:playlistId/videos/:videoId", playlistHandler.RemoveVideo, auth)

	// --- Likes ---
	lg := v1.Group("/likes", auth)
	lg.POST("/toggle/video/:videoId", likeHandler.ToggleVideo)
	lg.POST("/toggle/comment/:commentId", likeHandler.ToggleComment)
	lg.POST("/toggle/tweet/:tweetId", likeHandler.ToggleTweet)
	lg.GET("/videos", likeHandler.LikedVideos)

	// --- Subscriptions ---
	sg := v1.Group("/subscriptions")
	sg.POST("/c/:channelId", subscriptionHandler.Toggle, auth)
	sg.GET("/c/:channelId", subscriptionHandler.Subscribers)
	sg.GET("/u/:subscriberId", subscriptionHandler.SubscribedChannels)

	// --- Dashboard ---
	dg := v1.Group("/dashboard", auth)
	dg.GET("/stats", dashboardHandler.Stats)
	dg.GET("/videos", dashboardHandler.Videos)

	// --- Operational endpoints (no auth required) ---
	e.GET("/health", healthHandler.Liveness)         // liveness  – is the process alive?
	e.GET("/health/ready", healthHandler.Readiness)  // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
