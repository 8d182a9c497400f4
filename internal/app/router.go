package app

import (
	"log"
	"time"

	"github.com/rumdien113/tiktok-api/internal/config"
	"github.com/rumdien113/tiktok-api/internal/middleware"
	"github.com/rumdien113/tiktok-api/internal/model"
	"github.com/rumdien113/tiktok-api/internal/repository"
	"github.com/rumdien113/tiktok-api/internal/service"
	"github.com/rumdien113/tiktok-api/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewRouter(cfg *config.Config) *gin.Engine {
	// Set Gin mode
	if cfg.ServerPort == "8080" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	// CORS middleware
	r.Use(corsMiddleware(cfg.ClientURL))

	// Rate limiting middleware (if enabled)
	if cfg.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
		r.Use(rateLimiter.Middleware())
		log.Printf("Rate limiting enabled: %d req/sec, burst: %d", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}

	// Initialize database
	db, err := initDB(cfg)
	if err != nil {
		panic("Failed to connect to database: " + err.Error())
	}

	// Auto migrate
	if err := db.AutoMigrate(
		&model.User{},
		&model.Post{},
		&model.Comment{},
		&model.Like{},
		&model.Share{},
		&model.Follow{},
		&model.Tag{},
		&model.PostTag{},
		&model.Report{},
		&model.ReportCounter{},
	); err != nil {
		panic("Failed to migrate database: " + err.Error())
	}

	// Initialize Redis with retry logic
	redisClient := initRedisWithRetry(cfg)

	// Initialize RabbitMQ with retry logic
	rabbitMQ := initRabbitMQWithRetry(cfg)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	likeRepo := repository.NewLikeRepository(db, redisClient)
	shareRepo := repository.NewShareRepository(db)
	followRepo := repository.NewFollowRepository(db)
	tagRepo := repository.NewTagRepository(db)
	postTagRepo := repository.NewPostTagRepository(db)
	reportRepo := repository.NewReportRepository(db)
	counterRepo := repository.NewReportCounterRepository(db, redisClient)

	// Polymorphic target existence checks share one resolver
	targets := service.NewTargetResolver(postRepo, commentRepo, userRepo)

	// Initialize services
	userService := service.NewUserService(userRepo)
	postService := service.NewPostService(postRepo)
	commentService := service.NewCommentService(commentRepo)
	likeService := service.NewLikeService(likeRepo, targets)
	shareService := service.NewShareService(shareRepo)
	followService := service.NewFollowService(followRepo)
	tagService := service.NewTagService(tagRepo, postTagRepo)
	reportService := service.NewReportService(reportRepo, counterRepo, targets, rabbitMQ)

	// Initialize report counter worker if RabbitMQ is available
	if rabbitMQ != nil {
		counterWorker := service.NewReportCounterWorker(counterRepo, rabbitMQ)
		if err := counterWorker.Start(); err != nil {
			log.Printf("Warning: Failed to start report counter worker: %v", err)
		} else {
			log.Println("Report counter worker started successfully")
		}
	} else {
		log.Println("Report counter worker not started - RabbitMQ connection failed. Counters stay caller-driven.")
		// Retry RabbitMQ in the background and start the worker once it comes up
		go func() {
			for {
				time.Sleep(10 * time.Second)
				newRabbitMQ := initRabbitMQWithRetry(cfg)
				if newRabbitMQ != nil {
					log.Println("RabbitMQ reconnected! Starting report counter worker...")
					counterWorker := service.NewReportCounterWorker(counterRepo, newRabbitMQ)
					if err := counterWorker.Start(); err != nil {
						log.Printf("Warning: Failed to start report counter worker after reconnect: %v", err)
					} else {
						log.Println("Report counter worker started successfully after reconnect")
						break
					}
				}
			}
		}()
	}

	// Initialize handlers
	userHandler := NewUserHandler(userService)
	postHandler := NewPostHandler(postService)
	commentHandler := NewCommentHandler(commentService)
	likeHandler := NewLikeHandler(likeService)
	shareHandler := NewShareHandler(shareService)
	followHandler := NewFollowHandler(followService)
	tagHandler := NewTagHandler(tagService)
	reportHandler := NewReportHandler(reportService)

	// API routes
	api := r.Group("/api")
	{
		// User routes
		users := api.Group("/users")
		{
			users.POST("", userHandler.CreateUser)
			users.GET("", userHandler.GetUsers)
			users.GET("/:id", userHandler.GetUser)
			users.PUT("/:id", userHandler.UpdateUser)
			users.DELETE("/:id", userHandler.DeleteUser)
		}

		// Post routes
		posts := api.Group("/posts")
		{
			// IMPORTANT: More specific routes must be registered before wildcard routes
			posts.GET("/user/:userId", postHandler.GetPostsByUser)

			posts.POST("", postHandler.CreatePost)
			posts.GET("", postHandler.GetPosts)
			posts.GET("/:id", postHandler.GetPost)
			posts.PUT("/:id", postHandler.UpdatePost)
			posts.DELETE("/:id", postHandler.DeletePost)
		}

		// Comment routes
		comments := api.Group("/comments")
		{
			comments.GET("/post/:postId", commentHandler.GetCommentsByPost)

			comments.POST("", commentHandler.CreateComment)
			comments.GET("", commentHandler.GetComments)
			comments.GET("/:id", commentHandler.GetComment)
			comments.GET("/:id/replies", commentHandler.GetReplies)
			comments.PUT("/:id", commentHandler.UpdateComment)
			comments.DELETE("/:id", commentHandler.DeleteComment)
		}

		// Like routes
		likes := api.Group("/likes")
		{
			likes.POST("", likeHandler.CreateLike)
			likes.DELETE("", likeHandler.DeleteLike)
			likes.GET("/count/:targetType/:targetId", likeHandler.CountLikes)
			likes.GET("/:targetType/:targetId", likeHandler.GetLikesByTarget)
		}

		// Share routes
		shares := api.Group("/shares")
		{
			shares.GET("/post/:postId", shareHandler.GetSharesByPost)

			shares.POST("", shareHandler.CreateShare)
			shares.GET("", shareHandler.GetShares)
			shares.GET("/:id", shareHandler.GetShare)
			shares.DELETE("/:id", shareHandler.DeleteShare)
		}

		// Follow routes
		follows := api.Group("/follows")
		{
			follows.POST("", followHandler.CreateFollow)
			follows.DELETE("", followHandler.DeleteFollow)
			follows.GET("/followers/:userId", followHandler.GetFollowers)
			follows.GET("/following/:userId", followHandler.GetFollowing)
		}

		// Tag routes
		tags := api.Group("/tags")
		{
			tags.POST("", tagHandler.CreateTag)
			tags.GET("", tagHandler.GetTags)
			tags.GET("/:id", tagHandler.GetTag)
			tags.PUT("/:id", tagHandler.UpdateTag)
			tags.DELETE("/:id", tagHandler.DeleteTag)
		}

		// Post-tag routes (body-keyed pair, like likes and follows)
		postTags := api.Group("/post-tags")
		{
			postTags.POST("", tagHandler.AddTagToPost)
			postTags.DELETE("", tagHandler.RemoveTagFromPost)
			postTags.GET("/post/:postId", tagHandler.GetTagsOfPost)
			postTags.GET("/tag/:tagId", tagHandler.GetPostsByTag)
		}

		// Report routes
		reports := api.Group("/reports")
		{
			reports.POST("", reportHandler.CreateReport)
			reports.GET("", reportHandler.GetReports)
			reports.GET("/target/:targetType/:targetId", reportHandler.GetReportsByTarget)
			reports.GET("/:id", reportHandler.GetReport)
			reports.PATCH("/:id/status", reportHandler.UpdateReportStatus)
			reports.DELETE("/:id", reportHandler.DeleteReport)
		}

		// Report counter routes
		counters := api.Group("/report-counters")
		{
			counters.GET("", reportHandler.GetReportCounters)
			counters.PUT("", reportHandler.UpsertReportCounter)
			counters.GET("/:targetType/:targetId", reportHandler.GetReportCounter)
			counters.DELETE("/:targetType/:targetId", reportHandler.DeleteReportCounter)
		}
	}

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}

func initDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := cfg.DatabaseURL
	if dsn == "" {
		dsn = "host=" + cfg.PostgresHost +
			" port=" + cfg.PostgresPort +
			" user=" + cfg.PostgresUser +
			" password=" + cfg.PostgresPassword +
			" dbname=" + cfg.PostgresDB +
			" sslmode=" + cfg.PostgresSSLMode
	}

	// TranslateError maps driver errors onto gorm.ErrDuplicatedKey and
	// gorm.ErrForeignKeyViolated, which the repositories rely on.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	return db, nil
}

// initRabbitMQWithRetry attempts to connect to RabbitMQ with exponential backoff retry
func initRabbitMQWithRetry(cfg *config.Config) *util.RabbitMQClient {
	maxRetries := 10
	initialDelay := 2 * time.Second
	maxDelay := 30 * time.Second

	for attempt := 1; attempt <= maxRetries; attempt++ {
		rabbitMQ, err := util.NewRabbitMQClient(cfg)
		if err == nil {
			log.Printf("RabbitMQ connected successfully on attempt %d", attempt)
			return rabbitMQ
		}

		if attempt < maxRetries {
			delay := initialDelay * time.Duration(1<<uint(attempt-1))
			if delay > maxDelay {
				delay = maxDelay
			}

			log.Printf("Failed to connect to RabbitMQ (attempt %d/%d): %v. Retrying in %v...", attempt, maxRetries, err, delay)
			time.Sleep(delay)
		} else {
			log.Printf("Warning: Failed to connect to RabbitMQ after %d attempts: %v. Report counter events will be disabled.", maxRetries, err)
		}
	}

	return nil
}

// initRedisWithRetry attempts to connect to Redis with exponential backoff retry
func initRedisWithRetry(cfg *config.Config) *util.RedisClient {
	maxRetries := 10
	initialDelay := 2 * time.Second
	maxDelay := 30 * time.Second

	for attempt := 1; attempt <= maxRetries; attempt++ {
		redisClient, err := util.NewRedisClient(cfg)
		if err == nil {
			log.Printf("Redis connected successfully on attempt %d", attempt)
			return redisClient
		}

		if attempt < maxRetries {
			delay := initialDelay * time.Duration(1<<uint(attempt-1))
			if delay > maxDelay {
				delay = maxDelay
			}

			log.Printf("Failed to connect to Redis (attempt %d/%d): %v. Retrying in %v...", attempt, maxRetries, err, delay)
			time.Sleep(delay)
		} else {
			log.Printf("Warning: Failed to connect to Redis after %d attempts: %v. Caching will be disabled.", maxRetries, err)
			log.Println("Note: Application will continue without Redis caching")
		}
	}

	return nil
}

func corsMiddleware(clientURL string) gin.HandlerFunc {
	// Allowed origins (whitelist)
	allowedOrigins := []string{
		clientURL, // Default from config
		"http://localhost:3000",
		"http://localhost:5173",
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		// Check if origin is in whitelist
		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin {
				allowed = true
				break
			}
		}

		// If origin is allowed, set it; otherwise, use default
		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", clientURL)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
