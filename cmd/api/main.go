package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"RapidCapture_SecurityTrainer/internal/drill"
	"RapidCapture_SecurityTrainer/internal/feedback"
	"RapidCapture_SecurityTrainer/internal/handler"
	"RapidCapture_SecurityTrainer/internal/middleware"
	"RapidCapture_SecurityTrainer/internal/scenario"
	"RapidCapture_SecurityTrainer/internal/selector"
	"RapidCapture_SecurityTrainer/internal/storage"

	_ "RapidCapture_SecurityTrainer/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	limit "github.com/yangxikun/gin-limit-by-key"
	"golang.org/x/time/rate"
)

// @title           RapidCapture Security Trainer API
// @version         1.0
// @description     Backend for a phishing-awareness training drill: scenario selection, answer grading, session stats and detailed feedback.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("main(): no .env file found, using process environment")
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "data/trainer.db"
	}
	storage.InitDB(dbPath)

	corpus, err := scenario.NewCorpus(scenario.Builtin())
	if err != nil {
		log.Fatal("main(): invalid scenario catalog: ", err)
	}
	if err := corpus.Validate(); err != nil {
		log.Fatal("main(): incomplete scenario catalog: ", err)
	}

	picker := selector.New(corpus, nil)
	analyzer := feedback.NewService(feedback.NewClient(""))
	drillService := drill.NewService(corpus, picker, storage.NewSessionStore(), storage.NewAttemptStore(), analyzer)
	handler.InitDrillHandlers(drillService)

	router := gin.Default()
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowHeaders = append(config.AllowHeaders, "Authorization", "X-Invite-Code")
	router.Use(cors.New(config))

	// per-IP rate limit on the credential endpoints
	loginLimiter := limit.NewRateLimiter(func(c *gin.Context) string {
		return c.ClientIP()
	}, func(c *gin.Context) (*rate.Limiter, time.Duration) {
		return rate.NewLimiter(rate.Every(time.Second), 5), time.Hour
	}, func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
	})

	router.POST("/signup", loginLimiter, middleware.InviteCodeMiddleware(), handler.Signup)
	router.POST("/login", loginLimiter, handler.Login)

	protected := router.Group("/api").Use(middleware.AuthMiddleware())
	{
		protected.GET("/profile", handler.Profile)
		protected.GET("/history", handler.GetAttemptHistory)
		protected.GET("/scenario/next", handler.NextScenario)
		protected.POST("/scenario/answer", handler.SubmitAnswer)
		protected.GET("/scenarios/summary", handler.CorpusSummary)
		protected.GET("/session/stats", handler.SessionStats)
		protected.POST("/session/reset", handler.ResetSession)
		protected.GET("/feedback", handler.ScenarioFeedback)
	}

	router.GET("/ws/drill", handler.HandleDrillConnection)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	log.Fatal(router.Run(addr))
}
