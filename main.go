package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"resumeinsight/config"
	"resumeinsight/database"
	"resumeinsight/handlers"
	"resumeinsight/middleware"
	"resumeinsight/models"
	"resumeinsight/services"
	"resumeinsight/skills"
	"resumeinsight/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		utils.LogInfo("no .env file found, using environment variables")
	}

	cfg := config.GetAppConfig()

	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer db.Close()

	if err := database.EnsureSchema(db); err != nil {
		log.Fatalf("schema setup failed: %v", err)
	}

	taxonomy, err := skills.Load(cfg.TaxonomyPath)
	if err != nil {
		// Load always returns a usable taxonomy; the error just explains
		// why the built-in one is in effect.
		utils.LogWarn("using built-in skills taxonomy", gin.H{"path": cfg.TaxonomyPath, "reason": err.Error()})
	}

	analysisService := services.NewAnalysisService(taxonomy)
	jwtService := services.NewJWTService(cfg.JWTSecret, cfg.JWTExpiry)

	users := models.NewUserModel(db)
	analyses := models.NewAnalysisModel(db)
	analyzeHandler := handlers.NewAnalyzeHandler(analysisService, analyses, cfg.MaxUploadSize)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	r.Use(middleware.SanitizeInput())
	r.Use(middleware.MaxRequestSize(cfg.MaxUploadSize + 1<<20))

	limiters := middleware.CreateRateLimiters()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.Use(limiters["general"].Limit())
	{
		auth := api.Group("/auth")
		auth.Use(limiters["auth"].Limit(), middleware.ValidateJSON())
		{
			auth.POST("/register", handlers.RegisterUser(users, jwtService))
			auth.POST("/login", handlers.LoginUser(users, jwtService))
		}

		api.POST("/analyze",
			limiters["upload"].Limit(),
			middleware.ValidateContentType("multipart/form-data"),
			handlers.OptionalAuthMiddleware(jwtService),
			analyzeHandler.Analyze,
		)
		api.GET("/analyses/:id",
			handlers.OptionalAuthMiddleware(jwtService),
			analyzeHandler.GetAnalysis,
		)

		protected := api.Group("")
		protected.Use(handlers.AuthMiddleware(jwtService))
		{
			protected.GET("/analyses", analyzeHandler.ListAnalyses)
			protected.GET("/profile", handlers.GetUserProfile(users))
		}
	}

	utils.LogInfo("starting server", gin.H{"port": cfg.Port, "environment": cfg.Environment})
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
