package main

import (
	"log"
	"net/http"
	"os"

	_ "NutritionAssistant/docs"
	"NutritionAssistant/internal/handler"
	"NutritionAssistant/internal/llm"
	"NutritionAssistant/internal/middleware"
	"NutritionAssistant/internal/planner"
	"NutritionAssistant/internal/session"
	"NutritionAssistant/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title        Nutrition Assistant API
// @version      1.0
// @description  Personal nutrition assistant: profile submission, AI meal-plan generation and progress tracking.
// @BasePath     /
func main() {
	godotenv.Load()

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Fatal("[Fatal] GEMINI_API_KEY is not set, plan generation impossible")
	}

	store, err := storage.Open()
	if err != nil {
		log.Fatalf("[Fatal] Failed to open session store: %v", err)
	}
	defer store.Close()

	sess := session.New(store)
	client := llm.NewClient(apiKey, os.Getenv("GEMINI_API_URL"))
	handler.Init(sess, planner.NewPipeline(client))

	router := gin.Default()
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	router.Use(cors.New(config))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		api.POST("/plan", middleware.GenerationRateLimiter(), handler.GeneratePlan)
		api.GET("/plan", handler.GetPlan)
		api.POST("/weight", handler.RecordWeight)
		api.GET("/weight", handler.GetWeightHistory)
		api.POST("/meals/log", handler.LogMeals)
		api.GET("/meals/log", handler.GetMealLog)
		api.GET("/history", handler.GetPlanHistory)
		api.POST("/reset", handler.ResetSession)
	}

	router.GET("/ws/coach", handler.HandleCoachConnection)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Fatal(router.Run(":" + port))
}
