package handler

import (
	"errors"
	"log"
	"net/http"

	"NutritionAssistant/internal/session"

	"github.com/gin-gonic/gin"
)

// RecordWeight godoc
// @Summary      Record a weight measurement
// @Tags         Tracking
// @Accept       json
// @Produce      json
// @Param        request body handler.WeightRequest true "Weight in kg"
// @Success      200 {object} map[string]string
// @Failure      400 {object} handler.ErrorResponse "invalid weight or no active profile"
// @Router       /api/weight [post]
func RecordWeight(c *gin.Context) {
	var req WeightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if err := sess.RecordWeight(req.Weight); err != nil {
		switch {
		case errors.Is(err, session.ErrInvalidWeight):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Weight must be a positive number"})
		case errors.Is(err, session.ErrNoActiveProfile):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Generate a plan before tracking weight"})
		default:
			log.Printf("[ERROR] Failed to record weight: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record weight"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Weight recorded"})
}

// GetWeightHistory godoc
// @Summary      Weight history
// @Description  Returns the session's weight sequence in chronological order, starting from the seeded profile weight.
// @Tags         Tracking
// @Produce      json
// @Success      200 {object} map[string][]models.WeightEntry "history: [entries]"
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/weight [get]
func GetWeightHistory(c *gin.Context) {
	entries, err := sess.WeightHistory()
	if err != nil {
		log.Printf("[ERROR] Failed to fetch weight history: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch weight history"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"history": entries})
}

// LogMeals godoc
// @Summary      Log meals for today
// @Description  Appends one logging action with the checked-off meal slots. An empty slot set is rejected.
// @Tags         Tracking
// @Accept       json
// @Produce      json
// @Param        request body handler.MealLogRequest true "Meal slots"
// @Success      200 {object} map[string]string
// @Failure      400 {object} handler.ErrorResponse "empty slot set or no active profile"
// @Router       /api/meals/log [post]
func LogMeals(c *gin.Context) {
	var req MealLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if err := sess.LogMeals(req.Slots); err != nil {
		switch {
		case errors.Is(err, session.ErrEmptyLogRequest):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Select at least one meal to log"})
		case errors.Is(err, session.ErrNoActiveProfile):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Generate a plan before logging meals"})
		default:
			log.Printf("[ERROR] Failed to log meals: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log meals"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Meals logged"})
}

// GetMealLog godoc
// @Summary      Meal log history
// @Tags         Tracking
// @Produce      json
// @Success      200 {object} map[string][]models.MealLogEntry "history: [entries]"
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/meals/log [get]
func GetMealLog(c *gin.Context) {
	entries, err := sess.MealLogHistory()
	if err != nil {
		log.Printf("[ERROR] Failed to fetch meal log: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch meal log"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"history": entries})
}
