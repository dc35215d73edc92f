/**
* Name:        plan_handler.go
* Description: Gin HTTP handlers for the plan-generation pipeline
* Workflow:    profile submission -> metrics -> external generation -> validation -> session update
 */
package handler

import (
	"errors"
	"log"
	"net/http"
	"time"

	"NutritionAssistant/internal/llm"
	"NutritionAssistant/internal/models"
	"NutritionAssistant/internal/planner"
	"NutritionAssistant/internal/session"
	"NutritionAssistant/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	sess *session.Session
	pipe *planner.Pipeline
)

// Failures of the generation pipeline all surface to the client as this one
// message. Diagnostic detail (including raw model text) goes to the log only.
const genericPlanFailure = "Couldn't generate a plan, please try again"

// Init wires the handlers to their collaborators. Called once from main.
func Init(s *session.Session, p *planner.Pipeline) {
	sess = s
	pipe = p
}

type ErrorResponse struct {
	Error string `json:"error" example:"error cause and description"`
}

type WeightRequest struct {
	Weight float64 `json:"weight" example:"69.5"`
}

type MealLogRequest struct {
	Slots []string `json:"slots" example:"Breakfast,Lunch"`
}

// GeneratePlan godoc
// @Summary      Generate a meal plan
// @Description  Submits a profile, derives health metrics, requests a plan from the generation service and stores the validated result in the session.
// @Tags         Plan
// @Accept       json
// @Produce      json
// @Param        request body models.Profile true "User profile"
// @Success      201 {object} planner.Outcome
// @Failure      400 {object} handler.ErrorResponse "invalid profile"
// @Failure      409 {object} handler.ErrorResponse "generation already in flight"
// @Failure      422 {object} handler.ErrorResponse "generation produced no usable plan"
// @Failure      502 {object} handler.ErrorResponse "generation service unreachable"
// @Router       /api/plan [post]
func GeneratePlan(c *gin.Context) {
	var profile models.Profile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if msg, ok := validateProfile(profile); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	if err := sess.BeginGeneration(); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "A plan generation is already in progress"})
		return
	}
	defer sess.EndGeneration()

	outcome, err := pipe.Run(c.Request.Context(), profile, nil)
	if err != nil {
		status, msg := planFailureStatus(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	if err := applyOutcome(outcome); err != nil {
		log.Printf("[ERROR] Failed to apply plan to session: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": genericPlanFailure})
		return
	}

	c.JSON(http.StatusCreated, outcome)
}

// GetPlan godoc
// @Summary      Current plan aggregate
// @Description  Returns the active profile with its derived metrics and latest meal plan.
// @Tags         Plan
// @Produce      json
// @Success      200 {object} planner.Outcome
// @Failure      404 {object} handler.ErrorResponse "no plan in session"
// @Router       /api/plan [get]
func GetPlan(c *gin.Context) {
	profile, ok := sess.Profile()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No active plan"})
		return
	}
	metrics, _ := sess.Metrics()
	plan, ok := sess.Plan()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No active plan"})
		return
	}
	c.JSON(http.StatusOK, planner.Outcome{Profile: profile, Metrics: metrics, Plan: plan})
}

// GetPlanHistory godoc
// @Summary      Plan generation history
// @Description  Returns this session's plan generation records, newest first.
// @Tags         Plan
// @Produce      json
// @Success      200 {object} map[string][]models.PlanRecord "history: [records]"
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/history [get]
func GetPlanHistory(c *gin.Context) {
	records, err := sess.PlanHistory()
	if err != nil {
		log.Printf("[ERROR] Failed to fetch plan history: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch history"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"history": records})
}

// ResetSession godoc
// @Summary      Reset the session (logout)
// @Description  Drops the profile/plan aggregate and every history sequence.
// @Tags         Session
// @Produce      json
// @Success      200 {object} map[string]string
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/reset [post]
func ResetSession(c *gin.Context) {
	if err := sess.Reset(); err != nil {
		log.Printf("[ERROR] Failed to reset session: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Session reset"})
}

func validateProfile(p models.Profile) (string, bool) {
	switch {
	case p.Age <= 0:
		return "Age must be a positive number", false
	case p.HeightCm <= 0:
		return "Height must be a positive number", false
	case p.WeightKg <= 0:
		return "Weight must be a positive number", false
	}
	return "", true
}

// planFailureStatus maps pipeline errors to HTTP replies without leaking
// diagnostic text. Raw model output is logged for operators only.
func planFailureStatus(err error) (int, string) {
	var transport *llm.TransportError
	if errors.As(err, &transport) {
		log.Printf("[ERROR] Generation transport failure: %v", err)
		return http.StatusBadGateway, genericPlanFailure
	}

	var malformed *planner.MalformedJSONError
	if errors.As(err, &malformed) {
		log.Printf("[ERROR] Generation returned malformed JSON: %v; raw text: %s", malformed.Err, malformed.Raw)
		return http.StatusUnprocessableEntity, genericPlanFailure
	}

	if errors.Is(err, planner.ErrEmptyResponse) || errors.Is(err, planner.ErrInvalidShape) {
		log.Printf("[ERROR] Generation response rejected: %v", err)
		return http.StatusUnprocessableEntity, genericPlanFailure
	}

	log.Printf("[ERROR] Plan generation failed: %v", err)
	return http.StatusInternalServerError, genericPlanFailure
}

// applyOutcome installs the validated result in the session and appends the
// audit record.
func applyOutcome(outcome *planner.Outcome) error {
	if err := sess.Apply(outcome.Profile, outcome.Metrics, outcome.Plan); err != nil {
		return err
	}
	record := models.PlanRecord{
		ID:        uuid.New().String(),
		BMI:       outcome.Metrics.BMI,
		Calories:  outcome.Metrics.Calories,
		Plan:      outcome.Plan,
		CreatedAt: storage.Timestamp(time.Now()),
	}
	if err := sess.RecordPlan(record); err != nil {
		// The plan itself is applied; a failed audit append is log-worthy
		// but not user-facing.
		log.Printf("[WARN] Failed to record plan history: %v", err)
	}
	return nil
}
