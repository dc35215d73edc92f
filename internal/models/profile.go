package models

// Activity levels accepted by the calorie calculator.
const (
	ActivitySedentary   = "sedentary"
	ActivityLight       = "light"
	ActivityModerate    = "moderate"
	ActivityActive      = "active"
	ActivityExtraActive = "extra-active"
)

// Health goals accepted by the calorie calculator.
const (
	GoalWeightLoss = "weight-loss"
	GoalMuscleGain = "muscle-gain"
	GoalMaintain   = "maintain"
)

// Profile holds the biometric and dietary data submitted by the user.
type Profile struct {
	Name               string  `json:"name" example:"gildong"`
	Age                int     `json:"age" example:"30"`
	HeightCm           float64 `json:"height_cm" example:"175"`
	WeightKg           float64 `json:"weight_kg" example:"70"`
	ActivityLevel      string  `json:"activity_level" example:"sedentary"`
	DietaryPreference  string  `json:"dietary_preference" example:"vegetarian"`
	Allergies          string  `json:"allergies,omitempty" example:"peanuts"`
	CulturalPreference string  `json:"cultural_preference,omitempty" example:"korean"`
	HealthGoal         string  `json:"health_goal" example:"weight-loss"`
}

// Metrics are derived from a Profile, never edited directly.
type Metrics struct {
	BMI      float64 `json:"bmi" example:"22.9"`
	Calories int     `json:"calories" example:"1509"`
}
