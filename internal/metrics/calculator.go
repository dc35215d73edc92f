/* Pure derivations from the user profile: BMI and daily calorie target. */

package metrics

import (
	"math"

	"NutritionAssistant/internal/models"
)

// activityMultipliers maps activity level strings to their TDEE multiplier.
// Single source of truth for valid activity levels; unknown levels fall back
// to the sedentary multiplier.
var activityMultipliers = map[string]float64{
	models.ActivitySedentary:   1.2,
	models.ActivityLight:       1.375,
	models.ActivityModerate:    1.55,
	models.ActivityActive:      1.725,
	models.ActivityExtraActive: 1.9,
}

// Goal adjustments in kcal applied after the activity scaling. "maintain" and
// anything unrecognized apply no adjustment.
var goalAdjustments = map[string]float64{
	models.GoalWeightLoss: -500,
	models.GoalMuscleGain: 300,
}

// ComputeBMI returns weight / height² rounded to one decimal, or 0 when
// height is not positive.
func ComputeBMI(weightKg, heightCm float64) float64 {
	if heightCm <= 0 {
		return 0
	}
	heightM := heightCm / 100
	bmi := weightKg / (heightM * heightM)
	return math.Round(bmi*10) / 10
}

// ComputeDailyCalories estimates the daily calorie target: BMR via a
// Mifflin-St Jeor style formula (no sex offset term), scaled by the activity
// multiplier, then shifted by the goal adjustment. The goal delta is applied
// before the single final rounding.
func ComputeDailyCalories(p models.Profile) int {
	bmr := 10*p.WeightKg + 6.25*p.HeightCm - 5*float64(p.Age) + 5

	mult, found := activityMultipliers[p.ActivityLevel]
	if !found {
		mult = activityMultipliers[models.ActivitySedentary]
	}
	tdee := bmr * mult

	return int(math.Round(tdee + goalAdjustments[p.HealthGoal]))
}

// Compute derives both metrics from a profile.
func Compute(p models.Profile) models.Metrics {
	return models.Metrics{
		BMI:      ComputeBMI(p.WeightKg, p.HeightCm),
		Calories: ComputeDailyCalories(p),
	}
}
