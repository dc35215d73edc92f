package metrics

import (
	"testing"

	"NutritionAssistant/internal/models"
)

func TestComputeBMI(t *testing.T) {
	tests := []struct {
		name     string
		weightKg float64
		heightCm float64
		want     float64
	}{
		{"typical", 70, 175, 22.9},
		{"zero height", 70, 0, 0},
		{"negative height", 70, -10, 0},
		{"rounds to one decimal", 80, 180, 24.7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeBMI(tt.weightKg, tt.heightCm); got != tt.want {
				t.Errorf("ComputeBMI(%v, %v) = %v, want %v", tt.weightKg, tt.heightCm, got, tt.want)
			}
		})
	}
}

func TestComputeDailyCalories(t *testing.T) {
	base := models.Profile{
		WeightKg:      70,
		HeightCm:      175,
		Age:           30,
		ActivityLevel: models.ActivitySedentary,
		HealthGoal:    models.GoalWeightLoss,
	}

	// BMR = 10*70 + 6.25*175 - 5*30 + 5 = 1673.75
	// TDEE = 1673.75 * 1.2 = 2008.5; minus 500 = 1508.5; math.Round
	// (half away from zero) pins the adjust-then-round order at 1509.
	if got := ComputeDailyCalories(base); got != 1509 {
		t.Errorf("ComputeDailyCalories(weight-loss) = %d, want 1509", got)
	}

	maintain := base
	maintain.HealthGoal = models.GoalMaintain
	if got := ComputeDailyCalories(maintain); got != 2009 {
		t.Errorf("ComputeDailyCalories(maintain) = %d, want 2009", got)
	}

	gain := base
	gain.HealthGoal = models.GoalMuscleGain
	if got := ComputeDailyCalories(gain); got != 2309 {
		t.Errorf("ComputeDailyCalories(muscle-gain) = %d, want 2309", got)
	}
}

func TestUnknownActivityFallsBackToSedentary(t *testing.T) {
	p := models.Profile{
		WeightKg:      82,
		HeightCm:      168,
		Age:           44,
		ActivityLevel: "bogus",
		HealthGoal:    models.GoalMaintain,
	}
	sedentary := p
	sedentary.ActivityLevel = models.ActivitySedentary

	if got, want := ComputeDailyCalories(p), ComputeDailyCalories(sedentary); got != want {
		t.Errorf("unknown activity level: got %d, want sedentary value %d", got, want)
	}
}

func TestComputeIsDeterministic(t *testing.T) {
	p := models.Profile{
		WeightKg:      70,
		HeightCm:      175,
		Age:           30,
		ActivityLevel: models.ActivityModerate,
		HealthGoal:    models.GoalWeightLoss,
	}
	first := Compute(p)
	second := Compute(p)
	if first != second {
		t.Errorf("Compute not deterministic: %+v vs %+v", first, second)
	}
}
