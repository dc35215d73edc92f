package models

// Macros is the percentage split requested from the generator. The sum==100
// constraint is advisory: the generator is asked to satisfy it, the validator
// only flags violations.
type Macros struct {
	Protein float64 `json:"protein" example:"30"`
	Carbs   float64 `json:"carbs" example:"45"`
	Fats    float64 `json:"fats" example:"25"`
}

// Balanced reports whether the split sums to 100.
func (m Macros) Balanced() bool {
	return m.Protein+m.Carbs+m.Fats == 100
}

// MealPlan is the validated output of one generation. Meals is an open set of
// named slots (Breakfast/Lunch/Dinner/Snack/...), not a fixed-size structure.
type MealPlan struct {
	Meals  map[string]string `json:"meals"`
	Macros Macros            `json:"macros"`
}

// WeightEntry is one point of the session's weight history.
type WeightEntry struct {
	Date   string  `json:"date" example:"Aug 24, 2026"`
	Weight float64 `json:"weight" example:"70"`
}

// MealLogEntry records one logging action: the meal slots checked off for a
// date. Multiple same-day logs produce multiple entries, there is no
// merge-by-date.
type MealLogEntry struct {
	Date  string   `json:"date" example:"Aug 24, 2026"`
	Slots []string `json:"slots" example:"Breakfast,Lunch"`
}

// PlanRecord is one row of the session's generation audit trail.
type PlanRecord struct {
	ID        string   `json:"id"`
	BMI       float64  `json:"bmi"`
	Calories  int      `json:"calories"`
	Plan      MealPlan `json:"plan"`
	CreatedAt string   `json:"created_at"`
}
