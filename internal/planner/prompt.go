package planner

import (
	"fmt"
	"strings"

	"NutritionAssistant/internal/llm"
	"NutritionAssistant/internal/models"
)

// noneSentinel is sent instead of empty optional profile fields so the
// generator never sees a blank constraint.
const noneSentinel = "None"

// BuildPlanRequest turns a profile and its calorie target into the outbound
// generation payload. Pure construction, no error path.
func BuildPlanRequest(p models.Profile, calories int) llm.Request {
	allergies := strings.TrimSpace(p.Allergies)
	if allergies == "" {
		allergies = noneSentinel
	}
	cultural := strings.TrimSpace(p.CulturalPreference)
	if cultural == "" {
		cultural = noneSentinel
	}

	var b strings.Builder
	b.WriteString("You are a professional nutritionist. Create a one-day meal plan for the following person.\n\n")
	b.WriteString("REQUIREMENTS:\n")
	b.WriteString(fmt.Sprintf("- Daily calorie target: %d kcal\n", calories))
	b.WriteString(fmt.Sprintf("- Health goal: %s\n", p.HealthGoal))
	b.WriteString(fmt.Sprintf("- Dietary preference: %s\n", p.DietaryPreference))
	b.WriteString(fmt.Sprintf("- Allergies: %s\n", allergies))
	b.WriteString(fmt.Sprintf("- Cultural preference: %s\n", cultural))
	b.WriteString("\nOUTPUT CONTRACT:\n")
	b.WriteString("Return ONLY a JSON object, no extra text, no markdown, no code fences.\n")
	b.WriteString("Shape:\n")
	b.WriteString(`{"meals": {"Breakfast": "...", "Lunch": "...", "Dinner": "...", "Snack": "..."}, "macros": {"protein": 30, "carbs": 45, "fats": 25}}`)
	b.WriteString("\nEach meals value is a short description of the meal.\n")
	b.WriteString("macros values are integer percentages and MUST sum to exactly 100.\n")

	return llm.Request{
		Contents: []llm.Content{
			{Parts: []llm.Part{{Text: b.String()}}},
		},
	}
}
