/* Turns the untrusted text returned by the generation service into a typed
   MealPlan, or a typed failure. Deterministic and side-effect-free. */

package planner

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"NutritionAssistant/internal/llm"
	"NutritionAssistant/internal/models"
)

var (
	// ErrEmptyResponse: the envelope carried no candidate text at all.
	ErrEmptyResponse = errors.New("generation response contains no candidate text")
	// ErrInvalidShape: the text parsed as JSON but is not a meal plan.
	ErrInvalidShape = errors.New("generation response has invalid plan shape")
)

// MalformedJSONError carries the cleaned text that failed to parse. The raw
// text is diagnostic detail for operators and tests only; handlers must never
// return it to end users.
type MalformedJSONError struct {
	Raw string
	Err error
}

func (e *MalformedJSONError) Error() string {
	return fmt.Sprintf("generation response is not valid JSON: %v", e.Err)
}

func (e *MalformedJSONError) Unwrap() error { return e.Err }

// Validate extracts, sanitizes and validates a raw response envelope. On
// success the returned plan is ready to attach to the session; the caller
// applies it, Validate itself mutates nothing.
func Validate(rawEnvelope []byte) (*models.MealPlan, error) {
	text, err := extractCandidateText(rawEnvelope)
	if err != nil {
		return nil, err
	}

	cleaned := SanitizeResponseText(text)
	if cleaned == "" {
		return nil, ErrEmptyResponse
	}

	var payload struct {
		Meals  map[string]json.RawMessage `json:"meals"`
		Macros *struct {
			Protein *float64 `json:"protein"`
			Carbs   *float64 `json:"carbs"`
			Fats    *float64 `json:"fats"`
		} `json:"macros"`
	}
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return nil, &MalformedJSONError{Raw: cleaned, Err: err}
	}

	if len(payload.Meals) == 0 {
		return nil, fmt.Errorf("%w: missing or empty meals", ErrInvalidShape)
	}
	if payload.Macros == nil || payload.Macros.Protein == nil || payload.Macros.Carbs == nil || payload.Macros.Fats == nil {
		return nil, fmt.Errorf("%w: macros must contain numeric protein, carbs and fats", ErrInvalidShape)
	}

	meals := make(map[string]string, len(payload.Meals))
	for slot, raw := range payload.Meals {
		meals[slot] = coerceToText(raw)
	}

	plan := &models.MealPlan{
		Meals: meals,
		Macros: models.Macros{
			Protein: *payload.Macros.Protein,
			Carbs:   *payload.Macros.Carbs,
			Fats:    *payload.Macros.Fats,
		},
	}

	// Advisory contract: the plan is accepted either way, but the anomaly is
	// observable via Macros.Balanced and noted for operators.
	if !plan.Macros.Balanced() {
		log.Printf("[WARN] plan macros do not sum to 100 (protein=%v carbs=%v fats=%v)",
			plan.Macros.Protein, plan.Macros.Carbs, plan.Macros.Fats)
	}

	return plan, nil
}

// extractCandidateText digs the text payload out of the response envelope.
// Missing or empty nested fields are ErrEmptyResponse, never a crash.
func extractCandidateText(rawEnvelope []byte) (string, error) {
	var envelope llm.Response
	if err := json.Unmarshal(rawEnvelope, &envelope); err != nil {
		return "", &MalformedJSONError{Raw: string(rawEnvelope), Err: err}
	}
	if len(envelope.Candidates) == 0 {
		return "", ErrEmptyResponse
	}
	parts := envelope.Candidates[0].Content.Parts
	if len(parts) == 0 || strings.TrimSpace(parts[0].Text) == "" {
		return "", ErrEmptyResponse
	}
	return parts[0].Text, nil
}

// SanitizeResponseText strips the markdown wrapping models habitually add
// around JSON: code fences (generic and language-tagged) and surrounding
// whitespace. Exported because it is the most behaviorally fragile step of
// the pipeline and needs direct input/output testing.
func SanitizeResponseText(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}

// coerceToText renders a meal slot value as display text. Strings pass
// through, anything else (numbers, objects) is rendered from its JSON form.
func coerceToText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var v interface{}
	if err := json.Unmarshal(raw, &v); err == nil {
		return fmt.Sprintf("%v", v)
	}
	return string(raw)
}
