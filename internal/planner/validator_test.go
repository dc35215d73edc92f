package planner

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"NutritionAssistant/internal/llm"
)

func envelope(t *testing.T, text string) []byte {
	t.Helper()
	raw, err := json.Marshal(llm.Response{
		Candidates: []llm.Candidate{
			{Content: llm.Content{Parts: []llm.Part{{Text: text}}}},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	return raw
}

const validPlanJSON = `{"meals":{"Breakfast":"oatmeal with berries","Lunch":"lentil soup","Dinner":"tofu stir fry"},"macros":{"protein":30,"carbs":45,"fats":25}}`

func TestValidateAcceptsPlainJSON(t *testing.T) {
	plan, err := Validate(envelope(t, validPlanJSON))
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if len(plan.Meals) != 3 {
		t.Errorf("expected 3 meal slots, got %d", len(plan.Meals))
	}
	if plan.Meals["Lunch"] != "lentil soup" {
		t.Errorf("unexpected lunch: %q", plan.Meals["Lunch"])
	}
	if !plan.Macros.Balanced() {
		t.Error("macros summing to 100 must report balanced")
	}
}

func TestValidateFencedAndPlainAreIdentical(t *testing.T) {
	fencings := []string{
		"```json\n" + validPlanJSON + "\n```",
		"```\n" + validPlanJSON + "\n```",
		"  \n" + validPlanJSON + "  ",
	}

	want, err := Validate(envelope(t, validPlanJSON))
	if err != nil {
		t.Fatal(err)
	}
	for _, text := range fencings {
		got, err := Validate(envelope(t, text))
		if err != nil {
			t.Fatalf("Validate(%q): %v", text, err)
		}
		if got.Macros != want.Macros || len(got.Meals) != len(want.Meals) {
			t.Errorf("fenced response parsed differently: %+v vs %+v", got, want)
		}
	}
}

func TestValidateEmptyResponse(t *testing.T) {
	cases := map[string][]byte{
		"no candidates":  []byte(`{"candidates":[]}`),
		"no parts":       []byte(`{"candidates":[{"content":{"parts":[]}}]}`),
		"blank text":     envelope(t, "   "),
		"only fences":    envelope(t, "```json\n```"),
		"empty envelope": []byte(`{}`),
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Validate(raw); !errors.Is(err, ErrEmptyResponse) {
				t.Errorf("want ErrEmptyResponse, got %v", err)
			}
		})
	}
}

func TestValidateMalformedJSON(t *testing.T) {
	_, err := Validate(envelope(t, "Here is your plan: oatmeal, soup, stir fry."))

	var malformed *MalformedJSONError
	if !errors.As(err, &malformed) {
		t.Fatalf("want MalformedJSONError, got %v", err)
	}
	if malformed.Raw == "" {
		t.Error("malformed error must carry the offending text for diagnostics")
	}
}

func TestValidateInvalidShape(t *testing.T) {
	cases := map[string]string{
		"missing macros":     `{"meals":{"Breakfast":"toast"}}`,
		"missing meals":      `{"macros":{"protein":30,"carbs":45,"fats":25}}`,
		"empty meals":        `{"meals":{},"macros":{"protein":30,"carbs":45,"fats":25}}`,
		"incomplete macros":  `{"meals":{"Breakfast":"toast"},"macros":{"protein":30,"carbs":45}}`,
		"non-numeric macros": `{"meals":{"Breakfast":"toast"},"macros":{"protein":"a lot","carbs":45,"fats":25}}`,
	}
	for name, text := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Validate(envelope(t, text))
			if errors.Is(err, ErrInvalidShape) {
				return
			}
			// The non-numeric case surfaces at unmarshal time instead.
			var malformed *MalformedJSONError
			if name == "non-numeric macros" && errors.As(err, &malformed) {
				return
			}
			t.Errorf("want ErrInvalidShape, got %v", err)
		})
	}
}

func TestValidateUnbalancedMacrosAccepted(t *testing.T) {
	plan, err := Validate(envelope(t, `{"meals":{"Breakfast":"toast"},"macros":{"protein":50,"carbs":45,"fats":25}}`))
	if err != nil {
		t.Fatalf("lenient contract: unbalanced macros must still validate, got %v", err)
	}
	if plan.Macros.Balanced() {
		t.Error("a split summing to 120 must be flagged as unbalanced")
	}
}

func TestValidateCoercesNonStringMealValues(t *testing.T) {
	plan, err := Validate(envelope(t, `{"meals":{"Breakfast":42},"macros":{"protein":30,"carbs":45,"fats":25}}`))
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if plan.Meals["Breakfast"] != "42" {
		t.Errorf("numeric meal value must coerce to text, got %q", plan.Meals["Breakfast"])
	}
}

func TestValidateIsDeterministic(t *testing.T) {
	raw := envelope(t, "```json\n"+validPlanJSON+"\n```")
	first, err1 := Validate(raw)
	second, err2 := Validate(raw)
	if err1 != nil || err2 != nil {
		t.Fatalf("Validate: %v / %v", err1, err2)
	}
	if fmt.Sprintf("%+v", first) != fmt.Sprintf("%+v", second) {
		t.Error("identical raw text must validate identically")
	}
}

func TestSanitizeResponseText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `{"a":1}`, `{"a":1}`},
		{"tagged fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"generic fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"whitespace", "  {\"a\":1}\n\n", `{"a":1}`},
		{"fence no newline", "```json{\"a\":1}```", `{"a":1}`},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeResponseText(tt.in); got != tt.want {
				t.Errorf("SanitizeResponseText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
