package planner

import (
	"context"
	"errors"
	"testing"

	"NutritionAssistant/internal/llm"
	"NutritionAssistant/internal/models"
)

type stubGenerator struct {
	body []byte
	err  error
	got  llm.Request
}

func (s *stubGenerator) Generate(_ context.Context, request llm.Request) ([]byte, error) {
	s.got = request
	return s.body, s.err
}

func testProfile() models.Profile {
	return models.Profile{
		Name:              "gildong",
		Age:               30,
		HeightCm:          175,
		WeightKg:          70,
		ActivityLevel:     models.ActivitySedentary,
		DietaryPreference: "vegetarian",
		HealthGoal:        models.GoalWeightLoss,
	}
}

func TestPipelineRun(t *testing.T) {
	stub := &stubGenerator{body: envelope(t, validPlanJSON)}
	pl := NewPipeline(stub)

	var stages []string
	outcome, err := pl.Run(context.Background(), testProfile(), func(stage string) {
		stages = append(stages, stage)
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if outcome.Metrics.Calories != 1509 {
		t.Errorf("calorie target = %d, want 1509", outcome.Metrics.Calories)
	}
	if outcome.Metrics.BMI != 22.9 {
		t.Errorf("bmi = %v, want 22.9", outcome.Metrics.BMI)
	}
	if len(outcome.Plan.Meals) == 0 {
		t.Error("outcome must carry the validated plan")
	}
	if len(stub.got.Contents) == 0 {
		t.Error("generator must receive the built request")
	}

	want := []string{StageMetrics, StageRequesting, StageValidating}
	if len(stages) != len(want) {
		t.Fatalf("stages = %v, want %v", stages, want)
	}
	for i := range want {
		if stages[i] != want[i] {
			t.Errorf("stage[%d] = %q, want %q", i, stages[i], want[i])
		}
	}
}

func TestPipelineTransportFailure(t *testing.T) {
	stub := &stubGenerator{err: &llm.TransportError{StatusCode: 503}}
	pl := NewPipeline(stub)

	_, err := pl.Run(context.Background(), testProfile(), nil)

	var transport *llm.TransportError
	if !errors.As(err, &transport) {
		t.Fatalf("want TransportError, got %v", err)
	}
}

func TestPipelineValidationFailure(t *testing.T) {
	stub := &stubGenerator{body: envelope(t, "not json at all")}
	pl := NewPipeline(stub)

	_, err := pl.Run(context.Background(), testProfile(), nil)

	var malformed *MalformedJSONError
	if !errors.As(err, &malformed) {
		t.Fatalf("want MalformedJSONError, got %v", err)
	}
}

func TestPipelineHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stub := &stubGenerator{body: envelope(t, validPlanJSON)}
	pl := NewPipeline(stub)

	if _, err := pl.Run(ctx, testProfile(), nil); !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled context must abort the run, got %v", err)
	}
}
