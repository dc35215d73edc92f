package planner

import (
	"context"

	"NutritionAssistant/internal/llm"
	"NutritionAssistant/internal/metrics"
	"NutritionAssistant/internal/models"
)

// Generator is the outbound collaborator: one POST to the generation service
// returning the raw response body. Satisfied by *llm.Client.
type Generator interface {
	Generate(ctx context.Context, request llm.Request) ([]byte, error)
}

// Stage names reported while a generation is running.
const (
	StageMetrics    = "computing-metrics"
	StageRequesting = "requesting-plan"
	StageValidating = "validating-plan"
)

// Outcome is the all-or-nothing result of one successful pipeline run. The
// caller applies it to the session in a single step; the pipeline itself
// never touches session state.
type Outcome struct {
	Profile models.Profile  `json:"profile"`
	Metrics models.Metrics  `json:"metrics"`
	Plan    models.MealPlan `json:"plan"`
}

// Pipeline runs profile -> metrics -> prompt -> external call -> validation.
type Pipeline struct {
	generator Generator
}

func NewPipeline(generator Generator) *Pipeline {
	return &Pipeline{generator: generator}
}

// Run executes one generation for the given profile. onStage, when non-nil,
// is invoked before each stage so callers can surface progress. Cancelling
// the context aborts before any result is produced.
func (pl *Pipeline) Run(ctx context.Context, profile models.Profile, onStage func(stage string)) (*Outcome, error) {
	notify := func(stage string) {
		if onStage != nil {
			onStage(stage)
		}
	}

	notify(StageMetrics)
	derived := metrics.Compute(profile)

	notify(StageRequesting)
	request := BuildPlanRequest(profile, derived.Calories)
	rawEnvelope, err := pl.generator.Generate(ctx, request)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	notify(StageValidating)
	plan, err := Validate(rawEnvelope)
	if err != nil {
		return nil, err
	}

	return &Outcome{Profile: profile, Metrics: derived, Plan: *plan}, nil
}
