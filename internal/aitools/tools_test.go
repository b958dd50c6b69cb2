package aitools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateMealPlan(t *testing.T) {
	fake := &fakeCompleter{response: `{
		"calories": 540,
		"proteinGrams": 120,
		"fatGrams": 20,
		"carbGrams": 60,
		"proteinIngredients": ["Chicken breast", "Beef"],
		"vegIngredients": ["Carrots", "Broccoli"],
		"carbIngredients": ["Brown rice"],
		"advice": "Biscuit is going to love this!"
	}`}
	g := NewGateway(fake)

	plan, err := GenerateMealPlan(context.Background(), g, "Biscuit", "Dog", 12, 3, "Normal (Daily Walks)", "")
	require.NoError(t, err)
	assert.Equal(t, 540.0, plan.Calories)
	assert.Equal(t, []string{"Chicken breast", "Beef"}, plan.ProteinIngredients)

	require.Len(t, fake.prompts, 1)
	assert.Contains(t, fake.prompts[0], "3 year old Dog named Biscuit weighing 12kg")
	// Blank allergies read as None in the instruction.
	assert.Contains(t, fake.prompts[0], "Allergies/Notes: None.")
	assert.Same(t, MealPlanSchema, fake.schemas[0])
}

func TestFindEventMatchDefaultsPetName(t *testing.T) {
	fake := &fakeCompleter{response: `[
		{"title": "Desa ParkCity", "location": "KL", "description": "Off-leash lake walk", "matchReason": "Chill vibes"},
		{"title": "Bukit Gasing", "location": "PJ", "description": "Jungle trail", "matchReason": "Adventure"},
		{"title": "Huskiss Cafe", "location": "KL", "description": "Husky cafe", "matchReason": "Social"}
	]`}
	g := NewGateway(fake)

	suggestions, err := FindEventMatch(context.Background(), g, "chill", "outdoor", "")
	require.NoError(t, err)
	require.Len(t, suggestions, 3)
	assert.Equal(t, "Desa ParkCity", suggestions[0].Title)

	assert.Contains(t, fake.prompts[0], "My pet Dog is chill")
}

func TestCalculateLifeStage(t *testing.T) {
	fake := &fakeCompleter{response: `{
		"humanAge": 28,
		"stageName": "Young Adult",
		"description": "Prime of life.",
		"careTips": ["Keep up daily walks", "Annual checkup", "Dental care"]
	}`}
	g := NewGateway(fake)

	stage, err := CalculateLifeStage(context.Background(), g, 3, "Dog")
	require.NoError(t, err)
	assert.Equal(t, 28.0, stage.HumanAge)
	assert.Equal(t, "Young Adult", stage.StageName)
	assert.Len(t, stage.CareTips, 3)
}

func TestGenerateTrainingPlanNestedSteps(t *testing.T) {
	fake := &fakeCompleter{response: `{
		"title": "Teaching Biscuit to Roll Over",
		"steps": [
			{"step": 1, "instruction": "Start from a down position."},
			{"step": 2, "instruction": "Lure the nose toward the shoulder."}
		],
		"tips": ["Short sessions", "High-value treats"],
		"difficulty": "Medium"
	}`}
	g := NewGateway(fake)

	plan, err := GenerateTrainingPlan(context.Background(), g, "roll over", "Biscuit", "Dog")
	require.NoError(t, err)
	require.Len(t, plan.Steps, 2)
	assert.Equal(t, 1.0, plan.Steps[0].Step)
	assert.Equal(t, "Medium", plan.Difficulty)
}

func TestCheckPetCompatibilityOptionalWarning(t *testing.T) {
	fake := &fakeCompleter{response: `{
		"score": 85,
		"verdict": "Best friends in the making",
		"tips": ["Introduce on neutral ground"]
	}`}
	g := NewGateway(fake)

	result, err := CheckPetCompatibility(context.Background(), g, "Golden Retriever", "Persian Cat")
	require.NoError(t, err)
	assert.Equal(t, 85.0, result.Score)
	assert.Empty(t, result.Warning)
}

func TestCheckSafetyRejectsBadRiskLevel(t *testing.T) {
	g := NewGateway(&fakeCompleter{response: `{
		"isSafe": false,
		"riskLevel": "Apocalyptic",
		"explanation": "Grapes are toxic to dogs.",
		"actionSteps": ["Call your vet."]
	}`})

	_, err := CheckSafety(context.Background(), g, "grapes", "Dog")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestCheckSafety(t *testing.T) {
	fake := &fakeCompleter{response: `{
		"isSafe": false,
		"riskLevel": "High",
		"explanation": "Grapes can cause kidney failure in dogs.",
		"actionSteps": ["Call your vet immediately.", "Note how much was eaten."]
	}`}
	g := NewGateway(fake)

	result, err := CheckSafety(context.Background(), g, "grapes", "Dog")
	require.NoError(t, err)
	assert.False(t, result.IsSafe)
	assert.Equal(t, "High", result.RiskLevel)

	assert.Contains(t, fake.prompts[0], `Is "grapes" safe for a Dog`)
}

func TestGenerateBudgetPlan(t *testing.T) {
	fake := &fakeCompleter{response: `{
		"breakdown": [
			{"category": "Food", "estimatedCost": 250, "tip": "Buy kibble in bulk."},
			{"category": "Grooming", "estimatedCost": 80, "tip": "Brush at home between salon visits."}
		],
		"totalEstimated": 330,
		"savingTips": ["DIY treats"],
		"verdict": "Thrifty Pawrent"
	}`}
	g := NewGateway(fake)

	plan, err := GenerateBudgetPlan(context.Background(), g, 400, "Dog", "Normal", 3, 12)
	require.NoError(t, err)
	require.Len(t, plan.Breakdown, 2)
	assert.Equal(t, 330.0, plan.TotalEstimated)
	assert.Contains(t, fake.prompts[0], "RM 400")
}

func TestToolShapeMismatchIsUnavailable(t *testing.T) {
	// The response validates as an object but not as this tool's shape.
	g := NewGateway(&fakeCompleter{response: `{"name": "Luna", "meaning": "Moon", "origin": "Latin"}`})

	_, err := GeneratePetNames(context.Background(), g, "Cat", "Female", "celestial")
	assert.ErrorIs(t, err, ErrUnavailable)
}
