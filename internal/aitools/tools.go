package aitools

import (
	"context"
	"fmt"
	"strings"
)

// The schema-constrained tool call sites. Each builds its natural-language instruction
// from form input and delegates to the gateway with its declared schema.
// Prompt construction is plain string interpolation; all the shared
// machinery lives in Invoke.

func GenerateMealPlan(ctx context.Context, g *Gateway, name, petType string, weight, age float64, activity, allergies string) (*MealPlanResponse, error) {
	if allergies == "" {
		allergies = "None"
	}
	prompt := fmt.Sprintf(`Create a detailed fresh food meal plan for a %g year old %s named %s weighing %gkg with %s activity level. Allergies/Notes: %s.

REQUIREMENTS:
1. Calculate approximate daily calories.
2. Provide EXACT grams per day for: Protein (Meat), Healthy Fats, and Carbs/Veg.
3. List specific recommended ingredients for EACH category (e.g., "Chicken breast, Beef" for protein).
4. Keep advice short and encouraging.`, age, petType, name, weight, activity, allergies)

	out, err := invokeTyped[MealPlanResponse](ctx, g, prompt, MealPlanSchema)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func FindEventMatch(ctx context.Context, g *Gateway, mood, vibe, petName string) ([]EventSuggestion, error) {
	if petName == "" {
		petName = "Dog"
	}
	prompt := fmt.Sprintf(`Act as a Pet Lifestyle Concierge for KL & Selangor, Malaysia.
My pet %s is %s and looks for a %s experience.

Recommend 3 DISTINCT specific places or events in KL/Selangor that match this mood.
Use your general knowledge of real places (e.g. Desa ParkCity, specific cafes, hiking trails).

Return exactly 3 suggestions in JSON format.`, petName, mood, vibe)

	return invokeTyped[[]EventSuggestion](ctx, g, prompt, EventSuggestionsSchema)
}

func CalculateLifeStage(ctx context.Context, g *Gateway, age float64, petType string) (*LifeStageResponse, error) {
	prompt := fmt.Sprintf("Calculate the human age equivalent for a %g year old %s and identify their life stage. Provide 3 brief, bulleted care tips.", age, petType)

	out, err := invokeTyped[LifeStageResponse](ctx, g, prompt, LifeStageSchema)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func GeneratePetNames(ctx context.Context, g *Gateway, petType, gender, theme string) ([]NameSuggestion, error) {
	prompt := fmt.Sprintf("Generate 5 creative names for a %s %s based on the theme: %s. Include meaning/origin.", gender, petType, theme)

	return invokeTyped[[]NameSuggestion](ctx, g, prompt, NameSuggestionsSchema)
}

func GetBreedInfo(ctx context.Context, g *Gateway, breed, petType string) (*BreedInfo, error) {
	prompt := fmt.Sprintf("Provide detailed information for the %s breed: %s. Rate energy, grooming, friendliness, trainability from 1-10. Provide a fun fact.", petType, breed)

	out, err := invokeTyped[BreedInfo](ctx, g, prompt, BreedInfoSchema)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func TranslatePetLanguage(ctx context.Context, g *Gateway, input, petType string) (*TranslatorResponse, error) {
	prompt := fmt.Sprintf("Interpret what a %s might mean when they: %q. Be funny but informative. Give a translation, the mood, and how a human should respond.", petType, input)

	out, err := invokeTyped[TranslatorResponse](ctx, g, prompt, TranslatorSchema)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func GenerateTreatRecipe(ctx context.Context, g *Gateway, ingredients []string, petType string) (*TreatRecipeResponse, error) {
	prompt := fmt.Sprintf("Create a safe, simple DIY treat recipe for a %s using these ingredients (or subset): %s. Ensure ingredients are pet-safe.", petType, strings.Join(ingredients, ", "))

	out, err := invokeTyped[TreatRecipeResponse](ctx, g, prompt, TreatRecipeSchema)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func GenerateTrainingPlan(ctx context.Context, g *Gateway, trick, petName, petType string) (*TrainingPlanResponse, error) {
	prompt := fmt.Sprintf("Create a step-by-step positive reinforcement training plan to teach a %s named %s to: %s.", petType, petName, trick)

	out, err := invokeTyped[TrainingPlanResponse](ctx, g, prompt, TrainingPlanSchema)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func GenerateTravelPlan(ctx context.Context, g *Gateway, destination, petType string) (*TravelPlanResponse, error) {
	prompt := fmt.Sprintf("Plan a pet-friendly trip to %s for a %s. List packing essentials, activity ideas, and travel tips.", destination, petType)

	out, err := invokeTyped[TravelPlanResponse](ctx, g, prompt, TravelPlanSchema)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func PrepareVetVisit(ctx context.Context, g *Gateway, symptoms, petType string) (*VetPrepResponse, error) {
	prompt := fmt.Sprintf("Act as a vet assistant. Prepare a checklist for a vet visit for a %s with these symptoms: %q. Include possible causes (speculative), specific questions to ask the vet, and a disclaimer.", petType, symptoms)

	out, err := invokeTyped[VetPrepResponse](ctx, g, prompt, VetPrepSchema)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func CheckPetCompatibility(ctx context.Context, g *Gateway, pet1, pet2 string) (*CompatibilityResponse, error) {
	prompt := fmt.Sprintf("Analyze the compatibility between a %s and a %s. Give a score (0-100), a verdict, tips for introduction, and any warnings.", pet1, pet2)

	out, err := invokeTyped[CompatibilityResponse](ctx, g, prompt, CompatibilitySchema)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func GenerateBudgetPlan(ctx context.Context, g *Gateway, budget float64, petType, lifestyle string, age, weight float64) (*BudgetPlanResponse, error) {
	prompt := fmt.Sprintf(`Create a monthly budget breakdown for a %s lifestyle %s owner in Malaysia with a budget of RM %g. The pet is %g years old and weighs %gkg.
Provide estimated costs for food, medical, grooming, etc. Give saving tips and a verdict.`, lifestyle, petType, budget, age, weight)

	out, err := invokeTyped[BudgetPlanResponse](ctx, g, prompt, BudgetPlanSchema)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func CheckSafety(ctx context.Context, g *Gateway, item, petType string) (*SafetyCheckResponse, error) {
	prompt := fmt.Sprintf("Is %q safe for a %s to eat or be around? Analyze toxicity.", item, petType)

	out, err := invokeTyped[SafetyCheckResponse](ctx, g, prompt, SafetyCheckSchema)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func AnalyzeNameVibe(ctx context.Context, g *Gateway, name string) (*NameAnalysisResponse, error) {
	prompt := fmt.Sprintf("Analyze the \"vibe\" of the pet name %q. Give a fun numerology reading, personality traits associated with the name, and a fun prediction.", name)

	out, err := invokeTyped[NameAnalysisResponse](ctx, g, prompt, NameAnalysisSchema)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
