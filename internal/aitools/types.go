package aitools

// Typed response shapes, one per tool, mirroring the declared schemas.

type MealPlanResponse struct {
	Calories           float64  `json:"calories"`
	ProteinGrams       float64  `json:"proteinGrams"`
	FatGrams           float64  `json:"fatGrams"`
	CarbGrams          float64  `json:"carbGrams"`
	ProteinIngredients []string `json:"proteinIngredients"`
	VegIngredients     []string `json:"vegIngredients"`
	CarbIngredients    []string `json:"carbIngredients"`
	Advice             string   `json:"advice"`
}

type EventSuggestion struct {
	Title       string `json:"title"`
	Location    string `json:"location"`
	Description string `json:"description"`
	MatchReason string `json:"matchReason"`
}

type LifeStageResponse struct {
	HumanAge    float64  `json:"humanAge"`
	StageName   string   `json:"stageName"` // e.g. "Teenager", "Senior Citizen"
	Description string   `json:"description"`
	CareTips    []string `json:"careTips"`
}

type NameSuggestion struct {
	Name    string `json:"name"`
	Meaning string `json:"meaning"`
	Origin  string `json:"origin"`
}

type BreedInfo struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Energy       float64  `json:"energy"`       // 1-10
	Grooming     float64  `json:"grooming"`     // 1-10
	Friendliness float64  `json:"friendliness"` // 1-10
	Trainability float64  `json:"trainability"` // 1-10
	CareTips     []string `json:"careTips"`
	FunFact      string   `json:"funFact"`
}

type TranslatorResponse struct {
	Mood          string `json:"mood"`
	Translation   string `json:"translation"`
	HumanResponse string `json:"humanResponse"`
}

type TreatRecipeResponse struct {
	Title         string   `json:"title"`
	Ingredients   []string `json:"ingredients"`
	Instructions  []string `json:"instructions"`
	NutritionNote string   `json:"nutritionNote"`
}

type TrainingStep struct {
	Step        float64 `json:"step"`
	Instruction string  `json:"instruction"`
}

type TrainingPlanResponse struct {
	Title      string         `json:"title"`
	Steps      []TrainingStep `json:"steps"`
	Tips       []string       `json:"tips"`
	Difficulty string         `json:"difficulty"`
}

type TravelPlanResponse struct {
	Destination string   `json:"destination"`
	PackingList []string `json:"packingList"`
	Activities  []string `json:"activities"`
	Tips        []string `json:"tips"`
}

type VetPrepResponse struct {
	Checklist      []string `json:"checklist"`
	PossibleCauses []string `json:"possibleCauses"`
	QuestionsToAsk []string `json:"questionsToAsk"`
	Disclaimer     string   `json:"disclaimer"`
}

type CompatibilityResponse struct {
	Score   float64  `json:"score"` // 0-100
	Verdict string   `json:"verdict"`
	Tips    []string `json:"tips"`
	Warning string   `json:"warning,omitempty"`
}

type BudgetLine struct {
	Category      string  `json:"category"`
	EstimatedCost float64 `json:"estimatedCost"`
	Tip           string  `json:"tip"`
}

type BudgetPlanResponse struct {
	Breakdown      []BudgetLine `json:"breakdown"`
	TotalEstimated float64      `json:"totalEstimated"`
	SavingTips     []string     `json:"savingTips"`
	Verdict        string       `json:"verdict"` // e.g. "Thrifty Pawrent", "Luxury Living"
}

type SafetyCheckResponse struct {
	IsSafe      bool     `json:"isSafe"`
	RiskLevel   string   `json:"riskLevel"` // Low, Medium, High
	Explanation string   `json:"explanation"`
	ActionSteps []string `json:"actionSteps"`
}

type NameAnalysisResponse struct {
	Vibe              string   `json:"vibe"`
	NumerologyNumber  float64  `json:"numerologyNumber"`
	PersonalityTraits []string `json:"personalityTraits"`
	FunPrediction     string   `json:"funPrediction"`
}
