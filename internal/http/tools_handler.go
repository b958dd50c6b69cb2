package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/Zaclee030314/pawradise-1/internal/aitools"
	"github.com/Zaclee030314/pawradise-1/internal/content"
	"github.com/Zaclee030314/pawradise-1/internal/profile"
)

// toolUnavailableMessage is the generic, non-technical fallback every panel
// shows when a completion attempt fails. Resubmitting is the only recourse.
const toolUnavailableMessage = "Our AI helper is taking a quick paw-se. Please try again!"

type ToolsHandler struct {
	gateway  *aitools.Gateway
	profiles *profile.MemoryStore
	content  content.RepoInterface

	mu     sync.Mutex
	panels map[string]*aitools.Panel
}

func NewToolsHandler(gateway *aitools.Gateway, profiles *profile.MemoryStore, contentRepo content.RepoInterface) *ToolsHandler {
	return &ToolsHandler{
		gateway:  gateway,
		profiles: profiles,
		content:  contentRepo,
		panels:   make(map[string]*aitools.Panel),
	}
}

// panel returns the latest-wins panel for a tool, creating it on first use.
// Each tool gets its own: resubmitting the meal planner must not cancel a
// safety check in flight.
func (h *ToolsHandler) panel(tool string) *aitools.Panel {
	h.mu.Lock()
	defer h.mu.Unlock()
	p, ok := h.panels[tool]
	if !ok {
		p = &aitools.Panel{}
		h.panels[tool] = p
	}
	return p
}

type MealPlanRequestDTO struct {
	Name      string  `json:"name"`
	PetType   string  `json:"pet_type"`
	Weight    float64 `json:"weight"`
	Age       float64 `json:"age"`
	Activity  string  `json:"activity"`
	Allergies string  `json:"allergies"`
}

type EventMatchRequestDTO struct {
	Mood    string `json:"mood"`
	Vibe    string `json:"vibe"`
	PetName string `json:"pet_name"`
}

type LifeStageRequestDTO struct {
	Age     float64 `json:"age"`
	PetType string  `json:"pet_type"`
}

type NameGeneratorRequestDTO struct {
	PetType string `json:"pet_type"`
	Gender  string `json:"gender"`
	Theme   string `json:"theme"`
}

type BreedInfoRequestDTO struct {
	Breed   string `json:"breed"`
	PetType string `json:"pet_type"`
}

type TranslatorRequestDTO struct {
	Input   string `json:"input"`
	PetType string `json:"pet_type"`
}

type TreatRecipeRequestDTO struct {
	Ingredients []string `json:"ingredients"`
	PetType     string   `json:"pet_type"`
}

type TrainingPlanRequestDTO struct {
	Trick   string `json:"trick"`
	PetName string `json:"pet_name"`
	PetType string `json:"pet_type"`
}

type TravelPlanRequestDTO struct {
	Destination string `json:"destination"`
	PetType     string `json:"pet_type"`
}

type VetPrepRequestDTO struct {
	Symptoms string `json:"symptoms"`
	PetType  string `json:"pet_type"`
}

type CompatibilityRequestDTO struct {
	Pet1 string `json:"pet1"`
	Pet2 string `json:"pet2"`
}

type BudgetPlanRequestDTO struct {
	Budget    float64 `json:"budget"`
	PetType   string  `json:"pet_type"`
	Lifestyle string  `json:"lifestyle"`
	Age       float64 `json:"age"`
	Weight    float64 `json:"weight"`
}

type SafetyCheckRequestDTO struct {
	Item    string `json:"item"`
	PetType string `json:"pet_type"`
}

type NameAnalyzerRequestDTO struct {
	Name string `json:"name"`
}

type ConciergeRequestDTO struct {
	Question string `json:"question"`
}

type ConciergeResponseDTO struct {
	Answer string `json:"answer"`
}

// Invoke dispatches POST /api/v1/tools/{tool} to the matching tool call site.
// The invocation itself runs under the tool's panel, so a newer submission
// for the same tool supersedes one still in flight.
func (h *ToolsHandler) Invoke(w http.ResponseWriter, r *http.Request) {
	tool := chi.URLParam(r, "tool")
	ctx := r.Context()

	var call func() (any, error)

	switch tool {
	case "meal-plan":
		var req MealPlanRequestDTO
		if !decodeBody(w, r, &req) {
			return
		}
		// Blank fields fall back to the active pet profile, like the form
		// pre-filling from the family profile.
		if pet := h.profiles.ActivePet(); pet != nil && req.Name == "" {
			req.Name = pet.Name
			req.PetType = string(pet.Type)
			req.Weight = pet.Weight
			req.Age = pet.Age
			req.Activity = string(pet.ActivityLevel)
			if req.Allergies == "" {
				req.Allergies = pet.HealthNotes
			}
		}
		if req.Name == "" || req.PetType == "" {
			respondError(w, http.StatusBadRequest, "invalid_request", "name and pet_type are required")
			return
		}
		call = func() (any, error) {
			return aitools.GenerateMealPlan(ctx, h.gateway, req.Name, req.PetType, req.Weight, req.Age, req.Activity, req.Allergies)
		}

	case "event-match":
		var req EventMatchRequestDTO
		if !decodeBody(w, r, &req) {
			return
		}
		if req.Mood == "" || req.Vibe == "" {
			respondError(w, http.StatusBadRequest, "invalid_request", "mood and vibe are required")
			return
		}
		call = func() (any, error) {
			return aitools.FindEventMatch(ctx, h.gateway, req.Mood, req.Vibe, req.PetName)
		}

	case "life-stage":
		var req LifeStageRequestDTO
		if !decodeBody(w, r, &req) {
			return
		}
		if req.Age <= 0 || req.PetType == "" {
			respondError(w, http.StatusBadRequest, "invalid_request", "age and pet_type are required")
			return
		}
		call = func() (any, error) {
			return aitools.CalculateLifeStage(ctx, h.gateway, req.Age, req.PetType)
		}

	case "name-generator":
		var req NameGeneratorRequestDTO
		if !decodeBody(w, r, &req) {
			return
		}
		if req.Theme == "" {
			respondError(w, http.StatusBadRequest, "invalid_request", "theme is required")
			return
		}
		call = func() (any, error) {
			return aitools.GeneratePetNames(ctx, h.gateway, req.PetType, req.Gender, req.Theme)
		}

	case "breed-info":
		var req BreedInfoRequestDTO
		if !decodeBody(w, r, &req) {
			return
		}
		if req.Breed == "" {
			respondError(w, http.StatusBadRequest, "invalid_request", "breed is required")
			return
		}
		call = func() (any, error) {
			return aitools.GetBreedInfo(ctx, h.gateway, req.Breed, req.PetType)
		}

	case "translator":
		var req TranslatorRequestDTO
		if !decodeBody(w, r, &req) {
			return
		}
		if req.Input == "" {
			respondError(w, http.StatusBadRequest, "invalid_request", "input is required")
			return
		}
		call = func() (any, error) {
			return aitools.TranslatePetLanguage(ctx, h.gateway, req.Input, req.PetType)
		}

	case "treat-recipe":
		var req TreatRecipeRequestDTO
		if !decodeBody(w, r, &req) {
			return
		}
		if len(req.Ingredients) == 0 {
			respondError(w, http.StatusBadRequest, "invalid_request", "ingredients are required")
			return
		}
		call = func() (any, error) {
			return aitools.GenerateTreatRecipe(ctx, h.gateway, req.Ingredients, req.PetType)
		}

	case "training-plan":
		var req TrainingPlanRequestDTO
		if !decodeBody(w, r, &req) {
			return
		}
		if req.Trick == "" {
			respondError(w, http.StatusBadRequest, "invalid_request", "trick is required")
			return
		}
		call = func() (any, error) {
			return aitools.GenerateTrainingPlan(ctx, h.gateway, req.Trick, req.PetName, req.PetType)
		}

	case "travel-plan":
		var req TravelPlanRequestDTO
		if !decodeBody(w, r, &req) {
			return
		}
		if req.Destination == "" {
			respondError(w, http.StatusBadRequest, "invalid_request", "destination is required")
			return
		}
		call = func() (any, error) {
			return aitools.GenerateTravelPlan(ctx, h.gateway, req.Destination, req.PetType)
		}

	case "vet-prep":
		var req VetPrepRequestDTO
		if !decodeBody(w, r, &req) {
			return
		}
		if req.Symptoms == "" {
			respondError(w, http.StatusBadRequest, "invalid_request", "symptoms are required")
			return
		}
		call = func() (any, error) {
			return aitools.PrepareVetVisit(ctx, h.gateway, req.Symptoms, req.PetType)
		}

	case "compatibility":
		var req CompatibilityRequestDTO
		if !decodeBody(w, r, &req) {
			return
		}
		if req.Pet1 == "" || req.Pet2 == "" {
			respondError(w, http.StatusBadRequest, "invalid_request", "pet1 and pet2 are required")
			return
		}
		call = func() (any, error) {
			return aitools.CheckPetCompatibility(ctx, h.gateway, req.Pet1, req.Pet2)
		}

	case "budget-plan":
		var req BudgetPlanRequestDTO
		if !decodeBody(w, r, &req) {
			return
		}
		if req.Budget <= 0 {
			respondError(w, http.StatusBadRequest, "invalid_request", "budget must be positive")
			return
		}
		call = func() (any, error) {
			return aitools.GenerateBudgetPlan(ctx, h.gateway, req.Budget, req.PetType, req.Lifestyle, req.Age, req.Weight)
		}

	case "safety-check":
		var req SafetyCheckRequestDTO
		if !decodeBody(w, r, &req) {
			return
		}
		if req.Item == "" {
			respondError(w, http.StatusBadRequest, "invalid_request", "item is required")
			return
		}
		call = func() (any, error) {
			return aitools.CheckSafety(ctx, h.gateway, req.Item, req.PetType)
		}

	case "name-analyzer":
		var req NameAnalyzerRequestDTO
		if !decodeBody(w, r, &req) {
			return
		}
		if req.Name == "" {
			respondError(w, http.StatusBadRequest, "invalid_request", "name is required")
			return
		}
		call = func() (any, error) {
			return aitools.AnalyzeNameVibe(ctx, h.gateway, req.Name)
		}

	default:
		respondError(w, http.StatusNotFound, "unknown_tool", "unknown tool")
		return
	}

	result, err := h.panel(tool).Do(call)
	if err != nil {
		if errors.Is(err, aitools.ErrSuperseded) {
			respondError(w, http.StatusConflict, "superseded", "a newer request for this tool replaced this one")
			return
		}
		if errors.Is(err, aitools.ErrUnavailable) {
			respondError(w, http.StatusServiceUnavailable, "tool_unavailable", toolUnavailableMessage)
			return
		}
		respondError(w, http.StatusInternalServerError, "internal_error", "tool invocation failed")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// Concierge answers the open-ended advice chat. The system instruction is
// rebuilt per request so new content and the current active pet are always
// reflected; failures surface as the product-voice fallback with 200, never
// as an error page.
func (h *ToolsHandler) Concierge(w http.ResponseWriter, r *http.Request) {
	var req ConciergeRequestDTO
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Question == "" {
		respondError(w, http.StatusBadRequest, "invalid_request", "question is required")
		return
	}

	ctx := r.Context()
	events, err := h.content.ListEvents(ctx)
	if err != nil {
		log.Printf("failed to load events for concierge context: %v", err)
	}
	places, err := h.content.ListPlaces(ctx)
	if err != nil {
		log.Printf("failed to load places for concierge context: %v", err)
	}

	instruction := aitools.ConciergeInstruction(events, places, h.profiles.ActivePet())
	answer := aitools.GeneratePetAdvice(ctx, h.gateway, req.Question, instruction)

	respondJSON(w, http.StatusOK, ConciergeResponseDTO{Answer: answer})
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return false
	}
	return true
}
