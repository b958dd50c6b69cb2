package aitools

// The declared response schemas, one per tool. These are fixed contracts:
// the field names and required sets match the response shapes the product
// was built around, so they must not drift casually.

var stringArray = &Schema{Type: TypeArray, Items: &Schema{Type: TypeString}}

var MealPlanSchema = &Schema{
	Type: TypeObject,
	Properties: map[string]*Schema{
		"calories":           {Type: TypeNumber},
		"proteinGrams":       {Type: TypeNumber, Description: "Grams of meat/protein source per day"},
		"fatGrams":           {Type: TypeNumber, Description: "Grams of fat source per day"},
		"carbGrams":          {Type: TypeNumber, Description: "Grams of vegetables/carbs per day"},
		"proteinIngredients": {Type: TypeArray, Items: &Schema{Type: TypeString}, Description: "List of recommended meats/proteins"},
		"vegIngredients":     {Type: TypeArray, Items: &Schema{Type: TypeString}, Description: "List of recommended vegetables"},
		"carbIngredients":    {Type: TypeArray, Items: &Schema{Type: TypeString}, Description: "List of recommended carbs/grains/supplements"},
		"advice":             {Type: TypeString},
	},
	Required: []string{"calories", "proteinGrams", "fatGrams", "carbGrams", "proteinIngredients", "vegIngredients", "carbIngredients", "advice"},
}

var EventSuggestionsSchema = &Schema{
	Type: TypeArray,
	Items: &Schema{
		Type: TypeObject,
		Properties: map[string]*Schema{
			"title":       {Type: TypeString, Description: "Name of the place or event"},
			"location":    {Type: TypeString, Description: "Area (e.g. TTDI, KL)"},
			"description": {Type: TypeString, Description: "Short description of what to do there"},
			"matchReason": {Type: TypeString, Description: "Why it fits the mood"},
		},
		Required: []string{"title", "location", "description", "matchReason"},
	},
}

var LifeStageSchema = &Schema{
	Type: TypeObject,
	Properties: map[string]*Schema{
		"humanAge":    {Type: TypeNumber},
		"stageName":   {Type: TypeString},
		"description": {Type: TypeString},
		"careTips":    stringArray,
	},
	Required: []string{"humanAge", "stageName", "description", "careTips"},
}

var NameSuggestionsSchema = &Schema{
	Type: TypeArray,
	Items: &Schema{
		Type: TypeObject,
		Properties: map[string]*Schema{
			"name":    {Type: TypeString},
			"meaning": {Type: TypeString},
			"origin":  {Type: TypeString},
		},
		Required: []string{"name", "meaning", "origin"},
	},
}

var BreedInfoSchema = &Schema{
	Type: TypeObject,
	Properties: map[string]*Schema{
		"name":         {Type: TypeString},
		"description":  {Type: TypeString},
		"energy":       {Type: TypeNumber},
		"grooming":     {Type: TypeNumber},
		"friendliness": {Type: TypeNumber},
		"trainability": {Type: TypeNumber},
		"careTips":     stringArray,
		"funFact":      {Type: TypeString},
	},
	Required: []string{"name", "description", "energy", "grooming", "friendliness", "trainability", "careTips", "funFact"},
}

var TranslatorSchema = &Schema{
	Type: TypeObject,
	Properties: map[string]*Schema{
		"mood":          {Type: TypeString},
		"translation":   {Type: TypeString},
		"humanResponse": {Type: TypeString},
	},
	Required: []string{"mood", "translation", "humanResponse"},
}

var TreatRecipeSchema = &Schema{
	Type: TypeObject,
	Properties: map[string]*Schema{
		"title":         {Type: TypeString},
		"ingredients":   stringArray,
		"instructions":  stringArray,
		"nutritionNote": {Type: TypeString},
	},
	Required: []string{"title", "ingredients", "instructions", "nutritionNote"},
}

var TrainingPlanSchema = &Schema{
	Type: TypeObject,
	Properties: map[string]*Schema{
		"title": {Type: TypeString},
		"steps": {
			Type: TypeArray,
			Items: &Schema{
				Type: TypeObject,
				Properties: map[string]*Schema{
					"step":        {Type: TypeNumber},
					"instruction": {Type: TypeString},
				},
				Required: []string{"step", "instruction"},
			},
		},
		"tips":       stringArray,
		"difficulty": {Type: TypeString},
	},
	Required: []string{"title", "steps", "tips", "difficulty"},
}

var TravelPlanSchema = &Schema{
	Type: TypeObject,
	Properties: map[string]*Schema{
		"destination": {Type: TypeString},
		"packingList": stringArray,
		"activities":  stringArray,
		"tips":        stringArray,
	},
	Required: []string{"destination", "packingList", "activities", "tips"},
}

var VetPrepSchema = &Schema{
	Type: TypeObject,
	Properties: map[string]*Schema{
		"checklist":      stringArray,
		"possibleCauses": stringArray,
		"questionsToAsk": stringArray,
		"disclaimer":     {Type: TypeString},
	},
	Required: []string{"checklist", "possibleCauses", "questionsToAsk", "disclaimer"},
}

var CompatibilitySchema = &Schema{
	Type: TypeObject,
	Properties: map[string]*Schema{
		"score":   {Type: TypeNumber},
		"verdict": {Type: TypeString},
		"tips":    stringArray,
		"warning": {Type: TypeString},
	},
	// warning is optional: a compatible pairing may have nothing to warn about.
	Required: []string{"score", "verdict", "tips"},
}

var BudgetPlanSchema = &Schema{
	Type: TypeObject,
	Properties: map[string]*Schema{
		"breakdown": {
			Type: TypeArray,
			Items: &Schema{
				Type: TypeObject,
				Properties: map[string]*Schema{
					"category":      {Type: TypeString},
					"estimatedCost": {Type: TypeNumber},
					"tip":           {Type: TypeString},
				},
				Required: []string{"category", "estimatedCost", "tip"},
			},
		},
		"totalEstimated": {Type: TypeNumber},
		"savingTips":     stringArray,
		"verdict":        {Type: TypeString},
	},
	Required: []string{"breakdown", "totalEstimated", "savingTips", "verdict"},
}

var SafetyCheckSchema = &Schema{
	Type: TypeObject,
	Properties: map[string]*Schema{
		"isSafe":      {Type: TypeBoolean},
		"riskLevel":   {Type: TypeString, Enum: []string{"Low", "Medium", "High"}},
		"explanation": {Type: TypeString},
		"actionSteps": stringArray,
	},
	Required: []string{"isSafe", "riskLevel", "explanation", "actionSteps"},
}

var NameAnalysisSchema = &Schema{
	Type: TypeObject,
	Properties: map[string]*Schema{
		"vibe":              {Type: TypeString},
		"numerologyNumber":  {Type: TypeNumber},
		"personalityTraits": stringArray,
		"funPrediction":     {Type: TypeString},
	},
	Required: []string{"vibe", "numerologyNumber", "personalityTraits", "funPrediction"},
}
