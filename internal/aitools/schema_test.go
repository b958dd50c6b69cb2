package aitools

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, raw string) any {
	t.Helper()
	var v any
	require.NoError(t, json.Unmarshal([]byte(raw), &v))
	return v
}

func TestValidateObject(t *testing.T) {
	s := &Schema{
		Type: TypeObject,
		Properties: map[string]*Schema{
			"name": {Type: TypeString},
			"age":  {Type: TypeNumber},
		},
		Required: []string{"name"},
	}

	assert.NoError(t, s.Validate(decode(t, `{"name": "Biscuit", "age": 3}`)))

	// Optional fields may be absent, extras are ignored.
	assert.NoError(t, s.Validate(decode(t, `{"name": "Biscuit", "mood": "sleepy"}`)))

	err := s.Validate(decode(t, `{"age": 3}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `missing required field "name"`)

	err = s.Validate(decode(t, `{"name": 42}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "$.name")

	assert.Error(t, s.Validate(decode(t, `["not", "an", "object"]`)))
}

func TestValidateArray(t *testing.T) {
	s := &Schema{Type: TypeArray, Items: &Schema{Type: TypeString}}

	assert.NoError(t, s.Validate(decode(t, `["a", "b"]`)))
	assert.NoError(t, s.Validate(decode(t, `[]`)))

	err := s.Validate(decode(t, `["a", 2]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "$[1]")

	assert.Error(t, s.Validate(decode(t, `"not an array"`)))
}

func TestValidateEnum(t *testing.T) {
	s := &Schema{Type: TypeString, Enum: []string{"Low", "Medium", "High"}}

	assert.NoError(t, s.Validate("Medium"))

	err := s.Validate("Extreme")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"Extreme"`)
}

func TestValidateScalars(t *testing.T) {
	assert.NoError(t, (&Schema{Type: TypeNumber}).Validate(3.5))
	assert.Error(t, (&Schema{Type: TypeNumber}).Validate("3.5"))
	assert.NoError(t, (&Schema{Type: TypeBoolean}).Validate(true))
	assert.Error(t, (&Schema{Type: TypeBoolean}).Validate("true"))
}

func TestValidateNested(t *testing.T) {
	v := decode(t, `{
		"isSafe": false,
		"riskLevel": "High",
		"explanation": "Grapes are toxic to dogs.",
		"actionSteps": ["Call your vet.", "Do not induce vomiting at home."]
	}`)
	assert.NoError(t, SafetyCheckSchema.Validate(v))

	bad := decode(t, `{
		"isSafe": false,
		"riskLevel": "Catastrophic",
		"explanation": "Grapes are toxic to dogs.",
		"actionSteps": []
	}`)
	err := SafetyCheckSchema.Validate(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "$.riskLevel")
}

func TestToGenAITranslation(t *testing.T) {
	out := MealPlanSchema.toGenAI()
	require.NotNil(t, out)
	assert.Equal(t, MealPlanSchema.Required, out.Required)
	require.Contains(t, out.Properties, "proteinIngredients")
	require.NotNil(t, out.Properties["proteinIngredients"].Items)

	var nilSchema *Schema
	assert.Nil(t, nilSchema.toGenAI())
}
