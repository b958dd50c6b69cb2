package aitools

import (
	"context"
	"fmt"
	"strings"

	"github.com/Zaclee030314/pawradise-1/internal/content"
	"github.com/Zaclee030314/pawradise-1/internal/profile"
)

// The concierge's fixed fallback strings. These are part of the product
// voice, not error diagnostics.
const (
	adviceEmptyFallback = "I sniffed around but couldn't find an answer. Try asking again!"
	adviceErrorFallback = "Oops! My connection is a bit furry right now. Please try again later."
)

// ConciergeInstruction assembles the "Ask Pawradise" system instruction:
// the persona and disclaimer rules, the featured events and places as
// context, and the active pet profile when one exists.
func ConciergeInstruction(events []*content.Event, places []*content.Place, pet *profile.PetProfile) string {
	var eventLines []string
	for _, e := range events {
		eventLines = append(eventLines, fmt.Sprintf("- %s (%s) on %s at %s. Details: %s", e.Title, e.Type, e.Date, e.Location, e.Description))
	}
	var placeLines []string
	for _, p := range places {
		placeLines = append(placeLines, fmt.Sprintf("- %s (%s) in %s. Features: %s. Rating: %g stars.", p.Name, p.Type, p.Location, strings.Join(p.Features, ", "), p.Rating))
	}

	var b strings.Builder
	b.WriteString(`You are "Ask Pawradise", the intelligent AI Concierge for PetzPawradise Malaysia.

TONE: Warm, friendly, local (Malaysian context), and "paw-sitive". Use puns if appropriate.
DISCLAIMER: You are NOT a veterinarian. Always end health/diet advice with: "Please note: This is not medical advice. Always consult your vet."

WEBSITE DATA (Featured Highlights):
These are specific events/places featured on our site. Mention them if they match the user's query perfectly.

Events:
`)
	b.WriteString(strings.Join(eventLines, "\n"))
	b.WriteString("\n\nPlaces:\n")
	b.WriteString(strings.Join(placeLines, "\n"))
	b.WriteString(`

CORE DIRECTIVE (CRITICAL):
1. You are an OPEN-DOMAIN expert on the Malaysian Pet Lifestyle (KL, Selangor, and Nationwide).
2. DO NOT limit your answers to the "Website Data" list above. That is just a small subset.
3. IF THE USER ASKS for something not in the list (e.g., "Vets in Subang", "Dog swimming pools", "Hiking trails", "Groomers near me"), you MUST use your GENERAL KNOWLEDGE to provide real, specific recommendations.
4. Provide names of real places, businesses, or locations.
5. If searching for a general topic (e.g. "Dog food recipes"), use your general AI knowledge.

User Context (The Pawrent's Pet):`)

	if pet != nil {
		fmt.Fprintf(&b, `
Name: %s
Type: %s
Breed: %s
Age: %g years
Weight: %g kg
Activity: %s
Notes: %s

Tailor answers to this specific pet.
`, pet.Name, pet.Type, pet.Breed, pet.Age, pet.Weight, pet.ActivityLevel, pet.HealthNotes)
	} else {
		b.WriteString("\n(No specific pet profile active. Answer generally but encourage adding a profile for better tips.)")
	}

	return b.String()
}

// GeneratePetAdvice answers an open-ended question in free-text mode.
// Failure is absorbed into the product-voice fallback; the reply is always
// displayable.
func GeneratePetAdvice(ctx context.Context, g *Gateway, userPrompt, systemInstruction string) string {
	text, err := g.InvokeText(ctx, systemInstruction, userPrompt)
	if err != nil {
		return adviceErrorFallback
	}
	if strings.TrimSpace(text) == "" {
		return adviceEmptyFallback
	}
	return text
}
