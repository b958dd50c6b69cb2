package profile

type PetType string

const (
	PetTypeDog   PetType = "Dog"
	PetTypeCat   PetType = "Cat"
	PetTypeOther PetType = "Other"
)

type ActivityLevel string

const (
	ActivityLow    ActivityLevel = "Low (Couch Potato)"
	ActivityNormal ActivityLevel = "Normal (Daily Walks)"
	ActivityHigh   ActivityLevel = "High (Zoomies all day)"
)

type OwnerProfile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
	Role  string `json:"role"` // e.g. Mom, Dad, Sibling, Pawrent
	Image string `json:"image,omitempty"`
}

type PetProfile struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Type          PetType       `json:"type"`
	Breed         string        `json:"breed"`
	Age           float64       `json:"age"`    // years
	Weight        float64       `json:"weight"` // kg
	ActivityLevel ActivityLevel `json:"activityLevel"`
	HealthNotes   string        `json:"healthNotes"`
	Image         string        `json:"image,omitempty"`
}
