package content

// Event organizers split the listings into official and community sections.
const (
	OrganizerOfficial  = "PetzPawradise"
	OrganizerCommunity = "Other"
)

type Event struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Date            string   `json:"date"`
	Location        string   `json:"location"`
	Type            string   `json:"type"` // Bazaar, Pawty, Adoption, Workshop, Gathering
	Organizer       string   `json:"organizer"`
	Description     string   `json:"description"`
	Image           string   `json:"image"`
	FullDescription string   `json:"fullDescription,omitempty"`
	Time            string   `json:"time,omitempty"`
	Price           string   `json:"price,omitempty"`
	Highlights      []string `json:"highlights,omitempty"`
}

type Coordinates struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Place struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Type         string      `json:"type"` // Cafe, Park, Mall, Hotel
	Location     string      `json:"location"`
	Rating       float64     `json:"rating"`
	Features     []string    `json:"features"`
	Image        string      `json:"image"`
	Coordinates  Coordinates `json:"coordinates"`
	Description  string      `json:"description,omitempty"`
	Address      string      `json:"address,omitempty"`
	OpeningHours string      `json:"openingHours,omitempty"`
	Contact      string      `json:"contact,omitempty"`
}

type BlogPost struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Author   string   `json:"author"`
	Date     string   `json:"date"`
	Category string   `json:"category"`
	Excerpt  string   `json:"excerpt"`
	Content  string   `json:"content"`
	Image    string   `json:"image"`
	Tags     []string `json:"tags"`
	Likes    int      `json:"likes"`
}
