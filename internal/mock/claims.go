package mock

import "time"

// Claim is one synthetic record in the simulated claims dataset. Claims are
// immutable once generated; read commands never mutate the backing slice.
type Claim struct {
	ID           string
	PolicyNumber string
	HolderName   string
	Location     string
	DamageType   string
	Amount       int
	IncidentDate time.Time
	Status       string
}

var (
	damageTypes = []string{"Fire", "Hurricane", "Flood", "Theft", "Collision"}

	locations = []string{
		"Miami, FL",
		"Houston, TX",
		"New Orleans, LA",
		"Charleston, SC",
		"Tampa, FL",
		"Mobile, AL",
		"Jacksonville, FL",
		"Savannah, GA",
	}

	firstNames = []string{
		"James", "Mary", "Robert", "Patricia", "John",
		"Jennifer", "Michael", "Linda", "David", "Elizabeth",
	}

	lastNames = []string{
		"Smith", "Johnson", "Williams", "Brown", "Jones",
		"Garcia", "Miller", "Davis", "Rodriguez", "Martinez",
	}
)
