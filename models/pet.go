package models

// Pet belongs to an owner and is referenced by bookings, never owned by them.
type Pet struct {
	ID           string `json:"id"`
	OwnerID      string `json:"ownerId"`
	Name         string `json:"name"`
	Type         string `json:"type"`  // e.g., "dog", "cat", "rabbit"
	Breed        string `json:"breed"`
	Age          int    `json:"age"`
	SpecialNeeds string `json:"specialNeeds,omitempty"`
}
