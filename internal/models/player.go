package models

// Player belongs to exactly one group, by association with the key it is
// stored under. Names are unique within a group, not globally.
type Player struct {
	Name string `json:"name"`
	Team Team   `json:"team"`
}
