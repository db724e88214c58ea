package models

// Group is a practice group ("turma"). It is identified only by its name.
type Group struct {
	Name string `json:"name"`
}
