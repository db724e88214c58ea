package database

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding.
type Repository struct {
	*GroupRepo
	*PlayerRepo
}

var _ DataStore = (*Repository)(nil)

// NewRepository creates a new Repository over the given store
func NewRepository(store Store) *Repository {
	return &Repository{
		GroupRepo:  &GroupRepo{store: store},
		PlayerRepo: &PlayerRepo{store: store},
	}
}
