package usecase

type CreateLeadInput struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

// UpdateLeadInput carries a partial update. Nil fields are left untouched
// by the store; the ID and creation timestamp are never client-writable.
type UpdateLeadInput struct {
	Name   *string `json:"name"`
	Email  *string `json:"email"`
	Phone  *string `json:"phone"`
	Status *string `json:"status"`
	Notes  *string `json:"notes"`
}

type ListLeadsInput struct {
	Status string
	Page   int
	Limit  int
}
