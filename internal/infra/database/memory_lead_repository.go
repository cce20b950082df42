package database

import (
	"context"
	"sort"
	"sync"

	"github.com/xavierca1/ligue-leads/internal/entity"
	"github.com/xavierca1/ligue-leads/internal/usecase"
)

// MemoryLeadRepository is the full behavioral substitute for the Mongo
// store, used when the durable store is unavailable and for
// deterministic tests. It has no native atomicity, so every operation
// serializes through the mutex; callers never observe a half-applied
// write.
type MemoryLeadRepository struct {
	mu    sync.RWMutex
	leads map[string]*entity.Lead
}

func NewMemoryLeadRepository() *MemoryLeadRepository {
	return &MemoryLeadRepository{
		leads: make(map[string]*entity.Lead),
	}
}

// Reset clears all stored leads. Test isolation only.
func (r *MemoryLeadRepository) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.leads = make(map[string]*entity.Lead)
}

func (r *MemoryLeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.leads {
		if existing.Email == lead.Email {
			return entity.ErrEmailTaken
		}
	}

	clone := *lead
	r.leads[lead.ID] = &clone
	return nil
}

func (r *MemoryLeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lead, ok := r.leads[id]
	if !ok {
		return nil, entity.ErrLeadNotFound
	}

	clone := *lead
	return &clone, nil
}

func (r *MemoryLeadRepository) FindPage(ctx context.Context, filter usecase.LeadFilter, page, limit int) (*usecase.LeadPage, error) {
	r.mu.RLock()

	matching := make([]entity.Lead, 0, len(r.leads))
	for _, lead := range r.leads {
		if filter.Status != "" && lead.Status != filter.Status {
			continue
		}
		matching = append(matching, *lead)
	}
	r.mu.RUnlock()

	// Same order the Mongo store returns: newest first, ID breaking ties.
	sort.Slice(matching, func(i, j int) bool {
		if !matching[i].CreatedAt.Equal(matching[j].CreatedAt) {
			return matching[i].CreatedAt.After(matching[j].CreatedAt)
		}
		return matching[i].ID > matching[j].ID
	})

	return usecase.Paginate(matching, page, limit), nil
}

func (r *MemoryLeadRepository) Update(ctx context.Context, id string, input usecase.UpdateLeadInput) (*entity.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lead, ok := r.leads[id]
	if !ok {
		return nil, entity.ErrLeadNotFound
	}

	if input.Email != nil && *input.Email != lead.Email {
		for _, existing := range r.leads {
			if existing.ID != id && existing.Email == *input.Email {
				return nil, entity.ErrEmailTaken
			}
		}
	}

	if input.Name != nil {
		lead.Name = *input.Name
	}
	if input.Email != nil {
		lead.Email = *input.Email
	}
	if input.Phone != nil {
		lead.Phone = *input.Phone
	}
	if input.Status != nil {
		lead.Status = *input.Status
	}
	if input.Notes != nil {
		lead.Notes = *input.Notes
	}
	lead.UpdatedAt = entity.Now()

	clone := *lead
	return &clone, nil
}

func (r *MemoryLeadRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.leads[id]; !ok {
		return entity.ErrLeadNotFound
	}

	delete(r.leads, id)
	return nil
}
