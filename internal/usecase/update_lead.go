package usecase

import (
	"context"
	"log"
	"strings"

	"github.com/xavierca1/ligue-leads/internal/entity"
	"github.com/xavierca1/ligue-leads/internal/infra/queue"
)

type UpdateLeadUseCase struct {
	Repo  LeadRepositoryInterface
	Queue QueueProducerInterface
}

func NewUpdateLeadUseCase(repo LeadRepositoryInterface, producer QueueProducerInterface) *UpdateLeadUseCase {
	return &UpdateLeadUseCase{
		Repo:  repo,
		Queue: producer,
	}
}

func (uc *UpdateLeadUseCase) Execute(ctx context.Context, id string, input UpdateLeadInput) (*entity.Lead, error) {
	if errs := ValidateUpdateLeadInput(input); len(errs) > 0 {
		return nil, errs
	}

	lead, err := uc.Repo.Update(ctx, id, normalizeUpdateInput(input))
	if err != nil {
		return nil, err
	}

	if uc.Queue != nil {
		if err := uc.Queue.PublishLeadEvent(ctx, leadEventPayload(queue.EventLeadUpdated, lead)); err != nil {
			log.Printf("failed to publish %s for lead %s: %v", queue.EventLeadUpdated, lead.ID, err)
		}
	}

	return lead, nil
}

// normalizeUpdateInput returns a copy with present fields brought to the
// canonical form the store persists, leaving the caller's input intact.
func normalizeUpdateInput(input UpdateLeadInput) UpdateLeadInput {
	out := input

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		out.Name = &name
	}

	if input.Email != nil {
		email := NormalizeEmail(*input.Email)
		out.Email = &email
	}

	if input.Phone != nil {
		phone := NormalizePhone(*input.Phone)
		out.Phone = &phone
	}

	return out
}
