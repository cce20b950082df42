package usecase

import (
	"context"
	"log"

	"github.com/xavierca1/ligue-leads/internal/entity"
	"github.com/xavierca1/ligue-leads/internal/infra/queue"
)

type DeleteLeadUseCase struct {
	Repo  LeadRepositoryInterface
	Queue QueueProducerInterface
}

func NewDeleteLeadUseCase(repo LeadRepositoryInterface, producer QueueProducerInterface) *DeleteLeadUseCase {
	return &DeleteLeadUseCase{
		Repo:  repo,
		Queue: producer,
	}
}

func (uc *DeleteLeadUseCase) Execute(ctx context.Context, id string) error {
	if err := uc.Repo.Delete(ctx, id); err != nil {
		return err
	}

	if uc.Queue != nil {
		payload := queue.LeadEventPayload{
			Event:      queue.EventLeadDeleted,
			LeadID:     id,
			OccurredAt: entity.Now(),
		}
		if err := uc.Queue.PublishLeadEvent(ctx, payload); err != nil {
			log.Printf("failed to publish %s for lead %s: %v", queue.EventLeadDeleted, id, err)
		}
	}

	return nil
}
