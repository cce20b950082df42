package usecase

import (
	"context"

	"github.com/xavierca1/ligue-leads/internal/entity"
	"github.com/xavierca1/ligue-leads/internal/infra/queue"
)

// LeadFilter restricts which leads a read operation considers. Only
// status equality is exercised today.
type LeadFilter struct {
	Status string
}

// LeadRepositoryInterface is the single capability contract both store
// implementations satisfy. FindPage results are sorted by creation time
// descending (ID descending on ties) so pagination is deterministic.
type LeadRepositoryInterface interface {
	Create(ctx context.Context, lead *entity.Lead) error
	FindByID(ctx context.Context, id string) (*entity.Lead, error)
	FindPage(ctx context.Context, filter LeadFilter, page, limit int) (*LeadPage, error)
	Update(ctx context.Context, id string, input UpdateLeadInput) (*entity.Lead, error)
	Delete(ctx context.Context, id string) error
}

type QueueProducerInterface interface {
	PublishLeadEvent(ctx context.Context, payload queue.LeadEventPayload) error
}

type EmailService interface {
	SendLeadNotification(name, email string) error
}
