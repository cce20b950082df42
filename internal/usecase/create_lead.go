package usecase

import (
	"context"
	"log"
	"strings"

	"github.com/xavierca1/ligue-leads/internal/entity"
	"github.com/xavierca1/ligue-leads/internal/infra/queue"
)

type CreateLeadUseCase struct {
	Repo         LeadRepositoryInterface
	Queue        QueueProducerInterface
	EmailService EmailService
}

func NewCreateLeadUseCase(
	repo LeadRepositoryInterface,
	producer QueueProducerInterface,
	emailService EmailService,
) *CreateLeadUseCase {
	return &CreateLeadUseCase{
		Repo:         repo,
		Queue:        producer,
		EmailService: emailService,
	}
}

func (uc *CreateLeadUseCase) Execute(ctx context.Context, input CreateLeadInput) (*entity.Lead, error) {
	if errs := ValidateCreateLeadInput(input); len(errs) > 0 {
		return nil, errs
	}

	lead := entity.NewLead(
		strings.TrimSpace(input.Name),
		NormalizeEmail(input.Email),
		NormalizePhone(input.Phone),
		input.Status,
		input.Notes,
	)

	if err := uc.Repo.Create(ctx, lead); err != nil {
		return nil, err
	}

	// The lead is persisted; event and notification failures are logged,
	// never surfaced to the caller.
	if uc.Queue != nil {
		if err := uc.Queue.PublishLeadEvent(ctx, leadEventPayload(queue.EventLeadCreated, lead)); err != nil {
			log.Printf("failed to publish %s for lead %s: %v", queue.EventLeadCreated, lead.ID, err)
		}
	}

	if uc.EmailService != nil {
		if err := uc.EmailService.SendLeadNotification(lead.Name, lead.Email); err != nil {
			log.Printf("failed to send notification for lead %s: %v", lead.ID, err)
		}
	}

	return lead, nil
}

func leadEventPayload(event string, lead *entity.Lead) queue.LeadEventPayload {
	return queue.LeadEventPayload{
		Event:      event,
		LeadID:     lead.ID,
		Name:       lead.Name,
		Email:      lead.Email,
		Phone:      lead.Phone,
		Status:     lead.Status,
		Source:     lead.Source,
		OccurredAt: entity.Now(),
	}
}
