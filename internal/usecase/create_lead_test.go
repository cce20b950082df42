package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/ligue-leads/internal/entity"
	"github.com/xavierca1/ligue-leads/internal/infra/queue"
)

func TestCreateLeadSuccess(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockLeadRepository)
	mockQueue := new(MockQueueProducer)
	mockEmail := new(MockEmailService)

	mockRepo.On("Create", ctx, mock.Anything).Return(nil)
	mockQueue.On("PublishLeadEvent", ctx, mock.MatchedBy(func(p queue.LeadEventPayload) bool {
		return p.Event == queue.EventLeadCreated && p.Email == "ann@x.com"
	})).Return(nil)
	mockEmail.On("SendLeadNotification", "Ann", "ann@x.com").Return(nil)

	uc := NewCreateLeadUseCase(mockRepo, mockQueue, mockEmail)

	lead, err := uc.Execute(ctx, CreateLeadInput{
		Name:  "  Ann ",
		Email: "Ann@X.com",
		Phone: "(555) 123-4567",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, lead.ID)
	assert.Equal(t, "Ann", lead.Name)
	assert.Equal(t, "ann@x.com", lead.Email)
	assert.Equal(t, "5551234567", lead.Phone)
	assert.Equal(t, entity.StatusNew, lead.Status)
	assert.Equal(t, entity.DefaultSource, lead.Source)

	mockRepo.AssertExpectations(t)
	mockQueue.AssertExpectations(t)
	mockEmail.AssertExpectations(t)
}

func TestCreateLeadValidationFailureSkipsStore(t *testing.T) {
	mockRepo := new(MockLeadRepository)

	uc := NewCreateLeadUseCase(mockRepo, nil, nil)

	_, err := uc.Execute(context.Background(), CreateLeadInput{
		Name:  "Ann",
		Email: "ann@x.com",
		Phone: "555123",
	})

	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs, 1)
	assert.Equal(t, ValidationError{"phone", "Phone number must be at least 10 digits"}, verrs[0])

	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateLeadConflictPassthrough(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockLeadRepository)
	mockRepo.On("Create", ctx, mock.Anything).Return(entity.ErrEmailTaken)

	uc := NewCreateLeadUseCase(mockRepo, nil, nil)

	_, err := uc.Execute(ctx, CreateLeadInput{
		Name:  "Ann",
		Email: "ann@x.com",
		Phone: "5551234567",
	})

	assert.ErrorIs(t, err, entity.ErrEmailTaken)
}

func TestCreateLeadCollaboratorFailuresAreNotFatal(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockLeadRepository)
	mockQueue := new(MockQueueProducer)
	mockEmail := new(MockEmailService)

	mockRepo.On("Create", ctx, mock.Anything).Return(nil)
	mockQueue.On("PublishLeadEvent", ctx, mock.Anything).Return(errors.New("broker down"))
	mockEmail.On("SendLeadNotification", mock.Anything, mock.Anything).Return(errors.New("smtp down"))

	uc := NewCreateLeadUseCase(mockRepo, mockQueue, mockEmail)

	lead, err := uc.Execute(ctx, CreateLeadInput{
		Name:  "Ann",
		Email: "ann@x.com",
		Phone: "5551234567",
	})

	require.NoError(t, err)
	assert.NotNil(t, lead)
}

func TestCreateLeadWorksWithoutCollaborators(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockLeadRepository)
	mockRepo.On("Create", ctx, mock.Anything).Return(nil)

	uc := NewCreateLeadUseCase(mockRepo, nil, nil)

	_, err := uc.Execute(ctx, CreateLeadInput{
		Name:  "Ann",
		Email: "ann@x.com",
		Phone: "5551234567",
	})

	require.NoError(t, err)
}
