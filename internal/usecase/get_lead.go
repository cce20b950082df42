package usecase

import (
	"context"

	"github.com/xavierca1/ligue-leads/internal/entity"
)

type GetLeadUseCase struct {
	Repo LeadRepositoryInterface
}

func NewGetLeadUseCase(repo LeadRepositoryInterface) *GetLeadUseCase {
	return &GetLeadUseCase{Repo: repo}
}

func (uc *GetLeadUseCase) Execute(ctx context.Context, id string) (*entity.Lead, error) {
	return uc.Repo.FindByID(ctx, id)
}
