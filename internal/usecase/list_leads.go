package usecase

import "context"

type ListLeadsUseCase struct {
	Repo LeadRepositoryInterface
}

func NewListLeadsUseCase(repo LeadRepositoryInterface) *ListLeadsUseCase {
	return &ListLeadsUseCase{Repo: repo}
}

func (uc *ListLeadsUseCase) Execute(ctx context.Context, input ListLeadsInput) (*LeadPage, error) {
	page, limit := NormalizePageLimit(input.Page, input.Limit)

	return uc.Repo.FindPage(ctx, LeadFilter{Status: input.Status}, page, limit)
}
