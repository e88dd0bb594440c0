package usecase

import (
	"context"
	"strings"

	"github.com/shri8977/FUTURE-FS-01/internal/domain"
)

type projectUsecase struct {
	repo domain.ProjectRepository
}

func NewProjectUsecase(repo domain.ProjectRepository) domain.ProjectUsecase {
	return &projectUsecase{repo: repo}
}

func (uc *projectUsecase) List(ctx context.Context, filter string) ([]domain.Project, error) {
	projects, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	filter = strings.TrimSpace(filter)
	if filter == "" || strings.EqualFold(filter, domain.FilterAll) {
		return projects, nil
	}

	matched := make([]domain.Project, 0, len(projects))
	for _, p := range projects {
		for _, c := range p.Categories {
			if strings.EqualFold(c, filter) {
				matched = append(matched, p)
				break
			}
		}
	}
	return matched, nil
}
