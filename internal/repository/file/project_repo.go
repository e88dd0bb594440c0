package file

import (
	"context"
	"fmt"
	"os"
	"slices"

	"github.com/shri8977/FUTURE-FS-01/internal/domain"

	"gopkg.in/yaml.v3"
)

// projectCatalog is the on-disk shape of the projects file
type projectCatalog struct {
	Projects []domain.Project `yaml:"projects"`
}

type projectRepo struct {
	projects []domain.Project
}

// NewProjectRepository reads the catalog once; the file is part of the deployed site.
func NewProjectRepository(path string) (domain.ProjectRepository, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read project catalog: %w", err)
	}

	var catalog projectCatalog
	if err := yaml.Unmarshal(raw, &catalog); err != nil {
		return nil, fmt.Errorf("parse project catalog %s: %w", path, err)
	}

	seen := make(map[string]bool, len(catalog.Projects))
	for i, p := range catalog.Projects {
		if p.ID == "" || p.Title == "" {
			return nil, fmt.Errorf("project catalog %s: entry %d needs id and title", path, i)
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("project catalog %s: duplicate id %q", path, p.ID)
		}
		seen[p.ID] = true
	}

	return &projectRepo{projects: catalog.Projects}, nil
}

// NewEmptyProjectRepository serves no projects. Used when the catalog is missing.
func NewEmptyProjectRepository() domain.ProjectRepository {
	return &projectRepo{}
}

func (r *projectRepo) List(ctx context.Context) ([]domain.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	// callers may mutate the result, categories included
	out := make([]domain.Project, len(r.projects))
	for i, p := range r.projects {
		p.Categories = slices.Clone(p.Categories)
		out[i] = p
	}
	return out, nil
}
