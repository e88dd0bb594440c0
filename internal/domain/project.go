package domain

import "context"

// FilterAll selects every project
const FilterAll = "all"

// Project is a portfolio entry shown in the projects section
type Project struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Categories  []string `json:"categories" yaml:"categories"`
	URL         string   `json:"url,omitempty" yaml:"url"`
	Repo        string   `json:"repo,omitempty" yaml:"repo"`
}

// ProjectRepository loads the project catalog
type ProjectRepository interface {
	List(ctx context.Context) ([]Project, error)
}

// ProjectUsecase defines project listing operations
type ProjectUsecase interface {
	// List returns projects matching filter; "" and "all" match everything
	List(ctx context.Context, filter string) ([]Project, error)
}
