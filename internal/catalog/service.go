package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/CELO-Colombia-invierte/invierte-api/internal/backend"
	"github.com/CELO-Colombia-invierte/invierte-api/internal/mapper"
)

// ProjectLister fetches the public project catalog from the platform API.
type ProjectLister interface {
	ListPublicProjects(ctx context.Context) ([]backend.ProjectDto, error)
}

// Service keeps a dated, normalized copy of the public project catalog so the
// catalog endpoint never blocks on the upstream API.
type Service struct {
	projects ProjectLister
	repo     Repository
}

// NewService creates a new catalog Service.
func NewService(projects ProjectLister, repo Repository) *Service {
	return &Service{projects: projects, repo: repo}
}

// Refresh fetches the public catalog, maps it to domain projects and stores
// today's snapshot. A mapping failure means the platform contract changed and
// aborts the refresh; the previous snapshot stays in place.
func (s *Service) Refresh(ctx context.Context) error {
	dtos, err := s.projects.ListPublicProjects(ctx)
	if err != nil {
		return fmt.Errorf("fetching public projects: %w", err)
	}

	projects, err := mapper.Projects(dtos)
	if err != nil {
		return fmt.Errorf("mapping public projects: %w", err)
	}

	data, err := json.Marshal(projects)
	if err != nil {
		return fmt.Errorf("marshaling catalog: %w", err)
	}

	date := time.Now().UTC().Truncate(24 * time.Hour)
	if err := s.repo.Save(ctx, date, data); err != nil {
		return fmt.Errorf("saving catalog: %w", err)
	}

	slog.Info("catalog refreshed", "projects", len(projects), "date", date.Format("2006-01-02"))
	return nil
}

// GetLatest returns the most recent catalog snapshot.
func (s *Service) GetLatest(ctx context.Context) (*Snapshot, error) {
	return s.repo.GetLatest(ctx)
}

// List returns recent catalog snapshots, newest first.
func (s *Service) List(ctx context.Context, limit int) ([]Snapshot, error) {
	return s.repo.List(ctx, limit)
}
