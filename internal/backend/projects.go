package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// ListProjects retrieves projects visible to the authenticated user, optionally
// filtered by visibility ("PUBLIC" or "PRIVATE").
func (c *Client) ListProjects(ctx context.Context, token, visibility string) ([]ProjectDto, error) {
	path := "/api/projects"
	if visibility != "" {
		path += "?visibility=" + url.QueryEscape(visibility)
	}

	var projects []ProjectDto
	if err := c.doJSON(ctx, http.MethodGet, path, token, nil, &projects); err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	return projects, nil
}

// ListPublicProjects retrieves the public project catalog without credentials.
func (c *Client) ListPublicProjects(ctx context.Context) ([]ProjectDto, error) {
	var projects []ProjectDto
	if err := c.doJSON(ctx, http.MethodGet, "/api/projects?visibility=PUBLIC", "", nil, &projects); err != nil {
		return nil, fmt.Errorf("listing public projects: %w", err)
	}
	return projects, nil
}

// FetchProject retrieves a single project including its detail block.
func (c *Client) FetchProject(ctx context.Context, token, projectID string) (ProjectDto, error) {
	var project ProjectDto
	path := fmt.Sprintf("/api/projects/%s", url.PathEscape(projectID))
	if err := c.doJSON(ctx, http.MethodGet, path, token, nil, &project); err != nil {
		return ProjectDto{}, fmt.Errorf("fetching project %s: %w", projectID, err)
	}
	return project, nil
}
