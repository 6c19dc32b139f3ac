package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/CELO-Colombia-invierte/invierte-api/internal/backend"
	"github.com/CELO-Colombia-invierte/invierte-api/internal/catalog"
	"github.com/CELO-Colombia-invierte/invierte-api/internal/domain"
	"github.com/CELO-Colombia-invierte/invierte-api/internal/export"
	"github.com/CELO-Colombia-invierte/invierte-api/internal/mapper"
	"github.com/CELO-Colombia-invierte/invierte-api/internal/profile"
	"github.com/CELO-Colombia-invierte/invierte-api/internal/sanitize"
	"github.com/CELO-Colombia-invierte/invierte-api/internal/storage"
)

// Platform is the subset of the platform API client used by the handlers.
type Platform interface {
	FetchMe(ctx context.Context, token string) (backend.UserDto, error)
	UpdateProfile(ctx context.Context, token string, req backend.UpdateProfileRequestDto) (backend.UserDto, error)
	FetchPortfolio(ctx context.Context, token string) (backend.PortfolioResponseDto, error)
	ListProjects(ctx context.Context, token, visibility string) ([]backend.ProjectDto, error)
	FetchProject(ctx context.Context, token, projectID string) (backend.ProjectDto, error)
	ListConversations(ctx context.Context, token string) ([]backend.ConversationResponseDto, error)
	ListMessages(ctx context.Context, token, conversationID string) ([]backend.MessageResponseDto, error)
	SendMessage(ctx context.Context, token, conversationID, body string, attachmentIDs []string) (backend.MessageResponseDto, error)
	DeleteMessage(ctx context.Context, token, conversationID, messageID string) error
}

// CatalogReader serves the stored public project catalog.
type CatalogReader interface {
	GetLatest(ctx context.Context) (*catalog.Snapshot, error)
}

// Handler provides the HTTP endpoints of the BFF.
type Handler struct {
	platform   Platform
	catalog    CatalogReader
	onboarding *storage.Namespace
}

// NewHandler creates a new API handler.
func NewHandler(platform Platform, catalogReader CatalogReader, onboarding *storage.Namespace) *Handler {
	return &Handler{platform: platform, catalog: catalogReader, onboarding: onboarding}
}

type profileResponse struct {
	User     domain.User `json:"user"`
	Complete bool        `json:"complete"`
}

// GetProfile handles GET /api/v1/profile.
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r)

	dto, err := h.platform.FetchMe(r.Context(), s.token)
	if err != nil {
		slog.Error("failed to fetch profile", "user", s.identity.UserID, "error", err)
		writeError(w, http.StatusBadGateway, "platform request failed")
		return
	}

	user, err := mapper.User(dto)
	if err != nil {
		slog.Error("malformed user record", "user", s.identity.UserID, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, profileResponse{User: user, Complete: profile.IsComplete(&dto)})
}

type updateProfileRequest struct {
	Username      *string `json:"username"`
	DisplayName   *string `json:"displayName"`
	AvatarAssetID *string `json:"avatarAssetId"`
}

// UpdateProfile handles PATCH /api/v1/profile. Free-text fields are sanitized
// before validation and submission.
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r)

	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	patch := backend.UpdateProfileRequestDto{}
	if req.Username != nil {
		username := sanitize.String(*req.Username)
		if !profile.IsValidUsername(username) {
			writeError(w, http.StatusBadRequest, "username must be 3-20 characters, letters, digits and underscore only")
			return
		}
		patch.Username = &username
	}
	if req.DisplayName != nil {
		displayName := sanitize.String(*req.DisplayName)
		if !profile.IsValidDisplayName(displayName) {
			writeError(w, http.StatusBadRequest, "display name must be 2-50 characters")
			return
		}
		patch.DisplayName = &displayName
	}
	if req.AvatarAssetID != nil {
		assetID := sanitize.String(*req.AvatarAssetID)
		patch.AvatarAssetID = &assetID
	}

	dto, err := h.platform.UpdateProfile(r.Context(), s.token, patch)
	if err != nil {
		slog.Error("failed to update profile", "user", s.identity.UserID, "error", err)
		writeError(w, http.StatusBadGateway, "platform request failed")
		return
	}

	user, err := mapper.User(dto)
	if err != nil {
		slog.Error("malformed user record", "user", s.identity.UserID, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, profileResponse{User: user, Complete: profile.IsComplete(&dto)})
}

// GetPortfolio handles GET /api/v1/portfolio.
func (h *Handler) GetPortfolio(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r)

	portfolio, ok := h.fetchPortfolio(w, r, s)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, portfolio)
}

// GetStatement handles GET /api/v1/portfolio/statement.xlsx.
func (h *Handler) GetStatement(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r)

	portfolio, ok := h.fetchPortfolio(w, r, s)
	if !ok {
		return
	}

	data, err := export.WriteXLSX(portfolio)
	if err != nil {
		slog.Error("failed to render statement", "user", s.identity.UserID, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="statement.xlsx"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		slog.Warn("failed to write statement response", "error", err)
	}
}

func (h *Handler) fetchPortfolio(w http.ResponseWriter, r *http.Request, s session) (domain.Portfolio, bool) {
	dto, err := h.platform.FetchPortfolio(r.Context(), s.token)
	if err != nil {
		slog.Error("failed to fetch portfolio", "user", s.identity.UserID, "error", err)
		writeError(w, http.StatusBadGateway, "platform request failed")
		return domain.Portfolio{}, false
	}

	portfolio, err := mapper.Portfolio(dto)
	if err != nil {
		slog.Error("malformed portfolio record", "user", s.identity.UserID, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return domain.Portfolio{}, false
	}
	return portfolio, true
}

// ListProjects handles GET /api/v1/projects.
func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r)

	visibility := r.URL.Query().Get("visibility")
	switch visibility {
	case "", string(domain.VisibilityPublic), string(domain.VisibilityPrivate):
	default:
		writeError(w, http.StatusBadRequest, "visibility must be PUBLIC or PRIVATE")
		return
	}

	dtos, err := h.platform.ListProjects(r.Context(), s.token, visibility)
	if err != nil {
		slog.Error("failed to list projects", "user", s.identity.UserID, "error", err)
		writeError(w, http.StatusBadGateway, "platform request failed")
		return
	}

	projects, err := mapper.Projects(dtos)
	if err != nil {
		slog.Error("malformed project record", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, projects)
}

// GetProject handles GET /api/v1/projects/{id}.
func (h *Handler) GetProject(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r)
	projectID := r.PathValue("id")

	dto, err := h.platform.FetchProject(r.Context(), s.token, projectID)
	if err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			writeError(w, http.StatusNotFound, "project not found")
			return
		}
		slog.Error("failed to fetch project", "project", projectID, "error", err)
		writeError(w, http.StatusBadGateway, "platform request failed")
		return
	}

	project, err := mapper.Project(dto)
	if err != nil {
		slog.Error("malformed project record", "project", projectID, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, project)
}

// GetCatalog handles GET /api/v1/catalog/latest. It serves the stored public
// catalog without touching the upstream API.
func (h *Handler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.catalog.GetLatest(r.Context())
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			writeError(w, http.StatusNotFound, "catalog not generated yet")
			return
		}
		slog.Error("failed to read catalog", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}

type onboardingResponse struct {
	Completed bool `json:"completed"`
}

// GetOnboarding handles GET /api/v1/onboarding.
func (h *Handler) GetOnboarding(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r)
	v, _ := h.onboarding.Get(r.Context(), s.identity.UserID)
	writeJSON(w, http.StatusOK, onboardingResponse{Completed: v == "true"})
}

// SetOnboarding handles PUT /api/v1/onboarding, marking onboarding as seen.
func (h *Handler) SetOnboarding(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r)
	h.onboarding.Set(r.Context(), s.identity.UserID, "true")
	writeJSON(w, http.StatusOK, onboardingResponse{Completed: true})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Error("failed to marshal JSON response", "error", err)
		http.Error(w, `{"error":"internal error"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		slog.Warn("failed to write HTTP response body", "error", err)
		return
	}
	_, _ = w.Write([]byte("\n"))
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
