package auth

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/meridian-coop/backoffice/internal/platform/httpx"
	"github.com/meridian-coop/backoffice/internal/platform/token"
	"github.com/meridian-coop/backoffice/internal/rbac"
)

// DefaultRegisterRoleID is the role assigned to self-registered accounts.
const DefaultRegisterRoleID int64 = 3

// Handler wires HTTP endpoints for authentication flows.
type Handler struct {
	logger   *slog.Logger
	service  *Service
	tokens   *token.Manager
	validate *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service, tokens *token.Manager) *Handler {
	return &Handler{
		logger:   logger,
		service:  service,
		tokens:   tokens,
		validate: validator.New(),
	}
}

// MountPublic registers the unauthenticated auth routes.
func (h *Handler) MountPublic(r chi.Router) {
	r.Post("/login", h.handleLogin)
	r.Post("/register", h.handleRegister)
}

// MountPrivate registers the token-protected auth routes.
func (h *Handler) MountPrivate(r chi.Router) {
	r.Post("/logout", h.handleLogout)
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type authResponse struct {
	Token    string           `json:"token"`
	Identity identityResponse `json:"identity"`
	Roles    []rbac.WireRole  `json:"roles"`
}

type identityResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "malformed request body")
		return
	}
	if fields, ok := h.fieldErrors(req); !ok {
		httpx.FieldErrors(w, "validation failed", fields)
		return
	}

	user, err := h.service.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		httpx.Error(w, http.StatusUnauthorized, "invalid email or password")
		return
	}
	h.respondAuthenticated(w, user)
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "malformed request body")
		return
	}
	if fields, ok := h.fieldErrors(req); !ok {
		httpx.FieldErrors(w, "validation failed", fields)
		return
	}

	user, err := h.service.Register(r.Context(), req.Name, req.Email, req.Password, []int64{DefaultRegisterRoleID})
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			httpx.Error(w, http.StatusUnprocessableEntity, "email already registered")
			return
		}
		h.logger.Error("register failed", slog.Any("error", err))
		httpx.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	h.respondAuthenticated(w, user)
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	// Token auth is stateless; the backend just acknowledges so the client
	// can clear its local session.
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) respondAuthenticated(w http.ResponseWriter, user *User) {
	signed, err := h.tokens.Issue(user.ID, user.Email)
	if err != nil {
		h.logger.Error("issue token", slog.Any("error", err))
		httpx.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	httpx.JSON(w, http.StatusOK, authResponse{
		Token: signed,
		Identity: identityResponse{
			ID:    user.ID,
			Email: user.Email,
			Name:  user.Name,
		},
		Roles: rbac.EncodeRoles(h.service.RolesFor(user)),
	})
}

func (h *Handler) fieldErrors(req any) (map[string]string, bool) {
	err := h.validate.Struct(req)
	if err == nil {
		return nil, true
	}
	fields := make(map[string]string)
	var invalid validator.ValidationErrors
	if errors.As(err, &invalid) {
		for _, fieldErr := range invalid {
			fields[fieldErr.Field()] = fieldErr.Tag()
		}
	}
	return fields, false
}
