// Package e2e exercises the portal client against the reference backend
// over real HTTP: login, a server-delegated supplier table, and logout.
package e2e

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridian-coop/backoffice/internal/app"
	"github.com/meridian-coop/backoffice/internal/auth"
	"github.com/meridian-coop/backoffice/internal/fixtures"
	"github.com/meridian-coop/backoffice/internal/guard"
	"github.com/meridian-coop/backoffice/internal/masterdata/categories"
	"github.com/meridian-coop/backoffice/internal/masterdata/products"
	"github.com/meridian-coop/backoffice/internal/masterdata/suppliers"
	"github.com/meridian-coop/backoffice/internal/platform/kv"
	"github.com/meridian-coop/backoffice/internal/platform/token"
	"github.com/meridian-coop/backoffice/internal/rbac"
	"github.com/meridian-coop/backoffice/internal/roles"
	"github.com/meridian-coop/backoffice/internal/session"
	"github.com/meridian-coop/backoffice/internal/table"
	"github.com/meridian-coop/backoffice/internal/transport"
	"github.com/meridian-coop/backoffice/internal/users"
)

type supplierRow struct {
	ID   int64  `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
	City string `json:"city"`
}

func startBackend(t *testing.T) *httptest.Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &app.Config{
		AppEnv:             "test",
		AppRequestTimeout:  30 * time.Second,
		RateLimitPerMinute: 1000,
	}
	registry := roles.NewRegistry(roles.Defaults()...)
	tokens := token.NewManager("e2e-secret", time.Hour)

	service := auth.NewService(auth.NewMemoryRepository(), registry)
	accounts, err := fixtures.SeedAccounts(context.Background(), service)
	require.NoError(t, err)

	router := app.NewRouter(app.RouterParams{
		Logger:            logger,
		Config:            cfg,
		Tokens:            tokens,
		AuthHandler:       auth.NewHandler(logger, service, tokens),
		SuppliersHandler:  suppliers.NewHandler(logger, suppliers.NewMemoryRepository(fixtures.Suppliers())),
		ProductsHandler:   products.NewHandler(logger, products.NewMemoryRepository(fixtures.Products())),
		CategoriesHandler: categories.NewHandler(logger, categories.NewMemoryRepository(fixtures.Categories())),
		UsersHandler:      users.NewHandler(logger, users.NewMemoryRepository(fixtures.UserRows(accounts, registry))),
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func supplierColumns() []table.Column[supplierRow] {
	return []table.Column[supplierRow]{
		{ID: "code", Label: "Code", Sortable: true, Searchable: true, Render: func(s supplierRow) string { return s.Code }},
		{ID: "name", Label: "Name", Sortable: true, Searchable: true, Render: func(s supplierRow) string { return s.Name }},
		{ID: "city", Label: "City", Sortable: true, Searchable: true, Render: func(s supplierRow) string { return s.City }},
	}
}

func TestPortalFlow(t *testing.T) {
	ctx := context.Background()
	server := startBackend(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	client := transport.NewClient(server.URL, logger)
	storage := kv.NewMemoryStore()
	store := session.NewStore(logger, client, storage)

	// Anonymous navigation bounces to the login screen.
	decision := guard.RequireAuth{Sessions: store}.Check("/suppliers")
	require.False(t, decision.Allow)
	assert.Equal(t, guard.PathLogin, decision.RedirectTo)
	assert.Equal(t, "/suppliers", decision.ReturnTo)

	// Login as the seeded admin.
	state, err := store.Login(ctx, session.Credentials{
		Email:    fixtures.AdminEmail,
		Password: fixtures.Password,
	})
	require.NoError(t, err)
	require.True(t, state.Authenticated)
	assert.True(t, store.HasPermission(rbac.PermReadSupplier))
	assert.Equal(t, guard.PathDashboard, guard.LandingPath(state.Roles))
	assert.True(t, guard.RequireAuth{Sessions: store}.Check("/suppliers").Allow)

	// Server-delegated supplier table.
	fetch := transport.ListSource[supplierRow](client, "/api/suppliers", func() string {
		return store.State().Token
	})
	engine := table.New[supplierRow](logger, table.NewServerSource(fetch), supplierColumns(), table.WithPageSize[supplierRow](5))

	engine.Refresh(ctx)
	view := engine.View()
	require.NoError(t, view.Err)
	assert.Equal(t, 8, view.Pagination.Total)
	assert.Equal(t, 2, view.Pagination.TotalPages)
	require.Len(t, view.Rows, 5)
	assert.Equal(t, "Aster Packaging", view.Rows[0].Name, "backend default sort is name ascending")

	engine.SetPage(ctx, 2)
	view = engine.View()
	require.NoError(t, view.Err)
	require.Len(t, view.Rows, 3)

	// Searching resets to the first page and narrows the set server-side.
	engine.Search(ctx, "coffee")
	view = engine.View()
	require.NoError(t, view.Err)
	assert.Equal(t, 1, view.Pagination.Page)
	require.Len(t, view.Rows, 1)
	assert.Equal(t, "Sola Coffee Roasters", view.Rows[0].Name)

	// Sorting delegates sort_by/sort_order to the backend.
	engine.Search(ctx, "")
	engine.SortBy(ctx, "code")
	engine.SortBy(ctx, "code")
	view = engine.View()
	require.NoError(t, view.Err)
	assert.Equal(t, "SUP-008", view.Rows[0].Code)

	// A second store over the same storage resumes the session.
	resumed := session.NewStore(logger, client, storage)
	assert.True(t, resumed.IsAuthenticated())

	// Logout clears the session; the table endpoint then rejects the guard.
	store.Logout(ctx)
	assert.False(t, store.IsAuthenticated())
	decision = guard.RequireAuth{Sessions: store}.Check("/suppliers")
	assert.False(t, decision.Allow)
}

func TestPortalLoginFailure(t *testing.T) {
	ctx := context.Background()
	server := startBackend(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	client := transport.NewClient(server.URL, logger)
	store := session.NewStore(logger, client, kv.NewMemoryStore())

	_, err := store.Login(ctx, session.Credentials{
		Email:    fixtures.AdminEmail,
		Password: "definitely-wrong",
	})
	require.Error(t, err)
	assert.False(t, store.IsAuthenticated())
}

func TestListEndpointRequiresToken(t *testing.T) {
	ctx := context.Background()
	server := startBackend(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	client := transport.NewClient(server.URL, logger)
	fetch := transport.ListSource[supplierRow](client, "/api/suppliers", nil)

	_, err := fetch(ctx, table.Query{Page: 1, PerPage: 10})
	require.Error(t, err)
}
