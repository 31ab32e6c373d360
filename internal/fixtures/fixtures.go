// Package fixtures seeds the reference backend with demo data.
package fixtures

import (
	"context"
	"fmt"
	"time"

	"github.com/meridian-coop/backoffice/internal/auth"
	"github.com/meridian-coop/backoffice/internal/masterdata/categories"
	"github.com/meridian-coop/backoffice/internal/masterdata/products"
	"github.com/meridian-coop/backoffice/internal/masterdata/suppliers"
	"github.com/meridian-coop/backoffice/internal/roles"
	"github.com/meridian-coop/backoffice/internal/users"
)

// Demo credentials accepted by the seeded backend.
const (
	AdminEmail    = "admin@meridian.coop"
	SupplierEmail = "supplier@meridian.coop"
	StaffEmail    = "staff@meridian.coop"
	Password      = "changeme-now"
)

// SeedAccounts registers the demo accounts and returns them in creation
// order: admin, supplier, staff.
func SeedAccounts(ctx context.Context, service *auth.Service) ([]*auth.User, error) {
	accounts := []struct {
		name    string
		email   string
		roleIDs []int64
	}{
		{"Amara Okafor", AdminEmail, []int64{1}},
		{"Jonas Lindqvist", SupplierEmail, []int64{2}},
		{"Priya Raman", StaffEmail, []int64{3}},
	}
	out := make([]*auth.User, 0, len(accounts))
	for _, a := range accounts {
		user, err := service.Register(ctx, a.name, a.email, Password, a.roleIDs)
		if err != nil {
			return nil, fmt.Errorf("fixtures: seed %s: %w", a.email, err)
		}
		out = append(out, user)
	}
	return out, nil
}

// UserRows projects seeded accounts into the user listing shape.
func UserRows(accounts []*auth.User, registry *roles.Registry) []users.User {
	rows := make([]users.User, 0, len(accounts))
	for _, account := range accounts {
		names := []string{}
		for _, role := range registry.ByIDs(account.RoleIDs) {
			names = append(names, role.Name)
		}
		rows = append(rows, users.User{
			ID:        account.ID,
			Email:     account.Email,
			Name:      account.Name,
			IsActive:  account.IsActive,
			Roles:     names,
			CreatedAt: account.CreatedAt,
		})
	}
	return rows
}

// Suppliers returns the demo supplier catalog.
func Suppliers() []suppliers.Supplier {
	base := time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC)
	return []suppliers.Supplier{
		{ID: 1, Code: "SUP-001", Name: "Harbor Mills", Email: "sales@harbormills.example", Phone: "+44 20 7946 0101", City: "Leeds", CreatedAt: base},
		{ID: 2, Code: "SUP-002", Name: "Cedar Valley Produce", Email: "orders@cedarvalley.example", Phone: "+1 503 555 0182", City: "Portland", CreatedAt: base.AddDate(0, 0, 3)},
		{ID: 3, Code: "SUP-003", Name: "Baltic Textiles", Email: "info@baltictex.example", Phone: "+371 6600 1234", City: "Riga", CreatedAt: base.AddDate(0, 0, 7)},
		{ID: 4, Code: "SUP-004", Name: "Aster Packaging", Email: "hello@asterpack.example", Phone: "+49 30 5557 7788", City: "Berlin", CreatedAt: base.AddDate(0, 0, 12)},
		{ID: 5, Code: "SUP-005", Name: "Monsoon Spices", Email: "trade@monsoonspices.example", Phone: "+91 22 4000 1111", City: "Mumbai", CreatedAt: base.AddDate(0, 0, 15)},
		{ID: 6, Code: "SUP-006", Name: "Northwind Dairy", Email: "supply@northwind.example", Phone: "+31 20 240 9090", City: "Utrecht", CreatedAt: base.AddDate(0, 0, 21)},
		{ID: 7, Code: "SUP-007", Name: "Granite Hardware", Email: "b2b@granitehw.example", Phone: "+1 617 555 0199", City: "Boston", CreatedAt: base.AddDate(0, 1, 2)},
		{ID: 8, Code: "SUP-008", Name: "Sola Coffee Roasters", Email: "wholesale@solacoffee.example", Phone: "+55 11 4002 8922", City: "São Paulo", CreatedAt: base.AddDate(0, 1, 9)},
	}
}

// Products returns the demo product catalog.
func Products() []products.Product {
	base := time.Date(2025, 2, 3, 10, 30, 0, 0, time.UTC)
	return []products.Product{
		{ID: 1, SKU: "FLR-100", Name: "Stoneground Flour 5kg", CategoryID: 11, PriceCents: 1250, Stock: 320, CreatedAt: base},
		{ID: 2, SKU: "FLR-101", Name: "Rye Flour 5kg", CategoryID: 11, PriceCents: 1390, Stock: 180, CreatedAt: base.AddDate(0, 0, 1)},
		{ID: 3, SKU: "OIL-200", Name: "Cold-Pressed Rapeseed Oil 1L", CategoryID: 12, PriceCents: 860, Stock: 540, CreatedAt: base.AddDate(0, 0, 4)},
		{ID: 4, SKU: "TEX-300", Name: "Organic Cotton Tote", CategoryID: 21, PriceCents: 450, Stock: 1200, CreatedAt: base.AddDate(0, 0, 6)},
		{ID: 5, SKU: "TEX-301", Name: "Linen Apron", CategoryID: 21, PriceCents: 1890, Stock: 240, CreatedAt: base.AddDate(0, 0, 9)},
		{ID: 6, SKU: "PKG-400", Name: "Kraft Box Medium", CategoryID: 22, PriceCents: 95, Stock: 8600, CreatedAt: base.AddDate(0, 0, 11)},
		{ID: 7, SKU: "COF-500", Name: "Espresso Blend 1kg", CategoryID: 13, PriceCents: 2340, Stock: 410, CreatedAt: base.AddDate(0, 0, 14)},
		{ID: 8, SKU: "COF-501", Name: "Single Origin Filter 250g", CategoryID: 13, PriceCents: 990, Stock: 760, CreatedAt: base.AddDate(0, 0, 17)},
		{ID: 9, SKU: "HRD-600", Name: "Shelf Bracket Pair", CategoryID: 23, PriceCents: 640, Stock: 950, CreatedAt: base.AddDate(0, 0, 20)},
		{ID: 10, SKU: "DRY-700", Name: "Aged Gouda Wheel", CategoryID: 14, PriceCents: 7800, Stock: 36, CreatedAt: base.AddDate(0, 0, 23)},
	}
}

// Categories returns the demo category tree: food and non-food roots with
// leaf categories beneath them.
func Categories() []categories.Category {
	food := int64(1)
	nonFood := int64(2)
	return []categories.Category{
		{ID: 1, Code: "CAT-FOOD", Name: "Food"},
		{ID: 2, Code: "CAT-NONF", Name: "Non-Food"},
		{ID: 11, Code: "CAT-FLOUR", Name: "Flour & Grains", ParentID: &food},
		{ID: 12, Code: "CAT-OILS", Name: "Oils & Fats", ParentID: &food},
		{ID: 13, Code: "CAT-COFFEE", Name: "Coffee & Tea", ParentID: &food},
		{ID: 14, Code: "CAT-DAIRY", Name: "Dairy", ParentID: &food},
		{ID: 21, Code: "CAT-TEXTILE", Name: "Textiles", ParentID: &nonFood},
		{ID: 22, Code: "CAT-PACK", Name: "Packaging", ParentID: &nonFood},
		{ID: 23, Code: "CAT-HARDWARE", Name: "Hardware", ParentID: &nonFood},
	}
}
