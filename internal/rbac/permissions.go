package rbac

// Closed permission vocabulary.
const (
	PermCreateUser Permission = "create_user"
	PermReadUser   Permission = "read_user"
	PermUpdateUser Permission = "update_user"
	PermDeleteUser Permission = "delete_user"

	PermCreateRole Permission = "create_role"
	PermReadRole   Permission = "read_role"
	PermUpdateRole Permission = "update_role"
	PermDeleteRole Permission = "delete_role"

	PermCreateSupplier Permission = "create_supplier"
	PermReadSupplier   Permission = "read_supplier"
	PermUpdateSupplier Permission = "update_supplier"
	PermDeleteSupplier Permission = "delete_supplier"

	PermCreateProduct Permission = "create_product"
	PermReadProduct   Permission = "read_product"
	PermUpdateProduct Permission = "update_product"
	PermDeleteProduct Permission = "delete_product"

	PermCreateCategory Permission = "create_category"
	PermReadCategory   Permission = "read_category"
	PermUpdateCategory Permission = "update_category"
	PermDeleteCategory Permission = "delete_category"

	PermReadDashboard Permission = "read_dashboard"
)

// AllPermissions lists the full vocabulary.
func AllPermissions() []Permission {
	return []Permission{
		PermCreateUser, PermReadUser, PermUpdateUser, PermDeleteUser,
		PermCreateRole, PermReadRole, PermUpdateRole, PermDeleteRole,
		PermCreateSupplier, PermReadSupplier, PermUpdateSupplier, PermDeleteSupplier,
		PermCreateProduct, PermReadProduct, PermUpdateProduct, PermDeleteProduct,
		PermCreateCategory, PermReadCategory, PermUpdateCategory, PermDeleteCategory,
		PermReadDashboard,
	}
}
