package categories

// Category represents a product category. Categories form a tree via
// ParentID; top-level categories have a nil parent.
type Category struct {
	ID       int64  `json:"id"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	ParentID *int64 `json:"parent_id,omitempty"`
}
