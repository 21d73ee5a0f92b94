package types

// Base table names. The configured prefix is prepended verbatim to each.
const (
	CategoriesTable          = "product_attribute_categories"
	ValuesTable              = "product_attribute_values"
	AssignmentsTable         = "product_attribute_assignments"
	CategoryAssignmentsTable = "product_attribute_category_assignments"
)

// StandardTableNames lists the base table names in creation order.
var StandardTableNames = []string{
	CategoriesTable,
	ValuesTable,
	AssignmentsTable,
	CategoryAssignmentsTable,
}
