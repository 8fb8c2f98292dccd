package domain

// StaffCategoryName is the reserved category that links expenses to employees.
const StaffCategoryName = "Staff"

// ExpenseCategory is the top level of the expense classification tree.
type ExpenseCategory struct {
	CategoryID string `json:"categoryID"`
	Name       string `json:"name"`
	AuditFields
}

// IsStaff reports whether this is the reserved Staff category.
func (c ExpenseCategory) IsStaff() bool {
	return c.Name == StaffCategoryName
}

// ExpenseSubCategory belongs to exactly one ExpenseCategory.
type ExpenseSubCategory struct {
	SubCategoryID string `json:"subCategoryID"`
	CategoryID    string `json:"categoryID"`
	Name          string `json:"name"`
	AuditFields
}
