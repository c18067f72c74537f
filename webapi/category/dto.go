package category

// CreateCategoryRequest carries a new system category.
type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description,omitempty" validate:"max=500"`
	Type        string `json:"category_type,omitempty" validate:"omitempty,oneof=INCOME EXPENSE TRANSFER"`
	Icon        string `json:"icon,omitempty" validate:"max=50"`
}

// UpdateCategoryRequest is a partial system-category update.
type UpdateCategoryRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
	Type        *string `json:"category_type,omitempty" validate:"omitempty,oneof=INCOME EXPENSE TRANSFER"`
	Icon        *string `json:"icon,omitempty" validate:"omitempty,max=50"`
}

// AssignCategoryRequest attaches a category to the authenticated user.
type AssignCategoryRequest struct {
	CategoryID string `json:"category_id" validate:"required,uuid"`
	CustomName string `json:"custom_name,omitempty" validate:"max=100"`
	IsActive   *bool  `json:"is_active,omitempty"`
}

// UpdateAssignmentRequest changes the custom name or active flag.
type UpdateAssignmentRequest struct {
	CustomName string `json:"custom_name,omitempty" validate:"max=100"`
	IsActive   bool   `json:"is_active"`
}
