package user

// UpdateUserInput is a partial profile update; absent fields keep their value.
type UpdateUserInput struct {
	Username *string `json:"username,omitempty" validate:"omitempty,min=3,max=50"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=6,max=72"`
	Currency *string `json:"currency,omitempty" validate:"omitempty,len=3"`
}
