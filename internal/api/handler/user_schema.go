package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses.
type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// --- Request / Response types ---

type createUserRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Username string `json:"username"`
	Name     string `json:"name"     validate:"required"`
	Role     string `json:"role"     validate:"required"`
	Phone    string `json:"no_telp"`
	Address  string `json:"address"`
}

// updateUserRequest uses pointers so an absent field is distinguishable from
// one explicitly set to empty; only provided fields are applied.
type updateUserRequest struct {
	UserID   string  `json:"user_id"  validate:"required"`
	Email    *string `json:"email"    validate:"omitempty,email"`
	Password *string `json:"password"`
	Username *string `json:"username"`
	Name     *string `json:"name"`
	Phone    *string `json:"no_telp"`
	Role     *string `json:"role"`
	Address  *string `json:"address"`
}

type deleteUserRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

type createdUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type createUserResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	User    createdUser `json:"user"`
}

// statusResponse is the envelope for update and delete, which return no
// payload beyond the confirmation.
type statusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
