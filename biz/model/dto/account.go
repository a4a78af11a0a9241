package dto

type CreateAccountReq struct {
	Name   string `json:"name" validate:"required,max=64"`
	Email  string `json:"email" validate:"required,email,max=128"`
	Secret string `json:"secret" validate:"required,min=6,max=128"`
}

type LoginReq struct {
	Email  string `json:"email" validate:"required,email,max=128"`
	Secret string `json:"secret" validate:"required,max=128"`
}

type LoginResp struct {
	Message string      `json:"message"`
	Account AccountView `json:"account"`
}

// UpdateAccountReq is a partial update. Nil fields keep their stored value.
type UpdateAccountReq struct {
	Name   *string `json:"name" validate:"omitempty,max=64"`
	Email  *string `json:"email" validate:"omitempty,email,max=128"`
	Secret *string `json:"secret" validate:"omitempty,min=6,max=128"`
}

type DeleteAccountResp struct{}

// AccountView deliberately has no secret field.
type AccountView struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt int64  `json:"created_at"`
	UpdatedAt int64  `json:"updated_at"`
}
