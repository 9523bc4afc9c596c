package auth

type RegisterRequest struct {
	Username string `form:"username" validate:"required,min=3,max=20"`
	Email    string `form:"email" validate:"required"`
	Password string `form:"password" validate:"required,eqfield=Confirm"`
	Confirm  string `form:"confirm" validate:"required"`
}

func (RegisterRequest) ValidationMessages() map[string]string {
	return map[string]string{
		"username.required": "Please Fill the Field.",
		"username.min":      "User Name Must between 3 to 20",
		"username.max":      "User Name Must between 3 to 20",
		"email.required":    "Please fill the field",
		"password.eqfield":  "Password Not match",
	}
}

type LoginRequest struct {
	Username string `form:"username" validate:"required,min=3,max=20"`
	Password string `form:"password" validate:"required"`
}

func (LoginRequest) ValidationMessages() map[string]string {
	return map[string]string{
		"username.required": "Please Fill the Field.",
		"username.min":      "User Name Must between 3 to 20",
		"username.max":      "User Name Must between 3 to 20",
	}
}
