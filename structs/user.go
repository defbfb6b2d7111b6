package structs

// SignupBody is the body of POST /signup.
type SignupBody struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"email"`
	Password string `json:"password" validate:"min=6"`
}

// LoginBody is the body of POST /login. Any password that is present passes
// validation.
type LoginBody struct {
	Email    string  `json:"email" validate:"email"`
	Password *string `json:"password" validate:"required"`
}

// UserCreated is returned by POST /signup.
type UserCreated struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

// LoginResult is returned by POST /login.
type LoginResult struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}
