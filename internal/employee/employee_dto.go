package employee

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterResponse struct {
	Message    string `json:"message"`
	EmployeeID string `json:"employeeId"`
}

type LoginResponse struct {
	Message     string `json:"message"`
	UserID      string `json:"userId"`
	EmployeeID  string `json:"employeeId"`
	Name        string `json:"name"`
	AccessToken string `json:"accessToken"`
}

type EmployeeResponse struct {
	EmployeeID string `json:"employeeId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
}
