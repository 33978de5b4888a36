package admin_login

// LoginRequest учетные данные администратора
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse результат входа
type LoginResponse struct {
	Authenticated bool `json:"authenticated"`
}
