package dto

type SignupRequestDTO struct {
	UserID   string `json:"user_id" binding:"required,min=3,max=64"`
	Password string `json:"password" binding:"required,min=8,max=128"`
	Email    string `json:"email" binding:"omitempty,email,max=255"`
}

type LoginRequestDTO struct {
	UserID   string `json:"user_id" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponseDTO struct {
	Token string `json:"token"`
}
