package auth

import "gamevault/internal/domain"

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserPublic struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func ToUserPublic(u *domain.User) UserPublic {
	return UserPublic{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
	}
}
