package mappers

import (
	"github.com/AgroHub-Uni-RV/Ypetec/dto"
	"github.com/AgroHub-Uni-RV/Ypetec/models"
)

func ToUserResp(u *models.User) dto.UserResp {
	return dto.UserResp{
		ID:        u.ID,
		CPF:       u.CPF,
		Email:     u.Email,
		Name:      u.Name,
		Role:      string(u.Role),
		Status:    string(u.Status),
		CreatedAt: u.CreatedAt,
	}
}
