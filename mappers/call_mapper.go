package mappers

import (
	"time"

	"github.com/AgroHub-Uni-RV/Ypetec/dto"
	"github.com/AgroHub-Uni-RV/Ypetec/models"
)

func ToCallResp(c *models.Call, now time.Time) dto.CallResp {
	return dto.CallResp{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		OpensAt:     c.OpensAt,
		ClosesAt:    c.ClosesAt,
		Status:      string(c.Status),
		Open:        c.IsOpen(now),
		CreatedAt:   c.CreatedAt,
	}
}
