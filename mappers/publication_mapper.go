package mappers

import (
	"github.com/AgroHub-Uni-RV/Ypetec/dto"
	"github.com/AgroHub-Uni-RV/Ypetec/models"
)

func ToPublicationResp(p *models.Publication) dto.PublicationResp {
	return dto.PublicationResp{
		ID:          p.ID,
		ProjectID:   p.ProjectID,
		Logo:        p.Logo,
		Description: p.Description,
		Featured:    p.Featured,
		Active:      p.Active,
		PublishedAt: p.PublishedAt,
	}
}

// ToShowcaseEntry expects Project preloaded.
func ToShowcaseEntry(p *models.Publication) dto.ShowcaseEntry {
	entry := dto.ShowcaseEntry{
		ID:          p.ID,
		ProjectID:   p.ProjectID,
		Logo:        p.Logo,
		Description: p.Description,
		Featured:    p.Featured,
		PublishedAt: p.PublishedAt,
	}
	if p.Project != nil {
		entry.Title = p.Project.Title
		entry.Area = p.Project.Area
	}
	return entry
}
