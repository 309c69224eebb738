package models

import "time"

type ReportPeriod string

const (
	ReportPeriodMonthly   ReportPeriod = "MENSAL"
	ReportPeriodQuarterly ReportPeriod = "TRIMESTRAL"
)

// ProgressReport tracks the evolution of an incubated project.
type ProgressReport struct {
	ID        uint64       `gorm:"primarykey" json:"id"`
	ProjectID uint64       `gorm:"not null;index" json:"project_id"`
	Project   *Project     `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Period    ReportPeriod `gorm:"type:enum('MENSAL','TRIMESTRAL');not null" json:"period"`
	Content   string       `gorm:"type:text;not null" json:"content"`
	AuthorID  uint64       `gorm:"not null" json:"author_id"`
	Author    *User        `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
}

func (ProgressReport) TableName() string {
	return "ypetec_relatorio_progresso"
}
