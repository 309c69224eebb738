package database

import (
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/AgroHub-Uni-RV/Ypetec/config"
	"github.com/AgroHub-Uni-RV/Ypetec/logger"
	"github.com/AgroHub-Uni-RV/Ypetec/models"
)

var DB *gorm.DB

func Connect(cfg config.DatabaseConfig) error {
	var err error
	DB, err = gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return err
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}

	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	// MySQL closes idle connections after wait_timeout; recycle ours first.
	sqlDB.SetConnMaxLifetime(time.Hour)

	logger.L.Info("database connection established")
	return nil
}

// MigrateTables is only meant for local development. Production schemas are
// managed outside the application.
func MigrateTables() error {
	return DB.AutoMigrate(
		&models.User{},
		&models.Call{},
		&models.Project{},
		&models.TeamMember{},
		&models.Submission{},
		&models.Evaluation{},
		&models.Publication{},
		&models.MentorshipRequest{},
		&models.ProgressReport{},
		&models.AuditLog{},
	)
}
