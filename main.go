package main

import (
	"fmt"
	"log"

	"go.uber.org/zap"

	"github.com/AgroHub-Uni-RV/Ypetec/config"
	"github.com/AgroHub-Uni-RV/Ypetec/database"
	"github.com/AgroHub-Uni-RV/Ypetec/logger"
	"github.com/AgroHub-Uni-RV/Ypetec/routes"
	"github.com/AgroHub-Uni-RV/Ypetec/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger.Init(cfg.Logging.Level, cfg.Logging.Format)
	defer logger.Sync()

	utils.InitJWT(cfg.JWT.Secret, cfg.JWT.TTL())

	if err := database.Connect(cfg.Database); err != nil {
		logger.L.Fatal("failed to connect to database", zap.Error(err))
	}
	if cfg.App.Environment == "development" {
		if err := database.MigrateTables(); err != nil {
			logger.L.Fatal("failed to migrate tables", zap.Error(err))
		}
	}
	if err := database.InitRedis(cfg.Redis); err != nil {
		logger.L.Fatal("failed to connect to redis", zap.Error(err))
	}

	r := routes.SetupRouter()

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	logger.L.Info("starting server", zap.String("addr", addr), zap.String("env", cfg.App.Environment))
	if err := r.Run(addr); err != nil {
		logger.L.Fatal("server exited", zap.Error(err))
	}
}
