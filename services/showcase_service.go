package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/AgroHub-Uni-RV/Ypetec/dto"
	"github.com/AgroHub-Uni-RV/Ypetec/logger"
	"github.com/AgroHub-Uni-RV/Ypetec/mappers"
	"github.com/AgroHub-Uni-RV/Ypetec/models"
)

const (
	showcaseCacheKey = "showcase:active"
	showcaseCacheTTL = 5 * time.Minute
)

// ShowcaseService serves the public listing of published projects, cached in
// Redis because it backs the landing page.
type ShowcaseService struct {
	db  *gorm.DB
	rdb *redis.Client
}

func NewShowcaseService(db *gorm.DB, rdb *redis.Client) *ShowcaseService {
	return &ShowcaseService{db: db, rdb: rdb}
}

// Showcase returns active publications, featured first, newest next.
func (s *ShowcaseService) Showcase(ctx context.Context) ([]dto.ShowcaseEntry, error) {
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, showcaseCacheKey).Result()
		if err == nil {
			var entries []dto.ShowcaseEntry
			if jsonErr := json.Unmarshal([]byte(cached), &entries); jsonErr == nil {
				return entries, nil
			}
		}
	}

	var publications []models.Publication
	if err := s.db.
		Where("active = ?", true).
		Preload("Project").
		Order("featured desc, published_at desc").
		Find(&publications).Error; err != nil {
		return nil, err
	}

	entries := make([]dto.ShowcaseEntry, 0, len(publications))
	for i := range publications {
		entries = append(entries, mappers.ToShowcaseEntry(&publications[i]))
	}

	if s.rdb != nil {
		if data, err := json.Marshal(entries); err == nil {
			if err := s.rdb.Set(ctx, showcaseCacheKey, data, showcaseCacheTTL).Err(); err != nil {
				logger.L.Warn("failed to cache showcase", zap.Error(err))
			}
		}
	}

	return entries, nil
}

// InvalidateShowcase drops the cache; called after publish/feature/activate
// changes so the next read sees fresh data.
func (s *ShowcaseService) InvalidateShowcase(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, showcaseCacheKey).Err(); err != nil {
		logger.L.Warn("failed to invalidate showcase cache", zap.Error(err))
	}
}
