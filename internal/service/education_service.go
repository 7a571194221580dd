package service

import (
	"context"
	"ecowave_backend/internal/model"
	"ecowave_backend/internal/util"
	"ecowave_backend/pkg/logger"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	educationCacheKey = "ecowave:education:catalog"
	educationCacheTTL = 10 * time.Minute
)

type ContentStore interface {
	FindAll() ([]model.EducationContent, error)
	FindByID(id string) (*model.EducationContent, error)
}

type EducationService struct {
	Contents    ContentStore
	Progression *ProgressionService
	Redis       *redis.Client
}

func NewEducationService(contents ContentStore, progression *ProgressionService, rdb *redis.Client) *EducationService {
	return &EducationService{Contents: contents, Progression: progression, Redis: rdb}
}

// FetchCatalog 按类型过滤并做标题/分类的模糊检索。
// 目录是静态数据，整表在Redis里缓存十分钟，过滤在缓存读取之后做。
func (s *EducationService) FetchCatalog(typeFilter, search string) ([]model.EducationContent, error) {
	contents, err := s.loadCatalog()
	if err != nil {
		return nil, err
	}

	filtered := make([]model.EducationContent, 0, len(contents))
	needle := strings.ToLower(strings.TrimSpace(search))
	for _, c := range contents {
		if typeFilter != "" && typeFilter != "All" && string(c.Type) != typeFilter {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(c.Title), needle) &&
			!strings.Contains(strings.ToLower(c.Category), needle) {
			continue
		}
		filtered = append(filtered, c)
	}

	return filtered, nil
}

func (s *EducationService) loadCatalog() ([]model.EducationContent, error) {
	ctx := context.Background()

	if s.Redis != nil {
		cached, err := s.Redis.Get(ctx, educationCacheKey).Result()
		if err == nil {
			var contents []model.EducationContent
			if err := json.Unmarshal([]byte(cached), &contents); err == nil {
				return contents, nil
			}
		}
	}

	contents, err := s.Contents.FindAll()
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if data, err := json.Marshal(contents); err == nil {
			if err := s.Redis.Set(ctx, educationCacheKey, data, educationCacheTTL).Err(); err != nil {
				logger.Log.Warn("education catalog cache write failed", zap.Error(err))
			}
		}
	}

	return contents, nil
}

// CompleteContent 记一次学习完成并奖励25分。
// 重复完成同一条目会重复计分，这是沿用的既定行为。
func (s *EducationService) CompleteContent(userID uint, contentID string) (*model.User, error) {
	content, err := s.Contents.FindByID(contentID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrContentNotFound
		}
		return nil, err
	}

	title := fmt.Sprintf("Learned about %s", content.Category)
	return s.Progression.AwardPoints(userID, EducationAward, model.ActivityEducation, title, content.Title)
}
