package service

import (
	"bytes"
	"context"
	"ecowave_backend/internal/model"
	"ecowave_backend/internal/util"
	"encoding/base64"
	"fmt"
	"strings"
)

// 定位未完成时前端占位文案，不允许作为已解析位置提交
const pendingLocationSentinel = "Locating..."

type ReportStore interface {
	Create(report *model.Report) error
	CountAll() (int64, error)
	CountByUser(userID uint) (int64, error)
	ListByUser(userID uint) ([]model.Report, error)
}

type ImageStore interface {
	Upload(ctx context.Context, filename string, reader *bytes.Reader, size int64, contentType string) (string, error)
}

type ReportService struct {
	Reports     ReportStore
	Images      ImageStore
	Progression *ProgressionService
}

func NewReportService(reports ReportStore, images ImageStore, progression *ProgressionService) *ReportService {
	return &ReportService{Reports: reports, Images: images, Progression: progression}
}

type ReportRequest struct {
	Type        model.PollutionType `json:"type" binding:"required"`
	Severity    model.Severity      `json:"severity" binding:"required"`
	Lat         float64             `json:"lat"`
	Lng         float64             `json:"lng"`
	Location    string              `json:"location"`
	Description string              `json:"description"`
	Image       string              `json:"image"`
}

type ReportResult struct {
	Success       bool   `json:"success"`
	PointsAwarded int    `json:"pointsAwarded"`
	ReportID      string `json:"reportId"`
}

// SubmitReport 校验通过后落一条只增不改的上报记录，再奖励50分。
// 任何校验失败都发生在写入之前，不产生半成品状态。
func (s *ReportService) SubmitReport(userID uint, req ReportRequest) (*ReportResult, error) {
	if strings.TrimSpace(req.Description) == "" {
		return nil, util.ErrEmptyDescription
	}
	location := strings.TrimSpace(req.Location)
	if location == "" || location == pendingLocationSentinel {
		return nil, util.ErrUnresolvedLocation
	}

	report := &model.Report{
		UUIDBase:     model.UUIDBase{ID: "r" + model.GenerateUUID()},
		UserID:       userID,
		Type:         req.Type,
		Severity:     req.Severity,
		Lat:          req.Lat,
		Lng:          req.Lng,
		LocationName: location,
		Description:  req.Description,
		Status:       model.ReportPending,
	}

	if req.Image != "" && s.Images != nil {
		if path, err := s.storeImage(report.ID, req.Image); err == nil {
			report.Image = path
		}
	}

	if err := s.Reports.Create(report); err != nil {
		return nil, err
	}

	title := fmt.Sprintf("Reported %s", req.Type)
	if _, err := s.Progression.AwardPoints(userID, ReportAward, model.ActivityReport, title, location); err != nil {
		return nil, err
	}

	return &ReportResult{Success: true, PointsAwarded: ReportAward, ReportID: report.ID}, nil
}

func (s *ReportService) ListMyReports(userID uint) ([]model.Report, error) {
	return s.Reports.ListByUser(userID)
}

// storeImage 解出base64图片（兼容 data:image/...;base64, 前缀）并存储
func (s *ReportService) storeImage(reportID, image string) (string, error) {
	payload := image
	if idx := strings.Index(payload, ","); idx >= 0 && strings.HasPrefix(payload, "data:") {
		payload = payload[idx+1:]
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", err
	}

	filename := fmt.Sprintf("reports/%s.jpg", reportID)
	return s.Images.Upload(context.Background(), filename, bytes.NewReader(raw), int64(len(raw)), "image/jpeg")
}
