package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"admin/internal/cache"
	"admin/internal/configuration"
	"admin/internal/gateway"
	"admin/internal/handlers"
	m "admin/internal/middlewares"
	"admin/internal/models"
	"admin/internal/normalize"
	"admin/internal/report"
	"admin/internal/sql"
	"admin/internal/storage"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const exportPrefix = "reports/"

type ReportService struct {
	DB       *gorm.DB
	Cache    cache.ICache
	Gateway  gateway.IGateway
	Storage  storage.IStorage
	Upstream models.UpstreamConfiguration
}

func (s ReportService) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", handlers.GetOneHandler(s.Get))
	r.Get("/history", handlers.GetOneHandler(s.History))
	r.Get("/exports", handlers.GetOneHandler(s.ListExports))

	r.With(m.AuthorizeRole(models.RoleManager)).
		Post("/export", handlers.GetOneHandler(s.Export))

	return r
}

// Get serves the worker-materialized report; when no snapshot is cached the
// report is computed live from the backend.
func (s ReportService) Get(
	logger *zap.Logger,
	_ models.SessionClaims,
	_ []string,
) (models.ReportSnapshot, error) {
	if snapshot, ok := cachedView[models.ReportSnapshot](s.Cache, configuration.SnapshotReport); ok {
		return snapshot, nil
	}

	logger.Debug("No cached report snapshot, computing live")
	return s.buildLive(context.Background())
}

func (s ReportService) buildLive(ctx context.Context) (models.ReportSnapshot, error) {
	usersEnv := s.Gateway.ListUsers(ctx, models.UserListQuery{Page: 1, Limit: s.Upstream.ReportLimit})
	if !usersEnv.Success {
		return models.ReportSnapshot{}, upstreamError(usersEnv.Message)
	}

	productsEnv := s.Gateway.ListProducts(ctx, models.ProductListQuery{Page: 1, Limit: s.Upstream.ReportLimit})
	if !productsEnv.Success {
		return models.ReportSnapshot{}, upstreamError(productsEnv.Message)
	}

	categoriesEnv := s.Gateway.ListCategories(ctx)
	if !categoriesEnv.Success {
		return models.ReportSnapshot{}, upstreamError(categoriesEnv.Message)
	}

	return report.Build(
		normalize.Users(usersEnv.Data.Users),
		normalize.Products(productsEnv.Data.Products),
		normalize.Categories(categoriesEnv.Data.Categories),
	), nil
}

func (s ReportService) History(
	_ *zap.Logger,
	_ models.SessionClaims,
	_ []string,
) ([]models.ReportSnapshotRecord, error) {
	records, err := sql.ListReportSnapshots(s.DB, 30)
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Export archives the current report as CSV in object storage and returns the
// object key with a download URL when the backend supports one.
func (s ReportService) Export(
	logger *zap.Logger,
	claims models.SessionClaims,
	ids []string,
) (models.ExportResult, error) {
	snapshot, err := s.Get(logger, claims, ids)
	if err != nil {
		return models.ExportResult{}, err
	}

	payload, err := reportCSV(snapshot)
	if err != nil {
		logger.Error("Failed to render report CSV", zap.Error(err))
		return models.ExportResult{}, err
	}

	key := fmt.Sprintf("%sreport-%s.csv", exportPrefix, time.Now().UTC().Format("20060102-150405"))

	if err = s.Storage.PutObject(key, payload, "text/csv"); err != nil {
		logger.Error("Failed to archive report export", zap.String("key", key), zap.Error(err))
		return models.ExportResult{}, err
	}

	url, err := s.Storage.PresignedGetObject(key)
	if err != nil {
		logger.Warn("Failed to create download URL", zap.String("key", key), zap.Error(err))
		url = ""
	}

	logger.Info("Report exported", zap.String("key", key), zap.Int("bytes", len(payload)))
	audit(s.DB, claims, "report.export", key, "")

	return models.ExportResult{
		Key:  key,
		Size: int64(len(payload)),
		URL:  url,
	}, nil
}

func (s ReportService) ListExports(
	_ *zap.Logger,
	_ models.SessionClaims,
	_ []string,
) ([]string, error) {
	objects, err := s.Storage.ListObjects(exportPrefix, 100)
	if err != nil {
		return nil, err
	}
	if objects == nil {
		objects = []string{}
	}
	return objects, nil
}

func reportCSV(snapshot models.ReportSnapshot) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	rows := [][]string{
		{"section", "label", "value", "extra"},
		{"summary", "total_users", strconv.Itoa(snapshot.Summary.TotalUsers), ""},
		{"summary", "total_ads", strconv.Itoa(snapshot.Summary.TotalAds), ""},
		{"summary", "active_cities", strconv.Itoa(snapshot.Summary.ActiveCities), ""},
		{"summary", "conversion_rate", strconv.FormatFloat(snapshot.Summary.ConversionRate, 'f', 1, 64), ""},
	}

	for _, point := range snapshot.UserGrowth {
		rows = append(rows, []string{"user_growth", point.Label, strconv.Itoa(point.Count), ""})
	}

	for _, point := range snapshot.Conversion {
		rows = append(rows, []string{
			"conversion", point.Label,
			strconv.FormatFloat(point.Rate, 'f', 1, 64),
			fmt.Sprintf("users=%d active_ads=%d", point.Users, point.ActiveAds),
		})
	}

	for _, city := range snapshot.Geographic.TopCitiesByUsers {
		rows = append(rows, []string{
			"top_cities", city.City, strconv.Itoa(city.Users),
			fmt.Sprintf("ads=%d", city.Ads),
		})
	}

	for _, category := range snapshot.Categories {
		rows = append(rows, []string{
			"categories", category.Name, strconv.Itoa(category.Ads),
			fmt.Sprintf("revenue=%.2f estimated=%t", category.Revenue, category.Estimated),
		})
	}

	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
