// Package service orchestrates fetching NGWMN documents, extracting records,
// and publishing them to the optional sink.
package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/beevik/etree"

	"github.com/groundwatertools/well-data-service/internal/domain"
	"github.com/groundwatertools/well-data-service/internal/observability"
	"github.com/groundwatertools/well-data-service/internal/stats"
)

// Fetcher retrieves raw documents from the NGWMN services.
type Fetcher interface {
	WellLogXML(ctx context.Context, agencyCode, siteNumber string) (*etree.Document, error)
	WaterQualityXML(ctx context.Context, agencyCode, siteNumber string) (*etree.Document, error)
	Statistic(ctx context.Context, agencyCode, siteNumber, statType string) (map[string]any, error)
	Features(ctx context.Context, latitude, longitude float64) (map[string]any, error)
}

// RecordSink receives extracted records for downstream consumers. May be nil
// when the sink is disabled.
type RecordSink interface {
	Publish(ctx context.Context, record domain.SinkRecord) error
}

// Service answers the API's site-record queries.
type Service struct {
	fetcher Fetcher
	sink    RecordSink
	logger  *slog.Logger
	metrics *observability.Metrics
}

// New creates a Service. sink may be nil to disable record publishing.
func New(fetcher Fetcher, sink RecordSink, logger *slog.Logger, metrics *observability.Metrics) *Service {
	return &Service{
		fetcher: fetcher,
		sink:    sink,
		logger:  logger,
		metrics: metrics,
	}
}

// WellLog fetches and extracts the well-log record for a site. A site the
// upstream has no document for yields (nil, nil).
func (s *Service) WellLog(ctx context.Context, agencyCode, siteNumber string) (*domain.WellLog, error) {
	start := clock.Now()

	doc, err := s.fetcher.WellLogXML(ctx, agencyCode, siteNumber)
	if err != nil {
		s.metrics.UpstreamRequests.WithLabelValues("well_log", "error").Inc()
		return nil, err
	}

	record := domain.ExtractWellLog(doc)
	s.observeExtraction("well_log", agencyCode, siteNumber, record == nil, start)
	if record == nil {
		return nil, nil
	}
	s.publish(ctx, "well_log", agencyCode, siteNumber, record)
	return record, nil
}

// WaterQuality fetches and extracts the water-quality record for a site.
func (s *Service) WaterQuality(ctx context.Context, agencyCode, siteNumber string) (*domain.WaterQuality, error) {
	start := clock.Now()

	doc, err := s.fetcher.WaterQualityXML(ctx, agencyCode, siteNumber)
	if err != nil {
		s.metrics.UpstreamRequests.WithLabelValues("water_quality", "error").Inc()
		return nil, err
	}

	record := domain.ExtractWaterQuality(doc)
	s.observeExtraction("water_quality", agencyCode, siteNumber, record == nil, start)
	if record == nil {
		return nil, nil
	}
	s.publish(ctx, "water_quality", agencyCode, siteNumber, record)
	return record, nil
}

// Statistics assembles the water-level statistics projection for a site.
// Monthly data is only consulted when the overall document says the site
// has been ranked.
func (s *Service) Statistics(ctx context.Context, agencyCode, siteNumber string) (stats.SiteStatistics, error) {
	overall, err := s.fetcher.Statistic(ctx, agencyCode, siteNumber, "wl-overall")
	if err != nil {
		s.metrics.UpstreamRequests.WithLabelValues("statistics", "error").Inc()
		return stats.SiteStatistics{}, err
	}

	siteInfo := stats.Unfetched()
	monthly := stats.Unfetched()
	if ranked, _ := overall[stats.KeyRanked].(string); ranked == "Y" {
		if siteInfo, err = s.fetcher.Statistic(ctx, agencyCode, siteNumber, "site-info"); err != nil {
			s.metrics.UpstreamRequests.WithLabelValues("statistics", "error").Inc()
			return stats.SiteStatistics{}, err
		}
		if monthly, err = s.fetcher.Statistic(ctx, agencyCode, siteNumber, "wl-monthly"); err != nil {
			s.metrics.UpstreamRequests.WithLabelValues("statistics", "error").Inc()
			return stats.SiteStatistics{}, err
		}
	}

	s.metrics.UpstreamRequests.WithLabelValues("statistics", "success").Inc()
	return stats.Build(overall, siteInfo, monthly), nil
}

// Features looks up monitored sites near a point via the WFS.
func (s *Service) Features(ctx context.Context, latitude, longitude float64) (map[string]any, error) {
	features, err := s.fetcher.Features(ctx, latitude, longitude)
	if err != nil {
		s.metrics.UpstreamRequests.WithLabelValues("features", "error").Inc()
		return nil, err
	}
	s.metrics.UpstreamRequests.WithLabelValues("features", "success").Inc()
	return features, nil
}

// CheckReadiness reports readiness for the /readyz probe. The service is
// stateless, so it is ready as soon as it is constructed.
func (s *Service) CheckReadiness(_ context.Context) error {
	return nil
}

// observeExtraction records duration and outcome metrics for a
// fetch-and-extract cycle.
func (s *Service) observeExtraction(recordType, agencyCode, siteNumber string, empty bool, start time.Time) {
	s.metrics.ExtractDuration.WithLabelValues(recordType).Observe(clock.Since(start).Seconds())
	if empty {
		s.metrics.UpstreamRequests.WithLabelValues(recordType, "empty").Inc()
		s.metrics.EmptyRecords.WithLabelValues(recordType).Inc()
		s.logger.Debug("no record for site", "record_type", recordType,
			"agency_cd", agencyCode, "site_no", siteNumber)
		return
	}
	s.metrics.UpstreamRequests.WithLabelValues(recordType, "success").Inc()
	s.metrics.RecordsExtracted.WithLabelValues(recordType).Inc()
}

// publish forwards a record to the sink. Sink failures are logged and counted
// but never surface to the caller; the API response does not depend on the sink.
func (s *Service) publish(ctx context.Context, recordType, agencyCode, siteNumber string, record any) {
	if s.sink == nil {
		return
	}
	envelope := domain.SinkRecord{
		RecordType:  recordType,
		AgencyCode:  agencyCode,
		SiteNumber:  siteNumber,
		Record:      record,
		RetrievedAt: clock.Now().UTC(),
	}
	if err := s.sink.Publish(ctx, envelope); err != nil {
		s.metrics.SinkErrors.Inc()
		s.logger.Warn("sink publish failed", "error", err,
			"record_type", recordType, "agency_cd", agencyCode, "site_no", siteNumber)
		return
	}
	s.metrics.SinkPublished.Inc()
}
