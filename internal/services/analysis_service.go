package services

import (
	"context"
	"time"

	"github.com/flowpulse/flowpulse/internal/analytics/timeseries"
	"github.com/flowpulse/flowpulse/internal/config"
	"github.com/flowpulse/flowpulse/internal/logging"
	"github.com/flowpulse/flowpulse/internal/models"
)

// AnalysisService handles time series analysis business logic
type AnalysisService struct {
	logger *logging.Logger
	cfg    config.AnalyticsConfig
}

// NewAnalysisService creates a new AnalysisService
func NewAnalysisService(logger *logging.Logger, cfg config.AnalyticsConfig) *AnalysisService {
	return &AnalysisService{
		logger: logger,
		cfg:    cfg,
	}
}

// AnalyzeResponse represents the complete analysis response
type AnalyzeResponse struct {
	Metrics  []string                              `json:"metrics"`
	Analyses map[string]*timeseries.MetricAnalysis `json:"analyses"`
}

// Execute runs the full analysis pipeline over the submitted points
func (s *AnalysisService) Execute(ctx context.Context, req *models.AnalyzeRequest) (*AnalyzeResponse, error) {
	start := time.Now()

	if err := req.Validate(); err != nil {
		return nil, NewServiceError(CodeInvalidRequest, err.Error())
	}

	points := make([]timeseries.Point, len(req.Points))
	for i, p := range req.Points {
		points[i] = timeseries.Point{
			Time:   p.Time,
			Value:  p.Value,
			Metric: p.Metric,
		}
	}

	analyzer := timeseries.NewAnalyzer(timeseries.Config{Windows: s.cfg.Windows})
	analyzer.Initialize(points)

	requested := req.Metrics
	if len(requested) == 0 {
		requested = analyzer.Metrics()
	}

	analyses := make(map[string]*timeseries.MetricAnalysis, len(requested))
	for _, metric := range requested {
		analysis, ok := analyzer.Analysis(metric)
		if !ok {
			return nil, NewServiceErrorWithDetails(CodeUnknownMetric,
				"metric not present in submitted points",
				map[string]interface{}{"metric": metric, "known_metrics": analyzer.Metrics()})
		}
		analyses[metric] = analysis
	}

	s.logger.Info("Analysis completed",
		"points", len(req.Points),
		"metrics", len(requested),
		"duration_ms", time.Since(start).Milliseconds())

	return &AnalyzeResponse{
		Metrics:  requested,
		Analyses: analyses,
	}, nil
}
