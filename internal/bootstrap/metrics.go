package bootstrap

import (
	"go.uber.org/zap"

	"github.com/fahmiardi/oauth2-server-redis/internal/config"
	"github.com/fahmiardi/oauth2-server-redis/internal/core"
	"github.com/fahmiardi/oauth2-server-redis/internal/metrics"
)

// initializeMetrics initializes Prometheus metrics
func initializeMetrics(cfg *config.Config, logger *zap.Logger) core.Recorder {
	recorder := metrics.Init(cfg.MetricsEnabled)
	if cfg.MetricsEnabled {
		logger.Info("Prometheus metrics initialized")
	} else {
		logger.Info("Metrics disabled (using noop implementation)")
	}
	return recorder
}
