// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections
// and schema setup are complete, but before the HTTP handler is built.
//
// Demo seeding is best effort: a failure is logged and startup
// continues, since a missing sample data set never justifies keeping
// the API down.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if appCfg.SeedDemoData {
		if err := SeedDemoData(ctx, deps.MongoDatabase, logger); err != nil {
			logger.Error("demo data seed failed", zap.Error(err))
		}
	}
	return nil
}
