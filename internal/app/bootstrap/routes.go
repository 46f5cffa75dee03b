// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	employeesfeature "github.com/dalemusser/staffhub/internal/app/features/employees"
	healthfeature "github.com/dalemusser/staffhub/internal/app/features/health"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. At this point you have access to:
//   - coreCfg: WAFFLE core configuration (ports, env, timeouts, etc.)
//   - appCfg: app-specific configuration defined in AppConfig
//   - deps: any DB or backend clients bundled in DBDeps
//   - logger: the fully configured zap.Logger for this app
//
// StaffHub mounts the health check endpoint and the employee API.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Employee records API. Dev mode widens 500 responses with the
	// underlying error detail.
	employeesHandler := employeesfeature.NewHandler(deps.MongoDatabase, logger, coreCfg.Env == "dev")
	r.Mount("/employees", employeesfeature.Routes(employeesHandler))

	return r, nil
}
