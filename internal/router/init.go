package router

import (
	"github.com/rsubandi/account-service/internal/application"
	"github.com/rsubandi/account-service/internal/container"
	pginfra "github.com/rsubandi/account-service/internal/infrastructure/postgres"
	"github.com/rsubandi/account-service/internal/infrastructure/redisstore"
	handlers "github.com/rsubandi/account-service/internal/interface/http"
	"github.com/rsubandi/account-service/internal/router/modules"
	"github.com/rsubandi/account-service/pkg/mailer"
)

func buildAccountModule() *modules.AccountModule {
	cfg := container.GetConfig()

	repo := pginfra.NewUserRepository(container.GetPGPool())
	otp := redisstore.NewOTPStore(container.GetRedis())
	dispatcher := mailer.NewDispatcher(container.GetRabbitPub(), container.GetLogger())

	service := application.NewService(
		repo,
		otp,
		container.GetTokens(),
		dispatcher,
		container.GetLogger(),
		cfg.AdminIP,
		cfg.OTPTTL,
	)

	handler := handlers.NewAccountHandler(
		service,
		container.GetLogger(),
		cfg.CookieDomain,
		cfg.CookieSecure,
	)

	return modules.NewAccountModule(handler, container.GetTokens())
}

// InitModules wires every application module into the router registry.
// Called once during startup, after the container singletons are set.
func InitModules(r *Registry) {
	r.Add(buildAccountModule())
	if container.GetConfig().DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
