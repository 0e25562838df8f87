package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/dig"

	"github.com/shivanisurendran/hostelparcel-management/internal/config"
	"github.com/shivanisurendran/hostelparcel-management/internal/http/handlers"
	"github.com/shivanisurendran/hostelparcel-management/internal/http/middleware"
	"github.com/shivanisurendran/hostelparcel-management/internal/http/pprofserver"
	"github.com/shivanisurendran/hostelparcel-management/internal/http/router"
	"github.com/shivanisurendran/hostelparcel-management/internal/logx"
	"github.com/shivanisurendran/hostelparcel-management/internal/metrics"
	"github.com/shivanisurendran/hostelparcel-management/internal/repository"
	"github.com/shivanisurendran/hostelparcel-management/internal/security"
	"github.com/shivanisurendran/hostelparcel-management/internal/service/auth"
	"github.com/shivanisurendran/hostelparcel-management/internal/service/parcel"
)

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	loadConfig func() (*config.Config, error)
	logFatalf  func(string, ...interface{})
}

// NewContainerBuilder returns a new dig container builder
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{
		loadConfig: config.Load,
		logFatalf:  log.Fatalf,
	}
}

// WithConfigLoader sets the configuration loader
func (b *ContainerBuilder) WithConfigLoader(fn func() (*config.Config, error)) *ContainerBuilder {
	if fn != nil {
		b.loadConfig = fn
	}
	return b
}

// WithLogFatalf sets the log.Fatalf function
func (b *ContainerBuilder) WithLogFatalf(fn func(string, ...interface{})) *ContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// MustBuild builds and returns a new dig container
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.build(ctx)
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

func (b *ContainerBuilder) build(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx, b.loadConfig); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerStorage(container); err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}
	if err := registerService(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if err := registerHTTP(container); err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	return container, nil
}

// MustBuildContainer builds and returns a new dig container
func MustBuildContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuild(ctx)
}

func provideAll(container *dig.Container, providers ...any) error {
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("provide %T: %w", provider, err)
		}
	}
	return nil
}

type statsInterval time.Duration

func registerCore(container *dig.Container, ctx context.Context, loadConfig func() (*config.Config, error)) error {
	return provideAll(container,
		func() context.Context { return ctx },
		loadConfig,
		NewLogger,
		newRegistry,
		func(cfg *config.Config) statsInterval { return statsInterval(cfg.Parcels.StatsInterval) },
	)
}

// newRegistry returns a per-container registry so repeated builds never collide.
func newRegistry() (*prometheus.Registry, prometheus.Registerer) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg, reg
}

func registerStorage(container *dig.Container) error {
	return provideAll(container,
		repository.NewRealClock,
		security.NewRandomCodes,
		func(cfg *config.Config, clock repository.Clock, codes security.CodeGenerator, logger logx.Logger) *repository.ParcelStore {
			store := repository.NewParcelStore(clock, codes)
			if cfg.Parcels.SeedDemo {
				store.Seed(repository.DemoParcels(clock.Now())...)
				logger.Info("demo parcels seeded")
			}
			return store
		},
		func(cfg *config.Config) *repository.StudentRoster {
			if !cfg.Parcels.SeedDemo {
				return repository.NewStudentRoster()
			}
			return repository.NewStudentRoster(repository.DemoStudents()...)
		},
	)
}

func registerService(container *dig.Container) error {
	return provideAll(container,
		func(reg prometheus.Registerer) (*metrics.ParcelMetrics, error) {
			m := metrics.NewParcelMetrics()
			if err := m.Register(reg); err != nil {
				return nil, fmt.Errorf("register parcel metrics: %w", err)
			}
			return m, nil
		},
		func(cfg *config.Config, store *repository.ParcelStore, logger logx.Logger, m *metrics.ParcelMetrics) *parcel.Service {
			return parcel.NewService(store, cfg.Parcels.OperationTimeout, logger, m)
		},
		matronCredentials,
		func(cfg *config.Config) *auth.TokenService {
			return auth.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
		},
		func(matron auth.MatronCredentials, roster *repository.StudentRoster, tokens *auth.TokenService, logger logx.Logger) *auth.Service {
			return auth.NewService(matron, roster, tokens, logger)
		},
	)
}

// matronCredentials prefers a configured bcrypt hash and otherwise hashes the plain password once at startup.
func matronCredentials(cfg *config.Config) (auth.MatronCredentials, error) {
	hash := cfg.Auth.MatronPasswordHash
	if hash == "" {
		var err error
		if hash, err = security.HashPassword(cfg.Auth.MatronPassword); err != nil {
			return auth.MatronCredentials{}, fmt.Errorf("hash matron password: %w", err)
		}
	}
	return auth.MatronCredentials{Email: cfg.Auth.MatronEmail, PasswordHash: hash}, nil
}

type metricsHandlerOut struct {
	dig.Out

	Handler http.Handler `name:"metrics_handler"`
}

type pprofServerOut struct {
	dig.Out

	Server *http.Server `name:"pprof_server"`
}

func registerHTTP(container *dig.Container) error {
	serverProvider := func(cfg *config.Config, mux http.Handler) *http.Server {
		return &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		}
	}
	return provideAll(container,
		func(reg *prometheus.Registry) metricsHandlerOut {
			return metricsHandlerOut{Handler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})}
		},
		middleware.NewHTTPMetrics,
		func(svc *auth.Service) middleware.Authenticator { return svc },
		handlers.New,
		handlers.NewParcelUsecase,
		handlers.NewParcelHandler,
		handlers.NewAuthUsecase,
		handlers.NewAuthHandler,
		router.New,
		serverProvider,
		func(cfg *config.Config, logger logx.Logger) pprofServerOut {
			return pprofServerOut{Server: pprofserver.NewServer(cfg.Pprof, logger)}
		},
	)
}
