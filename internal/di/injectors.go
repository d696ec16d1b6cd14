//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"
	"streakd/internal"
	"streakd/internal/auth"
	"streakd/internal/classifier"
	"streakd/internal/controllers"
	"streakd/internal/providers"
	"streakd/internal/services"
	"streakd/internal/storage"
	"streakd/internal/structures"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,

		services.NewStreakService,
		provideSessionStore,

		storage.NewZstdCompressor,
		storage.NewFileManager,
		storage.NewScheduler,
		providePersister,

		classifier.NewGeminiClassifier,
		auth.NewHTTPProvider,
		auth.NewManager,

		controllers.NewApiController,
		controllers.NewAuthController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
