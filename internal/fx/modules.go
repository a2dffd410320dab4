package fx

import (
	"vlr-growth/internal/api"
	"vlr-growth/internal/config"
	"vlr-growth/internal/logger"
	"vlr-growth/internal/server"
	"vlr-growth/internal/service"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

func provideStoryService(vlr *api.Client, log zerolog.Logger) *service.StoryService {
	return service.NewStoryService(vlr, log)
}

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	// api client
	fx.Provide(api.NewClient),
	// svc
	fx.Provide(provideStoryService),
	// server
	fx.Provide(server.NewStoryServer),
)
