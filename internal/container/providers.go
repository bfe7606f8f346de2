package container

import (
	"net/http"

	"github.com/google/wire"

	"github.com/narwhalmedia/tracker/internal/catalog/handler"
	"github.com/narwhalmedia/tracker/internal/catalog/repository"
	"github.com/narwhalmedia/tracker/internal/catalog/service"
	"github.com/narwhalmedia/tracker/internal/infrastructure/adapters/external/tmdb"
	infraevents "github.com/narwhalmedia/tracker/internal/infrastructure/events"
	"github.com/narwhalmedia/tracker/internal/infrastructure/events/kafka"
	"github.com/narwhalmedia/tracker/internal/infrastructure/events/nats"
	"github.com/narwhalmedia/tracker/pkg/config"
	"github.com/narwhalmedia/tracker/pkg/events"
	"github.com/narwhalmedia/tracker/pkg/interfaces"
	"github.com/narwhalmedia/tracker/pkg/utils"
)

// CatalogContainer holds all dependencies for the catalog server
type CatalogContainer struct {
	Config        *config.CatalogConfig
	Logger        interfaces.Logger
	Store         repository.MediaStore
	EventBus      *events.InMemoryEventBus
	Forwarder     *infraevents.IntegrationForwarder
	MediaService  *service.MediaService
	LookupService *service.LookupService
	Router        http.Handler
}

// ProviderSet wires the catalog server.
var ProviderSet = wire.NewSet(
	ProvideStore,
	ProvideEventBus,
	wire.Bind(new(interfaces.EventBus), new(*events.InMemoryEventBus)),
	ProvideForwarder,
	ProvideMetadataProvider,
	ProvideLookupCache,
	ProvideMediaService,
	ProvideLookupService,
	ProvideMediaHandler,
	ProvideRouter,
)

// ProvideStore opens the configured media store.
func ProvideStore(cfg *config.CatalogConfig, log interfaces.Logger) (repository.MediaStore, func(), error) {
	store, err := repository.Open(cfg.Database, log)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := store.Close(); err != nil {
			log.Error("Failed to close store", interfaces.Error(err))
		}
	}
	log.Info("Media store opened", interfaces.String("driver", cfg.Database.Driver))
	return store, cleanup, nil
}

// ProvideEventBus creates the in-process bus. Cleanup waits for
// in-flight deliveries.
func ProvideEventBus(log interfaces.Logger) (*events.InMemoryEventBus, func()) {
	bus := events.NewInMemoryEventBus(log)
	return bus, func() {
		_ = bus.Stop()
	}
}

// ProvideForwarder connects the integration broker selected by
// events.broker and subscribes it to the bus. It is nil for "none".
func ProvideForwarder(cfg *config.CatalogConfig, bus *events.InMemoryEventBus, log interfaces.Logger) (*infraevents.IntegrationForwarder, func(), error) {
	var (
		broker  infraevents.Broker
		cleanup = func() {}
	)

	switch cfg.Events.Broker {
	case config.BrokerNATS:
		client, drain, err := nats.NewClient(nats.Config{
			URL:        cfg.Events.NATSURL,
			ClientName: cfg.Service.Name,
			StreamName: cfg.Events.StreamName,
			Subjects:   []string{infraevents.SubjectPrefix + ".>"},
		}, log)
		if err != nil {
			return nil, nil, err
		}
		broker, cleanup = client, drain
	case config.BrokerKafka:
		pub, err := kafka.NewPublisher(cfg.Events.KafkaBrokers, cfg.Events.KafkaTopic)
		if err != nil {
			return nil, nil, err
		}
		broker = pub
		cleanup = func() {
			if err := pub.Close(); err != nil {
				log.Error("Failed to close Kafka producer", interfaces.Error(err))
			}
		}
	default:
		return nil, func() {}, nil
	}

	fwd := infraevents.NewIntegrationForwarder(broker, log)
	if err := fwd.Attach(bus); err != nil {
		cleanup()
		return nil, nil, err
	}
	log.Info("Event forwarding enabled", interfaces.String("broker", broker.Name()))
	return fwd, cleanup, nil
}

// ProvideMetadataProvider builds the TMDB client behind a circuit breaker.
// Without an API key there is no provider and lookups answer 503.
func ProvideMetadataProvider(cfg *config.CatalogConfig, log interfaces.Logger) service.Provider {
	if cfg.Lookup.APIKey == "" {
		log.Warn("Lookup API key not set; metadata lookup disabled")
		return nil
	}
	client := tmdb.NewClient(tmdb.Config{
		BaseURL:      cfg.Lookup.BaseURL,
		ImageBaseURL: cfg.Lookup.ImageBaseURL,
		APIKey:       cfg.Lookup.APIKey,
		Language:     cfg.Lookup.Language,
		Timeout:      cfg.Lookup.Timeout,
	})
	return tmdb.NewCircuitBreakerClient(client, tmdb.DefaultBreakerSettings(), log)
}

// ProvideLookupCache creates the lookup response cache.
func ProvideLookupCache(cfg *config.CatalogConfig) (interfaces.Cache, func()) {
	if cfg.Lookup.CacheTTL <= 0 {
		return nil, func() {}
	}
	cache := utils.NewInMemoryCache(cfg.Lookup.CacheTTL)
	return cache, cache.Close
}

// ProvideMediaService creates the catalog service with the default clock.
func ProvideMediaService(store repository.MediaStore, bus interfaces.EventBus, log interfaces.Logger) *service.MediaService {
	return service.NewMediaService(store, bus, nil, log)
}

// ProvideLookupService creates the lookup proxy.
func ProvideLookupService(cfg *config.CatalogConfig, provider service.Provider, cache interfaces.Cache, log interfaces.Logger) *service.LookupService {
	return service.NewLookupService(provider, cache, cfg.Lookup.CacheTTL, log)
}

// ProvideMediaHandler creates the REST handler.
func ProvideMediaHandler(media *service.MediaService, lookup *service.LookupService, log interfaces.Logger) *handler.MediaHandler {
	return handler.NewMediaHandler(media, lookup, log)
}

// ProvideRouter builds the HTTP router.
func ProvideRouter(cfg *config.CatalogConfig, h *handler.MediaHandler, log interfaces.Logger) http.Handler {
	return handler.NewRouter(h, handler.RouterConfig{
		CORSOrigins:     cfg.HTTP.CORSOrigins,
		RateLimit:       cfg.HTTP.RateLimit,
		RateLimitWindow: cfg.HTTP.RateLimitWindow,
		Metrics:         cfg.Metrics.Enabled,
	}, log)
}
