//go:build wireinject
// +build wireinject

package container

import (
	"github.com/google/wire"

	"github.com/narwhalmedia/tracker/pkg/config"
	"github.com/narwhalmedia/tracker/pkg/interfaces"
)

// InitializeCatalog creates the catalog server with all dependencies
func InitializeCatalog(cfg *config.CatalogConfig, log interfaces.Logger) (*CatalogContainer, func(), error) {
	wire.Build(
		ProviderSet,
		wire.Struct(new(CatalogContainer), "*"),
	)
	return nil, nil, nil
}
