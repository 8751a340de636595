// Package places provides the POI search bounded context module.
package places

import (
	"github.com/rehabcade/spin-to-eat-v2/internal/geocode"
	apphttp "github.com/rehabcade/spin-to-eat-v2/internal/http"
	"github.com/rehabcade/spin-to-eat-v2/internal/places/handler"
	"github.com/rehabcade/spin-to-eat-v2/internal/places/service"
	"github.com/rehabcade/spin-to-eat-v2/internal/provider"
	"github.com/rehabcade/spin-to-eat-v2/internal/provider/foursquare"
	"github.com/rehabcade/spin-to-eat-v2/internal/provider/overpass"
	"github.com/rehabcade/spin-to-eat-v2/platform/config"
	"github.com/rehabcade/spin-to-eat-v2/platform/logger"
	"github.com/rehabcade/spin-to-eat-v2/platform/validator"
)

// Config combines the settings the places module needs.
type Config interface {
	config.GeocoderConfig
	config.ProviderConfig
}

// Module wires the places search HTTP routes.
type Module struct {
	handler *handler.Handler
}

// NewModule creates and initializes the places module. The POI provider
// is selected once here from configuration; one deployment talks to
// exactly one provider.
func NewModule(cfg Config, val *validator.Validator, log *logger.Logger) *Module {
	geocoder := geocode.NewNominatim(cfg, log)

	var searcher provider.Searcher
	if cfg.GetPOIProvider() == config.ProviderFoursquare {
		searcher = foursquare.NewSearcher(cfg, log)
	} else {
		searcher = overpass.NewSearcher(cfg, log)
	}

	svc := service.New(geocoder, searcher, log)
	h := handler.New(svc, val)
	return &Module{handler: h}
}

func (m *Module) Name() string {
	return "places"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/places")
	group.GET("/search", m.handler.Search)
	group.GET("/provider", m.handler.ProviderInfo)
}

var _ apphttp.Module = (*Module)(nil)
