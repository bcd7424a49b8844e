package app

import (
	"github.com/izzys-bakery/business-api/internal/app/services/businesses"
	"github.com/izzys-bakery/business-api/internal/app/services/orders"
	"github.com/izzys-bakery/business-api/internal/app/services/pastries"
	"github.com/izzys-bakery/business-api/internal/app/storage"
	"github.com/izzys-bakery/business-api/internal/app/storage/memory"
	"github.com/izzys-bakery/business-api/internal/app/system"
	"github.com/izzys-bakery/business-api/pkg/logger"
)

// Name identifies the service in the root endpoint.
const Name = "IZZYY'S BUSINESS API"

// Stores encapsulates persistence dependencies. Nil stores default to the
// in-memory implementation.
type Stores struct {
	Businesses storage.BusinessStore
	Pastries   storage.PastryStore
	Orders     storage.OrderStore
	System     storage.SystemStore
}

// Application ties the domain services together. Handlers receive it
// explicitly; there is no package-level store handle.
type Application struct {
	log *logger.Logger

	Businesses *businesses.Service
	Pastries   *pastries.Service
	Orders     *orders.Service
	System     *system.Service
}

// New builds a fully initialised application with the provided stores.
func New(stores Stores, log *logger.Logger) *Application {
	if log == nil {
		log = logger.NewDefault("app")
	}

	mem := memory.New()
	if stores.Businesses == nil {
		stores.Businesses = mem
	}
	if stores.Pastries == nil {
		stores.Pastries = mem
	}
	if stores.Orders == nil {
		stores.Orders = mem
	}
	if stores.System == nil {
		stores.System = mem
	}

	return &Application{
		log:        log,
		Businesses: businesses.New(stores.Businesses, log),
		Pastries:   pastries.New(stores.Pastries, log),
		Orders:     orders.New(stores.Businesses, stores.Pastries, stores.Orders, log),
		System:     system.New(stores.System, "bakery"),
	}
}
