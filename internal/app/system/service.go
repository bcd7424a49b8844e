package system

import (
	"context"
	"os"
	"time"

	"github.com/izzys-bakery/business-api/internal/app/storage"
)

// Report describes service and store health for the diagnostics endpoint.
// Field names and the emoji-tagged values mirror what the operator dashboard
// scrapes.
type Report struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

const (
	maxReportedCollections = 10
	maxReportedErrorLen    = 50
	pingTimeout            = 3 * time.Second
)

// Service produces connectivity reports. A nil store means the service runs
// without persistence configured.
type Service struct {
	store storage.SystemStore
	name  string
}

// New constructs the diagnostics service. name is reported as database_name
// when the store responds.
func New(store storage.SystemStore, name string) *Service {
	return &Service{store: store, name: name}
}

// Check builds a connectivity report. It never returns an error; store
// problems degrade the report content instead.
func (s *Service) Check(ctx context.Context) Report {
	report := Report{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}
	if s.store == nil {
		return report
	}

	report.Database = "✅ Available"
	if os.Getenv("DATABASE_URL") != "" {
		report.DatabaseURL = "✅ Set"
	} else {
		report.DatabaseURL = "❌ Not Set"
	}

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := s.store.Ping(ctx); err != nil {
		report.Database = "❌ Error: " + truncate(err.Error(), maxReportedErrorLen)
		return report
	}
	report.DatabaseName = s.name
	report.ConnectionStatus = "Connected"

	collections, err := s.store.Collections(ctx)
	if err != nil {
		report.Database = "⚠️ Connected but Error: " + truncate(err.Error(), maxReportedErrorLen)
		return report
	}
	if len(collections) > maxReportedCollections {
		collections = collections[:maxReportedCollections]
	}
	if collections == nil {
		collections = []string{}
	}
	report.Collections = collections
	report.Database = "✅ Connected & Working"
	return report
}

// truncate cuts on a rune boundary so multibyte error text stays valid UTF-8.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
