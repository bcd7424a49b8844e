package system

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/izzys-bakery/business-api/internal/app/storage/memory"
)

type flakyStore struct {
	pingErr        error
	collections    []string
	collectionsErr error
}

func (f *flakyStore) Ping(context.Context) error { return f.pingErr }

func (f *flakyStore) Collections(context.Context) ([]string, error) {
	return f.collections, f.collectionsErr
}

func TestCheckWithoutStore(t *testing.T) {
	report := New(nil, "bakery").Check(context.Background())

	assert.Equal(t, "✅ Running", report.Backend)
	assert.Equal(t, "❌ Not Available", report.Database)
	assert.Equal(t, "Not Connected", report.ConnectionStatus)
	assert.Empty(t, report.Collections)
	assert.NotNil(t, report.Collections)
}

func TestCheckHealthyStore(t *testing.T) {
	report := New(memory.New(), "bakery").Check(context.Background())

	assert.Equal(t, "✅ Connected & Working", report.Database)
	assert.Equal(t, "Connected", report.ConnectionStatus)
	assert.Equal(t, "bakery", report.DatabaseName)
	assert.Equal(t, []string{"business", "pastry", "order"}, report.Collections)
}

func TestCheckNeverFails(t *testing.T) {
	longErr := errors.New(strings.Repeat("x", 200))
	report := New(&flakyStore{pingErr: longErr}, "bakery").Check(context.Background())

	assert.Equal(t, "Not Connected", report.ConnectionStatus)
	assert.True(t, strings.HasPrefix(report.Database, "❌ Error: "))
	assert.Equal(t, "❌ Error: "+strings.Repeat("x", 50), report.Database)
}

func TestCheckTruncatesOnRuneBoundary(t *testing.T) {
	longErr := errors.New(strings.Repeat("é", 80))
	report := New(&flakyStore{pingErr: longErr}, "bakery").Check(context.Background())

	assert.True(t, utf8.ValidString(report.Database))
	assert.Equal(t, "❌ Error: "+strings.Repeat("é", 50), report.Database)
}

func TestCheckCollectionsError(t *testing.T) {
	store := &flakyStore{collectionsErr: errors.New("listing broke")}
	report := New(store, "bakery").Check(context.Background())

	assert.Equal(t, "Connected", report.ConnectionStatus)
	assert.Contains(t, report.Database, "⚠️ Connected but Error: listing broke")
	assert.Empty(t, report.Collections)
}

func TestCheckCapsCollections(t *testing.T) {
	names := make([]string, 15)
	for i := range names {
		names[i] = string(rune('a' + i))
	}
	report := New(&flakyStore{collections: names}, "bakery").Check(context.Background())

	assert.Len(t, report.Collections, 10)
}
