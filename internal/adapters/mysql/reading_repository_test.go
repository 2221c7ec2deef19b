package mysql

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/quentinrf/bh1750/internal/domain"
)

// newTestRepo needs a scratch database, e.g.
// MYSQL_TEST_DSN="root:secret@tcp(127.0.0.1:3306)/lux_test"
func newTestRepo(t *testing.T) *ReadingRepository {
	t.Helper()

	dsn := os.Getenv("MYSQL_TEST_DSN")
	if dsn == "" {
		t.Skip("MYSQL_TEST_DSN not set")
	}

	repo, err := NewReadingRepository(dsn)
	if err != nil {
		t.Fatalf("failed to create MySQL repo: %v", err)
	}
	if _, err := repo.db.Exec("TRUNCATE TABLE light_readings"); err != nil {
		t.Fatalf("failed to truncate: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestSaveAndGetReading(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	reading, _ := domain.NewLightReadingFromSample(domain.Sample{Raw: 404, Lux: 927})
	if err := repo.SaveReading(ctx, reading); err != nil {
		t.Fatalf("SaveReading failed: %v", err)
	}

	got, err := repo.GetReading(ctx, reading.ID)
	if err != nil {
		t.Fatalf("GetReading failed: %v", err)
	}
	if got.Lux != 927 || got.Raw != 404 {
		t.Errorf("got lux %v raw %d, want 927 and 404", got.Lux, got.Raw)
	}
}

func TestGetReadingsInRange_HalfOpen(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	ts := time.Now().Truncate(time.Second)
	for i, lux := range []float64{100, 200} {
		r, _ := domain.NewLightReading(lux)
		r.Timestamp = ts.Add(time.Duration(i) * time.Second)
		_ = repo.SaveReading(ctx, r)
	}

	results, err := repo.GetReadingsInRange(ctx, ts, ts.Add(time.Second))
	if err != nil {
		t.Fatalf("GetReadingsInRange failed: %v", err)
	}
	if len(results) != 1 || results[0].Lux != 100 {
		t.Errorf("expected only the reading at start, got %d", len(results))
	}
}

func TestGetLatestReading_Empty(t *testing.T) {
	repo := newTestRepo(t)

	if _, err := repo.GetLatestReading(context.Background()); err != domain.ErrReadingNotFound {
		t.Errorf("expected ErrReadingNotFound, got %v", err)
	}
}

func TestDeleteOldReadings(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	old, _ := domain.NewLightReading(100)
	old.Timestamp = time.Now().Add(-48 * time.Hour)
	_ = repo.SaveReading(ctx, old)

	if err := repo.DeleteOldReadings(ctx, 24*time.Hour); err != nil {
		t.Fatalf("DeleteOldReadings failed: %v", err)
	}
	if _, err := repo.GetReading(ctx, old.ID); err != domain.ErrReadingNotFound {
		t.Errorf("expected old reading to be deleted, got %v", err)
	}
}
