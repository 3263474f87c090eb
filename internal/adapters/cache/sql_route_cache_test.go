package cache

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"

	"etruck-route-service/internal/adapters/repositories"
	"etruck-route-service/internal/domain"
	"etruck-route-service/internal/ports"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := repositories.InitSchema(db); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	return db
}

func TestSQLRouteCachePutGet(t *testing.T) {
	c := NewSQLRouteCache(newTestDB(t))
	ctx := context.Background()

	origin := domain.Coordinates{Lat: 52.5200, Lon: 13.4050}
	dest := domain.Coordinates{Lat: 53.5511, Lon: 9.9937}

	if _, ok, err := c.Get(ctx, origin, dest); err != nil || ok {
		t.Fatalf("expected a clean miss, got ok=%v err=%v", ok, err)
	}

	want := ports.RouteResult{
		DistanceMeters:  289000,
		DurationSeconds: 12600,
		Polyline:        []domain.Coordinates{origin, {Lat: 53.0, Lon: 11.0}, dest},
	}
	if err := c.Put(ctx, origin, dest, want); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, ok, err := c.Get(ctx, origin, dest)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatal("expected a hit after put")
	}
	if got.DistanceMeters != want.DistanceMeters || got.DurationSeconds != want.DurationSeconds {
		t.Fatalf("got %+v, want %+v", got, want)
	}
	if len(got.Polyline) != 3 || got.Polyline[1].Lon != 11.0 {
		t.Fatalf("polyline not preserved: %+v", got.Polyline)
	}

	// Overwriting the same pair keeps the latest result.
	want.DistanceMeters = 291000
	if err := c.Put(ctx, origin, dest, want); err != nil {
		t.Fatalf("second put: %v", err)
	}
	got, _, err = c.Get(ctx, origin, dest)
	if err != nil {
		t.Fatalf("get after overwrite: %v", err)
	}
	if got.DistanceMeters != 291000 {
		t.Fatalf("overwrite not applied, got %d", got.DistanceMeters)
	}
}
