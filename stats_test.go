package galleria

import (
	"path/filepath"
	"testing"
)

func newTestStats(t *testing.T) *StatsStore {
	t.Helper()
	s, err := NewStatsStore(filepath.Join(t.TempDir(), "stats.db"))
	if err != nil {
		t.Fatalf("NewStatsStore failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStatsRecordAndViews(t *testing.T) {
	s := newTestStats(t)

	for i := 0; i < 3; i++ {
		if err := s.Record("/gallery"); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}
	if err := s.Record("/detail/a.png"); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	views, err := s.Views()
	if err != nil {
		t.Fatalf("Views failed: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("views = %v, want 2 rows", views)
	}
	if views[0].Path != "/gallery" || views[0].Hits != 3 {
		t.Fatalf("top view = %+v, want /gallery with 3 hits", views[0])
	}
	if views[1].Path != "/detail/a.png" || views[1].Hits != 1 {
		t.Fatalf("second view = %+v", views[1])
	}
}

func TestStatsViewsEmpty(t *testing.T) {
	s := newTestStats(t)

	views, err := s.Views()
	if err != nil {
		t.Fatalf("Views failed: %v", err)
	}
	if len(views) != 0 {
		t.Fatalf("views = %v, want none", views)
	}
}
