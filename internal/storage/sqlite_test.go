package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/randwalk/internal/sim"
	"github.com/vovakirdan/randwalk/internal/walk"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(Run{
		Kind:       KindWalk,
		Variants:   "rook,queen",
		Steps:      500,
		Walkers:    3,
		Seed:       42,
		Playground: 2,
		Skipped:    1,
	})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if len(id) != 36 {
		t.Errorf("generated id %q is not a UUID", id)
	}

	got, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got.Kind != KindWalk || got.Variants != "rook,queen" || got.Steps != 500 ||
		got.Walkers != 3 || got.Seed != 42 || got.Playground != 2 || got.Skipped != 1 || got.Trapped {
		t.Errorf("RunByID() = %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt was not set")
	}
}

func TestStoreKeepsGivenID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(Run{ID: "fixed-id", Kind: KindGrid, Steps: 100, Fill: 0.2, Trapped: true})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id != "fixed-id" {
		t.Errorf("id = %q, want fixed-id", id)
	}

	got, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if !got.Trapped || got.Fill != 0.2 {
		t.Errorf("RunByID() = %+v", got)
	}
}

func TestStoreRejectsUnknownKind(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveRun(Run{Kind: "maze", Steps: 1}); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestStoreRunNotFound(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.RunByID("missing"); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("RunByID() error = %v, want ErrRunNotFound", err)
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 5; i++ {
		if _, err := store.SaveRun(Run{ID: fmt.Sprintf("walk-%d", i), Kind: KindWalk, Steps: i * 10}); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := store.SaveRun(Run{ID: "grid-1", Kind: KindGrid, Steps: 7}); err != nil {
		t.Fatal(err)
	}

	all, err := store.RecentRuns("", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(all) != 6 {
		t.Fatalf("got %d runs, want 6", len(all))
	}
	if all[0].ID != "grid-1" {
		t.Errorf("newest run = %q, want grid-1", all[0].ID)
	}

	walks, err := store.RecentRuns(KindWalk, 3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(walks) != 3 {
		t.Fatalf("got %d walk runs, want 3", len(walks))
	}
	for i, want := range []string{"walk-5", "walk-4", "walk-3"} {
		if walks[i].ID != want {
			t.Errorf("walks[%d] = %q, want %q", i, walks[i].ID, want)
		}
	}
}

func TestStoreEmpty(t *testing.T) {
	store := openTestStore(t)

	runs, err := store.RecentRuns("", 0)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if len(stats) != 0 {
		t.Errorf("expected no stats, got %v", stats)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{Kind: KindWalk, Steps: 10})
	store.SaveRun(Run{Kind: KindGrid, Steps: 10})

	if err := store.ClearRuns(KindWalk); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	runs, _ := store.RecentRuns("", 10)
	if len(runs) != 1 || runs[0].Kind != KindGrid {
		t.Errorf("after clearing walks: %+v", runs)
	}

	if err := store.ClearRuns(""); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	runs, _ = store.RecentRuns("", 10)
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{Kind: KindWalk, Steps: 100})
	store.SaveRun(Run{Kind: KindWalk, Steps: 50})
	store.SaveRun(Run{Kind: KindGrid, Steps: 30, Trapped: true})
	store.SaveRun(Run{Kind: KindGrid, Steps: 20})

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}

	w := stats[KindWalk]
	if w == nil || w.Runs != 2 || w.TotalSteps != 150 || w.Trapped != 0 {
		t.Errorf("walk stats = %+v", w)
	}
	g := stats[KindGrid]
	if g == nil || g.Runs != 2 || g.TotalSteps != 50 || g.Trapped != 1 {
		t.Errorf("grid stats = %+v", g)
	}
}

func TestWalkRunSummary(t *testing.T) {
	opts := sim.DefaultWalkOptions()
	opts.Walkers = 2
	opts.Boundary.Seed = 1
	res := &sim.WalkResult{Seed: 99, Skipped: []error{walk.ErrWalkerTrapped}}

	r := WalkRun(opts, res)
	if r.Kind != KindWalk || r.Variants != "neumann" || r.Walkers != 2 ||
		r.Playground != 1 || r.Seed != 99 || r.Skipped != 1 {
		t.Errorf("WalkRun() = %+v", r)
	}

	opts.Variants = []string{"king", "pawn"}
	if r := WalkRun(opts, nil); r.Variants != "king,pawn" {
		t.Errorf("Variants = %q, want king,pawn", r.Variants)
	}
}

func TestGridRunSummary(t *testing.T) {
	opts := sim.DefaultGridOptions()
	trapped := fmt.Errorf("sim: %w", walk.ErrWalkerTrapped)

	r := GridRun(opts, &sim.GridResult{Seed: 5}, trapped)
	if r.Kind != KindGrid || !r.Trapped || r.Seed != 5 || r.Fill != 0.1 {
		t.Errorf("GridRun() = %+v", r)
	}
	if r := GridRun(opts, nil, nil); r.Trapped {
		t.Error("run without error should not be trapped")
	}
}
