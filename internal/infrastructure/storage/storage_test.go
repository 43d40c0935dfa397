package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"svw.info/sudoku-solver/internal/domain"
	"svw.info/sudoku-solver/internal/ports"
)

func samplePuzzle(id string, createdAt int64) *domain.Puzzle {
	p := &domain.Puzzle{
		ID:         id,
		Name:       "sample " + id,
		Difficulty: domain.Hard,
		CreatedAt:  createdAt,
	}
	p.Board.Values[0][0] = 5
	p.Board.Values[8][8] = 9
	p.Board.MarkGivens()
	return p
}

func testStorage(t *testing.T, st ports.Storage) {
	t.Helper()
	ctx := context.Background()

	if err := st.Save(ctx, samplePuzzle("a", 100)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := st.Save(ctx, samplePuzzle("b", 200)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := st.Load(ctx, "a")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.Name != "sample a" || got.Difficulty != domain.Hard {
		t.Fatalf("metadata lost: %+v", got)
	}
	if got.Board.Values[0][0] != 5 || !got.Board.Fixed[8][8] {
		t.Fatalf("board lost: %+v", got.Board)
	}

	if _, err := st.Load(ctx, "missing"); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("want os.ErrNotExist, got %v", err)
	}

	metas, err := st.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(metas) != 2 {
		t.Fatalf("want 2 entries, got %d", len(metas))
	}

	if err := st.Save(ctx, nil); err == nil {
		t.Fatal("Save accepted a nil puzzle")
	}
}

func TestFSStorage(t *testing.T) {
	st := NewFS(filepath.Join(t.TempDir(), "puzzles"))
	defer st.Close()
	testStorage(t, st)
}

func TestSQLiteStorage(t *testing.T) {
	st, err := NewSQLite(filepath.Join(t.TempDir(), "puzzles.db"))
	if err != nil {
		t.Fatalf("NewSQLite failed: %v", err)
	}
	defer st.Close()
	testStorage(t, st)

	// List must come back newest first.
	metas, err := st.List(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if metas[0].ID != "b" || metas[1].ID != "a" {
		t.Fatalf("bad order: %v", metas)
	}
}
