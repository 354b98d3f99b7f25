package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/Tora-Build/w3cash-sdk-sub001/model"
)

func digest(b byte) model.Digest {
	var d model.Digest
	d[0] = b
	return d
}

func openTemp(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "progress.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s, path
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open(""); err == nil {
		t.Fatal("empty path must be rejected")
	}
}

func TestRecordAndCursor(t *testing.T) {
	s, _ := openTemp(t)
	d := digest(0x01)

	if _, ok, err := s.Cursor(d); err != nil || ok {
		t.Fatalf("fresh store: ok=%v err=%v", ok, err)
	}
	if err := s.Record(d, 3); err != nil {
		t.Fatalf("Record: %v", err)
	}
	c, ok, err := s.Cursor(d)
	if err != nil || !ok || c != 3 {
		t.Fatalf("Cursor: %d, %v, %v", c, ok, err)
	}
}

func TestRecordIsMonotonic(t *testing.T) {
	s, _ := openTemp(t)
	d := digest(0x01)
	if err := s.Record(d, 5); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := s.Record(d, 2); err != nil {
		t.Fatalf("Record lower: %v", err)
	}
	c, _, _ := s.Cursor(d)
	if c != 5 {
		t.Fatalf("cursor rewound to %d", c)
	}
	if err := s.Record(d, 9); err != nil {
		t.Fatalf("Record higher: %v", err)
	}
	c, _, _ = s.Cursor(d)
	if c != 9 {
		t.Fatalf("cursor %d, want 9", c)
	}
}

func TestProgressSurvivesReopen(t *testing.T) {
	s, path := openTemp(t)
	d := digest(0x07)
	if err := s.Record(d, 4); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()
	c, ok, err := reopened.Cursor(d)
	if err != nil || !ok || c != 4 {
		t.Fatalf("after reopen: %d, %v, %v", c, ok, err)
	}
}

func TestMigrationsAreIdempotent(t *testing.T) {
	_, path := openTemp(t)
	// Opening a second handle re-runs the migration path over an
	// already-migrated file.
	again, err := Open(path)
	if err != nil {
		t.Fatalf("second open: %v", err)
	}
	defer again.Close()
}
