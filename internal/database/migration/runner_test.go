package migration

import (
	"context"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"rerank/migrations"
)

func file(body string) *fstest.MapFile { return &fstest.MapFile{Data: []byte(body)} }

func TestLoadMigrations_OrdersAndChecksums(t *testing.T) {
	fsys := fstest.MapFS{
		"V2__resumes.sql":    file("CREATE TABLE resumes (id TEXT);"),
		"V1__candidates.sql": file("  CREATE TABLE candidates (id TEXT);\n"),
		"README.md":          file("ignored"),
		"v3__lowercase.sql":  file("ignored"),
	}

	migs, err := loadMigrations(fsys)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(migs) != 2 {
		t.Fatalf("expected 2 migrations, got %d", len(migs))
	}
	if migs[0].Version != 1 || migs[0].Name != "candidates" || migs[1].Version != 2 {
		t.Fatalf("unexpected order %+v", migs)
	}
	if migs[0].SQL != "CREATE TABLE candidates (id TEXT);" {
		t.Fatalf("sql not trimmed: %q", migs[0].SQL)
	}
	if len(migs[0].Checksum) != 64 || migs[0].Checksum == migs[1].Checksum {
		t.Fatalf("unexpected checksums %q %q", migs[0].Checksum, migs[1].Checksum)
	}
}

func TestLoadMigrations_Errors(t *testing.T) {
	dup := fstest.MapFS{"V1__a.sql": file("SELECT 1;"), "V01__b.sql": file("SELECT 2;")}
	if _, err := loadMigrations(dup); err == nil {
		t.Fatalf("expected duplicate version error")
	}

	empty := fstest.MapFS{"V1__empty.sql": file("   ")}
	if _, err := loadMigrations(empty); err == nil {
		t.Fatalf("expected empty file error")
	}

	migs, err := (Runner{Dir: t.TempDir() + "/missing"}).load()
	if err != nil || migs != nil {
		t.Fatalf("missing dir should load nothing, got %v %v", migs, err)
	}
}

func TestPending(t *testing.T) {
	migs := []Migration{
		{Version: 1, Name: "candidates", Checksum: "aaa"},
		{Version: 2, Name: "indexes", Checksum: "bbb"},
	}

	todo, err := pending(migs, map[int64]appliedMigration{1: {Checksum: "aaa"}})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(todo) != 1 || todo[0].Version != 2 {
		t.Fatalf("expected only version 2 pending, got %+v", todo)
	}

	_, err = pending(migs, map[int64]appliedMigration{1: {Checksum: "changed"}})
	if err == nil || !strings.Contains(err.Error(), "checksum mismatch: version=1") {
		t.Fatalf("expected checksum mismatch, got %v", err)
	}
}

func TestStatuses(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	migs := []Migration{{Version: 1}, {Version: 2}}

	got := statuses(migs, map[int64]appliedMigration{1: {AppliedAt: at}})
	if len(got) != 2 {
		t.Fatalf("expected 2 statuses, got %d", len(got))
	}
	if got[0].AppliedAt == nil || !got[0].AppliedAt.Equal(at) {
		t.Fatalf("expected version 1 applied at %s, got %v", at, got[0].AppliedAt)
	}
	if got[1].AppliedAt != nil {
		t.Fatalf("expected version 2 pending")
	}
}

func TestRunner_NilDB(t *testing.T) {
	if err := (Runner{}).Run(context.Background(), nil); err == nil {
		t.Fatalf("expected error for nil db")
	}
	if _, err := (Runner{}).Status(context.Background(), nil); err == nil {
		t.Fatalf("expected error for nil db")
	}
}

func TestEmbeddedMigrationsCoverMirrorColumns(t *testing.T) {
	migs, err := loadMigrations(migrations.FS)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(migs) == 0 || migs[0].Name != "candidates" {
		t.Fatalf("expected the candidates migration, got %+v", migs)
	}

	var all strings.Builder
	for _, m := range migs {
		all.WriteString(m.SQL)
		all.WriteString("\n")
	}
	ddl := all.String()
	for table, cols := range mirrorColumns {
		if !strings.Contains(ddl, "CREATE TABLE IF NOT EXISTS "+table+" (") {
			t.Fatalf("no migration creates %s", table)
		}
		for _, c := range cols {
			if !strings.Contains(ddl, "\t"+c+" ") {
				t.Fatalf("no migration defines %s.%s", table, c)
			}
		}
	}
}

func TestMissingColumns(t *testing.T) {
	have := map[string]bool{"id": true, "name": true}
	got := missingColumns(have, []string{"id", "name", "region", "industry"})
	if strings.Join(got, ",") != "region,industry" {
		t.Fatalf("unexpected missing columns %v", got)
	}
	if missingColumns(have, []string{"id"}) != nil {
		t.Fatalf("expected no missing columns")
	}
}
