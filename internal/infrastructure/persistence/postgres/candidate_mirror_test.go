package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"testing"

	"rerank/internal/database"
	"rerank/internal/domain/candidate"
	"rerank/internal/repository"
)

type execCall struct {
	query string
	args  []any
}

type fakeDB struct {
	execs     []execCall
	rows      map[string][][]any
	execErr   error
	committed bool
}

func (f *fakeDB) Ping(context.Context) error { return nil }
func (f *fakeDB) Close() error               { return nil }
func (f *fakeDB) SQLDB() *sql.DB             { return nil }

func (f *fakeDB) Exec(_ context.Context, query string, args ...any) (int64, error) {
	if f.execErr != nil {
		return 0, f.execErr
	}
	f.execs = append(f.execs, execCall{query: query, args: args})
	return 1, nil
}

func (f *fakeDB) Query(_ context.Context, query string, _ ...any) (database.Rows, error) {
	for prefix, data := range f.rows {
		if strings.Contains(query, prefix) {
			return &fakeRows{data: data, i: -1}, nil
		}
	}
	return &fakeRows{i: -1}, nil
}

func (f *fakeDB) QueryRow(context.Context, string, ...any) database.Row { return nil }

func (f *fakeDB) Begin(context.Context) (database.Tx, error) { return fakeTx{db: f}, nil }

type fakeTx struct{ db *fakeDB }

func (t fakeTx) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	return t.db.Exec(ctx, query, args...)
}
func (t fakeTx) Query(ctx context.Context, query string, args ...any) (database.Rows, error) {
	return t.db.Query(ctx, query, args...)
}
func (t fakeTx) QueryRow(ctx context.Context, query string, args ...any) database.Row {
	return t.db.QueryRow(ctx, query, args...)
}
func (t fakeTx) Commit(context.Context) error   { t.db.committed = true; return nil }
func (t fakeTx) Rollback(context.Context) error { return nil }

type fakeRows struct {
	data [][]any
	i    int
}

func (r *fakeRows) Close()     {}
func (r *fakeRows) Err() error { return nil }
func (r *fakeRows) Next() bool {
	r.i++
	return r.i < len(r.data)
}

func (r *fakeRows) Scan(dest ...any) error {
	row := r.data[r.i]
	if len(row) != len(dest) {
		return fmt.Errorf("scan: %d columns into %d targets", len(row), len(dest))
	}
	for i, v := range row {
		switch d := dest[i].(type) {
		case *string:
			*d = v.(string)
		case **string:
			if v == nil {
				*d = nil
				continue
			}
			s := v.(string)
			*d = &s
		case *int:
			*d = v.(int)
		case *[]string:
			*d = v.([]string)
		default:
			return fmt.Errorf("scan: unsupported target %T", dest[i])
		}
	}
	return nil
}

func strPtr(s string) *string { return &s }

func TestCandidateMirror_UpsertCandidate(t *testing.T) {
	db := &fakeDB{}
	m := NewCandidateMirror(db, nil)

	c := candidate.Candidate{ID: "c1", Name: "Ada", OverallScore: 3465, Region: "Europe"}
	if err := m.UpsertCandidate(context.Background(), c); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(db.execs) != 1 {
		t.Fatalf("expected one statement, got %d", len(db.execs))
	}
	call := db.execs[0]
	if !strings.Contains(call.query, "ON CONFLICT (id) DO UPDATE") {
		t.Fatalf("expected an upsert, got %q", call.query)
	}
	if len(call.args) != 17 || call.args[0] != "c1" || call.args[8] != 3465 {
		t.Fatalf("unexpected args %v", call.args)
	}
	if skills, ok := call.args[13].([]string); !ok || skills == nil {
		t.Fatalf("nil skills must be sent as an empty array, got %#v", call.args[13])
	}
}

func TestCandidateMirror_ReplaceAll(t *testing.T) {
	db := &fakeDB{}
	m := NewCandidateMirror(db, nil)

	cands := []candidate.Candidate{{ID: "a"}, {ID: "b"}}
	resumes := []candidate.Resume{{ID: "r1", CandidateID: strPtr("a")}}
	if err := m.ReplaceAll(context.Background(), cands, resumes); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !db.committed {
		t.Fatalf("expected commit")
	}
	if len(db.execs) != 5 {
		t.Fatalf("expected 2 deletes and 3 inserts, got %d", len(db.execs))
	}
	if !strings.HasPrefix(db.execs[0].query, "DELETE FROM resumes") {
		t.Fatalf("resumes must be cleared first, got %q", db.execs[0].query)
	}

	failing := &fakeDB{execErr: errors.New("boom")}
	if err := NewCandidateMirror(failing, nil).ReplaceAll(context.Background(), cands, nil); err == nil {
		t.Fatalf("expected error")
	}
	if failing.committed {
		t.Fatalf("failed replace must not commit")
	}
}

func TestCandidateMirror_LoadAll(t *testing.T) {
	db := &fakeDB{rows: map[string][][]any{
		"FROM candidates": {
			{"c1", "Ada", "Engineer", "Berlin, DE", nil, "5 years", nil, nil,
				3465, 3500, 3800, 3200, 3450, []string{"Go"}, nil, "Europe", "Technology"},
		},
		"FROM resumes": {
			{"r1", "c1", "cv.pdf", nil, "2024-05-01T11:00:00Z"},
		},
	}}
	m := NewCandidateMirror(db, nil)

	cands, resumes, err := m.LoadAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(cands) != 1 || cands[0].Name != "Ada" || cands[0].OverallScore != 3465 {
		t.Fatalf("unexpected candidates %+v", cands)
	}
	if cands[0].Experience == nil || *cands[0].Experience != "5 years" || cands[0].Company != nil {
		t.Fatalf("nullable columns not scanned")
	}
	if len(resumes) != 1 || resumes[0].CandidateID == nil || *resumes[0].CandidateID != "c1" || resumes[0].Content != nil {
		t.Fatalf("unexpected resumes %+v", resumes)
	}
}

func TestCandidateMirror_NilDB(t *testing.T) {
	var m *CandidateMirror
	if err := m.UpsertCandidate(context.Background(), candidate.Candidate{}); err == nil {
		t.Fatalf("expected error for nil mirror")
	}
}

func TestCandidateMirror_Apply(t *testing.T) {
	db := &fakeDB{}
	m := NewCandidateMirror(db, nil)
	ctx := context.Background()

	cand := candidate.Candidate{ID: "c1", Name: "Ada", Skills: []string{"Go"}}
	res := candidate.Resume{ID: "r1", CandidateID: strPtr("c1"), Filename: "cv.pdf"}

	events := []repository.ChangeEvent{
		{Kind: repository.CandidateCreated, Version: 2, Candidate: &cand},
		{Kind: repository.CandidateUpdated, Version: 3, Candidate: &cand},
		{Kind: repository.ResumeCreated, Version: 4, Resume: &res},
		{Kind: repository.StoreRestored, Version: 5},
		{Kind: repository.CandidateUpdated, Version: 6},
	}
	for _, evt := range events {
		if err := m.Apply(ctx, evt); err != nil {
			t.Fatalf("apply %s: %v", evt.Kind, err)
		}
	}

	if len(db.execs) != 3 {
		t.Fatalf("expected 3 writes, got %d", len(db.execs))
	}
	if !strings.Contains(db.execs[2].query, "INSERT INTO resumes") {
		t.Fatalf("expected resume insert last, got %q", db.execs[2].query)
	}
}
