package seeder

import (
	"context"
	"errors"
	"strings"
	"testing"

	"rerank/internal/database"
)

type stubSeeder struct {
	name string
	err  error
	ran  *[]string
}

func (s stubSeeder) Name() string { return s.name }

func (s stubSeeder) Run(context.Context, database.DB) error {
	*s.ran = append(*s.ran, s.name)
	return s.err
}

type nopDB struct{ database.DB }

func TestRunner_StopsAtFirstFailure(t *testing.T) {
	var ran []string
	boom := errors.New("boom")
	r := Runner{Seeders: []Seeder{
		stubSeeder{name: "a", ran: &ran},
		nil,
		stubSeeder{name: "b", err: boom, ran: &ran},
		stubSeeder{name: "c", ran: &ran},
	}}

	err := r.Run(context.Background(), nopDB{})
	if !errors.Is(err, boom) || !strings.Contains(err.Error(), "seed b") {
		t.Fatalf("unexpected err: %v", err)
	}
	if strings.Join(ran, ",") != "a,b" {
		t.Fatalf("unexpected run order %v", ran)
	}
}

func TestRunner_NilDB(t *testing.T) {
	if err := (Runner{}).Run(context.Background(), nil); err == nil {
		t.Fatalf("expected error for nil db")
	}
}

func TestDefaults(t *testing.T) {
	d := Defaults(nil)
	if len(d) != 1 || d[0].Name() != "candidates" {
		t.Fatalf("unexpected defaults %v", d)
	}
}
