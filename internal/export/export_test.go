package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"rerank/internal/domain/candidate"

	"github.com/xuri/excelize/v2"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func rows() []candidate.WithRank {
	return []candidate.WithRank{
		{Candidate: candidate.Candidate{
			Name: "O'Brien, Jr.", Title: `Lead "Platform" Engineer`, Location: "Dublin, IE",
			Company: strPtr("Acme, Inc."), OverallScore: 3100, SkillsScore: 3200, ExperienceScore: 3000,
			GlobalRank: intPtr(1), Region: "Europe", Industry: "Technology",
		}, Percentile: 100},
		{Candidate: candidate.Candidate{
			Name: "No Company", Title: "Engineer", Location: "Tokyo, JP",
			OverallScore: 1900, SkillsScore: 1800, ExperienceScore: 2000,
			Region: "Asia Pacific", Industry: "Gaming",
		}, Percentile: 50},
	}
}

func TestWriteCSV_QuotingKeepsColumnsAligned(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, rows()); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	lines := strings.Split(buf.String(), "\n")
	if lines[0] != CSVHeader {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if lines[1] != `"O'Brien, Jr.","Lead ""Platform"" Engineer","Dublin, IE","Acme, Inc.",3100,3200,3000,1` {
		t.Fatalf("unexpected first line %q", lines[1])
	}
	if lines[2] != `"No Company","Engineer","Tokyo, JP","",1900,1800,2000,` {
		t.Fatalf("unexpected second line %q", lines[2])
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("csv parse: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	for i, rec := range records {
		if len(rec) != 8 {
			t.Fatalf("record %d has %d fields", i, len(rec))
		}
	}
	if records[1][0] != "O'Brien, Jr." || records[1][1] != `Lead "Platform" Engineer` {
		t.Fatalf("round trip mismatch: %v", records[1])
	}
}

func TestWriteCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	if buf.String() != CSVHeader {
		t.Fatalf("expected header only, got %q", buf.String())
	}
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	if err := WriteXLSX(&buf, rows(), at); err != nil {
		t.Fatalf("WriteXLSX: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer func() {
		_ = f.Close()
	}()

	got, err := f.GetRows(LeaderboardSheet)
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(got))
	}
	if got[0][0] != "Rank" || got[0][13] != "Tier" {
		t.Fatalf("unexpected header %v", got[0])
	}
	if got[1][1] != "O'Brien, Jr." || got[1][13] != "Diamond" {
		t.Fatalf("unexpected first row %v", got[1])
	}
	if got[2][0] != "" || got[2][13] != "Bronze" {
		t.Fatalf("unexpected second row %v", got[2])
	}

	summary, err := f.GetRows(SummarySheet)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary[0][1] != "2024-01-02T03:04:05Z" || summary[1][1] != "2" || summary[2][1] != "2500" {
		t.Fatalf("unexpected summary %v", summary)
	}
}
