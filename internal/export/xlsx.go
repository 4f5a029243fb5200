package export

import (
	"fmt"
	"io"
	"time"

	"rerank/internal/domain/candidate"
	"rerank/internal/domain/scoring"

	"github.com/xuri/excelize/v2"
)

const (
	LeaderboardSheet = "Leaderboard"
	SummarySheet     = "Summary"
)

var xlsxHeaders = []string{
	"Rank", "Name", "Title", "Location", "Company", "Region", "Industry",
	"Overall", "Skills", "Certifications", "Experience", "Industry Score",
	"Percentile", "Tier",
}

var colWidths = map[string]float64{
	"A": 8, "B": 25, "C": 30, "D": 22, "E": 18, "F": 16, "G": 16,
	"H": 10, "I": 10, "J": 14, "K": 12, "L": 14, "M": 12, "N": 10,
}

// WriteXLSX writes a workbook with a leaderboard sheet and a summary sheet.
func WriteXLSX(w io.Writer, rows []candidate.WithRank, generatedAt time.Time) error {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	if err := f.SetSheetName("Sheet1", LeaderboardSheet); err != nil {
		return err
	}
	if _, err := f.NewSheet(SummarySheet); err != nil {
		return err
	}

	if err := writeLeaderboardSheet(f, rows); err != nil {
		return fmt.Errorf("leaderboard sheet: %w", err)
	}
	if err := writeSummarySheet(f, rows, generatedAt); err != nil {
		return fmt.Errorf("summary sheet: %w", err)
	}

	return f.Write(w)
}

func writeLeaderboardSheet(f *excelize.File, rows []candidate.WithRank) error {
	for col, width := range colWidths {
		if err := f.SetColWidth(LeaderboardSheet, col, col, width); err != nil {
			return err
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}

	for i, h := range xlsxHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(LeaderboardSheet, cell, h); err != nil {
			return err
		}
		if err := f.SetCellStyle(LeaderboardSheet, cell, cell, headerStyle); err != nil {
			return err
		}
	}

	for i, r := range rows {
		values := []any{
			derefInt(r.GlobalRank),
			r.Name,
			r.Title,
			r.Location,
			derefString(r.Company),
			r.Region,
			r.Industry,
			r.OverallScore,
			r.SkillsScore,
			r.CertificationsScore,
			r.ExperienceScore,
			r.IndustryScore,
			r.Percentile,
			string(scoring.TierFor(r.OverallScore)),
		}
		start, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(LeaderboardSheet, start, &values); err != nil {
			return err
		}
	}

	if len(rows) > 0 {
		ref := fmt.Sprintf("A1:N%d", len(rows)+1)
		if err := f.AutoFilter(LeaderboardSheet, ref, []excelize.AutoFilterOptions{}); err != nil {
			return err
		}
	}

	return f.SetPanes(LeaderboardSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

func writeSummarySheet(f *excelize.File, rows []candidate.WithRank, generatedAt time.Time) error {
	if err := f.SetColWidth(SummarySheet, "A", "A", 22); err != nil {
		return err
	}
	if err := f.SetColWidth(SummarySheet, "B", "B", 28); err != nil {
		return err
	}

	labelStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	tiers := map[scoring.Tier]int{}
	total := 0
	for _, r := range rows {
		tiers[scoring.TierFor(r.OverallScore)]++
		total += r.OverallScore
	}
	avg := 0
	if len(rows) > 0 {
		avg = (2*total + len(rows)) / (2 * len(rows))
	}

	lines := [][2]any{
		{"Generated", generatedAt.UTC().Format(time.RFC3339)},
		{"Candidates", len(rows)},
		{"Average Score", avg},
		{"Diamond", tiers[scoring.TierDiamond]},
		{"Gold", tiers[scoring.TierGold]},
		{"Silver", tiers[scoring.TierSilver]},
		{"Bronze", tiers[scoring.TierBronze]},
	}
	for i, l := range lines {
		row := i + 1
		label := fmt.Sprintf("A%d", row)
		if err := f.SetCellValue(SummarySheet, label, l[0]); err != nil {
			return err
		}
		if err := f.SetCellStyle(SummarySheet, label, label, labelStyle); err != nil {
			return err
		}
		if err := f.SetCellValue(SummarySheet, fmt.Sprintf("B%d", row), l[1]); err != nil {
			return err
		}
	}
	return nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(i *int) any {
	if i == nil {
		return ""
	}
	return *i
}
