// Package export renders leaderboard rows as CSV and XLSX documents.
package export

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"rerank/internal/domain/candidate"
)

const CSVHeader = "Name,Title,Location,Company,Overall Score,Skills Score,Experience Score,Global Rank"

// WriteCSV writes the header and one line per row. Text columns are always
// quoted with embedded quotes doubled; numeric columns are bare.
func WriteCSV(w io.Writer, rows []candidate.WithRank) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString(CSVHeader); err != nil {
		return err
	}
	for _, r := range rows {
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
		if _, err := bw.WriteString(csvLine(r)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func csvLine(r candidate.WithRank) string {
	company := ""
	if r.Company != nil {
		company = *r.Company
	}
	rank := ""
	if r.GlobalRank != nil {
		rank = strconv.Itoa(*r.GlobalRank)
	}

	fields := []string{
		quote(r.Name),
		quote(r.Title),
		quote(r.Location),
		quote(company),
		strconv.Itoa(r.OverallScore),
		strconv.Itoa(r.SkillsScore),
		strconv.Itoa(r.ExperienceScore),
		rank,
	}
	return strings.Join(fields, ",")
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
