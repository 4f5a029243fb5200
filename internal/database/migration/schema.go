package migration

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// mirrorColumns are the columns the candidate mirror reads and writes. A
// migration that drops or renames one breaks restore on the next boot.
var mirrorColumns = map[string][]string{
	"candidates": {
		"id", "seq", "name", "title", "location", "company", "experience",
		"image_url", "email", "overall_score", "skills_score",
		"certifications_score", "experience_score", "industry_score",
		"skills", "badge", "region", "industry", "updated_at",
	},
	"resumes": {"id", "seq", "candidate_id", "filename", "content", "uploaded_at"},
}

// VerifySchema fails when a mirrored table is missing any column the mirror
// uses.
func VerifySchema(ctx context.Context, db execQuerier) error {
	tables := make([]string, 0, len(mirrorColumns))
	for t := range mirrorColumns {
		tables = append(tables, t)
	}
	sort.Strings(tables)

	for _, table := range tables {
		have, err := tableColumns(ctx, db, table)
		if err != nil {
			return fmt.Errorf("read columns of %s: %w", table, err)
		}
		if missing := missingColumns(have, mirrorColumns[table]); len(missing) > 0 {
			return fmt.Errorf("table %s is missing columns: %s", table, strings.Join(missing, ", "))
		}
	}
	return nil
}

func tableColumns(ctx context.Context, db execQuerier, table string) (map[string]bool, error) {
	rows, err := db.QueryContext(ctx, `
SELECT column_name
FROM information_schema.columns
WHERE table_schema = current_schema() AND table_name = $1`, table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	have := map[string]bool{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		have[strings.ToLower(name)] = true
	}
	return have, rows.Err()
}

func missingColumns(have map[string]bool, want []string) []string {
	var missing []string
	for _, c := range want {
		if !have[c] {
			missing = append(missing, c)
		}
	}
	return missing
}
