package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"

	"rerank/internal/database"
	"rerank/internal/domain/candidate"
	"rerank/internal/repository"
)

const candidateColumns = `id, name, title, location, company, experience, image_url, email,
	overall_score, skills_score, certifications_score, experience_score, industry_score,
	skills, badge, region, industry`

const upsertCandidateSQL = `INSERT INTO candidates (` + candidateColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
ON CONFLICT (id) DO UPDATE SET
	name = EXCLUDED.name,
	title = EXCLUDED.title,
	location = EXCLUDED.location,
	company = EXCLUDED.company,
	experience = EXCLUDED.experience,
	image_url = EXCLUDED.image_url,
	email = EXCLUDED.email,
	overall_score = EXCLUDED.overall_score,
	skills_score = EXCLUDED.skills_score,
	certifications_score = EXCLUDED.certifications_score,
	experience_score = EXCLUDED.experience_score,
	industry_score = EXCLUDED.industry_score,
	skills = EXCLUDED.skills,
	badge = EXCLUDED.badge,
	region = EXCLUDED.region,
	industry = EXCLUDED.industry,
	updated_at = now()`

const insertResumeSQL = `INSERT INTO resumes (id, candidate_id, filename, content, uploaded_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (id) DO NOTHING`

// CandidateMirror persists the in-memory store to Postgres so a restarted
// server can restore it. Ranks are not stored; they are recomputed on load.
type CandidateMirror struct {
	db     database.DB
	logger *log.Logger
}

func NewCandidateMirror(db database.DB, logger *log.Logger) *CandidateMirror {
	return &CandidateMirror{db: db, logger: logger}
}

func (m *CandidateMirror) UpsertCandidate(ctx context.Context, c candidate.Candidate) error {
	if m == nil || m.db == nil {
		return errors.New("nil db")
	}
	return upsertCandidate(ctx, m.db, c)
}

func (m *CandidateMirror) InsertResume(ctx context.Context, r candidate.Resume) error {
	if m == nil || m.db == nil {
		return errors.New("nil db")
	}
	return insertResume(ctx, m.db, r)
}

// Apply writes one store change through to the mirror. Ranks are not
// persisted, so a change that only reorders other candidates needs nothing.
func (m *CandidateMirror) Apply(ctx context.Context, evt repository.ChangeEvent) error {
	switch evt.Kind {
	case repository.CandidateCreated, repository.CandidateUpdated:
		if evt.Candidate == nil {
			return nil
		}
		return m.UpsertCandidate(ctx, *evt.Candidate)
	case repository.ResumeCreated:
		if evt.Resume == nil {
			return nil
		}
		return m.InsertResume(ctx, *evt.Resume)
	default:
		return nil
	}
}

// ReplaceAll overwrites both tables with the given content in one
// transaction, keeping the slice order as load order.
func (m *CandidateMirror) ReplaceAll(ctx context.Context, cands []candidate.Candidate, resumes []candidate.Resume) error {
	if m == nil || m.db == nil {
		return errors.New("nil db")
	}

	err := database.WithTx(ctx, m.db, func(tx database.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM resumes`); err != nil {
			return fmt.Errorf("clear resumes: %w", err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM candidates`); err != nil {
			return fmt.Errorf("clear candidates: %w", err)
		}
		for _, c := range cands {
			if err := upsertCandidate(ctx, tx, c); err != nil {
				return fmt.Errorf("insert candidate %s: %w", c.ID, err)
			}
		}
		for _, r := range resumes {
			if err := insertResume(ctx, tx, r); err != nil {
				return fmt.Errorf("insert resume %s: %w", r.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	if m.logger != nil {
		m.logger.Printf("[Mirror] replaced candidates=%d resumes=%d", len(cands), len(resumes))
	}
	return nil
}

// LoadAll returns every mirrored candidate and resume in insertion order.
func (m *CandidateMirror) LoadAll(ctx context.Context) ([]candidate.Candidate, []candidate.Resume, error) {
	if m == nil || m.db == nil {
		return nil, nil, errors.New("nil db")
	}

	rows, err := m.db.Query(ctx, `SELECT `+candidateColumns+` FROM candidates ORDER BY seq`)
	if err != nil {
		return nil, nil, err
	}
	cands := make([]candidate.Candidate, 0)
	for rows.Next() {
		var c candidate.Candidate
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Title, &c.Location, &c.Company, &c.Experience, &c.ImageURL, &c.Email,
			&c.OverallScore, &c.SkillsScore, &c.CertificationsScore, &c.ExperienceScore, &c.IndustryScore,
			&c.Skills, &c.Badge, &c.Region, &c.Industry,
		); err != nil {
			rows.Close()
			return nil, nil, err
		}
		if c.Skills == nil {
			c.Skills = []string{}
		}
		cands = append(cands, c)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	rows, err = m.db.Query(ctx, `SELECT id, candidate_id, filename, content, uploaded_at FROM resumes ORDER BY seq`)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()
	resumes := make([]candidate.Resume, 0)
	for rows.Next() {
		var r candidate.Resume
		if err := rows.Scan(&r.ID, &r.CandidateID, &r.Filename, &r.Content, &r.UploadedAt); err != nil {
			return nil, nil, err
		}
		resumes = append(resumes, r)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}
	return cands, resumes, nil
}

func upsertCandidate(ctx context.Context, db database.Querier, c candidate.Candidate) error {
	skills := c.Skills
	if skills == nil {
		skills = []string{}
	}
	_, err := db.Exec(ctx, upsertCandidateSQL,
		c.ID, c.Name, c.Title, c.Location, c.Company, c.Experience, c.ImageURL, c.Email,
		c.OverallScore, c.SkillsScore, c.CertificationsScore, c.ExperienceScore, c.IndustryScore,
		skills, c.Badge, c.Region, c.Industry,
	)
	return err
}

func insertResume(ctx context.Context, db database.Querier, r candidate.Resume) error {
	_, err := db.Exec(ctx, insertResumeSQL, r.ID, r.CandidateID, r.Filename, r.Content, r.UploadedAt)
	return err
}
