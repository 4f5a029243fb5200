package resume

import (
	"crypto/sha256"
	"encoding/binary"

	"rerank/internal/domain/scoring"
)

const (
	rateBase     = 2000
	rateSpread   = 1000
	ratePerSkill = 50
	intakeBase   = 600
	intakeSpread = 400
	intakeDomain = "intake:"

	skillsOffset   = 0
	certsOffset    = 2
	expOffset      = 4
	industryOffset = 6
)

// Recommendations are returned with every rating.
var Recommendations = []string{
	"Add cloud certifications to boost your score by 200+ points",
	"Highlight leadership experience and project management skills",
	"Update technology stack with modern frameworks like Next.js",
}

// Analyzer scores a resume. Implementations must be pure so identical
// uploads yield identical scores.
type Analyzer interface {
	// Rate scores a document for the standalone rating flow.
	Rate(content []byte, skills []string) scoring.Breakdown
	// Intake produces the sub-scores of a candidate created from an upload.
	Intake(content []byte) scoring.SubScores
}

// DeterministicAnalyzer derives sub-scores from a SHA-256 digest of the
// document bytes.
type DeterministicAnalyzer struct{}

func NewDeterministicAnalyzer() DeterministicAnalyzer {
	return DeterministicAnalyzer{}
}

func (DeterministicAnalyzer) Rate(content []byte, skills []string) scoring.Breakdown {
	d := sha256.Sum256(content)
	s := scoring.SubScores{
		Skills:         rateBase + spread(d, skillsOffset, rateSpread) + len(skills)*ratePerSkill,
		Certifications: rateBase + spread(d, certsOffset, rateSpread),
		Experience:     rateBase + spread(d, expOffset, rateSpread),
		Industry:       rateBase + spread(d, industryOffset, rateSpread),
	}
	return scoring.NewBreakdown(s)
}

func (DeterministicAnalyzer) Intake(content []byte) scoring.SubScores {
	h := sha256.New()
	h.Write([]byte(intakeDomain))
	h.Write(content)
	var d [sha256.Size]byte
	copy(d[:], h.Sum(nil))

	return scoring.SubScores{
		Skills:         intakeBase + spread(d, skillsOffset, intakeSpread),
		Certifications: intakeBase + spread(d, certsOffset, intakeSpread),
		Experience:     intakeBase + spread(d, expOffset, intakeSpread),
		Industry:       intakeBase + spread(d, industryOffset, intakeSpread),
	}
}

// spread maps two digest bytes at off onto [0, n).
func spread(d [sha256.Size]byte, off int, n int) int {
	return int(binary.BigEndian.Uint16(d[off:off+2])) % n
}
