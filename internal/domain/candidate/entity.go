package candidate

// Candidate is a profile plus its score and rank attributes.
type Candidate struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Title      string  `json:"title"`
	Location   string  `json:"location"`
	Company    *string `json:"company"`
	Experience *string `json:"experience"`
	ImageURL   *string `json:"imageUrl"`
	Email      *string `json:"email,omitempty"`

	OverallScore        int `json:"overallScore"`
	SkillsScore         int `json:"skillsScore"`
	CertificationsScore int `json:"certificationsScore"`
	ExperienceScore     int `json:"experienceScore"`
	IndustryScore       int `json:"industryScore"`

	GlobalRank   *int `json:"globalRank"`
	RegionalRank *int `json:"regionalRank"`
	IndustryRank *int `json:"industryRank"`

	Skills   []string `json:"skills"`
	Badge    *string  `json:"badge"`
	Region   string   `json:"region"`
	Industry string   `json:"industry"`
}

// Clone returns a deep copy so callers never share pointers with the store.
func (c Candidate) Clone() Candidate {
	out := c
	out.Company = cloneString(c.Company)
	out.Experience = cloneString(c.Experience)
	out.ImageURL = cloneString(c.ImageURL)
	out.Email = cloneString(c.Email)
	out.Badge = cloneString(c.Badge)
	out.GlobalRank = cloneInt(c.GlobalRank)
	out.RegionalRank = cloneInt(c.RegionalRank)
	out.IndustryRank = cloneInt(c.IndustryRank)
	out.Skills = make([]string, len(c.Skills))
	copy(out.Skills, c.Skills)
	return out
}

// NewCandidate holds the client-settable fields of a candidate. Ranks and the
// overall score are derived by the store.
type NewCandidate struct {
	Name                string
	Title               string
	Location            string
	Company             *string
	Experience          *string
	ImageURL            *string
	Email               *string
	SkillsScore         int
	CertificationsScore int
	ExperienceScore     int
	IndustryScore       int
	Skills              []string
	Badge               *string
	Region              string
	Industry            string
}

// Patch is a shallow partial update. Nil fields are left untouched.
type Patch struct {
	Name                *string
	Title               *string
	Location            *string
	Company             *string
	Experience          *string
	ImageURL            *string
	SkillsScore         *int
	CertificationsScore *int
	ExperienceScore     *int
	IndustryScore       *int
	Skills              []string
	Badge               *string
	Region              *string
	Industry            *string
}

// IsEmpty reports whether the patch carries no field at all.
func (p Patch) IsEmpty() bool {
	return p.Name == nil && p.Title == nil && p.Location == nil && p.Company == nil &&
		p.Experience == nil && p.ImageURL == nil && p.SkillsScore == nil &&
		p.CertificationsScore == nil && p.ExperienceScore == nil && p.IndustryScore == nil &&
		p.Skills == nil && p.Badge == nil && p.Region == nil && p.Industry == nil
}

// Apply merges the patch onto c. The overall score is intentionally not
// recomputed when sub-scores change.
func (p Patch) Apply(c *Candidate) {
	if c == nil {
		return
	}
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Title != nil {
		c.Title = *p.Title
	}
	if p.Location != nil {
		c.Location = *p.Location
	}
	if p.Company != nil {
		c.Company = cloneString(p.Company)
	}
	if p.Experience != nil {
		c.Experience = cloneString(p.Experience)
	}
	if p.ImageURL != nil {
		c.ImageURL = cloneString(p.ImageURL)
	}
	if p.SkillsScore != nil {
		c.SkillsScore = *p.SkillsScore
	}
	if p.CertificationsScore != nil {
		c.CertificationsScore = *p.CertificationsScore
	}
	if p.ExperienceScore != nil {
		c.ExperienceScore = *p.ExperienceScore
	}
	if p.IndustryScore != nil {
		c.IndustryScore = *p.IndustryScore
	}
	if p.Skills != nil {
		c.Skills = make([]string, len(p.Skills))
		copy(c.Skills, p.Skills)
	}
	if p.Badge != nil {
		c.Badge = cloneString(p.Badge)
	}
	if p.Region != nil {
		c.Region = *p.Region
	}
	if p.Industry != nil {
		c.Industry = *p.Industry
	}
}

// WithRank is a leaderboard row: a candidate plus its percentile in scope.
type WithRank struct {
	Candidate
	Percentile int `json:"percentile"`
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneInt(i *int) *int {
	if i == nil {
		return nil
	}
	v := *i
	return &v
}
