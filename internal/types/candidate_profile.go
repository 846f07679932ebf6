package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// CandidateProfile represents a structured resume produced by an external
// resume parser (LLM-based or regex fallback). Any field may be empty or
// partially populated; the scoring engine substitutes documented defaults.
type CandidateProfile struct {
	ID         uuid.UUID         `json:"id,omitempty"`
	Name       string            `json:"name"`
	Summary    string            `json:"summary,omitempty"`
	Skills     []string          `json:"skills"`
	Experience []ExperienceEntry `json:"experience"`
	Education  []EducationEntry  `json:"education"`

	// AuthenticityScore is supplied by an external content-authenticity
	// detector. Nil means the detector did not run; ranking substitutes 0.5.
	AuthenticityScore *float64 `json:"authenticity_score,omitempty"`
}

// ExperienceEntry represents a single position on a resume. Either Duration
// or the StartDate/EndDate pair carries the time span; both are free text.
// EndDate may be empty or a present-tense marker ("present"/"current").
type ExperienceEntry struct {
	Title       string `json:"title"`
	Company     string `json:"company,omitempty"`
	Description string `json:"description,omitempty"`
	Duration    string `json:"duration,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
}

// EducationEntry represents a single education record. Only the degree text
// participates in scoring; the remaining fields are carried for display.
type EducationEntry struct {
	Degree         string `json:"degree"`
	Institution    string `json:"institution,omitempty"`
	Field          string `json:"field,omitempty"`
	GraduationDate string `json:"graduation_date,omitempty"`
}

// Validate validates the CandidateProfile using the validator.
func (c *CandidateProfile) Validate() error {
	validate := validator.New()
	return validate.Struct(struct {
		Name              string   `validate:"required,min=1"`
		AuthenticityScore *float64 `validate:"omitempty,gte=0,lte=1"`
	}{Name: c.Name, AuthenticityScore: c.AuthenticityScore})
}

// EnsureID assigns a fresh UUID when the profile arrived without one.
func (c *CandidateProfile) EnsureID() {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
}

// LowerSkills returns the candidate's skills lower-cased and trimmed,
// with empty entries dropped.
func (c *CandidateProfile) LowerSkills() []string {
	skills := make([]string, 0, len(c.Skills))
	for _, skill := range c.Skills {
		lower := strings.ToLower(strings.TrimSpace(skill))
		if lower != "" {
			skills = append(skills, lower)
		}
	}
	return skills
}
