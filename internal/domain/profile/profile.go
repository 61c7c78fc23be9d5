package profile

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Social holds the fixed set of known social links. Absent keys are omitted
// from JSON rather than serialized as null.
type Social struct {
	Youtube   string `json:"youtube,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Linkedin  string `json:"linkedin,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

type Experience struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    string     `json:"location,omitempty"`
	From        time.Time  `json:"from"`
	To          *time.Time `json:"to,omitempty"`
	Current     bool       `json:"current"`
	Description string     `json:"description,omitempty"`
}

type Education struct {
	ID           uuid.UUID  `json:"id"`
	School       string     `json:"school"`
	Degree       string     `json:"degree"`
	FieldOfStudy string     `json:"fieldofstudy"`
	From         time.Time  `json:"from"`
	To           *time.Time `json:"to,omitempty"`
	Current      bool       `json:"current"`
	Description  string     `json:"description,omitempty"`
}

// Profile is the aggregate root. There is at most one per owner; the
// experience and education lists are ordered newest-first and are only
// ever edited through the aggregate.
type Profile struct {
	OwnerID        uuid.UUID    `json:"owner_id"`
	Company        string       `json:"company,omitempty"`
	Website        string       `json:"website,omitempty"`
	Location       string       `json:"location,omitempty"`
	Bio            string       `json:"bio,omitempty"`
	Status         string       `json:"status,omitempty"`
	GithubUsername string       `json:"githubusername,omitempty"`
	Image          string       `json:"image,omitempty"`
	Skills         []string     `json:"skills"`
	Social         Social       `json:"social"`
	Experience     []Experience `json:"experience"`
	Education      []Education  `json:"education"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

func (e *Experience) Validate() error {
	var missing []string
	if e.Title == "" {
		missing = append(missing, "title")
	}
	if e.Company == "" {
		missing = append(missing, "company")
	}
	if e.From.IsZero() {
		missing = append(missing, "from")
	}
	if len(missing) > 0 {
		return errors.New("required fields missing: " + strings.Join(missing, ", "))
	}
	return nil
}

func (e *Education) Validate() error {
	var missing []string
	if e.School == "" {
		missing = append(missing, "school")
	}
	if e.Degree == "" {
		missing = append(missing, "degree")
	}
	if e.FieldOfStudy == "" {
		missing = append(missing, "fieldofstudy")
	}
	if e.From.IsZero() {
		missing = append(missing, "from")
	}
	if len(missing) > 0 {
		return errors.New("required fields missing: " + strings.Join(missing, ", "))
	}
	return nil
}

// ParseSkills splits a comma-delimited skills string, trimming whitespace
// from each element. Input order is preserved; empty elements are dropped.
func ParseSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}

type Repository interface {
	// GetByOwner returns the profile for an owner or a not-found error.
	// It never creates one implicitly.
	GetByOwner(ctx context.Context, ownerID uuid.UUID) (*Profile, error)
	ListAll(ctx context.Context) ([]*Profile, error)
	// Upsert writes the whole document: insert when absent, full replace
	// when present. Merging of partial input happens in the use case
	// before the write, so the document write is last-write-wins.
	Upsert(ctx context.Context, p *Profile) error
	DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error
}
