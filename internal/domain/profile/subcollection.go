package profile

import "github.com/google/uuid"

// Sub-collection edits are pure in-memory operations on the aggregate.
// New entries always go to the head so both lists stay newest-first;
// removal is by assigned identity and silently ignores an unmatched id
// (the historical contract: removing index -1 removed nothing).

// AddExperience assigns a fresh identity to e and prepends it, returning
// the entry as stored.
func (p *Profile) AddExperience(e Experience) Experience {
	e.ID = uuid.New()
	p.Experience = append([]Experience{e}, p.Experience...)
	return e
}

// RemoveExperience deletes the first entry with the given id. Unmatched
// ids leave the list unchanged.
func (p *Profile) RemoveExperience(id uuid.UUID) {
	for i, e := range p.Experience {
		if e.ID == id {
			p.Experience = append(p.Experience[:i:i], p.Experience[i+1:]...)
			return
		}
	}
}

// AddEducation assigns a fresh identity to e and prepends it, returning
// the entry as stored.
func (p *Profile) AddEducation(e Education) Education {
	e.ID = uuid.New()
	p.Education = append([]Education{e}, p.Education...)
	return e
}

// RemoveEducation deletes the first entry with the given id. Unmatched
// ids leave the list unchanged.
func (p *Profile) RemoveEducation(id uuid.UUID) {
	for i, e := range p.Education {
		if e.ID == id {
			p.Education = append(p.Education[:i:i], p.Education[i+1:]...)
			return
		}
	}
}
