// Package normalize reconciles heterogeneous raw resume input (legacy field
// names, missing ids, partial data) into the canonical types.ResumeDocument,
// and owns the bidirectional mapping between the canonical shape and the
// wire shape exchanged with the persistence collaborator. Alias handling
// lives here exclusively; the builder and renderer only ever see the
// canonical shape.
package normalize

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-builder/internal/types"
)

// rawDocument is the tolerant decode target for arbitrary input. It accepts
// both canonical and known legacy names for aliased fields; every field is
// optional.
type rawDocument struct {
	ID       string          `json:"id"`
	LegacyID string          `json:"_id"`
	Title    string          `json:"title"`
	Personal rawPersonalInfo `json:"personal_info"`
	Summary  string          `json:"summary"`
	Template string          `json:"template"`

	Experiences         []rawExperience             `json:"experiences"`
	Education           []rawEducation              `json:"education"`
	Skills              []types.Skill               `json:"skills"`
	Projects            []types.Project             `json:"projects"`
	Certifications      []types.Certification       `json:"certifications"`
	Awards              []types.Award               `json:"awards"`
	Languages           []types.Language            `json:"languages"`
	Publications        []types.Publication         `json:"publications"`
	VolunteerExperience []types.VolunteerExperience `json:"volunteer_experience"`
	References          []types.Reference           `json:"references"`

	LastUpdated time.Time `json:"last_updated"`
}

type rawPersonalInfo struct {
	types.PersonalInfo
	// Legacy payloads carry the display name under "name".
	LegacyName string `json:"name"`
}

type rawExperience struct {
	types.Experience
	// Legacy payloads carry the job title under "position".
	Position string `json:"position"`
}

type rawEducation struct {
	types.Education
	// Legacy payloads carry the institution under "school".
	School string `json:"school"`
}

// Document maps arbitrary raw input onto a complete canonical document. It
// never fails: undecodable input degrades to an empty document, every
// required field gets an empty default, every collection is non-nil, and
// every item missing an id gets a freshly generated one. The operation is
// idempotent: Document(Document(x), o) equals Document(x, o).
//
// templateOverride, when non-empty and known, takes precedence over any
// template embedded in the raw document; otherwise the embedded value is
// used when known, falling back to the fixed default.
func Document(raw any, templateOverride string) *types.ResumeDocument {
	rd := decode(raw)

	doc := &types.ResumeDocument{
		ID:          firstNonEmpty(rd.ID, rd.LegacyID),
		Title:       rd.Title,
		Summary:     rd.Summary,
		Template:    chooseTemplate(templateOverride, rd.Template),
		LastUpdated: rd.LastUpdated,
	}

	doc.PersonalInfo = rd.Personal.PersonalInfo
	if doc.PersonalInfo.FullName == "" {
		doc.PersonalInfo.FullName = rd.Personal.LegacyName
	}

	doc.Experiences = make([]types.Experience, 0, len(rd.Experiences))
	for _, re := range rd.Experiences {
		exp := re.Experience
		if exp.Title == "" {
			exp.Title = re.Position
		}
		exp.ID = ensureID(exp.ID)
		if exp.Current {
			exp.EndDate = ""
		}
		doc.Experiences = append(doc.Experiences, exp)
	}

	doc.Education = make([]types.Education, 0, len(rd.Education))
	for _, re := range rd.Education {
		edu := re.Education
		if edu.Institution == "" {
			edu.Institution = re.School
		}
		edu.ID = ensureID(edu.ID)
		if edu.Current {
			edu.EndDate = ""
		}
		doc.Education = append(doc.Education, edu)
	}

	doc.Skills = make([]types.Skill, 0, len(rd.Skills))
	for _, s := range rd.Skills {
		s.ID = ensureID(s.ID)
		if !s.Level.Valid() {
			s.Level = types.SkillIntermediate
		}
		doc.Skills = append(doc.Skills, s)
	}

	doc.Projects = make([]types.Project, 0, len(rd.Projects))
	for _, p := range rd.Projects {
		p.ID = ensureID(p.ID)
		if p.Current {
			p.EndDate = ""
		}
		doc.Projects = append(doc.Projects, p)
	}

	doc.Certifications = make([]types.Certification, 0, len(rd.Certifications))
	for _, c := range rd.Certifications {
		c.ID = ensureID(c.ID)
		doc.Certifications = append(doc.Certifications, c)
	}

	doc.Awards = make([]types.Award, 0, len(rd.Awards))
	for _, a := range rd.Awards {
		a.ID = ensureID(a.ID)
		doc.Awards = append(doc.Awards, a)
	}

	doc.Languages = make([]types.Language, 0, len(rd.Languages))
	for _, l := range rd.Languages {
		l.ID = ensureID(l.ID)
		if !l.Proficiency.Valid() {
			l.Proficiency = types.ProficiencyConversational
		}
		doc.Languages = append(doc.Languages, l)
	}

	doc.Publications = make([]types.Publication, 0, len(rd.Publications))
	for _, p := range rd.Publications {
		p.ID = ensureID(p.ID)
		doc.Publications = append(doc.Publications, p)
	}

	doc.VolunteerExperience = make([]types.VolunteerExperience, 0, len(rd.VolunteerExperience))
	for _, v := range rd.VolunteerExperience {
		v.ID = ensureID(v.ID)
		if v.Current {
			v.EndDate = ""
		}
		doc.VolunteerExperience = append(doc.VolunteerExperience, v)
	}

	doc.References = make([]types.Reference, 0, len(rd.References))
	for _, r := range rd.References {
		r.ID = ensureID(r.ID)
		doc.References = append(doc.References, r)
	}

	return doc
}

// decode coerces the supported raw input kinds into rawDocument. Anything
// that cannot be decoded yields the zero value rather than an error.
func decode(raw any) rawDocument {
	var rd rawDocument
	switch v := raw.(type) {
	case nil:
		return rd
	case *types.ResumeDocument:
		if v == nil {
			return rd
		}
		return decodeJSON(mustMarshal(v))
	case types.ResumeDocument:
		return decodeJSON(mustMarshal(v))
	case []byte:
		return decodeJSON(v)
	case json.RawMessage:
		return decodeJSON(v)
	case string:
		return decodeJSON([]byte(v))
	default:
		return decodeJSON(mustMarshal(v))
	}
}

func decodeJSON(data []byte) rawDocument {
	var rd rawDocument
	if len(data) == 0 {
		return rd
	}
	// Best effort: a failed decode keeps whatever fields parsed before the
	// failure, which still normalizes to a structurally complete document.
	_ = json.Unmarshal(data, &rd)
	return rd
}

func mustMarshal(v any) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return data
}

func chooseTemplate(override, embedded string) string {
	if override != "" && types.KnownTemplate(override) {
		return override
	}
	if types.KnownTemplate(embedded) {
		return embedded
	}
	return types.DefaultTemplate
}

func ensureID(id string) string {
	if id != "" {
		return id
	}
	return uuid.New().String()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
