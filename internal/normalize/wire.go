package normalize

import (
	"time"

	"github.com/jonathan/resume-builder/internal/types"
)

// WireDocument is the JSON representation exchanged with the persistence
// collaborator. It differs from the canonical shape in known, stable ways:
// camelCase keys, a Mongo-style "_id" identifier, the experience job title
// on the wire as "position", and the education institution as "school".
// The mapping is owned entirely by this package; nothing outside it may
// depend on wire field names.
type WireDocument struct {
	ID       string           `json:"_id,omitempty"`
	Title    string           `json:"title"`
	Personal WirePersonalInfo `json:"personalInfo"`
	Summary  string           `json:"summary"`
	Template string           `json:"template"`

	Experiences         []WireExperience    `json:"experiences"`
	Education           []WireEducation     `json:"education"`
	Skills              []WireSkill         `json:"skills"`
	Projects            []WireProject       `json:"projects"`
	Certifications      []WireCertification `json:"certifications"`
	Awards              []WireAward         `json:"awards"`
	Languages           []WireLanguage      `json:"languages"`
	Publications        []WirePublication   `json:"publications"`
	VolunteerExperience []WireVolunteer     `json:"volunteerExperience"`
	References          []WireReference     `json:"references"`

	LastUpdated time.Time `json:"lastUpdated"`
}

type WirePersonalInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin,omitempty"`
	Website  string `json:"website,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Twitter  string `json:"twitter,omitempty"`
	Headline string `json:"headline,omitempty"`
	Photo    string `json:"photo,omitempty"`
}

type WireExperience struct {
	ID          string `json:"id"`
	Position    string `json:"position"`
	Company     string `json:"company"`
	Location    string `json:"location,omitempty"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Current     bool   `json:"current"`
	Description string `json:"description,omitempty"`
}

type WireEducation struct {
	ID          string `json:"id"`
	School      string `json:"school"`
	Degree      string `json:"degree"`
	Field       string `json:"field,omitempty"`
	Location    string `json:"location,omitempty"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Current     bool   `json:"current"`
	GPA         string `json:"gpa,omitempty"`
	Description string `json:"description,omitempty"`
}

type WireSkill struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Level    string `json:"level"`
	Category string `json:"category"`
}

type WireProject struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	URL          string   `json:"url,omitempty"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Current      bool     `json:"current"`
}

type WireCertification struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Issuer       string `json:"issuer"`
	IssueDate    string `json:"issueDate"`
	ExpiryDate   string `json:"expiryDate,omitempty"`
	CredentialID string `json:"credentialId,omitempty"`
	URL          string `json:"url,omitempty"`
}

type WireAward struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Issuer      string `json:"issuer"`
	Date        string `json:"date"`
	Description string `json:"description,omitempty"`
}

type WireLanguage struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Proficiency string `json:"proficiency"`
}

type WirePublication struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Publisher   string `json:"publisher"`
	Date        string `json:"date"`
	URL         string `json:"url,omitempty"`
	Description string `json:"description,omitempty"`
}

type WireVolunteer struct {
	ID           string `json:"id"`
	Role         string `json:"role"`
	Organization string `json:"organization"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	Current      bool   `json:"current"`
	Description  string `json:"description,omitempty"`
}

type WireReference struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Relationship string `json:"relationship,omitempty"`
	Company      string `json:"company,omitempty"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
}

// ToWire serializes a canonical document into the collaborator's wire shape.
func ToWire(doc *types.ResumeDocument) *WireDocument {
	if doc == nil {
		return &WireDocument{}
	}
	w := &WireDocument{
		ID:          doc.ID,
		Title:       doc.Title,
		Summary:     doc.Summary,
		Template:    doc.Template,
		LastUpdated: doc.LastUpdated,
		Personal: WirePersonalInfo{
			FullName: doc.PersonalInfo.FullName,
			Email:    doc.PersonalInfo.Email,
			Phone:    doc.PersonalInfo.Phone,
			Location: doc.PersonalInfo.Location,
			LinkedIn: doc.PersonalInfo.LinkedIn,
			Website:  doc.PersonalInfo.Website,
			GitHub:   doc.PersonalInfo.GitHub,
			Twitter:  doc.PersonalInfo.Twitter,
			Headline: doc.PersonalInfo.Headline,
			Photo:    doc.PersonalInfo.Photo,
		},
	}

	w.Experiences = make([]WireExperience, 0, len(doc.Experiences))
	for _, e := range doc.Experiences {
		w.Experiences = append(w.Experiences, WireExperience{
			ID:          e.ID,
			Position:    e.Title,
			Company:     e.Company,
			Location:    e.Location,
			StartDate:   e.StartDate,
			EndDate:     e.EndDate,
			Current:     e.Current,
			Description: e.Description,
		})
	}

	w.Education = make([]WireEducation, 0, len(doc.Education))
	for _, e := range doc.Education {
		w.Education = append(w.Education, WireEducation{
			ID:          e.ID,
			School:      e.Institution,
			Degree:      e.Degree,
			Field:       e.Field,
			Location:    e.Location,
			StartDate:   e.StartDate,
			EndDate:     e.EndDate,
			Current:     e.Current,
			GPA:         e.GPA,
			Description: e.Description,
		})
	}

	w.Skills = make([]WireSkill, 0, len(doc.Skills))
	for _, s := range doc.Skills {
		w.Skills = append(w.Skills, WireSkill{
			ID:       s.ID,
			Name:     s.Name,
			Level:    string(s.Level),
			Category: s.Category,
		})
	}

	w.Projects = make([]WireProject, 0, len(doc.Projects))
	for _, p := range doc.Projects {
		w.Projects = append(w.Projects, WireProject{
			ID:           p.ID,
			Name:         p.Name,
			Description:  p.Description,
			Technologies: p.Technologies,
			URL:          p.URL,
			StartDate:    p.StartDate,
			EndDate:      p.EndDate,
			Current:      p.Current,
		})
	}

	w.Certifications = make([]WireCertification, 0, len(doc.Certifications))
	for _, c := range doc.Certifications {
		w.Certifications = append(w.Certifications, WireCertification{
			ID:           c.ID,
			Name:         c.Name,
			Issuer:       c.Issuer,
			IssueDate:    c.IssueDate,
			ExpiryDate:   c.ExpiryDate,
			CredentialID: c.CredentialID,
			URL:          c.URL,
		})
	}

	w.Awards = make([]WireAward, 0, len(doc.Awards))
	for _, a := range doc.Awards {
		w.Awards = append(w.Awards, WireAward{
			ID:          a.ID,
			Title:       a.Title,
			Issuer:      a.Issuer,
			Date:        a.Date,
			Description: a.Description,
		})
	}

	w.Languages = make([]WireLanguage, 0, len(doc.Languages))
	for _, l := range doc.Languages {
		w.Languages = append(w.Languages, WireLanguage{
			ID:          l.ID,
			Name:        l.Name,
			Proficiency: string(l.Proficiency),
		})
	}

	w.Publications = make([]WirePublication, 0, len(doc.Publications))
	for _, p := range doc.Publications {
		w.Publications = append(w.Publications, WirePublication{
			ID:          p.ID,
			Title:       p.Title,
			Publisher:   p.Publisher,
			Date:        p.Date,
			URL:         p.URL,
			Description: p.Description,
		})
	}

	w.VolunteerExperience = make([]WireVolunteer, 0, len(doc.VolunteerExperience))
	for _, v := range doc.VolunteerExperience {
		w.VolunteerExperience = append(w.VolunteerExperience, WireVolunteer{
			ID:           v.ID,
			Role:         v.Role,
			Organization: v.Organization,
			StartDate:    v.StartDate,
			EndDate:      v.EndDate,
			Current:      v.Current,
			Description:  v.Description,
		})
	}

	w.References = make([]WireReference, 0, len(doc.References))
	for _, r := range doc.References {
		w.References = append(w.References, WireReference{
			ID:           r.ID,
			Name:         r.Name,
			Relationship: r.Relationship,
			Company:      r.Company,
			Email:        r.Email,
			Phone:        r.Phone,
		})
	}

	return w
}

// FromWire maps a wire document back onto the canonical shape and runs the
// result through the same normalization pass as any other raw input, so a
// wire payload with missing ids or defaults still comes out complete.
func FromWire(w *WireDocument) *types.ResumeDocument {
	if w == nil {
		return Document(nil, "")
	}

	doc := &types.ResumeDocument{
		ID:          w.ID,
		Title:       w.Title,
		Summary:     w.Summary,
		Template:    w.Template,
		LastUpdated: w.LastUpdated,
		PersonalInfo: types.PersonalInfo{
			FullName: w.Personal.FullName,
			Email:    w.Personal.Email,
			Phone:    w.Personal.Phone,
			Location: w.Personal.Location,
			LinkedIn: w.Personal.LinkedIn,
			Website:  w.Personal.Website,
			GitHub:   w.Personal.GitHub,
			Twitter:  w.Personal.Twitter,
			Headline: w.Personal.Headline,
			Photo:    w.Personal.Photo,
		},
	}

	for _, e := range w.Experiences {
		doc.Experiences = append(doc.Experiences, types.Experience{
			ID:          e.ID,
			Title:       e.Position,
			Company:     e.Company,
			Location:    e.Location,
			StartDate:   e.StartDate,
			EndDate:     e.EndDate,
			Current:     e.Current,
			Description: e.Description,
		})
	}
	for _, e := range w.Education {
		doc.Education = append(doc.Education, types.Education{
			ID:          e.ID,
			Institution: e.School,
			Degree:      e.Degree,
			Field:       e.Field,
			Location:    e.Location,
			StartDate:   e.StartDate,
			EndDate:     e.EndDate,
			Current:     e.Current,
			GPA:         e.GPA,
			Description: e.Description,
		})
	}
	for _, s := range w.Skills {
		doc.Skills = append(doc.Skills, types.Skill{
			ID:       s.ID,
			Name:     s.Name,
			Level:    types.SkillLevel(s.Level),
			Category: s.Category,
		})
	}
	for _, p := range w.Projects {
		doc.Projects = append(doc.Projects, types.Project{
			ID:           p.ID,
			Name:         p.Name,
			Description:  p.Description,
			Technologies: p.Technologies,
			URL:          p.URL,
			StartDate:    p.StartDate,
			EndDate:      p.EndDate,
			Current:      p.Current,
		})
	}
	for _, c := range w.Certifications {
		doc.Certifications = append(doc.Certifications, types.Certification{
			ID:           c.ID,
			Name:         c.Name,
			Issuer:       c.Issuer,
			IssueDate:    c.IssueDate,
			ExpiryDate:   c.ExpiryDate,
			CredentialID: c.CredentialID,
			URL:          c.URL,
		})
	}
	for _, a := range w.Awards {
		doc.Awards = append(doc.Awards, types.Award{
			ID:          a.ID,
			Title:       a.Title,
			Issuer:      a.Issuer,
			Date:        a.Date,
			Description: a.Description,
		})
	}
	for _, l := range w.Languages {
		doc.Languages = append(doc.Languages, types.Language{
			ID:          l.ID,
			Name:        l.Name,
			Proficiency: types.LanguageProficiency(l.Proficiency),
		})
	}
	for _, p := range w.Publications {
		doc.Publications = append(doc.Publications, types.Publication{
			ID:          p.ID,
			Title:       p.Title,
			Publisher:   p.Publisher,
			Date:        p.Date,
			URL:         p.URL,
			Description: p.Description,
		})
	}
	for _, v := range w.VolunteerExperience {
		doc.VolunteerExperience = append(doc.VolunteerExperience, types.VolunteerExperience{
			ID:           v.ID,
			Role:         v.Role,
			Organization: v.Organization,
			StartDate:    v.StartDate,
			EndDate:      v.EndDate,
			Current:      v.Current,
			Description:  v.Description,
		})
	}
	for _, r := range w.References {
		doc.References = append(doc.References, types.Reference{
			ID:           r.ID,
			Name:         r.Name,
			Relationship: r.Relationship,
			Company:      r.Company,
			Email:        r.Email,
			Phone:        r.Phone,
		})
	}

	return Document(doc, "")
}
