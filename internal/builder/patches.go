package builder

import "github.com/jonathan/resume-builder/internal/types"

// Patch types carry partial updates: nil fields are left untouched, set
// fields are shallow-merged onto the target item. One well-typed patch per
// collection keeps an update against the wrong collection a compile error
// rather than a silent no-op. The same types double as the optional
// overrides accepted by the Add operations.

// String returns a pointer to v for use in patch literals.
func String(v string) *string { return &v }

// Bool returns a pointer to v for use in patch literals.
func Bool(v bool) *bool { return &v }

// Level returns a pointer to v for use in SkillPatch literals.
func Level(v types.SkillLevel) *types.SkillLevel { return &v }

// Proficiency returns a pointer to v for use in LanguagePatch literals.
func Proficiency(v types.LanguageProficiency) *types.LanguageProficiency { return &v }

// PersonalInfoPatch is a partial update of the personal info section.
type PersonalInfoPatch struct {
	FullName *string
	Email    *string
	Phone    *string
	Location *string
	LinkedIn *string
	Website  *string
	GitHub   *string
	Twitter  *string
	Headline *string
	Photo    *string
}

func (p PersonalInfoPatch) apply(pi *types.PersonalInfo) {
	setStr(&pi.FullName, p.FullName)
	setStr(&pi.Email, p.Email)
	setStr(&pi.Phone, p.Phone)
	setStr(&pi.Location, p.Location)
	setStr(&pi.LinkedIn, p.LinkedIn)
	setStr(&pi.Website, p.Website)
	setStr(&pi.GitHub, p.GitHub)
	setStr(&pi.Twitter, p.Twitter)
	setStr(&pi.Headline, p.Headline)
	setStr(&pi.Photo, p.Photo)
}

// ExperiencePatch is a partial update of an Experience item.
type ExperiencePatch struct {
	Title       *string
	Company     *string
	Location    *string
	StartDate   *string
	EndDate     *string
	Current     *bool
	Description *string
}

func (p ExperiencePatch) apply(e *types.Experience) {
	setStr(&e.Title, p.Title)
	setStr(&e.Company, p.Company)
	setStr(&e.Location, p.Location)
	setStr(&e.StartDate, p.StartDate)
	setStr(&e.EndDate, p.EndDate)
	setBool(&e.Current, p.Current)
	setStr(&e.Description, p.Description)
	if e.Current {
		e.EndDate = ""
	}
}

// EducationPatch is a partial update of an Education item.
type EducationPatch struct {
	Institution *string
	Degree      *string
	Field       *string
	Location    *string
	StartDate   *string
	EndDate     *string
	Current     *bool
	GPA         *string
	Description *string
}

func (p EducationPatch) apply(e *types.Education) {
	setStr(&e.Institution, p.Institution)
	setStr(&e.Degree, p.Degree)
	setStr(&e.Field, p.Field)
	setStr(&e.Location, p.Location)
	setStr(&e.StartDate, p.StartDate)
	setStr(&e.EndDate, p.EndDate)
	setBool(&e.Current, p.Current)
	setStr(&e.GPA, p.GPA)
	setStr(&e.Description, p.Description)
	if e.Current {
		e.EndDate = ""
	}
}

// SkillPatch is a partial update of a Skill item.
type SkillPatch struct {
	Name     *string
	Level    *types.SkillLevel
	Category *string
}

func (p SkillPatch) apply(s *types.Skill) {
	setStr(&s.Name, p.Name)
	if p.Level != nil && p.Level.Valid() {
		s.Level = *p.Level
	}
	setStr(&s.Category, p.Category)
}

// ProjectPatch is a partial update of a Project item. A non-nil
// Technologies slice replaces the existing list wholesale.
type ProjectPatch struct {
	Name         *string
	Description  *string
	Technologies []string
	URL          *string
	StartDate    *string
	EndDate      *string
	Current      *bool
}

func (p ProjectPatch) apply(pr *types.Project) {
	setStr(&pr.Name, p.Name)
	setStr(&pr.Description, p.Description)
	if p.Technologies != nil {
		pr.Technologies = append([]string(nil), p.Technologies...)
	}
	setStr(&pr.URL, p.URL)
	setStr(&pr.StartDate, p.StartDate)
	setStr(&pr.EndDate, p.EndDate)
	setBool(&pr.Current, p.Current)
	if pr.Current {
		pr.EndDate = ""
	}
}

// CertificationPatch is a partial update of a Certification item.
type CertificationPatch struct {
	Name         *string
	Issuer       *string
	IssueDate    *string
	ExpiryDate   *string
	CredentialID *string
	URL          *string
}

func (p CertificationPatch) apply(c *types.Certification) {
	setStr(&c.Name, p.Name)
	setStr(&c.Issuer, p.Issuer)
	setStr(&c.IssueDate, p.IssueDate)
	setStr(&c.ExpiryDate, p.ExpiryDate)
	setStr(&c.CredentialID, p.CredentialID)
	setStr(&c.URL, p.URL)
}

// AwardPatch is a partial update of an Award item.
type AwardPatch struct {
	Title       *string
	Issuer      *string
	Date        *string
	Description *string
}

func (p AwardPatch) apply(a *types.Award) {
	setStr(&a.Title, p.Title)
	setStr(&a.Issuer, p.Issuer)
	setStr(&a.Date, p.Date)
	setStr(&a.Description, p.Description)
}

// LanguagePatch is a partial update of a Language item.
type LanguagePatch struct {
	Name        *string
	Proficiency *types.LanguageProficiency
}

func (p LanguagePatch) apply(l *types.Language) {
	setStr(&l.Name, p.Name)
	if p.Proficiency != nil && p.Proficiency.Valid() {
		l.Proficiency = *p.Proficiency
	}
}

// PublicationPatch is a partial update of a Publication item.
type PublicationPatch struct {
	Title       *string
	Publisher   *string
	Date        *string
	URL         *string
	Description *string
}

func (p PublicationPatch) apply(pub *types.Publication) {
	setStr(&pub.Title, p.Title)
	setStr(&pub.Publisher, p.Publisher)
	setStr(&pub.Date, p.Date)
	setStr(&pub.URL, p.URL)
	setStr(&pub.Description, p.Description)
}

// VolunteerPatch is a partial update of a VolunteerExperience item.
type VolunteerPatch struct {
	Role         *string
	Organization *string
	StartDate    *string
	EndDate      *string
	Current      *bool
	Description  *string
}

func (p VolunteerPatch) apply(v *types.VolunteerExperience) {
	setStr(&v.Role, p.Role)
	setStr(&v.Organization, p.Organization)
	setStr(&v.StartDate, p.StartDate)
	setStr(&v.EndDate, p.EndDate)
	setBool(&v.Current, p.Current)
	setStr(&v.Description, p.Description)
	if v.Current {
		v.EndDate = ""
	}
}

// ReferencePatch is a partial update of a Reference item.
type ReferencePatch struct {
	Name         *string
	Relationship *string
	Company      *string
	Email        *string
	Phone        *string
}

func (p ReferencePatch) apply(r *types.Reference) {
	setStr(&r.Name, p.Name)
	setStr(&r.Relationship, p.Relationship)
	setStr(&r.Company, p.Company)
	setStr(&r.Email, p.Email)
	setStr(&r.Phone, p.Phone)
}

func setStr(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}
