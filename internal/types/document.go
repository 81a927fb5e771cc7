// Package types provides type definitions for structured data used throughout the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// ResumeDocument is the canonical in-memory resume model. All editing,
// rendering, and export components operate on this shape; the wire shape
// exchanged with the persistence collaborator is mapped by the normalize
// package.
type ResumeDocument struct {
	// ID is the server-assigned identifier. Empty until the first
	// successful save; its presence decides create vs update.
	ID           string       `json:"id,omitempty"`
	Title        string       `json:"title"`
	PersonalInfo PersonalInfo `json:"personal_info"`
	Summary      string       `json:"summary"`
	Template     string       `json:"template"`

	Experiences         []Experience          `json:"experiences"`
	Education           []Education           `json:"education"`
	Skills              []Skill               `json:"skills"`
	Projects            []Project             `json:"projects"`
	Certifications      []Certification       `json:"certifications"`
	Awards              []Award               `json:"awards"`
	Languages           []Language            `json:"languages"`
	Publications        []Publication         `json:"publications"`
	VolunteerExperience []VolunteerExperience `json:"volunteer_experience"`
	References          []Reference           `json:"references"`

	LastUpdated time.Time `json:"last_updated"`
}

// PersonalInfo holds the contact header of a resume. FullName and Email are
// required before export; the remaining fields are optional.
type PersonalInfo struct {
	FullName string `json:"full_name"`
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

// Experience represents a single work-history entry.
type Experience struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location,omitempty"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Current     bool   `json:"current"`
	Description string `json:"description,omitempty"`
}

// Education represents a degree or other formal education entry.
type Education struct {
	ID          string `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field,omitempty"`
	Location    string `json:"location,omitempty"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Current     bool   `json:"current"`
	GPA         string `json:"gpa,omitempty"`
	Description string `json:"description,omitempty"`
}

// Skill represents a single named skill with a proficiency level and a
// free-text display category (no referential integrity to any category table).
type Skill struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Level    SkillLevel `json:"level"`
	Category string     `json:"category"`
}

// Project represents a personal or professional project entry.
type Project struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	URL          string   `json:"url,omitempty"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
	Current      bool     `json:"current"`
}

// Certification represents a professional certification entry.
type Certification struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Issuer       string `json:"issuer"`
	IssueDate    string `json:"issue_date"`
	ExpiryDate   string `json:"expiry_date,omitempty"`
	CredentialID string `json:"credential_id,omitempty"`
	URL          string `json:"url,omitempty"`
}

// Award represents an award or honor entry.
type Award struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Issuer      string `json:"issuer"`
	Date        string `json:"date"`
	Description string `json:"description,omitempty"`
}

// Language represents a spoken language with a proficiency level.
type Language struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Proficiency LanguageProficiency `json:"proficiency"`
}

// Publication represents a published article, paper, or book entry.
type Publication struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Publisher   string `json:"publisher"`
	Date        string `json:"date"`
	URL         string `json:"url,omitempty"`
	Description string `json:"description,omitempty"`
}

// VolunteerExperience represents an unpaid role entry.
type VolunteerExperience struct {
	ID           string `json:"id"`
	Role         string `json:"role"`
	Organization string `json:"organization"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Current      bool   `json:"current"`
	Description  string `json:"description,omitempty"`
}

// Reference represents a professional reference contact.
type Reference struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Relationship string `json:"relationship,omitempty"`
	Company      string `json:"company,omitempty"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
}

// GetID implementations let the builder address items generically by their
// immutable identity rather than by positional index.

func (e Experience) GetID() string          { return e.ID }
func (e Education) GetID() string           { return e.ID }
func (s Skill) GetID() string               { return s.ID }
func (p Project) GetID() string             { return p.ID }
func (c Certification) GetID() string       { return c.ID }
func (a Award) GetID() string               { return a.ID }
func (l Language) GetID() string            { return l.ID }
func (p Publication) GetID() string         { return p.ID }
func (v VolunteerExperience) GetID() string { return v.ID }
func (r Reference) GetID() string           { return r.ID }
