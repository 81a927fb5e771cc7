//nolint:revive // types is a standard Go package name pattern
package types

// SkillLevel is the enumerated proficiency level of a Skill.
type SkillLevel string

const (
	SkillBeginner     SkillLevel = "Beginner"
	SkillIntermediate SkillLevel = "Intermediate"
	SkillAdvanced     SkillLevel = "Advanced"
	SkillExpert       SkillLevel = "Expert"
)

// Valid reports whether the level is one of the enumerated values.
func (l SkillLevel) Valid() bool {
	switch l {
	case SkillBeginner, SkillIntermediate, SkillAdvanced, SkillExpert:
		return true
	}
	return false
}

// LanguageProficiency is the enumerated proficiency level of a Language.
type LanguageProficiency string

const (
	ProficiencyBasic          LanguageProficiency = "Basic"
	ProficiencyConversational LanguageProficiency = "Conversational"
	ProficiencyFluent         LanguageProficiency = "Fluent"
	ProficiencyNative         LanguageProficiency = "Native"
)

// Valid reports whether the proficiency is one of the enumerated values.
func (p LanguageProficiency) Valid() bool {
	switch p {
	case ProficiencyBasic, ProficiencyConversational, ProficiencyFluent, ProficiencyNative:
		return true
	}
	return false
}

// Template name constants. Templates are selected purely by the document's
// Template field; adding a template means adding a case to the render
// package's dispatch table, never changing this contract.
const (
	TemplateModern  = "modern"
	TemplateClassic = "classic"
	TemplateMinimal = "minimal"
	TemplateCompact = "compact"
)

// DefaultTemplate is used when neither the caller nor the raw document
// supplies a template name.
const DefaultTemplate = TemplateModern

// KnownTemplate reports whether name is one of the fixed template strategies.
func KnownTemplate(name string) bool {
	switch name {
	case TemplateModern, TemplateClassic, TemplateMinimal, TemplateCompact:
		return true
	}
	return false
}
