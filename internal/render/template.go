package render

import (
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// RootID is the id of the stable root node every template must emit; the
// export pipeline locates the rendered tree by this id.
const RootID = "resume-root"

// Template is the polymorphic rendering contract. A strategy is a pure
// function from document to HTML: it must render every populated section
// (empty sections may be omitted, populated ones never) and wrap its output
// in a root node carrying RootID.
type Template interface {
	Name() string
	Render(doc *types.ResumeDocument) (string, error)
}

//go:embed templates/*.html.tmpl
var templateFS embed.FS

// registry is the fixed dispatch table. Adding a template means adding an
// entry here; the contract itself never changes.
var registry = map[string]Template{
	types.TemplateModern:  mustParse(types.TemplateModern),
	types.TemplateClassic: mustParse(types.TemplateClassic),
	types.TemplateMinimal: mustParse(types.TemplateMinimal),
	types.TemplateCompact: mustParse(types.TemplateCompact),
}

// Names returns the registered template names.
func Names() []string {
	return []string{types.TemplateModern, types.TemplateClassic, types.TemplateMinimal, types.TemplateCompact}
}

// ForName returns the registered strategy for name.
func ForName(name string) (Template, bool) {
	t, ok := registry[name]
	return t, ok
}

// ForDocument selects the strategy named by the document's template field,
// falling back to the default template for unknown names.
func ForDocument(doc *types.ResumeDocument) Template {
	if t, ok := registry[doc.Template]; ok {
		return t
	}
	return registry[types.DefaultTemplate]
}

// Render projects the document through its selected template strategy.
func Render(doc *types.ResumeDocument) (string, error) {
	return ForDocument(doc).Render(doc)
}

// templateData is the projection handed to every template. SkillGroups is
// derived from current skill data on each render and never cached.
type templateData struct {
	RootID string
	Doc    *types.ResumeDocument
	Skills []SkillGroup
}

type htmlTemplate struct {
	name string
	tmpl *template.Template
}

func (t *htmlTemplate) Name() string { return t.name }

func (t *htmlTemplate) Render(doc *types.ResumeDocument) (string, error) {
	if doc == nil {
		return "", &TemplateError{Template: t.name, Message: "nil document"}
	}

	data := templateData{
		RootID: RootID,
		Doc:    doc,
		Skills: GroupSkills(doc.Skills),
	}

	var sb strings.Builder
	if err := t.tmpl.Execute(&sb, data); err != nil {
		return "", &TemplateError{Template: t.name, Message: "failed to execute template", Cause: err}
	}
	return sb.String(), nil
}

func mustParse(name string) Template {
	tmpl, err := template.New(name+".html.tmpl").Funcs(template.FuncMap{
		"dateRange": dateRange,
		"join":      func(items []string) string { return strings.Join(items, ", ") },
	}).ParseFS(templateFS, "templates/"+name+".html.tmpl")
	if err != nil {
		panic(fmt.Sprintf("render: failed to parse built-in template %s: %v", name, err))
	}
	return &htmlTemplate{name: name, tmpl: tmpl}
}

// dateRange formats a temporal item's period for display.
func dateRange(start, end string, current bool) string {
	switch {
	case current && start != "":
		return start + " – Present"
	case current:
		return "Present"
	case start != "" && end != "":
		return start + " – " + end
	case start != "":
		return start
	default:
		return end
	}
}
