package normalize

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/types"
)

func sampleDocument() *types.ResumeDocument {
	return Document(&types.ResumeDocument{
		ID:    "srv-9",
		Title: "My Resume",
		PersonalInfo: types.PersonalInfo{
			FullName: "Jane Doe",
			Email:    "jane@example.com",
			Phone:    "+1 555 0100",
			Location: "Berlin",
		},
		Template: types.TemplateClassic,
		Experiences: []types.Experience{
			{ID: "e1", Title: "Engineer", Company: "Acme", StartDate: "2020-01", EndDate: "2023-05"},
		},
		Education: []types.Education{
			{ID: "ed1", Institution: "MIT", Degree: "BSc", StartDate: "2014-09", EndDate: "2018-06"},
		},
		Skills: []types.Skill{
			{ID: "s1", Name: "Go", Level: types.SkillExpert, Category: "Backend"},
		},
		Languages: []types.Language{
			{ID: "l1", Name: "German", Proficiency: types.ProficiencyFluent},
		},
		LastUpdated: time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC),
	}, "")
}

func TestToWire_FieldRenames(t *testing.T) {
	doc := sampleDocument()
	w := ToWire(doc)

	require.Len(t, w.Experiences, 1)
	assert.Equal(t, "Engineer", w.Experiences[0].Position)
	require.Len(t, w.Education, 1)
	assert.Equal(t, "MIT", w.Education[0].School)
	assert.Equal(t, "srv-9", w.ID)

	payload, err := json.Marshal(w)
	require.NoError(t, err)
	assert.Contains(t, string(payload), `"position":"Engineer"`)
	assert.Contains(t, string(payload), `"school":"MIT"`)
	assert.Contains(t, string(payload), `"_id":"srv-9"`)
	assert.Contains(t, string(payload), `"personalInfo"`)
	assert.NotContains(t, string(payload), `"institution"`)
}

func TestFromWire_RoundTrip(t *testing.T) {
	doc := sampleDocument()
	back := FromWire(ToWire(doc))
	assert.Equal(t, doc, back)
}

func TestFromWire_FillsDefaults(t *testing.T) {
	back := FromWire(&WireDocument{
		Title: "Sparse",
		Experiences: []WireExperience{
			{Position: "Engineer"},
		},
	})
	assert.Equal(t, types.DefaultTemplate, back.Template)
	require.Len(t, back.Experiences, 1)
	assert.Equal(t, "Engineer", back.Experiences[0].Title)
	assert.NotEmpty(t, back.Experiences[0].ID, "wire items without ids get fresh ones")
	assert.NotNil(t, back.Skills)
}

func TestFromWire_Nil(t *testing.T) {
	back := FromWire(nil)
	require.NotNil(t, back)
	assert.Equal(t, types.DefaultTemplate, back.Template)
}
