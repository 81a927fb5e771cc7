package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/types"
)

func TestDocument_EmptyInputYieldsCompleteDocument(t *testing.T) {
	for _, raw := range []any{nil, map[string]any{}, "{}", []byte("{}")} {
		doc := Document(raw, "")
		require.NotNil(t, doc)
		assert.Empty(t, doc.PersonalInfo.FullName)
		assert.Empty(t, doc.PersonalInfo.Email)
		assert.Equal(t, types.DefaultTemplate, doc.Template)
		assert.NotNil(t, doc.Experiences)
		assert.Empty(t, doc.Experiences)
		assert.NotNil(t, doc.Education)
		assert.NotNil(t, doc.Skills)
		assert.NotNil(t, doc.Projects)
		assert.NotNil(t, doc.Certifications)
		assert.NotNil(t, doc.Awards)
		assert.NotNil(t, doc.Languages)
		assert.NotNil(t, doc.Publications)
		assert.NotNil(t, doc.VolunteerExperience)
		assert.NotNil(t, doc.References)
	}
}

func TestDocument_NeverPanicsOnGarbage(t *testing.T) {
	for _, raw := range []any{"not json", []byte("[1,2,3]"), 42, true, `{"experiences": "wat"}`} {
		assert.NotPanics(t, func() {
			doc := Document(raw, "")
			require.NotNil(t, doc)
			assert.Equal(t, types.DefaultTemplate, doc.Template)
		})
	}
}

func TestDocument_GeneratesMissingIDs(t *testing.T) {
	doc := Document(map[string]any{
		"experiences": []map[string]any{
			{"title": "Engineer"},
			{"id": "keep-me", "title": "Manager"},
		},
		"skills": []map[string]any{{"name": "Go"}},
	}, "")

	require.Len(t, doc.Experiences, 2)
	assert.NotEmpty(t, doc.Experiences[0].ID)
	assert.Equal(t, "keep-me", doc.Experiences[1].ID)
	require.Len(t, doc.Skills, 1)
	assert.NotEmpty(t, doc.Skills[0].ID)
}

func TestDocument_ReconcilesFieldAliases(t *testing.T) {
	doc := Document(map[string]any{
		"_id": "legacy-7",
		"personal_info": map[string]any{
			"name": "Old Name Key",
		},
		"experiences": []map[string]any{
			{"id": "e1", "position": "Engineer", "company": "Acme"},
			{"id": "e2", "title": "Manager", "position": "ignored"},
		},
		"education": []map[string]any{
			{"id": "ed1", "school": "MIT", "degree": "BSc"},
		},
	}, "")

	assert.Equal(t, "legacy-7", doc.ID)
	assert.Equal(t, "Old Name Key", doc.PersonalInfo.FullName)
	assert.Equal(t, "Engineer", doc.Experiences[0].Title)
	assert.Equal(t, "Manager", doc.Experiences[1].Title, "canonical key wins over the alias")
	assert.Equal(t, "MIT", doc.Education[0].Institution)
}

func TestDocument_Idempotence(t *testing.T) {
	raws := []any{
		map[string]any{},
		map[string]any{
			"title": "CV",
			"personal_info": map[string]any{
				"full_name": "Jane",
				"email":     "jane@example.com",
			},
			"template": "classic",
			"experiences": []map[string]any{
				{"position": "Engineer", "company": "Acme", "current": true, "end_date": "2024-01"},
			},
			"skills":    []map[string]any{{"name": "Go", "level": "Expert", "category": "Backend"}},
			"languages": []map[string]any{{"name": "French"}},
		},
	}
	for _, raw := range raws {
		once := Document(raw, "")
		twice := Document(once, "")
		assert.Equal(t, once, twice, "normalize must be idempotent")
	}
}

func TestDocument_CurrentClearsEndDate(t *testing.T) {
	doc := Document(map[string]any{
		"experiences": []map[string]any{
			{"id": "e1", "title": "Engineer", "current": true, "end_date": "2024-01"},
		},
	}, "")
	require.Len(t, doc.Experiences, 1)
	assert.True(t, doc.Experiences[0].Current)
	assert.Empty(t, doc.Experiences[0].EndDate)
}

func TestDocument_InvalidEnumsFallBack(t *testing.T) {
	doc := Document(map[string]any{
		"skills":    []map[string]any{{"id": "s1", "name": "Go", "level": "Wizard"}},
		"languages": []map[string]any{{"id": "l1", "name": "French", "proficiency": "Perfect"}},
	}, "")
	assert.Equal(t, types.SkillIntermediate, doc.Skills[0].Level)
	assert.Equal(t, types.ProficiencyConversational, doc.Languages[0].Proficiency)
}

func TestDocument_TemplateSelection(t *testing.T) {
	tests := []struct {
		name     string
		embedded string
		override string
		want     string
	}{
		{"override wins over embedded", "classic", "minimal", "minimal"},
		{"embedded used without override", "classic", "", "classic"},
		{"default without either", "", "", types.DefaultTemplate},
		{"unknown embedded falls back", "sparkly", "", types.DefaultTemplate},
		{"unknown override ignored", "classic", "sparkly", "classic"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := map[string]any{}
			if tt.embedded != "" {
				raw["template"] = tt.embedded
			}
			doc := Document(raw, tt.override)
			assert.Equal(t, tt.want, doc.Template)
		})
	}
}
