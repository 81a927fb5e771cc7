package builder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/normalize"
	"github.com/jonathan/resume-builder/internal/storage"
	"github.com/jonathan/resume-builder/internal/types"
)

// fakeStore records collaborator calls and can be programmed to fail.
type fakeStore struct {
	fetchDoc   *normalize.WireDocument
	fetchErr   error
	createErr  error
	updateErr  error
	creates    int
	updates    int
	assignedID string
}

func (f *fakeStore) Fetch(_ context.Context) (*normalize.WireDocument, error) {
	return f.fetchDoc, f.fetchErr
}

func (f *fakeStore) Create(_ context.Context, doc *normalize.WireDocument) (*normalize.WireDocument, error) {
	f.creates++
	if f.createErr != nil {
		return nil, f.createErr
	}
	out := *doc
	if f.assignedID == "" {
		f.assignedID = "srv-001"
	}
	out.ID = f.assignedID
	return &out, nil
}

func (f *fakeStore) Update(_ context.Context, doc *normalize.WireDocument) (*normalize.WireDocument, error) {
	f.updates++
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	out := *doc
	return &out, nil
}

func newTestStore(t *testing.T, remote storage.ResumeStore) *Store {
	t.Helper()
	n := 0
	if remote == nil {
		remote = &fakeStore{}
	}
	return New(remote, types.PersonalInfo{FullName: "Jane Doe", Email: "jane@example.com"},
		WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("id-%03d", n)
		}),
		WithClock(func() time.Time {
			return time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
		}),
	)
}

func TestStore_NewSynthesizesFromProfile(t *testing.T) {
	s := newTestStore(t, nil)
	doc := s.Document()
	assert.Equal(t, "Jane Doe", doc.PersonalInfo.FullName)
	assert.Equal(t, types.DefaultTemplate, doc.Template)
	assert.Empty(t, doc.Experiences)

	status, msg := s.Status()
	assert.Equal(t, StatusIdle, status)
	assert.Empty(t, msg)
}

func TestStore_AddExperienceDefaults(t *testing.T) {
	s := newTestStore(t, nil)
	exp := s.AddExperience(ExperiencePatch{})
	assert.Equal(t, "id-001", exp.ID)
	assert.Equal(t, "2024-03", exp.StartDate)
	assert.False(t, exp.Current)

	doc := s.Document()
	require.Len(t, doc.Experiences, 1)
	assert.Equal(t, exp, doc.Experiences[0])
}

func TestStore_AddMergesOverrides(t *testing.T) {
	s := newTestStore(t, nil)
	exp := s.AddExperience(ExperiencePatch{
		Title:   String("Engineer"),
		Company: String("Acme"),
		Current: Bool(true),
		EndDate: String("2024-01"),
	})
	assert.Equal(t, "Engineer", exp.Title)
	assert.True(t, exp.Current)
	// current=true forces an empty end date even when one was supplied
	assert.Empty(t, exp.EndDate)
}

func TestStore_IdentityStability(t *testing.T) {
	s := newTestStore(t, nil)
	var ids []string
	for i := 0; i < 5; i++ {
		sk := s.AddSkill(SkillPatch{Name: String(fmt.Sprintf("skill-%d", i))})
		ids = append(ids, sk.ID)
	}

	s.RemoveSkill(ids[2])

	doc := s.Document()
	require.Len(t, doc.Skills, 4)
	want := []string{ids[0], ids[1], ids[3], ids[4]}
	for i, sk := range doc.Skills {
		assert.Equal(t, want[i], sk.ID, "relative order and ids must survive removal")
	}
}

func TestStore_CurrentFlagInvariant(t *testing.T) {
	s := newTestStore(t, nil)
	exp := s.AddExperience(ExperiencePatch{EndDate: String("2023-01")})

	s.UpdateExperience(exp.ID, ExperiencePatch{Current: Bool(true)})
	doc := s.Document()
	require.Len(t, doc.Experiences, 1)
	assert.True(t, doc.Experiences[0].Current)
	assert.Empty(t, doc.Experiences[0].EndDate)

	s.UpdateExperience(exp.ID, ExperiencePatch{Current: Bool(false), EndDate: String("2024-01")})
	doc = s.Document()
	assert.False(t, doc.Experiences[0].Current)
	assert.Equal(t, "2024-01", doc.Experiences[0].EndDate)
}

func TestStore_UpdateScenario(t *testing.T) {
	s := newTestStore(t, nil)
	exp := s.AddExperience(ExperiencePatch{
		Title:   String("Engineer"),
		Company: String("Acme"),
		Current: Bool(true),
	})

	s.UpdateExperience(exp.ID, ExperiencePatch{Current: Bool(false), EndDate: String("2023-05")})

	doc := s.Document()
	require.Len(t, doc.Experiences, 1)
	got := doc.Experiences[0]
	assert.False(t, got.Current)
	assert.Equal(t, "2023-05", got.EndDate)
	// No other field changes.
	assert.Equal(t, "Engineer", got.Title)
	assert.Equal(t, "Acme", got.Company)
	assert.Equal(t, exp.StartDate, got.StartDate)
}

func TestStore_UpdateUnknownIDIsNoOp(t *testing.T) {
	s := newTestStore(t, nil)
	s.AddExperience(ExperiencePatch{Title: String("Engineer")})
	before := marshalDoc(t, s)

	s.UpdateExperience("nope", ExperiencePatch{Title: String("Changed")})

	assert.Equal(t, before, marshalDoc(t, s))
}

func TestStore_NoOpRemoval(t *testing.T) {
	s := newTestStore(t, nil)
	s.AddExperience(ExperiencePatch{Title: String("Engineer")})
	s.AddSkill(SkillPatch{Name: String("Go")})
	before := marshalDoc(t, s)

	s.RemoveExperience("does-not-exist")
	s.RemoveSkill("also-missing")
	s.RemoveAward("never-there")

	assert.Equal(t, before, marshalDoc(t, s), "removal of unknown ids must leave the document byte-for-byte identical")
}

func TestStore_AllCollectionsRoundTrip(t *testing.T) {
	s := newTestStore(t, nil)

	exp := s.AddExperience(ExperiencePatch{Title: String("Engineer")})
	edu := s.AddEducation(EducationPatch{Institution: String("MIT")})
	skill := s.AddSkill(SkillPatch{Name: String("Go")})
	proj := s.AddProject(ProjectPatch{Name: String("cli")})
	cert := s.AddCertification(CertificationPatch{Name: String("CKA")})
	award := s.AddAward(AwardPatch{Title: String("Top Performer")})
	lang := s.AddLanguage(LanguagePatch{Name: String("Spanish")})
	pub := s.AddPublication(PublicationPatch{Title: String("Paper")})
	vol := s.AddVolunteerExperience(VolunteerPatch{Role: String("Mentor")})
	ref := s.AddReference(ReferencePatch{Name: String("Ada")})

	s.UpdateEducation(edu.ID, EducationPatch{Degree: String("BSc")})
	s.UpdateSkill(skill.ID, SkillPatch{Level: Level(types.SkillExpert)})
	s.UpdateProject(proj.ID, ProjectPatch{Technologies: []string{"Go", "Postgres"}})
	s.UpdateCertification(cert.ID, CertificationPatch{Issuer: String("CNCF")})
	s.UpdateAward(award.ID, AwardPatch{Issuer: String("Acme")})
	s.UpdateLanguage(lang.ID, LanguagePatch{Proficiency: Proficiency(types.ProficiencyFluent)})
	s.UpdatePublication(pub.ID, PublicationPatch{Publisher: String("ACM")})
	s.UpdateVolunteerExperience(vol.ID, VolunteerPatch{Organization: String("Code Club")})
	s.UpdateReference(ref.ID, ReferencePatch{Company: String("Acme")})

	doc := s.Document()
	assert.Equal(t, "BSc", doc.Education[0].Degree)
	assert.Equal(t, types.SkillExpert, doc.Skills[0].Level)
	assert.Equal(t, []string{"Go", "Postgres"}, doc.Projects[0].Technologies)
	assert.Equal(t, "CNCF", doc.Certifications[0].Issuer)
	assert.Equal(t, "Acme", doc.Awards[0].Issuer)
	assert.Equal(t, types.ProficiencyFluent, doc.Languages[0].Proficiency)
	assert.Equal(t, "ACM", doc.Publications[0].Publisher)
	assert.Equal(t, "Code Club", doc.VolunteerExperience[0].Organization)
	assert.Equal(t, "Acme", doc.References[0].Company)

	s.RemoveEducation(edu.ID)
	s.RemoveProject(proj.ID)
	s.RemoveCertification(cert.ID)
	s.RemoveAward(award.ID)
	s.RemoveLanguage(lang.ID)
	s.RemovePublication(pub.ID)
	s.RemoveVolunteerExperience(vol.ID)
	s.RemoveReference(ref.ID)

	doc = s.Document()
	assert.Empty(t, doc.Education)
	assert.Empty(t, doc.Projects)
	assert.Empty(t, doc.Certifications)
	assert.Empty(t, doc.Awards)
	assert.Empty(t, doc.Languages)
	assert.Empty(t, doc.Publications)
	assert.Empty(t, doc.VolunteerExperience)
	assert.Empty(t, doc.References)
	// untouched collections keep their items
	require.Len(t, doc.Experiences, 1)
	assert.Equal(t, exp.ID, doc.Experiences[0].ID)
	require.Len(t, doc.Skills, 1)
}

func TestStore_DocumentSnapshotIsIsolated(t *testing.T) {
	s := newTestStore(t, nil)
	s.AddSkill(SkillPatch{Name: String("Go")})

	snap := s.Document()
	snap.Skills[0].Name = "mutated"
	snap.PersonalInfo.FullName = "mutated"

	doc := s.Document()
	assert.Equal(t, "Go", doc.Skills[0].Name)
	assert.Equal(t, "Jane Doe", doc.PersonalInfo.FullName)
}

func TestStore_SaveCreatesThenUpdates(t *testing.T) {
	remote := &fakeStore{}
	s := newTestStore(t, remote)
	s.AddExperience(ExperiencePatch{Title: String("Engineer")})

	require.NoError(t, s.Save(context.Background()))
	assert.Equal(t, 1, remote.creates)
	assert.Equal(t, 0, remote.updates)
	assert.Equal(t, "srv-001", s.Document().ID)

	require.NoError(t, s.Save(context.Background()))
	assert.Equal(t, 1, remote.creates, "second save must not create again")
	assert.Equal(t, 1, remote.updates)
}

func TestStore_SaveErrorPreservesDocument(t *testing.T) {
	remote := &fakeStore{createErr: &storage.TransportError{Op: "save", Message: "connection refused"}}
	s := newTestStore(t, remote)
	s.AddExperience(ExperiencePatch{Title: String("Engineer")})
	before := marshalDoc(t, s)

	err := s.Save(context.Background())
	require.Error(t, err)
	var te *storage.TransportError
	assert.True(t, errors.As(err, &te))

	status, msg := s.Status()
	assert.Equal(t, StatusError, status)
	assert.NotEmpty(t, msg)
	assert.Equal(t, before, marshalDoc(t, s), "a failed save must not corrupt the in-memory document")

	// The document stays editable and a retry succeeds.
	remote.createErr = nil
	require.NoError(t, s.Save(context.Background()))
	status, _ = s.Status()
	assert.Equal(t, StatusSaved, status)
}

func TestStore_SavedStatusRevertsToIdle(t *testing.T) {
	remote := &fakeStore{}
	s := New(remote, types.PersonalInfo{},
		WithSavedRevert(20*time.Millisecond),
	)

	require.NoError(t, s.Save(context.Background()))
	status, _ := s.Status()
	assert.Equal(t, StatusSaved, status)

	assert.Eventually(t, func() bool {
		st, _ := s.Status()
		return st == StatusIdle
	}, time.Second, 5*time.Millisecond)
}

func TestStore_LoadReplacesDocumentWholesale(t *testing.T) {
	remote := &fakeStore{
		fetchDoc: &normalize.WireDocument{
			ID:    "srv-042",
			Title: "Stored Resume",
			Personal: normalize.WirePersonalInfo{
				FullName: "Stored Name",
				Email:    "stored@example.com",
			},
			Template: types.TemplateClassic,
			Experiences: []normalize.WireExperience{
				{ID: "e1", Position: "Engineer", Company: "Acme"},
			},
		},
	}
	s := newTestStore(t, remote)
	s.AddSkill(SkillPatch{Name: String("local edit")})

	require.NoError(t, s.Load(context.Background()))

	doc := s.Document()
	assert.Equal(t, "srv-042", doc.ID)
	assert.Equal(t, "Stored Name", doc.PersonalInfo.FullName)
	assert.Equal(t, types.TemplateClassic, doc.Template)
	require.Len(t, doc.Experiences, 1)
	assert.Equal(t, "Engineer", doc.Experiences[0].Title, "wire position maps to canonical title")
	assert.Empty(t, doc.Skills, "load replaces the in-memory document wholesale")
}

func TestStore_LoadNotFoundIsFreshStart(t *testing.T) {
	remote := &fakeStore{fetchDoc: nil}
	s := newTestStore(t, remote)
	require.NoError(t, s.Load(context.Background()))

	doc := s.Document()
	assert.Equal(t, "Jane Doe", doc.PersonalInfo.FullName)
	status, _ := s.Status()
	assert.Equal(t, StatusIdle, status)
}

func TestStore_LoadErrorPreservesDocument(t *testing.T) {
	remote := &fakeStore{fetchErr: &storage.TransportError{Op: "load", Message: "timeout"}}
	s := newTestStore(t, remote)
	s.AddSkill(SkillPatch{Name: String("Go")})
	before := marshalDoc(t, s)

	require.Error(t, s.Load(context.Background()))

	status, msg := s.Status()
	assert.Equal(t, StatusError, status)
	assert.Contains(t, msg, "timeout")
	assert.Equal(t, before, marshalDoc(t, s))
}

func TestStore_SessionTemplateSurvivesLoad(t *testing.T) {
	remote := &fakeStore{
		fetchDoc: &normalize.WireDocument{
			Title:    "Stored",
			Template: types.TemplateModern,
		},
	}
	s := newTestStore(t, remote)
	s.SetTemplate(types.TemplateCompact)

	require.NoError(t, s.Load(context.Background()))
	assert.Equal(t, types.TemplateCompact, s.Document().Template)
}

func TestStore_SetTemplateRejectsUnknown(t *testing.T) {
	s := newTestStore(t, nil)
	s.SetTemplate("sparkly")
	assert.Equal(t, types.DefaultTemplate, s.Document().Template)
}

func TestStore_UpdatePersonalInfo(t *testing.T) {
	s := newTestStore(t, nil)
	s.UpdatePersonalInfo(PersonalInfoPatch{
		Phone:    String("+1 555 0100"),
		Location: String("Berlin"),
	})
	doc := s.Document()
	assert.Equal(t, "Jane Doe", doc.PersonalInfo.FullName)
	assert.Equal(t, "+1 555 0100", doc.PersonalInfo.Phone)
	assert.Equal(t, "Berlin", doc.PersonalInfo.Location)
}

func marshalDoc(t *testing.T, s *Store) string {
	t.Helper()
	data, err := json.Marshal(s.Document())
	require.NoError(t, err)
	return string(data)
}
