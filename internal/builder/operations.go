package builder

import "github.com/jonathan/resume-builder/internal/types"

// Per-collection Add/Update/Remove operations. Add synthesizes a complete,
// valid item (type-correct defaults, freshly generated id, start date
// defaulting to the current month for temporal items), merges the caller's
// overrides on top, and appends preserving insertion order, which is also
// the on-page ordering. Update is a shallow merge addressed by id; Remove
// filters by id. Both tolerate unknown ids as no-ops.

// AddExperience appends a new experience and returns the created item.
func (s *Store) AddExperience(overrides ExperiencePatch) types.Experience {
	s.mu.Lock()
	defer s.mu.Unlock()
	exp := types.Experience{ID: s.newID(), StartDate: s.today()}
	overrides.apply(&exp)
	s.doc.Experiences = append(s.doc.Experiences, exp)
	s.touchLocked()
	return exp
}

// UpdateExperience shallow-merges patch onto the experience matching id.
func (s *Store) UpdateExperience(id string, patch ExperiencePatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if updateByID(s.doc.Experiences, id, patch.apply) {
		s.touchLocked()
	}
}

// RemoveExperience filters the experience matching id out of the document.
func (s *Store) RemoveExperience(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if out, ok := removeByID(s.doc.Experiences, id); ok {
		s.doc.Experiences = out
		s.touchLocked()
	}
}

// AddEducation appends a new education entry and returns the created item.
func (s *Store) AddEducation(overrides EducationPatch) types.Education {
	s.mu.Lock()
	defer s.mu.Unlock()
	edu := types.Education{ID: s.newID(), StartDate: s.today()}
	overrides.apply(&edu)
	s.doc.Education = append(s.doc.Education, edu)
	s.touchLocked()
	return edu
}

// UpdateEducation shallow-merges patch onto the education entry matching id.
func (s *Store) UpdateEducation(id string, patch EducationPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if updateByID(s.doc.Education, id, patch.apply) {
		s.touchLocked()
	}
}

// RemoveEducation filters the education entry matching id out of the document.
func (s *Store) RemoveEducation(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if out, ok := removeByID(s.doc.Education, id); ok {
		s.doc.Education = out
		s.touchLocked()
	}
}

// AddSkill appends a new skill and returns the created item.
func (s *Store) AddSkill(overrides SkillPatch) types.Skill {
	s.mu.Lock()
	defer s.mu.Unlock()
	skill := types.Skill{ID: s.newID(), Level: types.SkillIntermediate}
	overrides.apply(&skill)
	s.doc.Skills = append(s.doc.Skills, skill)
	s.touchLocked()
	return skill
}

// UpdateSkill shallow-merges patch onto the skill matching id.
func (s *Store) UpdateSkill(id string, patch SkillPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if updateByID(s.doc.Skills, id, patch.apply) {
		s.touchLocked()
	}
}

// RemoveSkill filters the skill matching id out of the document.
func (s *Store) RemoveSkill(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if out, ok := removeByID(s.doc.Skills, id); ok {
		s.doc.Skills = out
		s.touchLocked()
	}
}

// AddProject appends a new project and returns the created item.
func (s *Store) AddProject(overrides ProjectPatch) types.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	proj := types.Project{ID: s.newID(), StartDate: s.today()}
	overrides.apply(&proj)
	s.doc.Projects = append(s.doc.Projects, proj)
	s.touchLocked()
	return proj
}

// UpdateProject shallow-merges patch onto the project matching id.
func (s *Store) UpdateProject(id string, patch ProjectPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if updateByID(s.doc.Projects, id, patch.apply) {
		s.touchLocked()
	}
}

// RemoveProject filters the project matching id out of the document.
func (s *Store) RemoveProject(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if out, ok := removeByID(s.doc.Projects, id); ok {
		s.doc.Projects = out
		s.touchLocked()
	}
}

// AddCertification appends a new certification and returns the created item.
func (s *Store) AddCertification(overrides CertificationPatch) types.Certification {
	s.mu.Lock()
	defer s.mu.Unlock()
	cert := types.Certification{ID: s.newID(), IssueDate: s.today()}
	overrides.apply(&cert)
	s.doc.Certifications = append(s.doc.Certifications, cert)
	s.touchLocked()
	return cert
}

// UpdateCertification shallow-merges patch onto the certification matching id.
func (s *Store) UpdateCertification(id string, patch CertificationPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if updateByID(s.doc.Certifications, id, patch.apply) {
		s.touchLocked()
	}
}

// RemoveCertification filters the certification matching id out of the document.
func (s *Store) RemoveCertification(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if out, ok := removeByID(s.doc.Certifications, id); ok {
		s.doc.Certifications = out
		s.touchLocked()
	}
}

// AddAward appends a new award and returns the created item.
func (s *Store) AddAward(overrides AwardPatch) types.Award {
	s.mu.Lock()
	defer s.mu.Unlock()
	award := types.Award{ID: s.newID(), Date: s.today()}
	overrides.apply(&award)
	s.doc.Awards = append(s.doc.Awards, award)
	s.touchLocked()
	return award
}

// UpdateAward shallow-merges patch onto the award matching id.
func (s *Store) UpdateAward(id string, patch AwardPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if updateByID(s.doc.Awards, id, patch.apply) {
		s.touchLocked()
	}
}

// RemoveAward filters the award matching id out of the document.
func (s *Store) RemoveAward(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if out, ok := removeByID(s.doc.Awards, id); ok {
		s.doc.Awards = out
		s.touchLocked()
	}
}

// AddLanguage appends a new language and returns the created item.
func (s *Store) AddLanguage(overrides LanguagePatch) types.Language {
	s.mu.Lock()
	defer s.mu.Unlock()
	lang := types.Language{ID: s.newID(), Proficiency: types.ProficiencyConversational}
	overrides.apply(&lang)
	s.doc.Languages = append(s.doc.Languages, lang)
	s.touchLocked()
	return lang
}

// UpdateLanguage shallow-merges patch onto the language matching id.
func (s *Store) UpdateLanguage(id string, patch LanguagePatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if updateByID(s.doc.Languages, id, patch.apply) {
		s.touchLocked()
	}
}

// RemoveLanguage filters the language matching id out of the document.
func (s *Store) RemoveLanguage(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if out, ok := removeByID(s.doc.Languages, id); ok {
		s.doc.Languages = out
		s.touchLocked()
	}
}

// AddPublication appends a new publication and returns the created item.
func (s *Store) AddPublication(overrides PublicationPatch) types.Publication {
	s.mu.Lock()
	defer s.mu.Unlock()
	pub := types.Publication{ID: s.newID(), Date: s.today()}
	overrides.apply(&pub)
	s.doc.Publications = append(s.doc.Publications, pub)
	s.touchLocked()
	return pub
}

// UpdatePublication shallow-merges patch onto the publication matching id.
func (s *Store) UpdatePublication(id string, patch PublicationPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if updateByID(s.doc.Publications, id, patch.apply) {
		s.touchLocked()
	}
}

// RemovePublication filters the publication matching id out of the document.
func (s *Store) RemovePublication(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if out, ok := removeByID(s.doc.Publications, id); ok {
		s.doc.Publications = out
		s.touchLocked()
	}
}

// AddVolunteerExperience appends a new volunteer entry and returns the
// created item.
func (s *Store) AddVolunteerExperience(overrides VolunteerPatch) types.VolunteerExperience {
	s.mu.Lock()
	defer s.mu.Unlock()
	vol := types.VolunteerExperience{ID: s.newID(), StartDate: s.today()}
	overrides.apply(&vol)
	s.doc.VolunteerExperience = append(s.doc.VolunteerExperience, vol)
	s.touchLocked()
	return vol
}

// UpdateVolunteerExperience shallow-merges patch onto the volunteer entry
// matching id.
func (s *Store) UpdateVolunteerExperience(id string, patch VolunteerPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if updateByID(s.doc.VolunteerExperience, id, patch.apply) {
		s.touchLocked()
	}
}

// RemoveVolunteerExperience filters the volunteer entry matching id out of
// the document.
func (s *Store) RemoveVolunteerExperience(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if out, ok := removeByID(s.doc.VolunteerExperience, id); ok {
		s.doc.VolunteerExperience = out
		s.touchLocked()
	}
}

// AddReference appends a new reference and returns the created item.
func (s *Store) AddReference(overrides ReferencePatch) types.Reference {
	s.mu.Lock()
	defer s.mu.Unlock()
	ref := types.Reference{ID: s.newID()}
	overrides.apply(&ref)
	s.doc.References = append(s.doc.References, ref)
	s.touchLocked()
	return ref
}

// UpdateReference shallow-merges patch onto the reference matching id.
func (s *Store) UpdateReference(id string, patch ReferencePatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if updateByID(s.doc.References, id, patch.apply) {
		s.touchLocked()
	}
}

// RemoveReference filters the reference matching id out of the document.
func (s *Store) RemoveReference(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if out, ok := removeByID(s.doc.References, id); ok {
		s.doc.References = out
		s.touchLocked()
	}
}
