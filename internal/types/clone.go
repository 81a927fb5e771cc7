//nolint:revive // types is a standard Go package name pattern
package types

// Clone returns a deep copy of the document. Save and export serialize from
// a clone taken while the builder lock is held, so later mutations can never
// tear a snapshot; renderers and exporters receive clones and must treat
// them as read-only.
func (d *ResumeDocument) Clone() *ResumeDocument {
	if d == nil {
		return nil
	}
	out := *d
	out.Experiences = cloneSlice(d.Experiences)
	out.Education = cloneSlice(d.Education)
	out.Skills = cloneSlice(d.Skills)
	out.Projects = cloneProjects(d.Projects)
	out.Certifications = cloneSlice(d.Certifications)
	out.Awards = cloneSlice(d.Awards)
	out.Languages = cloneSlice(d.Languages)
	out.Publications = cloneSlice(d.Publications)
	out.VolunteerExperience = cloneSlice(d.VolunteerExperience)
	out.References = cloneSlice(d.References)
	return &out
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}

// cloneProjects also copies the nested Technologies slice, which a shallow
// element copy would share.
func cloneProjects(in []Project) []Project {
	if in == nil {
		return nil
	}
	out := make([]Project, len(in))
	for i, p := range in {
		out[i] = p
		out[i].Technologies = cloneSlice(p.Technologies)
	}
	return out
}
