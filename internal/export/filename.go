package export

import "strings"

const filenameSuffix = "_Resume.pdf"

// artifactFilename derives the download name: a caller-supplied hint wins
// over the subject's full name as the base, every non-alphanumeric run is
// collapsed to a single underscore, and the fixed suffix is appended.
func artifactFilename(fullName, hint string) string {
	base := sanitize(hint)
	if base == "" {
		base = sanitize(fullName)
	}
	if base == "" {
		base = "resume"
	}
	return base + filenameSuffix
}

// sanitize collapses every run of characters outside [A-Za-z0-9] to a
// single underscore and trims leading/trailing underscores.
func sanitize(s string) string {
	var sb strings.Builder
	pendingSep := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			if pendingSep && sb.Len() > 0 {
				sb.WriteByte('_')
			}
			pendingSep = false
			sb.WriteRune(r)
		default:
			pendingSep = true
		}
	}
	return sb.String()
}
