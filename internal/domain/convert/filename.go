package convert

import "strings"

const maxBaseNameLen = 50

// SanitizeFilename reduces a caller-supplied name to letters, digits,
// underscore and hyphen, truncates it, and appends the job id before
// the extension so identical submissions never collide on disk.
func SanitizeFilename(raw, jobID string) string {
	var b strings.Builder
	for _, r := range raw {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		}
	}

	name := b.String()
	if len(name) > maxBaseNameLen {
		name = name[:maxBaseNameLen]
	}
	if name == "" {
		name = "video"
	}
	return name + "_" + jobID + ".mp4"
}
