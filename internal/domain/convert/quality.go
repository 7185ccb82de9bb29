package convert

import "strings"

// CRF values for the libx264 encode; lower means higher visual
// quality and a larger output file.
const (
	CRFHigh   = 20
	CRFMedium = 23
	CRFLow    = 28
)

// ResolveQuality maps a coarse quality label onto a CRF value.
// Unknown or absent labels fall back to the medium default.
func ResolveQuality(label string) int {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "high":
		return CRFHigh
	case "low":
		return CRFLow
	default:
		return CRFMedium
	}
}
