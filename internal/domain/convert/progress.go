package convert

import "fmt"

// ffmpeg's reported percent tracks encode time only, so it sits near
// zero while playlist segments are still downloading. The remap below
// rescales three contiguous raw ranges into disjoint target ranges so
// the client keeps seeing forward motion through that window. The
// breakpoints and factors are empirically tuned; kept exact for
// behavioral compatibility.
const (
	progressFloor   = 10.0
	lowRawBreak     = 10.0
	midRawBreak     = 50.0
	lowBase         = 10.0
	midBase         = 30.0
	highBase        = 70.0
	progressCeiling = 90.0
)

// MapProgress translates the engine's raw percent into the
// client-facing percent and message. The three pieces are continuous
// at the breakpoints; engine-reported regressions pass through as-is.
func MapProgress(raw float64) (float64, string) {
	var mapped float64
	switch {
	case raw < lowRawBreak:
		mapped = lowBase + raw*2
	case raw < midRawBreak:
		mapped = midBase + (raw - lowRawBreak)
	default:
		mapped = highBase + (raw-midRawBreak)*0.5
		if mapped > progressCeiling {
			mapped = progressCeiling
		}
	}
	if mapped < progressFloor {
		mapped = progressFloor
	}
	return mapped, fmt.Sprintf("Converting video... %d%%", int(mapped))
}
