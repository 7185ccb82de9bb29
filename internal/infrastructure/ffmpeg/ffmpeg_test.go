package ffmpeg

import (
	"errors"
	"strings"
	"testing"

	domain "clipd/internal/domain/convert"
)

func TestBuildArgs_FullInput(t *testing.T) {
	args := buildArgs(domain.EngineSpec{
		InputURL:   "https://x/playlist.m3u8",
		OutputPath: "/downloads/clip_1.mp4",
		CRF:        23,
	})

	joined := strings.Join(args, " ")
	for _, want := range []string{
		"-protocol_whitelist " + protocolWhitelist,
		"-user_agent",
		"-reconnect 1",
		"-reconnect_delay_max " + reconnectDelayMax,
		"-i https://x/playlist.m3u8",
		"-crf 23",
		"-movflags +faststart",
		"-progress pipe:1",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("args missing %q: %s", want, joined)
		}
	}
	if strings.Contains(joined, "-ss") || strings.Contains(joined, " -t ") {
		t.Errorf("unexpected trim flags for full-input run: %s", joined)
	}
	if args[len(args)-1] != "/downloads/clip_1.mp4" {
		t.Errorf("output path must be the final argument, got %q", args[len(args)-1])
	}
}

func TestBuildArgs_TrimWindow(t *testing.T) {
	args := buildArgs(domain.EngineSpec{
		InputURL:   "https://x/playlist.m3u8",
		OutputPath: "/downloads/clip_2.mp4",
		CRF:        20,
		Trim:       &domain.TrimWindow{Seek: 10, Duration: 35},
	})

	joined := strings.Join(args, " ")
	if !strings.Contains(joined, "-ss 10 -i") {
		t.Errorf("expected seek before input, got: %s", joined)
	}
	if !strings.Contains(joined, "-t 35") {
		t.Errorf("expected duration flag, got: %s", joined)
	}
}

func TestParseProgressLine(t *testing.T) {
	cases := []struct {
		line    string
		totalMs int64
		want    float64
		ok      bool
	}{
		{"out_time_ms=30000", 100000, 30, true},
		{"out_time_ms=150000", 100000, 100, true}, // clamped
		{"frame=120", 100000, 0, false},
		{"out_time_ms=abc", 100000, 0, false},
		{"out_time_ms=30000", 0, 0, false}, // unknown duration
	}

	for _, tc := range cases {
		got, ok := parseProgressLine(tc.line, tc.totalMs)
		if ok != tc.ok || got != tc.want {
			t.Errorf("parseProgressLine(%q, %d) = (%.2f, %v), want (%.2f, %v)",
				tc.line, tc.totalMs, got, ok, tc.want, tc.ok)
		}
	}
}

func TestFailureDetail_PrefersLastStderrLine(t *testing.T) {
	stderr := "Opening 'https://x/seg1.ts' for reading\n\nInvalid data found when processing input\n"
	got := failureDetail(errors.New("exit status 1"), stderr)
	if got != "Invalid data found when processing input" {
		t.Fatalf("unexpected detail %q", got)
	}
}

func TestFailureDetail_FallsBackToExitError(t *testing.T) {
	got := failureDetail(errors.New("exit status 1"), "  \n ")
	if got != "exit status 1" {
		t.Fatalf("unexpected detail %q", got)
	}
}
