package ffmpeg

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	domain "clipd/internal/domain/convert"
)

// Network-resilience flags passed through on every invocation; they
// are not user configurable.
const (
	protocolWhitelist = "file,http,https,tcp,tls,crypto"
	userAgent         = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X)"
	reconnectDelayMax = "5"
)

// fallbackPaths are probed when ffmpeg is not on PATH.
var fallbackPaths = []string{
	"/usr/local/bin/ffmpeg",
	"/usr/bin/ffmpeg",
	"/opt/homebrew/bin/ffmpeg",
}

// Preflight locates a usable ffmpeg binary and verifies it is
// invocable. It runs once at process startup; the verdict is cached
// for the process lifetime.
func Preflight() (string, error) {
	binary, err := exec.LookPath("ffmpeg")
	if err != nil {
		for _, candidate := range fallbackPaths {
			if info, statErr := os.Stat(candidate); statErr == nil && !info.IsDir() {
				binary = candidate
				break
			}
		}
	}
	if binary == "" {
		return "", errors.New("ffmpeg binary not found")
	}
	if err := exec.Command(binary, "-version").Run(); err != nil {
		return "", fmt.Errorf("ffmpeg not invocable: %w", err)
	}
	return binary, nil
}

// Engine shells out to ffmpeg for HLS-to-MP4 conversion.
type Engine struct {
	binary string
	probe  string
}

// NewEngine creates the adapter around a preflighted ffmpeg binary.
// ffprobe is taken from the same directory when present.
func NewEngine(binary string) *Engine {
	probe := "ffprobe"
	if dir := filepath.Dir(binary); dir != "." && dir != "" {
		sibling := filepath.Join(dir, "ffprobe")
		if info, err := os.Stat(sibling); err == nil && !info.IsDir() {
			probe = sibling
		}
	}
	return &Engine{binary: binary, probe: probe}
}

// Convert launches one ffmpeg run and returns its lifecycle event
// stream: a start event, zero or more raw-percent progress events,
// then exactly one terminal event, after which the channel closes.
// Exactly one invocation happens per call; nothing is retried.
func (e *Engine) Convert(ctx context.Context, spec domain.EngineSpec) <-chan domain.Event {
	events := make(chan domain.Event, 16)
	go func() {
		defer close(events)
		e.convert(ctx, spec, events)
	}()
	return events
}

func (e *Engine) convert(ctx context.Context, spec domain.EngineSpec, events chan<- domain.Event) {
	totalMs := e.totalDurationMs(ctx, spec)

	cmd := exec.CommandContext(ctx, e.binary, buildArgs(spec)...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		events <- domain.Event{Kind: domain.EventFailed, Detail: err.Error()}
		return
	}
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		events <- domain.Event{Kind: domain.EventFailed, Detail: err.Error()}
		return
	}
	events <- domain.Event{Kind: domain.EventStart}

	scanner := bufio.NewScanner(stdout)
	for scanner.Scan() {
		percent, ok := parseProgressLine(scanner.Text(), totalMs)
		if !ok {
			continue
		}
		events <- domain.Event{Kind: domain.EventProgress, Percent: percent}
	}

	if err := cmd.Wait(); err != nil {
		events <- domain.Event{Kind: domain.EventFailed, Detail: failureDetail(err, stderr.String())}
		return
	}
	events <- domain.Event{Kind: domain.EventDone}
}

// totalDurationMs determines how much input time the run covers, so
// ffmpeg's out_time can be turned into a percentage. The trim window
// already knows it; a full-input run needs an ffprobe of the playlist.
func (e *Engine) totalDurationMs(ctx context.Context, spec domain.EngineSpec) int64 {
	if spec.Trim != nil {
		return int64(spec.Trim.Duration * 1000)
	}
	duration, err := e.probeDuration(ctx, spec.InputURL)
	if err != nil {
		return 0
	}
	return int64(duration * 1000)
}

func (e *Engine) probeDuration(ctx context.Context, inputURL string) (float64, error) {
	args := []string{
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=nokey=1:noprint_wrappers=1",
		inputURL,
	}
	out, err := exec.CommandContext(ctx, e.probe, args...).Output()
	if err != nil {
		return 0, err
	}
	value := strings.TrimSpace(string(out))
	if value == "" {
		return 0, fmt.Errorf("duration missing")
	}
	return strconv.ParseFloat(value, 64)
}

func buildArgs(spec domain.EngineSpec) []string {
	args := []string{
		"-protocol_whitelist", protocolWhitelist,
		"-user_agent", userAgent,
		"-reconnect", "1",
		"-reconnect_streamed", "1",
		"-reconnect_delay_max", reconnectDelayMax,
	}
	if spec.Trim != nil {
		args = append(args, "-ss", formatSeconds(spec.Trim.Seek))
	}
	args = append(args, "-i", spec.InputURL)
	if spec.Trim != nil {
		args = append(args, "-t", formatSeconds(spec.Trim.Duration))
	}
	args = append(args,
		"-c:v", "libx264",
		"-preset", "veryfast",
		"-crf", strconv.Itoa(spec.CRF),
		"-c:a", "aac",
		"-b:a", "192k",
		"-movflags", "+faststart",
		"-progress", "pipe:1",
		"-nostats",
		"-y",
		spec.OutputPath,
	)
	return args
}

func formatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// parseProgressLine extracts the raw percent from one key=value line
// of ffmpeg's -progress output. With an unknown total duration no
// percent can be derived and the line is skipped.
func parseProgressLine(line string, totalMs int64) (float64, bool) {
	if totalMs <= 0 {
		return 0, false
	}
	parts := strings.SplitN(strings.TrimSpace(line), "=", 2)
	if len(parts) != 2 || parts[0] != "out_time_ms" {
		return 0, false
	}
	ms, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, false
	}
	percent := float64(ms) / float64(totalMs) * 100
	if percent > 100 {
		percent = 100
	}
	return percent, true
}

// failureDetail picks the most useful line out of ffmpeg's stderr;
// the last non-empty line usually carries the actual error.
func failureDetail(err error, stderr string) string {
	lines := strings.Split(strings.TrimSpace(stderr), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return err.Error()
}
