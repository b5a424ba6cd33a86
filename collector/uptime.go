package collector

import (
	"context"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// UptimeUnknown is returned when no resolution strategy produced a value.
const UptimeUnknown = "unknown"

var (
	neofetchUptimeRe = regexp.MustCompile(`Uptime: (.+)`)
	neofetchUpRe     = regexp.MustCompile(`up (.+?)(,|\n)`)
	darwinUpRe       = regexp.MustCompile(`up (.+?),`)
)

type runFunc func(ctx context.Context, name string, args ...string) (string, error)

// uptimeResolver produces a human-readable host uptime string. Strategies
// are tried in order, first success wins: neofetch with the "Uptime:"
// pattern, the same output with the "up <duration>," pattern, then the
// platform uptime command. Everything failing yields UptimeUnknown.
type uptimeResolver struct {
	log  *zap.SugaredLogger
	run  runFunc
	goos string
}

func newUptimeResolver(log *zap.SugaredLogger, run runFunc, goos string) *uptimeResolver {
	return &uptimeResolver{log: log, run: run, goos: goos}
}

func (r *uptimeResolver) Resolve(ctx context.Context) string {
	out, err := r.run(ctx, "neofetch", "--stdout")
	if err != nil {
		r.log.Debugf("neofetch unavailable: %v", err)
		if v, ok := r.platformUptime(ctx); ok {
			return v
		}
		return UptimeUnknown
	}

	if m := neofetchUptimeRe.FindStringSubmatch(out); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := neofetchUpRe.FindStringSubmatch(out); m != nil {
		return strings.TrimSpace(m[1])
	}
	return UptimeUnknown
}

// platformUptime parses the native uptime command, shaped differently
// per OS.
func (r *uptimeResolver) platformUptime(ctx context.Context) (string, bool) {
	switch r.goos {
	case "linux":
		out, err := r.run(ctx, "uptime", "-p")
		if err != nil {
			r.log.Debugf("uptime command failed: %v", err)
			return "", false
		}
		v := strings.TrimPrefix(strings.TrimSpace(out), "up ")
		return v, v != ""
	case "darwin":
		out, err := r.run(ctx, "uptime")
		if err != nil {
			r.log.Debugf("uptime command failed: %v", err)
			return "", false
		}
		if m := darwinUpRe.FindStringSubmatch(out); m != nil {
			return strings.TrimSpace(m[1]), true
		}
	}
	return "", false
}
