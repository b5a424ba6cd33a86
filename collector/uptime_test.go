package collector

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// fakeRun returns canned output per command name and records invocations.
func fakeRun(outputs map[string]string, errs map[string]error, calls *[]string) runFunc {
	return func(ctx context.Context, name string, args ...string) (string, error) {
		*calls = append(*calls, name)
		if err, ok := errs[name]; ok {
			return "", err
		}
		return outputs[name], nil
	}
}

func TestUptimeResolver(t *testing.T) {
	errMissing := errors.New("executable file not found in $PATH")

	tests := []struct {
		name      string
		goos      string
		outputs   map[string]string
		errs      map[string]error
		want      string
		wantCalls []string
	}{
		{
			name:      "neofetch primary pattern",
			goos:      "linux",
			outputs:   map[string]string{"neofetch": "OS: Debian\nUptime: 3 days\nShell: bash\n"},
			want:      "3 days",
			wantCalls: []string{"neofetch"},
		},
		{
			name:      "neofetch fallback pattern",
			goos:      "linux",
			outputs:   map[string]string{"neofetch": "host up 2 hours, 3 users\n"},
			want:      "2 hours",
			wantCalls: []string{"neofetch"},
		},
		{
			name:      "primary pattern wins over fallback",
			goos:      "linux",
			outputs:   map[string]string{"neofetch": "Uptime: 5 mins\nsomething up 9 days,\n"},
			want:      "5 mins",
			wantCalls: []string{"neofetch"},
		},
		{
			name:      "neofetch output unrecognized",
			goos:      "linux",
			outputs:   map[string]string{"neofetch": "no uptime info here"},
			want:      UptimeUnknown,
			wantCalls: []string{"neofetch"},
		},
		{
			name:      "linux uptime command fallback",
			goos:      "linux",
			outputs:   map[string]string{"uptime": "up 2 weeks, 4 days, 18 hours\n"},
			errs:      map[string]error{"neofetch": errMissing},
			want:      "2 weeks, 4 days, 18 hours",
			wantCalls: []string{"neofetch", "uptime"},
		},
		{
			name:      "darwin uptime command fallback",
			goos:      "darwin",
			outputs:   map[string]string{"uptime": "10:01  up 4 days, 2 users, load averages: 1.0\n"},
			errs:      map[string]error{"neofetch": errMissing},
			want:      "4 days",
			wantCalls: []string{"neofetch", "uptime"},
		},
		{
			name:      "everything unavailable",
			goos:      "linux",
			errs:      map[string]error{"neofetch": errMissing, "uptime": errMissing},
			want:      UptimeUnknown,
			wantCalls: []string{"neofetch", "uptime"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls []string
			r := newUptimeResolver(zap.NewNop().Sugar(), fakeRun(tt.outputs, tt.errs, &calls), tt.goos)

			got := r.Resolve(context.Background())

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantCalls, calls)
		})
	}
}
