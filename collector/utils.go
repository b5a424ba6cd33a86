package collector

import (
	"context"
	"os/exec"
	"time"
)

// runCmd executes a command bounded by a deadline and returns its stdout.
// A hung external tool must never stall a capture.
func runCmd(ctx context.Context, timeout time.Duration, name string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		return "", err
	}
	return string(out), nil
}
