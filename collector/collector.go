// Package collector gathers host metrics into point-in-time snapshots.
// Every sub-source is best-effort: a failing source is logged and its
// field left absent, the capture itself never fails.
package collector

import (
	"context"
	"os"
	"runtime"
	"time"

	"go.uber.org/zap"

	"sysmon-bot/models"
)

type Collector struct {
	log       *zap.SugaredLogger
	uptime    *uptimeResolver
	startTime time.Time
}

func New(log *zap.SugaredLogger, execTimeout time.Duration) *Collector {
	run := func(ctx context.Context, name string, args ...string) (string, error) {
		return runCmd(ctx, execTimeout, name, args...)
	}
	return &Collector{
		log:       log,
		uptime:    newUptimeResolver(log, run, runtime.GOOS),
		startTime: time.Now(),
	}
}

// Capture collects a full snapshot of host metrics.
func (c *Collector) Capture(ctx context.Context) *models.Snapshot {
	snap := &models.Snapshot{
		Timestamp: time.Now(),
		BotUptime: time.Since(c.startTime).Truncate(time.Second),
	}

	if hostname, err := os.Hostname(); err == nil {
		snap.Hostname = hostname
	}

	c.collectSystemInfo(snap)
	c.collectCPUInfo(snap)
	c.collectMemoryInfo(snap)
	c.collectDiskInfo(snap, runtime.GOOS)
	c.collectNetworkInfo(snap)
	c.collectLoadInfo(snap, runtime.GOOS)
	c.collectTemperatures(snap)

	snap.HostUptime = c.uptime.Resolve(ctx)

	return snap
}
