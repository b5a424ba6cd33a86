package collector

import (
	"context"
	"time"

	probing "github.com/prometheus-community/pro-bing"

	"sysmon-bot/models"
)

var latencyTargets = []string{"8.8.8.8", "1.1.1.1"}

// Latency probes public DNS servers and reports round-trip times.
func (c *Collector) Latency(ctx context.Context) []models.LatencyInfo {
	results := make([]models.LatencyInfo, 0, len(latencyTargets))

	for _, target := range latencyTargets {
		info := models.LatencyInfo{Target: target}

		pinger, err := probing.NewPinger(target)
		if err != nil {
			c.log.Warnf("pinger setup failed for %s: %v", target, err)
			results = append(results, info)
			continue
		}
		pinger.Count = 3
		pinger.Interval = 200 * time.Millisecond
		pinger.Timeout = 3 * time.Second
		// UDP mode, no raw-socket privileges needed
		pinger.SetPrivileged(false)

		if err := pinger.RunWithContext(ctx); err != nil {
			c.log.Warnf("ping %s failed: %v", target, err)
			results = append(results, info)
			continue
		}

		stats := pinger.Statistics()
		if stats.PacketsRecv > 0 {
			info.Success = true
			info.Latency = float64(stats.AvgRtt.Microseconds()) / 1000
			info.Loss = stats.PacketLoss
		}
		results = append(results, info)
	}

	return results
}
