package collector

import (
	"sort"

	"github.com/shirou/gopsutil/v3/process"

	"sysmon-bot/models"
)

const topProcessLimit = 10

// TopProcesses returns the heaviest processes ranked by combined CPU and
// memory share.
func (c *Collector) TopProcesses() []models.ProcessInfo {
	procs, err := process.Processes()
	if err != nil {
		c.log.Warnf("process listing unavailable: %v", err)
		return nil
	}

	type procData struct {
		pid     int32
		name    string
		cpu     float64
		memory  float32
		command string
	}

	var procList []procData
	for _, p := range procs {
		name, err := p.Name()
		if err != nil {
			continue
		}

		cpuPct, err := p.CPUPercent()
		if err != nil {
			cpuPct = 0
		}
		memPct, err := p.MemoryPercent()
		if err != nil {
			memPct = 0
		}

		cmdline, _ := p.Cmdline()
		if cmdline == "" {
			cmdline = name
		}
		if len(cmdline) > 200 {
			cmdline = cmdline[:200] + "..."
		}

		procList = append(procList, procData{
			pid:     p.Pid,
			name:    name,
			cpu:     cpuPct,
			memory:  memPct,
			command: cmdline,
		})
	}

	sort.Slice(procList, func(i, j int) bool {
		return procList[i].cpu+float64(procList[i].memory) > procList[j].cpu+float64(procList[j].memory)
	})

	limit := topProcessLimit
	if len(procList) < limit {
		limit = len(procList)
	}

	results := make([]models.ProcessInfo, 0, limit)
	for _, p := range procList[:limit] {
		results = append(results, models.ProcessInfo{
			PID:     int(p.pid),
			Name:    p.name,
			CPU:     p.cpu,
			Memory:  float64(p.memory),
			Command: p.command,
		})
	}
	return results
}
