package collector

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"
	gopsnet "github.com/shirou/gopsutil/v3/net"

	"sysmon-bot/models"
)

// Gathers OS and kernel info
func (c *Collector) collectSystemInfo(snap *models.Snapshot) {
	hostInfo, err := host.Info()
	if err != nil {
		c.log.Warnf("host info unavailable: %v", err)
		return
	}
	snap.System = models.SystemInfo{
		OS:     hostInfo.OS + " " + hostInfo.Platform + " " + hostInfo.PlatformVersion,
		Kernel: hostInfo.KernelVersion,
		Arch:   hostInfo.KernelArch,
	}
}

// Gathers CPU usage, core count, model, times and frequency
func (c *Collector) collectCPUInfo(snap *models.Snapshot) {
	if percent, err := cpu.Percent(time.Second, false); err == nil && len(percent) > 0 {
		snap.CPU.Percent = percent[0]
	} else if err != nil {
		c.log.Warnf("cpu percent unavailable: %v", err)
	}
	if count, err := cpu.Counts(true); err == nil {
		snap.CPU.Cores = count
	}
	if info, err := cpu.Info(); err == nil && len(info) > 0 {
		snap.CPU.Model = info[0].ModelName
		if info[0].Mhz > 0 {
			snap.CPUFreq = &models.CPUFreq{
				Current: info[0].Mhz,
				Max:     maxCPUFreqMHz(),
			}
		}
	}
	if times, err := cpu.Times(false); err == nil && len(times) > 0 {
		snap.CPUTimes = &models.CPUTimes{
			User:   times[0].User,
			System: times[0].System,
			Idle:   times[0].Idle,
		}
	}
}

// maxCPUFreqMHz reads the sysfs max frequency on Linux. Returns 0 when
// the file is missing (non-Linux hosts, containers).
func maxCPUFreqMHz() float64 {
	data, err := os.ReadFile("/sys/devices/system/cpu/cpu0/cpufreq/cpuinfo_max_freq")
	if err != nil {
		return 0
	}
	khz, err := strconv.ParseFloat(strings.TrimSpace(string(data)), 64)
	if err != nil {
		return 0
	}
	return khz / 1000
}

// Gathers Memory and Swap stats
func (c *Collector) collectMemoryInfo(snap *models.Snapshot) {
	if memInfo, err := mem.VirtualMemory(); err == nil {
		snap.Memory = models.MemoryInfo{
			Total:     memInfo.Total,
			Available: memInfo.Available,
			Used:      memInfo.Used,
			Cached:    memInfo.Cached,
			Buffers:   memInfo.Buffers,
			Percent:   memInfo.UsedPercent,
		}
	} else {
		c.log.Warnf("virtual memory unavailable: %v", err)
	}

	if swapInfo, err := mem.SwapMemory(); err == nil {
		snap.Swap = models.SwapInfo{
			Total:   swapInfo.Total,
			Used:    swapInfo.Used,
			Percent: swapInfo.UsedPercent,
		}
	}
}

// Gathers Disk usage and I/O stats
func (c *Collector) collectDiskInfo(snap *models.Snapshot, currentOS string) {
	diskPath := "/"
	if currentOS == "windows" {
		diskPath = "C:\\"
	}
	if diskUsage, err := disk.Usage(diskPath); err == nil {
		snap.Disk.Total = diskUsage.Total
		snap.Disk.Free = diskUsage.Free
		snap.Disk.Used = diskUsage.Used
		snap.Disk.Percent = diskUsage.UsedPercent
	} else {
		c.log.Warnf("disk usage unavailable: %v", err)
	}

	if ioCounters, err := disk.IOCounters(); err == nil {
		for _, counter := range ioCounters {
			snap.Disk.ReadBytes += counter.ReadBytes
			snap.Disk.WriteBytes += counter.WriteBytes
		}
	}
}

// Gathers Network I/O and socket counts (aggregated over all interfaces)
func (c *Collector) collectNetworkInfo(snap *models.Snapshot) {
	if netIO, err := gopsnet.IOCounters(false); err == nil && len(netIO) > 0 {
		snap.Network = models.NetworkInfo{
			BytesSent:   netIO[0].BytesSent,
			BytesRecv:   netIO[0].BytesRecv,
			PacketsSent: netIO[0].PacketsSent,
			PacketsRecv: netIO[0].PacketsRecv,
		}
	} else if err != nil {
		c.log.Warnf("network counters unavailable: %v", err)
	}

	if conns, err := gopsnet.Connections("all"); err == nil {
		snap.Connections.Total = len(conns)
		for _, conn := range conns {
			if conn.Status == "ESTABLISHED" {
				snap.Connections.Established++
			}
		}
	}
}

// Gathers Load Average (Unix only)
func (c *Collector) collectLoadInfo(snap *models.Snapshot, currentOS string) {
	if currentOS == "windows" {
		return
	}
	if loadAvg, err := load.Avg(); err == nil && loadAvg != nil {
		snap.Load = &models.LoadInfo{
			Load1:  loadAvg.Load1,
			Load5:  loadAvg.Load5,
			Load15: loadAvg.Load15,
		}
	}
}

// Gathers sensor temperatures. Hosts without sensors leave the slice empty.
func (c *Collector) collectTemperatures(snap *models.Snapshot) {
	// SensorsTemperatures can return partial data alongside a warning error.
	temps, err := host.SensorsTemperatures()
	if err != nil && len(temps) == 0 {
		c.log.Debugf("temperature sensors unavailable: %v", err)
		return
	}
	for _, t := range temps {
		if t.SensorKey == "" {
			continue
		}
		snap.Temperatures = append(snap.Temperatures, models.TemperatureReading{
			Label:   t.SensorKey,
			Celsius: t.Temperature,
		})
	}
}
