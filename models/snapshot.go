package models

import "time"

// SystemInfo holds OS details
type SystemInfo struct {
	OS     string
	Kernel string
	Arch   string
}

// CPUInfo holds CPU stats
type CPUInfo struct {
	Percent float64
	Model   string
	Cores   int
}

// CPUFreq holds CPU frequency in MHz. Nil when the platform does not
// expose it.
type CPUFreq struct {
	Current float64
	Max     float64
}

// CPUTimes holds cumulative CPU time split in seconds
type CPUTimes struct {
	User   float64
	System float64
	Idle   float64
}

// MemoryInfo holds RAM stats
type MemoryInfo struct {
	Total     uint64
	Available uint64
	Used      uint64
	Cached    uint64
	Buffers   uint64
	Percent   float64
}

// SwapInfo holds Swap stats
type SwapInfo struct {
	Total   uint64
	Used    uint64
	Percent float64
}

// DiskInfo holds Disk usage and I/O stats
type DiskInfo struct {
	Total      uint64
	Free       uint64
	Used       uint64
	Percent    float64
	ReadBytes  uint64
	WriteBytes uint64
}

// NetworkInfo holds Network I/O stats
type NetworkInfo struct {
	BytesSent   uint64
	BytesRecv   uint64
	PacketsSent uint64
	PacketsRecv uint64
}

// ConnectionsInfo holds socket counts
type ConnectionsInfo struct {
	Total       int
	Established int
}

// LoadInfo holds Load Average stats (Unix only). Nil on Windows.
type LoadInfo struct {
	Load1  float64
	Load5  float64
	Load15 float64
}

// TemperatureReading is one sensor value. Snapshots carry an empty slice
// when the host exposes no sensors.
type TemperatureReading struct {
	Label   string
	Celsius float64
}

// ProcessInfo holds per-process usage for the top-process listing
type ProcessInfo struct {
	PID     int
	Name    string
	CPU     float64
	Memory  float64
	Command string
}

// ContainerInfo holds Docker container details
type ContainerInfo struct {
	ID      string
	Name    string
	Image   string
	Status  string
	State   string
	Created int64
}

// LatencyInfo is one probe result against a public target
type LatencyInfo struct {
	Target  string
	Latency float64 // ms
	Loss    float64 // percent
	Success bool
}

// Snapshot is one point-in-time capture of host metrics. All fields are
// best-effort: a sub-source that fails leaves its field at the zero value,
// optional sources (frequency, load, temperatures) stay nil/empty.
type Snapshot struct {
	Timestamp    time.Time
	Hostname     string
	System       SystemInfo
	CPU          CPUInfo
	CPUFreq      *CPUFreq
	CPUTimes     *CPUTimes
	Memory       MemoryInfo
	Swap         SwapInfo
	Disk         DiskInfo
	Network      NetworkInfo
	Connections  ConnectionsInfo
	Load         *LoadInfo
	Temperatures []TemperatureReading
	HostUptime   string
	BotUptime    time.Duration
}
