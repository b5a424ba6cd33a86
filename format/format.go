// Package format renders metric snapshots into Discord embeds.
package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"sysmon-bot/models"
)

// Mode selects which subset of snapshot fields an embed contains.
type Mode string

const (
	ModeFull    Mode = "full"
	ModeCPU     Mode = "cpu"
	ModeMemory  Mode = "memory"
	ModeDisk    Mode = "disk"
	ModeNetwork Mode = "network"
	ModeUptime  Mode = "uptime"
)

// Accent colors, one per embed kind.
const (
	ColorFull    = 0x1E90FF // DodgerBlue
	ColorStats   = 0x32CD32 // LimeGreen, the on-demand !stats variant
	ColorCPU     = 0x1E90FF // DodgerBlue
	ColorMemory  = 0xFF69B4 // HotPink
	ColorDisk    = 0xFFD700 // Gold
	ColorNetwork = 0x8A2BE2 // BlueViolet
	ColorUptime  = 0xFFA500 // Orange
	ColorHelp    = 0x0088FF
	ColorTop     = 0x9ACD32 // YellowGreen
	ColorDocker  = 0x2496ED
	ColorPing    = 0x00CED1 // DarkTurquoise
)

// Build renders a snapshot in the given mode.
func Build(snap *models.Snapshot, mode Mode, interval time.Duration) *discordgo.MessageEmbed {
	switch mode {
	case ModeCPU:
		return buildCPU(snap)
	case ModeMemory:
		return buildMemory(snap)
	case ModeDisk:
		return buildDisk(snap)
	case ModeNetwork:
		return buildNetwork(snap)
	case ModeUptime:
		return buildUptime(snap)
	default:
		return buildFull(snap, interval)
	}
}

func newEmbed(title string, color int, at time.Time) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:     title,
		Color:     color,
		Timestamp: at.UTC().Format(time.RFC3339),
	}
}

func addField(e *discordgo.MessageEmbed, name, value string, inline bool) {
	e.Fields = append(e.Fields, &discordgo.MessageEmbedField{
		Name:   name,
		Value:  value,
		Inline: inline,
	})
}

func buildFull(snap *models.Snapshot, interval time.Duration) *discordgo.MessageEmbed {
	e := newEmbed("🖥️ Server Monitor", ColorFull, snap.Timestamp)
	e.Description = fmt.Sprintf("Stats for **%s**", snap.Hostname)

	addField(e, "🔄 System", snap.System.OS, true)
	addField(e, "⏱️ Server Uptime", snap.HostUptime, true)
	addField(e, "🤖 Bot Uptime", snap.BotUptime.String(), true)

	addField(e, "🧠 CPU Usage", percentStr(snap.CPU.Percent), true)
	if snap.CPUFreq != nil {
		addField(e, "CPU Frequency", freqValue(snap.CPUFreq), true)
	}

	addField(e, "💾 Memory Usage",
		gauge(snap.Memory.Percent, snap.Memory.Used, snap.Memory.Total, "MB", toMB), false)
	addField(e, "💿 Disk Usage",
		gauge(snap.Disk.Percent, snap.Disk.Used, snap.Disk.Total, "GB", toGB), false)

	addField(e, "Disk I/O",
		fmt.Sprintf("Read: %d MB\nWritten: %d MB",
			toMB(snap.Disk.ReadBytes), toMB(snap.Disk.WriteBytes)), true)
	addField(e, "🌐 Network",
		fmt.Sprintf("Sent: %d MB\nReceived: %d MB",
			toMB(snap.Network.BytesSent), toMB(snap.Network.BytesRecv)), true)

	if snap.Load != nil {
		addField(e, "📈 Load Average",
			fmt.Sprintf("%.2f / %.2f / %.2f", snap.Load.Load1, snap.Load.Load5, snap.Load.Load15), true)
	}

	if temps := tempsValue(snap.Temperatures); temps != "" {
		addField(e, "🌡️ Temperatures", temps, true)
	}

	e.Footer = &discordgo.MessageEmbedFooter{
		Text: fmt.Sprintf("Last updated • Auto-updates every %d seconds", int(interval.Seconds())),
	}
	return e
}

func buildCPU(snap *models.Snapshot) *discordgo.MessageEmbed {
	e := newEmbed("🧠 CPU Information", ColorCPU, snap.Timestamp)

	addField(e, "Usage", percentStr(snap.CPU.Percent), true)
	addField(e, "Cores", fmt.Sprintf("%d", snap.CPU.Cores), true)
	if snap.CPUFreq != nil {
		addField(e, "Frequency", freqValue(snap.CPUFreq), true)
	}
	if snap.CPU.Model != "" {
		addField(e, "Model", snap.CPU.Model, false)
	}
	if snap.CPUTimes != nil {
		addField(e, "Time Spent",
			fmt.Sprintf("User: %.2fs\nSystem: %.2fs\nIdle: %.2fs",
				snap.CPUTimes.User, snap.CPUTimes.System, snap.CPUTimes.Idle), false)
	}
	return e
}

func buildMemory(snap *models.Snapshot) *discordgo.MessageEmbed {
	e := newEmbed("💾 Memory Information", ColorMemory, snap.Timestamp)

	addField(e, "RAM Usage",
		gauge(snap.Memory.Percent, snap.Memory.Used, snap.Memory.Total, "MB", toMB), false)
	addField(e, "Swap Usage",
		gauge(snap.Swap.Percent, snap.Swap.Used, snap.Swap.Total, "MB", toMB), false)
	addField(e, "Memory Details",
		fmt.Sprintf("Available: %d MB\nCached: %d MB\nBuffers: %d MB",
			toMB(snap.Memory.Available), toMB(snap.Memory.Cached), toMB(snap.Memory.Buffers)), false)
	return e
}

func buildDisk(snap *models.Snapshot) *discordgo.MessageEmbed {
	e := newEmbed("💿 Disk Information", ColorDisk, snap.Timestamp)

	addField(e, "Disk Usage",
		gauge(snap.Disk.Percent, snap.Disk.Used, snap.Disk.Total, "GB", toGB), false)
	addField(e, "Disk I/O",
		fmt.Sprintf("Read: %d MB\nWritten: %d MB",
			toMB(snap.Disk.ReadBytes), toMB(snap.Disk.WriteBytes)), true)
	addField(e, "Disk Details",
		fmt.Sprintf("Free: %d GB\nUsed: %d GB\nTotal: %d GB",
			toGB(snap.Disk.Free), toGB(snap.Disk.Used), toGB(snap.Disk.Total)), false)
	return e
}

func buildNetwork(snap *models.Snapshot) *discordgo.MessageEmbed {
	e := newEmbed("🌐 Network Information", ColorNetwork, snap.Timestamp)

	addField(e, "Data Transferred",
		fmt.Sprintf("Sent: %d MB\nReceived: %d MB",
			toMB(snap.Network.BytesSent), toMB(snap.Network.BytesRecv)), true)
	addField(e, "Packets",
		fmt.Sprintf("Sent: %d\nReceived: %d",
			snap.Network.PacketsSent, snap.Network.PacketsRecv), true)
	addField(e, "Network Connections",
		fmt.Sprintf("Total: %d\nEstablished: %d",
			snap.Connections.Total, snap.Connections.Established), false)
	return e
}

func buildUptime(snap *models.Snapshot) *discordgo.MessageEmbed {
	e := newEmbed("⏱️ Uptime Information", ColorUptime, snap.Timestamp)

	addField(e, "Server Uptime", snap.HostUptime, false)
	addField(e, "🤖 Bot Uptime", snap.BotUptime.String(), false)
	return e
}

// TopProcesses renders the heaviest-process listing.
func TopProcesses(procs []models.ProcessInfo, at time.Time) *discordgo.MessageEmbed {
	e := newEmbed("📋 Top Processes", ColorTop, at)
	if len(procs) == 0 {
		e.Description = "No process information available"
		return e
	}
	var b strings.Builder
	for i, p := range procs {
		fmt.Fprintf(&b, "%d. **%s** (PID %d)\n   CPU: %.1f%% | RAM: %.1f%%\n", i+1, p.Name, p.PID, p.CPU, p.Memory)
	}
	e.Description = b.String()
	return e
}

// Containers renders the Docker container listing.
func Containers(containers []models.ContainerInfo, at time.Time) *discordgo.MessageEmbed {
	e := newEmbed("🐳 Containers", ColorDocker, at)
	if len(containers) == 0 {
		e.Description = "No containers found (is Docker running?)"
		return e
	}
	for _, ctr := range containers {
		addField(e, ctr.Name,
			fmt.Sprintf("Image: %s\nState: %s\nStatus: %s", ctr.Image, ctr.State, ctr.Status), false)
	}
	return e
}

// Latency renders probe results against public targets.
func Latency(probes []models.LatencyInfo, at time.Time) *discordgo.MessageEmbed {
	e := newEmbed("📡 Latency", ColorPing, at)
	if len(probes) == 0 {
		e.Description = "No latency data available"
		return e
	}
	for _, p := range probes {
		value := "unreachable"
		if p.Success {
			value = fmt.Sprintf("%.1f ms (loss %.0f%%)", p.Latency, p.Loss)
		}
		addField(e, p.Target, value, true)
	}
	return e
}

// Help lists every command with a one-line description. Static text, no
// snapshot needed.
func Help(commands [][2]string) *discordgo.MessageEmbed {
	e := newEmbed("📊 Server Monitor Help", ColorHelp, time.Now())
	e.Description = "Available commands for the server monitor bot"
	for _, c := range commands {
		addField(e, c[0], c[1], false)
	}
	e.Footer = &discordgo.MessageEmbedFooter{
		Text: "Server stats are automatically updated in the monitoring channel",
	}
	return e
}

func freqValue(f *models.CPUFreq) string {
	if f.Max > 0 {
		return fmt.Sprintf("Current: %.2f MHz\nMax: %.2f MHz", f.Current, f.Max)
	}
	return fmt.Sprintf("Current: %.2f MHz", f.Current)
}

// tempsValue joins sensor readings, empty when no sensor data exists so
// the field can be omitted entirely.
func tempsValue(temps []models.TemperatureReading) string {
	if len(temps) == 0 {
		return ""
	}
	lines := make([]string, 0, len(temps))
	for _, t := range temps {
		lines = append(lines, fmt.Sprintf("%s: %.1f°C", t.Label, t.Celsius))
	}
	return strings.Join(lines, "\n")
}
