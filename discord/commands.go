package discord

import (
	"context"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"sysmon-bot/collector"
	"sysmon-bot/format"
)

// modeCommands maps the snapshot commands onto formatter modes. Commands
// are case-sensitive and take no arguments.
var modeCommands = map[string]format.Mode{
	"!stats":   format.ModeFull,
	"!uptime":  format.ModeUptime,
	"!cpu":     format.ModeCPU,
	"!memory":  format.ModeMemory,
	"!ram":     format.ModeMemory,
	"!disk":    format.ModeDisk,
	"!network": format.ModeNetwork,
	"!net":     format.ModeNetwork,
}

var helpEntries = [][2]string{
	{"!stats", "Show all server statistics"},
	{"!uptime", "Show both server and bot uptime"},
	{"!cpu", "Show CPU usage and information"},
	{"!memory", "Show RAM usage and information"},
	{"!disk", "Show disk usage and information"},
	{"!network", "Show network usage and information"},
	{"!top", "Show the heaviest processes"},
	{"!docker", "Show Docker containers"},
	{"!ping", "Show network latency to public DNS servers"},
	{"!help_monitor", "Show this help message"},
}

// LookupMode resolves a message body to a snapshot formatter mode.
func LookupMode(content string) (format.Mode, bool) {
	mode, ok := modeCommands[content]
	return mode, ok
}

// Commands dispatches one-shot query commands to snapshot+format+reply
// actions in the originating channel.
type Commands struct {
	log       *zap.SugaredLogger
	messenger Messenger
	collector *collector.Collector
	interval  time.Duration
}

func NewCommands(log *zap.SugaredLogger, messenger Messenger, c *collector.Collector, interval time.Duration) *Commands {
	return &Commands{log: log, messenger: messenger, collector: c, interval: interval}
}

// Handle is the MessageCreate handler. Unknown content is ignored.
func (c *Commands) Handle(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}
	if s.State != nil && s.State.User != nil && m.Author.ID == s.State.User.ID {
		return
	}

	ctx := context.Background()

	if mode, ok := LookupMode(m.Content); ok {
		snap := c.collector.Capture(ctx)
		embed := format.Build(snap, mode, c.interval)
		if mode == format.ModeFull {
			// The on-demand variant carries its own accent color.
			embed.Color = format.ColorStats
		}
		c.reply(m.ChannelID, m.Content, embed)
		return
	}

	switch m.Content {
	case "!top":
		c.reply(m.ChannelID, m.Content, format.TopProcesses(c.collector.TopProcesses(), time.Now()))
	case "!docker":
		c.reply(m.ChannelID, m.Content, format.Containers(c.collector.Containers(ctx), time.Now()))
	case "!ping":
		c.reply(m.ChannelID, m.Content, format.Latency(c.collector.Latency(ctx), time.Now()))
	case "!help_monitor":
		c.reply(m.ChannelID, m.Content, format.Help(helpEntries))
	}
}

func (c *Commands) reply(channelID, command string, embed *discordgo.MessageEmbed) {
	if _, err := c.messenger.SendEmbed(channelID, embed); err != nil {
		c.log.Errorf("could not reply to %s: %v", command, err)
	}
}
