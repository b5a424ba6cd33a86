package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"

	"sysmon-bot/collector"
	"sysmon-bot/config"
	"sysmon-bot/discord"
	"sysmon-bot/format"
)

// Build info
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cfg := config.Load()
	log := cfg.Logger
	defer log.Sync()

	if cfg.Token == "" {
		log.Error("DISCORD_TOKEN is not set, refusing to start")
		return
	}

	log.Infof("sysmon-bot %s (%s) built on %s", version, commit, date)
	log.Infof("update interval: %v", cfg.UpdateInterval)

	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		log.Errorf("invalid bot configuration: %v", err)
		return
	}
	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentMessageContent

	coll := collector.New(log, cfg.ExecTimeout)
	messenger := discord.NewMessenger(session)

	publisher := discord.NewPublisher(log, messenger, cfg.ChannelID, cfg.UpdateInterval,
		func(ctx context.Context) *discordgo.MessageEmbed {
			return format.Build(coll.Capture(ctx), format.ModeFull, cfg.UpdateInterval)
		})
	commands := discord.NewCommands(log, messenger, coll, cfg.UpdateInterval)

	// The publisher must not tick before the gateway session is ready.
	ready := make(chan struct{})
	session.AddHandlerOnce(func(s *discordgo.Session, r *discordgo.Ready) {
		log.Infof("%s has connected to Discord, %d guilds", r.User.Username, len(r.Guilds))
		close(ready)
	})
	session.AddHandler(commands.Handle)

	if err := session.Open(); err != nil {
		log.Errorf("could not connect to Discord: %v", err)
		return
	}
	defer session.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go publisher.Run(ctx, ready)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	<-stop

	log.Info("shutting down...")
	cancel()
}
