package discord

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// BuildFunc produces the embed for one publish tick.
type BuildFunc func(ctx context.Context) *discordgo.MessageEmbed

// Publisher keeps one status message in the configured channel up to
// date. It tracks at most one message id: unset until the first
// successful send, replaced when the tracked message disappears. Only
// the publisher goroutine touches the id.
type Publisher struct {
	log       *zap.SugaredLogger
	messenger Messenger
	channelID string
	interval  time.Duration
	build     BuildFunc

	messageID string
}

func NewPublisher(log *zap.SugaredLogger, messenger Messenger, channelID string, interval time.Duration, build BuildFunc) *Publisher {
	return &Publisher{
		log:       log,
		messenger: messenger,
		channelID: channelID,
		interval:  interval,
		build:     build,
	}
}

// Run drives the publish cycle until ctx is cancelled. The first tick
// waits for ready, so nothing is published before the session is
// connected.
func (p *Publisher) Run(ctx context.Context, ready <-chan struct{}) {
	select {
	case <-ready:
	case <-ctx.Done():
		return
	}

	p.Tick(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			p.Tick(ctx)
		case <-ctx.Done():
			return
		}
	}
}

// Tick runs one publish cycle: resolve channel, build embed, edit the
// tracked message or send a new one.
func (p *Publisher) Tick(ctx context.Context) {
	if p.channelID == "" {
		p.log.Warn("MONITOR_CHANNEL_ID is not set, skipping status update")
		return
	}
	if err := p.messenger.ResolveChannel(p.channelID); err != nil {
		p.log.Errorf("could not resolve channel %s: %v", p.channelID, err)
		return
	}

	embed := p.build(ctx)

	if p.messageID == "" {
		p.sendNew(embed)
		return
	}

	err := p.messenger.EditEmbed(p.channelID, p.messageID, embed)
	switch {
	case err == nil:
	case errors.Is(err, ErrNotFound):
		// Tracked message was deleted, publish a replacement.
		p.sendNew(embed)
	case errors.Is(err, ErrForbidden):
		p.log.Errorf("missing permissions to edit message in channel %s", p.channelID)
	default:
		p.log.Errorf("error editing message: %v", err)
	}
}

func (p *Publisher) sendNew(embed *discordgo.MessageEmbed) {
	id, err := p.messenger.SendEmbed(p.channelID, embed)
	if err != nil {
		if errors.Is(err, ErrForbidden) {
			p.log.Errorf("missing permissions to send message in channel %s", p.channelID)
		} else {
			p.log.Errorf("error sending message: %v", err)
		}
		return
	}
	p.messageID = id
}
