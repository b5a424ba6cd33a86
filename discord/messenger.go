// Package discord implements the chat transport, the status publisher
// and the command dispatcher.
package discord

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/bwmarrin/discordgo"
)

// Discriminated transport outcomes. Everything else is a generic
// transport error.
var (
	ErrNotFound  = errors.New("message or channel not found")
	ErrForbidden = errors.New("missing permissions")
)

// Messenger is the minimal channel-message surface the publisher and the
// command handlers need.
type Messenger interface {
	// ResolveChannel verifies the channel exists and is reachable.
	ResolveChannel(channelID string) error
	// SendEmbed posts a new message and returns its id.
	SendEmbed(channelID string, embed *discordgo.MessageEmbed) (string, error)
	// EditEmbed replaces the embed of an existing message.
	EditEmbed(channelID, messageID string, embed *discordgo.MessageEmbed) error
}

// sessionMessenger adapts a discordgo session to Messenger, mapping REST
// errors onto the discriminated sentinels.
type sessionMessenger struct {
	session *discordgo.Session
}

func NewMessenger(session *discordgo.Session) Messenger {
	return &sessionMessenger{session: session}
}

func (m *sessionMessenger) ResolveChannel(channelID string) error {
	if _, err := m.session.State.Channel(channelID); err == nil {
		return nil
	}
	if _, err := m.session.Channel(channelID); err != nil {
		return mapError(err)
	}
	return nil
}

func (m *sessionMessenger) SendEmbed(channelID string, embed *discordgo.MessageEmbed) (string, error) {
	msg, err := m.session.ChannelMessageSendEmbed(channelID, embed)
	if err != nil {
		return "", mapError(err)
	}
	return msg.ID, nil
}

func (m *sessionMessenger) EditEmbed(channelID, messageID string, embed *discordgo.MessageEmbed) error {
	if _, err := m.session.ChannelMessageEditEmbed(channelID, messageID, embed); err != nil {
		return mapError(err)
	}
	return nil
}

// mapError folds discordgo REST errors into the sentinel taxonomy while
// keeping the original message.
func mapError(err error) error {
	var rest *discordgo.RESTError
	if !errors.As(err, &rest) {
		return err
	}

	if rest.Message != nil {
		switch rest.Message.Code {
		case discordgo.ErrCodeUnknownMessage, discordgo.ErrCodeUnknownChannel:
			return fmt.Errorf("%w: %v", ErrNotFound, err)
		case discordgo.ErrCodeMissingPermissions, discordgo.ErrCodeMissingAccess:
			return fmt.Errorf("%w: %v", ErrForbidden, err)
		}
	}

	if rest.Response != nil {
		switch rest.Response.StatusCode {
		case http.StatusNotFound:
			return fmt.Errorf("%w: %v", ErrNotFound, err)
		case http.StatusForbidden:
			return fmt.Errorf("%w: %v", ErrForbidden, err)
		}
	}

	return err
}
