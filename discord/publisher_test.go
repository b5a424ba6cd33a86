package discord

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeMessenger records send/edit calls and returns scripted errors.
type fakeMessenger struct {
	resolveErr error
	sendErr    error
	editErr    map[string]error // per message id

	sends  []string // channel ids of sends
	edits  []string // message ids of edits
	nextID int
}

func newFakeMessenger() *fakeMessenger {
	return &fakeMessenger{editErr: map[string]error{}}
}

func (f *fakeMessenger) ResolveChannel(channelID string) error {
	return f.resolveErr
}

func (f *fakeMessenger) SendEmbed(channelID string, embed *discordgo.MessageEmbed) (string, error) {
	if f.sendErr != nil {
		return "", f.sendErr
	}
	f.sends = append(f.sends, channelID)
	f.nextID++
	return fmt.Sprintf("msg-%d", f.nextID), nil
}

func (f *fakeMessenger) EditEmbed(channelID, messageID string, embed *discordgo.MessageEmbed) error {
	if err := f.editErr[messageID]; err != nil {
		return err
	}
	f.edits = append(f.edits, messageID)
	return nil
}

func newTestPublisher(m Messenger, channelID string) *Publisher {
	build := func(ctx context.Context) *discordgo.MessageEmbed {
		return &discordgo.MessageEmbed{Title: "status"}
	}
	return NewPublisher(zap.NewNop().Sugar(), m, channelID, time.Minute, build)
}

func TestTickSendsThenEdits(t *testing.T) {
	m := newFakeMessenger()
	p := newTestPublisher(m, "chan-1")
	ctx := context.Background()

	// First tick: no tracked message, a new one is sent.
	p.Tick(ctx)
	require.Equal(t, []string{"chan-1"}, m.sends)
	require.Empty(t, m.edits)
	assert.Equal(t, "msg-1", p.messageID)

	// Subsequent ticks edit the tracked message, no new sends.
	p.Tick(ctx)
	p.Tick(ctx)
	assert.Equal(t, []string{"chan-1"}, m.sends)
	assert.Equal(t, []string{"msg-1", "msg-1"}, m.edits)
	assert.Equal(t, "msg-1", p.messageID)
}

func TestTickResendsWhenTrackedMessageDeleted(t *testing.T) {
	m := newFakeMessenger()
	p := newTestPublisher(m, "chan-1")
	ctx := context.Background()

	p.Tick(ctx)
	require.Equal(t, "msg-1", p.messageID)

	// The tracked message was deleted: the same tick must send a
	// replacement and track the new id.
	m.editErr["msg-1"] = fmt.Errorf("%w: 404", ErrNotFound)
	p.Tick(ctx)

	assert.Equal(t, []string{"chan-1", "chan-1"}, m.sends)
	assert.Equal(t, "msg-2", p.messageID)

	// Next tick edits the replacement.
	p.Tick(ctx)
	assert.Equal(t, []string{"msg-2"}, m.edits)
}

func TestTickKeepsStateOnForbiddenEdit(t *testing.T) {
	m := newFakeMessenger()
	p := newTestPublisher(m, "chan-1")
	ctx := context.Background()

	p.Tick(ctx)
	m.editErr["msg-1"] = fmt.Errorf("%w: 403", ErrForbidden)

	p.Tick(ctx)
	p.Tick(ctx)

	// No fallback send, tracked id unchanged.
	assert.Equal(t, []string{"chan-1"}, m.sends)
	assert.Equal(t, "msg-1", p.messageID)
}

func TestTickKeepsStateOnTransportError(t *testing.T) {
	m := newFakeMessenger()
	p := newTestPublisher(m, "chan-1")
	ctx := context.Background()

	p.Tick(ctx)
	m.editErr["msg-1"] = errors.New("connection reset")

	p.Tick(ctx)

	assert.Equal(t, []string{"chan-1"}, m.sends)
	assert.Equal(t, "msg-1", p.messageID)
}

func TestTickRetriesSendNextTick(t *testing.T) {
	m := newFakeMessenger()
	p := newTestPublisher(m, "chan-1")
	ctx := context.Background()

	m.sendErr = fmt.Errorf("%w: 403", ErrForbidden)
	p.Tick(ctx)
	assert.Empty(t, p.messageID)

	// Permissions fixed: the next tick starts from scratch.
	m.sendErr = nil
	p.Tick(ctx)
	assert.Equal(t, "msg-1", p.messageID)
}

func TestTickNoopWhenChannelUnset(t *testing.T) {
	m := newFakeMessenger()
	p := newTestPublisher(m, "")

	p.Tick(context.Background())

	assert.Empty(t, m.sends)
	assert.Empty(t, m.edits)
	assert.Empty(t, p.messageID)
}

func TestTickNoopWhenChannelUnresolvable(t *testing.T) {
	m := newFakeMessenger()
	m.resolveErr = fmt.Errorf("%w: unknown channel", ErrNotFound)
	p := newTestPublisher(m, "chan-unknown")

	p.Tick(context.Background())
	p.Tick(context.Background())

	assert.Empty(t, m.sends)
	assert.Empty(t, m.edits)
	assert.Empty(t, p.messageID)
}

func TestRunWaitsForReady(t *testing.T) {
	m := newFakeMessenger()
	p := newTestPublisher(m, "chan-1")

	ctx, cancel := context.WithCancel(context.Background())
	ready := make(chan struct{})

	done := make(chan struct{})
	go func() {
		p.Run(ctx, ready)
		close(done)
	}()

	// Not connected yet: nothing published.
	time.Sleep(20 * time.Millisecond)
	assert.Empty(t, m.sends)

	close(ready)
	assert.Eventually(t, func() bool { return len(m.sends) == 1 }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publisher did not stop on context cancel")
	}
}

func TestRunStopsBeforeReadyOnCancel(t *testing.T) {
	m := newFakeMessenger()
	p := newTestPublisher(m, "chan-1")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		p.Run(ctx, make(chan struct{}))
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publisher did not stop")
	}
	assert.Empty(t, m.sends)
}
