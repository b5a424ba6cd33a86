package discord

import (
	"errors"
	"net/http"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func restError(code int, status int) *discordgo.RESTError {
	err := &discordgo.RESTError{}
	if code != 0 {
		err.Message = &discordgo.APIErrorMessage{Code: code}
	}
	if status != 0 {
		err.Response = &http.Response{StatusCode: status}
	}
	return err
}

func TestMapError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"unknown message", restError(discordgo.ErrCodeUnknownMessage, 0), ErrNotFound},
		{"unknown channel", restError(discordgo.ErrCodeUnknownChannel, 0), ErrNotFound},
		{"missing permissions", restError(discordgo.ErrCodeMissingPermissions, 0), ErrForbidden},
		{"missing access", restError(discordgo.ErrCodeMissingAccess, 0), ErrForbidden},
		{"404 without api code", restError(0, http.StatusNotFound), ErrNotFound},
		{"403 without api code", restError(0, http.StatusForbidden), ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, mapError(tt.err), tt.want)
		})
	}
}

func TestMapErrorPassesThroughNonREST(t *testing.T) {
	plain := errors.New("connection reset")
	got := mapError(plain)

	assert.Equal(t, plain, got)
	assert.NotErrorIs(t, got, ErrNotFound)
	assert.NotErrorIs(t, got, ErrForbidden)
}

func TestMapErrorGenericRESTError(t *testing.T) {
	got := mapError(restError(0, http.StatusBadGateway))

	assert.NotErrorIs(t, got, ErrNotFound)
	assert.NotErrorIs(t, got, ErrForbidden)
}
