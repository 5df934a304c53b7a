package models

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMessageValidation(t *testing.T) {
	tests := []struct {
		name    string
		message *Message
		wantErr bool
	}{
		{
			name:    "valid message",
			message: &Message{ID: 1, Text: "hello there", Date: time.Now()},
			wantErr: false,
		},
		{
			name:    "missing text",
			message: &Message{ID: 1, Date: time.Now()},
			wantErr: true,
		},
		{
			name:    "text at limit",
			message: &Message{ID: 1, Text: strings.Repeat("m", 250), Date: time.Now()},
			wantErr: false,
		},
		{
			name:    "text too long",
			message: &Message{ID: 1, Text: strings.Repeat("m", 251), Date: time.Now()},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.message.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMessageBeforeCreate(t *testing.T) {
	msg := &Message{Text: "hi"}

	assert.True(t, msg.Date.IsZero())
	msg.BeforeCreate()
	assert.False(t, msg.Date.IsZero())
}
