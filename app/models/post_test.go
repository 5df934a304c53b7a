package models

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPostValidation(t *testing.T) {
	tests := []struct {
		name    string
		post    *Post
		wantErr bool
	}{
		{
			name: "valid post",
			post: &Post{
				ID:      1,
				UserID:  1,
				Author:  "alice",
				Comment: "Hello from the guestbook",
				Created: time.Now(),
			},
			wantErr: false,
		},
		{
			name: "missing comment",
			post: &Post{
				ID:      1,
				UserID:  1,
				Author:  "alice",
				Created: time.Now(),
			},
			wantErr: true,
		},
		{
			name: "comment too long",
			post: &Post{
				ID:      1,
				UserID:  1,
				Author:  "alice",
				Comment: strings.Repeat("x", 501),
				Created: time.Now(),
			},
			wantErr: true,
		},
		{
			name: "missing author",
			post: &Post{
				ID:      1,
				UserID:  1,
				Comment: "Hello",
				Created: time.Now(),
			},
			wantErr: true,
		},
		{
			name: "missing user link",
			post: &Post{
				ID:      1,
				Author:  "alice",
				Comment: "Hello",
				Created: time.Now(),
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.post.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPostBeforeCreate(t *testing.T) {
	post := &Post{
		UserID:  1,
		Author:  "alice",
		Comment: "Hello",
	}

	assert.True(t, post.Created.IsZero())
	post.BeforeCreate()
	assert.False(t, post.Created.IsZero())
}
