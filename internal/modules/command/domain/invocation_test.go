package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		text string
		want Parsed
	}{
		{"/ban", Parsed{Command: CommandBan, Args: []string{}}},
		{"/lock links", Parsed{Command: CommandLock, Args: []string{"links"}}},
		{"/LOCK   media  ", Parsed{Command: CommandLock, Args: []string{"media"}}},
		{"/kick@guard_bot 42", Parsed{Command: CommandKick, Mention: "guard_bot", Args: []string{"42"}}},
		{"/locks", Parsed{Command: CommandLocks, Args: []string{}}},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, ok := Parse(tt.text)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRejectsOtherText(t *testing.T) {
	for _, text := range []string{"", "hello", "ban me", "/banana", "/"} {
		_, ok := Parse(text)
		assert.False(t, ok, text)
	}
}
