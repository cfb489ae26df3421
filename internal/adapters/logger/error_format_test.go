package logger_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/imagetool/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestCollectErrorEntries(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantMessages []string
	}{
		{
			name:         "standard error",
			err:          errors.New("simple error"),
			wantMessages: []string{"simple error"},
		},
		{
			name:         "wrapped chain",
			err:          zerr.Wrap(zerr.Wrap(errors.New("root cause"), "middle layer"), "outer layer"),
			wantMessages: []string{"outer layer", "middle layer", "root cause"},
		},
		{
			name:         "metadata on one link",
			err:          zerr.With(zerr.With(zerr.New("base error"), "key1", "value1"), "key2", 42),
			wantMessages: []string{"base error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := logger.CollectErrorEntries(tt.err)

			messages := make([]string, 0, len(entries))
			for _, e := range entries {
				messages = append(messages, e.Message)
			}
			assert.Equal(t, tt.wantMessages, messages)
		})
	}

	t.Run("metadata is collected", func(t *testing.T) {
		entries := logger.CollectErrorEntries(zerr.With(zerr.New("base"), "path", "/tmp/x"))
		assert.Len(t, entries, 1)
		assert.Equal(t, "/tmp/x", entries[0].Metadata["path"])
	})

	t.Run("nil error", func(t *testing.T) {
		assert.Empty(t, logger.CollectErrorEntries(nil))
	})
}

func TestFormatErrorEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []logger.ErrorEntry
		want    string
	}{
		{
			name:    "single entry",
			entries: []logger.ErrorEntry{{Message: "single error"}},
			want:    "Error: single error",
		},
		{
			name: "causes",
			entries: []logger.ErrorEntry{
				{Message: "first"},
				{Message: "second"},
				{Message: "third"},
			},
			want: "Error: first\n\n  Caused by:\n    → second\n    → third",
		},
		{
			name: "metadata sorted on main error",
			entries: []logger.ErrorEntry{
				{Message: "error", Metadata: map[string]any{"tag": "x", "line": 3}},
			},
			want: "Error: error\n       line: 3\n       tag: x",
		},
		{
			name: "metadata on cause",
			entries: []logger.ErrorEntry{
				{Message: "main"},
				{Message: "cause", Metadata: map[string]any{"path": "/a"}},
			},
			want: "Error: main\n\n  Caused by:\n    → cause\n      path: /a",
		},
		{
			name:    "multiline message",
			entries: []logger.ErrorEntry{{Message: "line1\nline2"}},
			want:    "Error: line1\n       line2",
		},
		{
			name:    "empty",
			entries: []logger.ErrorEntry{},
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.FormatErrorEntries(tt.entries))
		})
	}
}
