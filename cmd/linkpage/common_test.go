package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommonOptions_ApplyToContext(t *testing.T) {
	t.Parallel()

	t.Run("with timeout", func(t *testing.T) {
		t.Parallel()
		opts := CommonOptions{Timeout: 100 * time.Millisecond}
		ctx, cancel := opts.ApplyToContext(context.Background())
		defer cancel()

		deadline, ok := ctx.Deadline()
		assert.True(t, ok)
		assert.WithinDuration(t, time.Now().Add(100*time.Millisecond), deadline, 10*time.Millisecond)
	})

	t.Run("no timeout", func(t *testing.T) {
		t.Parallel()
		opts := CommonOptions{Timeout: 0}
		ctx, cancel := opts.ApplyToContext(context.Background())
		defer cancel()

		_, ok := ctx.Deadline()
		assert.False(t, ok)
	})
}

func TestCommonOptions_ValidateFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		opts    CommonOptions
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid options",
			opts:    DefaultCommonOptions("html", "html", "json"),
			wantErr: false,
		},
		{
			name: "invalid format",
			opts: func() CommonOptions {
				o := DefaultCommonOptions("html", "html", "json")
				o.Format = "xml"
				return o
			}(),
			wantErr: true,
			errMsg:  "invalid format: xml (valid: html, json)",
		},
		{
			name: "negative timeout",
			opts: func() CommonOptions {
				o := DefaultCommonOptions("html", "html")
				o.Timeout = -time.Second
				return o
			}(),
			wantErr: true,
			errMsg:  "--timeout must not be negative",
		},
		{
			name: "bad filter",
			opts: func() CommonOptions {
				o := DefaultCommonOptions("html", "html")
				o.Filter = "id =="
				return o
			}(),
			wantErr: true,
		},
		{
			name: "good filter",
			opts: func() CommonOptions {
				o := DefaultCommonOptions("html", "html")
				o.Filter = "order < 3"
				return o
			}(),
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.opts.ValidateFlags()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			if tt.errMsg != "" {
				assert.Equal(t, tt.errMsg, err.Error())
			}
		})
	}
}

func TestCommonOptions_OpenOutput(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "page.html")
	opts := CommonOptions{Output: path}

	w, closeOutput, err := opts.OpenOutput()
	require.NoError(t, err)
	_, err = w.Write([]byte("<html>"))
	require.NoError(t, err)
	require.NoError(t, closeOutput())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<html>", string(data))
	assert.False(t, opts.WritesToTerminal())
}

func TestOverridesFrom_ArgumentWins(t *testing.T) {
	t.Setenv("LINKPAGE_DOCUMENT", "https://env.example.com")
	initConfig()

	assert.Equal(t, "https://env.example.com", overridesFrom(nil).Document)
	assert.Equal(t, "local.json", overridesFrom([]string{"local.json"}).Document)
}
