package daemon_test

import (
	"context"
	"testing"
	"time"

	"github.com/ironsmile/musicmustard/src/assert"
	"github.com/ironsmile/musicmustard/src/daemon"
)

// TestParseFlags checks that every flag ends up in its field.
func TestParseFlags(t *testing.T) {
	flags, err := daemon.ParseFlags("musicmustard", []string{
		"-config", "/etc/musicmustard.json",
		"-listen", ":9000",
		"-log-file", "/var/log/musicmustard.log",
		"-pidfile", "/run/musicmustard.pid",
		"-v",
	})
	assert.NilErr(t, err)

	assert.Equal(t, "/etc/musicmustard.json", flags.ConfigFile)
	assert.Equal(t, ":9000", flags.Listen)
	assert.Equal(t, "/var/log/musicmustard.log", flags.LogFile)
	assert.Equal(t, "/run/musicmustard.pid", flags.PidFile)
	assert.Equal(t, true, flags.ShowVersion)

	defaults, err := daemon.ParseFlags("musicmustard", nil)
	assert.NilErr(t, err)
	assert.Equal(t, daemon.Flags{}, defaults)

	_, err = daemon.ParseFlags("musicmustard", []string{"-no-such-flag"})
	assert.NotNilErr(t, err, "unknown flag")

	_, err = daemon.ParseFlags("musicmustard", []string{"extra"})
	assert.NotNilErr(t, err, "positional arguments")
}

// TestStopContext makes sure the returned context follows its parent.
func TestStopContext(t *testing.T) {
	parent, cancelParent := context.WithCancel(context.Background())
	ctx, stop := daemon.StopContext(parent)
	defer stop()

	cancelParent()

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatalf("stop context was not done after its parent")
	}
}
