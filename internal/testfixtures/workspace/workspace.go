// Package workspace builds temporary installations for command tests.
package workspace

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"scadenzade/internal/config"
	"scadenzade/internal/container"
	"scadenzade/internal/logging"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Workspace is a temporary installation: source directories for both groups
// and a container whose data and store directories live under Root.
type Workspace struct {
	Root      string
	Suppliers string
	Clients   string
	Config    *config.Config
	Logger    *logging.MockLogger
	Container *container.Container
}

// Now is the clock of every Workspace container.
func Now() time.Time {
	return time.Date(2025, time.September, 1, 12, 0, 0, 0, time.UTC)
}

// New builds a Workspace with default configuration. install receives the
// container, and nil again when the test ends.
func New(t testing.TB, install func(*container.Container)) *Workspace {
	t.Helper()
	dir := t.TempDir()
	w := &Workspace{
		Root:      dir,
		Suppliers: filepath.Join(dir, "in", "suppliers"),
		Clients:   filepath.Join(dir, "in", "clients"),
		Config:    config.Default(),
		Logger:    logging.NewMockLogger(),
	}
	for _, d := range []string{w.Suppliers, w.Clients} {
		if err := os.MkdirAll(d, 0750); err != nil {
			t.Fatalf("create %s: %v", d, err)
		}
	}
	w.Config.Data.Directory = filepath.Join(dir, "data_box")
	w.Config.Store.Directory = filepath.Join(dir, "config")

	c, err := container.NewContainer(w.Config,
		container.WithLogger(w.Logger),
		container.WithClock(Now))
	if err != nil {
		t.Fatalf("create container: %v", err)
	}
	w.Container = c
	if install != nil {
		install(c)
		t.Cleanup(func() { install(nil) })
	}
	return w
}

// Execute runs cmd with args and returns everything it printed. Flags are
// reset to their defaults first, so values do not leak between tests.
func Execute(t testing.TB, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	ResetFlags(cmd)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// ResetFlags restores every flag of cmd and its subcommands to its default.
func ResetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
	for _, sub := range cmd.Commands() {
		ResetFlags(sub)
	}
}
