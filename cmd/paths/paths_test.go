package paths_test

import (
	"errors"
	"path/filepath"
	"testing"

	"scadenzade/cmd/paths"
	"scadenzade/cmd/root"
	"scadenzade/internal/parsererror"
	"scadenzade/internal/testfixtures/workspace"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathsCommand_Metadata(t *testing.T) {
	assert.Equal(t, "paths", paths.Cmd.Use)
	assert.Len(t, paths.Cmd.Commands(), 2)
}

func TestPathsShowAndSet(t *testing.T) {
	w := workspace.New(t, root.SetContainer)

	out, err := workspace.Execute(t, paths.Cmd, "show")
	require.NoError(t, err)
	assert.Equal(t, "suppliers: (not set)\nclients:   (not set)\n", out)

	out, err = workspace.Execute(t, paths.Cmd, "set", "--suppliers", w.Suppliers, "--clients", w.Clients)
	require.NoError(t, err)
	assert.Equal(t, "source paths saved\n", out)

	out, err = workspace.Execute(t, paths.Cmd, "show")
	require.NoError(t, err)
	assert.Contains(t, out, "suppliers: "+w.Suppliers)
	assert.Contains(t, out, "clients:   "+w.Clients)
}

func TestPathsSet_RejectsMissingSource(t *testing.T) {
	w := workspace.New(t, root.SetContainer)

	_, err := workspace.Execute(t, paths.Cmd, "set", "-s", w.Suppliers, "-c", filepath.Join(w.Root, "nope"))
	require.Error(t, err)
	var pathErr *parsererror.PathError
	assert.True(t, errors.As(err, &pathErr))

	_, err = workspace.Execute(t, paths.Cmd, "set", "-s", w.Suppliers)
	assert.Error(t, err)

	p, err := w.Container.GetConfigStore().LoadPaths()
	require.NoError(t, err)
	assert.False(t, p.IsComplete())
}
