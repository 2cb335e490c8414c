package cmd_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"restaurant/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_Subcommands(t *testing.T) {
	root := cmd.NewRootCmd()

	for _, name := range []string{"serve", "migrate"} {
		sub, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, sub.Name())
	}

	serve, _, err := root.Find([]string{"serve"})
	require.NoError(t, err)
	assert.NotNil(t, serve.Flags().Lookup("migrate"))
	assert.NotNil(t, root.PersistentFlags().Lookup("env-file"))
}

func TestRootCommand_Help(t *testing.T) {
	root := cmd.NewRootCmd()
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetArgs([]string{"--help"})

	require.NoError(t, root.Execute())
	assert.Contains(t, buf.String(), "serve")
	assert.Contains(t, buf.String(), "migrate")
}

func TestMigrateCommand_UnreachableDatabase(t *testing.T) {
	t.Setenv("DB_HOST", "127.0.0.1")
	t.Setenv("DB_PORT", "1")

	root := cmd.NewRootCmd()
	root.SetOut(new(bytes.Buffer))
	root.SetArgs([]string{"migrate", "--env-file", filepath.Join(t.TempDir(), "missing.env")})

	assert.Error(t, root.Execute())
}

func TestServeCommand_InvalidConfig(t *testing.T) {
	t.Setenv("DB_MAX_OPEN_CONNS", "many")

	root := cmd.NewRootCmd()
	root.SetArgs([]string{"serve", "--env-file", filepath.Join(t.TempDir(), "missing.env")})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
}
