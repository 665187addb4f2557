package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	root := newRootCmd()

	for _, name := range []string{"serve", "migrate"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}
	serve, _, _ := root.Find([]string{"serve"})
	assert.NotNil(t, serve.Flags().Lookup("skip-migrations"))
}

func TestMigrateCmd_RejectsUnknownDirection(t *testing.T) {
	tests := [][]string{
		{"migrate"},
		{"migrate", "sideways"},
		{"migrate", "up", "down"},
	}
	for _, args := range tests {
		root := newRootCmd()
		root.SetArgs(args)
		root.SetOut(new(bytes.Buffer))
		root.SetErr(new(bytes.Buffer))

		assert.Error(t, root.Execute(), "args %v", args)
	}
}
