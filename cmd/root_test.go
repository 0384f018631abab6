package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_ShowsHelpWithoutSubcommand(t *testing.T) {
	cmd := newRootCmd()

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.NoError(t, err)

	assert.Contains(t, out.String(), "twintrim")
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	cmd := newRootCmd()

	for _, name := range []string{logFileFlagName, verboseFlagName, noColorFlagName} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}
}
