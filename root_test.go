package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_Version(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd(strings.NewReader(""), &out)
	cmd.SetArgs([]string{"--version"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, programName+" v"+version+"\n", out.String())
}

func TestRootCmd_PlaysGame(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no args", args: []string{}},
		{name: "positional args are ignored", args: []string{"extra", "words"}},
		{name: "unknown flag is ignored", args: []string{"--difficulty=hard"}},
		{name: "long help flag is ignored", args: []string{"--help"}},
		{name: "short help flag is ignored", args: []string{"-h"}},
		{name: "help with a value is ignored", args: []string{"--help=true", "extra"}},
	}

	// Every letter once: the game ends in a win or a loss whatever word is drawn.
	input := "Ada\n" + strings.Join(strings.Split("etaoinshrdlucmfwypvbgkjqxz", ""), "\n") + "\n"

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			cmd := newRootCmd(strings.NewReader(input), &out)
			cmd.SetArgs(tt.args)

			require.NoError(t, cmd.Execute())
			got := out.String()
			assert.Contains(t, got, "What's your name?")
			assert.NotContains(t, got, "Usage:")
			assert.True(t,
				strings.Contains(got, "Congratulations Ada") || strings.Contains(got, "Sorry Ada"),
				"game did not finish: %s", got)
		})
	}
}

func TestRootCmd_EOF(t *testing.T) {
	cmd := newRootCmd(strings.NewReader("Ada\n"), io.Discard)
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.ErrorIs(t, err, io.EOF)
}

func TestRootCmd_BadConfig(t *testing.T) {
	cmd := newRootCmd(strings.NewReader(""), io.Discard)
	cmd.SetArgs([]string{"--log-format=xml"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}
