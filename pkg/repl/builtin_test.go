package repl

import (
	"testing"

	"github.com/sandevgo/replkit/pkg/terminal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuitParser_IgnoresArguments(t *testing.T) {
	for _, args := range []string{"", "now", "with many arguments"} {
		cmd, err := QuitParser[scratch]{}.Parse(args)
		require.NoError(t, err, "args %q", args)

		m := terminal.NewMock()
		outcome, err := cmd.Execute(&Env[scratch]{Terminal: m, State: &scratch{}})
		require.NoError(t, err)
		assert.Equal(t, Stop, outcome, "args %q", args)
		assert.Empty(t, m.Writes(), "quit must not write")
	}
}

func TestHelpParser_IgnoresArguments(t *testing.T) {
	_, err := HelpParser[scratch]{}.Parse("anything at all")
	assert.NoError(t, err)
}

func TestHelp_ListsCommandsInRegistrationOrder(t *testing.T) {
	c := MustCommander[scratch](
		sumParser(),
		echoParser("echo", "e"),
		HelpParser[scratch]{},
		QuitParser[scratch]{},
	)

	cmd, err := c.Decode("help")
	require.NoError(t, err)

	m := terminal.NewMock()
	outcome, err := cmd.Execute(&Env[scratch]{Terminal: m, Registry: c, State: &scratch{}})
	require.NoError(t, err)
	assert.Equal(t, Continue, outcome)

	lines := m.OutputLines()
	require.Len(t, lines, 4, "one line per registered parser, nothing else")
	assert.Contains(t, lines[0], "add")
	assert.Contains(t, lines[1], "echo, e")
	assert.Contains(t, lines[2], "help, h")
	assert.Contains(t, lines[3], "quit, q")
}

func TestHelp_IncludesPurpose(t *testing.T) {
	c := MustCommander[scratch](sumParser(), HelpParser[scratch]{})

	cmd, err := c.Decode("help")
	require.NoError(t, err)

	m := terminal.NewMock()
	_, err = cmd.Execute(&Env[scratch]{Terminal: m, Registry: c, State: &scratch{}})
	require.NoError(t, err)

	lines := m.OutputLines()
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Adds two integers and prints the sum.")
}

func TestHelp_ResolvesViaShorthand(t *testing.T) {
	c := MustCommander[scratch](HelpParser[scratch]{})

	cmd, err := c.Decode("h")
	require.NoError(t, err)

	m := terminal.NewMock()
	_, err = cmd.Execute(&Env[scratch]{Terminal: m, Registry: c, State: &scratch{}})
	require.NoError(t, err)
	assert.Len(t, m.OutputLines(), 1)
}
