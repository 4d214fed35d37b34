package cli

import (
	"bytes"
	"errors"
	"flag"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ittokunvim/cratesio"
	"github.com/ittokunvim/cratesio/art"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommand_HasSubcommands(t *testing.T) {
	cmd := NewRootCommand()
	names := []string{}
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "add-one")
	assert.Contains(t, names, "mix")
}

func TestAddOneCommand(t *testing.T) {
	out, err := execute(t, "add-one", "--", "5", "0", "-1")
	require.NoError(t, err)
	assert.Equal(t, "6\n1\n0\n", out)
}

func TestAddOneCommand_NegativeNumbers(t *testing.T) {
	out, err := execute(t, "add-one", "-1")
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)

	out, err = execute(t, "add-one", "5", "-3", "-100")
	require.NoError(t, err)
	assert.Equal(t, "6\n-2\n-99\n", out)
}

func TestAddOneCommand_NegativeNumbersAroundFlags(t *testing.T) {
	out, err := execute(t, "add-one", "-3", "--overflow", "fail", "4", "-1")
	require.NoError(t, err)
	assert.Equal(t, "-2\n5\n0\n", out)

	out, err = execute(t, "add-one", "--overflow=saturate", "--", "-7")
	require.NoError(t, err)
	assert.Equal(t, "-6\n", out)
}

func TestAddOneCommand_UnknownFlag(t *testing.T) {
	_, err := execute(t, "add-one", "--bogus", "1")
	assert.Error(t, err)
}

func TestAddOneCommand_Help(t *testing.T) {
	out, err := execute(t, "add-one", "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "--overflow")
}

func TestAddOneCommand_RequiresArgs(t *testing.T) {
	_, err := execute(t, "add-one")
	assert.Error(t, err)

	_, err = execute(t, "add-one", "--overflow", "fail")
	assert.Error(t, err)
}

func TestBindGoFlags(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	level := fs.Int("level", 0, "verbosity")

	cmd := NewRootCommand()
	require.NoError(t, BindGoFlags(cmd, fs))
	assert.True(t, fs.Parsed())

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"add-one", "--level", "3", "-1"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, 3, *level)
	assert.Equal(t, "0\n", out.String())

	cmd = NewRootCommand()
	require.NoError(t, BindGoFlags(cmd, flag.NewFlagSet("mix", flag.ContinueOnError)))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"mix", "red", "yellow"})
	assert.NoError(t, cmd.Execute())
}

func TestAddOneCommand_BlankEnvPolicyWraps(t *testing.T) {
	t.Setenv(cratesio.OverflowPolicyEnv, "")
	out, err := execute(t, "add-one", strconv.Itoa(cratesio.MaxInt))
	require.NoError(t, err)
	assert.Equal(t, strconv.Itoa(cratesio.MinInt)+"\n", out)
}

func TestAddOneCommand_InvalidInteger(t *testing.T) {
	out, err := execute(t, "add-one", "1", "x", "2")
	require.Error(t, err)
	assert.True(t, errors.Is(err, cratesio.ErrInvalidArgument))
	assert.Equal(t, "2\n3\n", out)
}

func TestAddOneCommand_OverflowPolicies(t *testing.T) {
	t.Setenv(cratesio.OverflowPolicyEnv, "wrap")
	maxInt := strconv.Itoa(cratesio.MaxInt)

	out, err := execute(t, "add-one", "--overflow", "saturate", maxInt)
	require.NoError(t, err)
	assert.Equal(t, maxInt+"\n", out)

	_, err = execute(t, "add-one", "--overflow", "fail", maxInt)
	assert.True(t, errors.Is(err, cratesio.ErrOverflow))

	_, err = execute(t, "add-one", "--overflow", "clamp", "1")
	assert.True(t, errors.Is(err, cratesio.ErrUnknownPolicy))
}

func TestAddOneCommand_PolicyFromEnv(t *testing.T) {
	t.Setenv(cratesio.OverflowPolicyEnv, "fail")
	maxInt := strconv.Itoa(cratesio.MaxInt)

	_, err := execute(t, "add-one", maxInt)
	assert.True(t, errors.Is(err, cratesio.ErrOverflow))
}

func TestMixCommand(t *testing.T) {
	out, err := execute(t, "mix", "red", "Blue")
	require.NoError(t, err)
	assert.Equal(t, "Purple\n", out)
}

func TestMixCommand_Errors(t *testing.T) {
	_, err := execute(t, "mix", "red", "red")
	assert.True(t, errors.Is(err, art.ErrCannotMix))

	_, err = execute(t, "mix", "red", "green")
	assert.True(t, errors.Is(err, art.ErrUnknownColor))

	_, err = execute(t, "mix", "red")
	assert.Error(t, err)
}
