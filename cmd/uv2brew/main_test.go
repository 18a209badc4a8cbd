package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frederic-klein/uv2brew/internal/lockfile"
)

const lockInput = `version = 1
requires-python = ">=3.12"

[[package]]
name = "foo-bar"
version = "1.0"
sdist = { url = "https://x/y.tar.gz", hash = "sha256:abc123", size = 10 }
wheels = [
    { url = "https://x/y.whl", hash = "sha256:def456", size = 9 },
]

[[package]]
name = "local"
source = { editable = "." }

[[package]]
name = "baz"
sdist = { url = "https://x/baz.tar.gz", hash = "sha256:0099", size = 1 }
`

const lockOutput = `  resource "foo_bar" do
    url "https://x/y.tar.gz"
    sha256 "abc123"
  end

  resource "baz" do
    url "https://x/baz.tar.gz"
    sha256 "0099"
  end

`

func run(t *testing.T, input string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(strings.NewReader(input), &stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRun(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty input", input: "", want: ""},
		{name: "preamble only", input: "version = 1\n\nrevision = 2\n", want: ""},
		{
			name:  "single package",
			input: "[[package]]\nname = \"foo-bar\"\nsdist = { url = \"https://x/y.tar.gz\", hash = \"sha256:abc123\", size = 10 }\n",
			want:  "  resource \"foo_bar\" do\n    url \"https://x/y.tar.gz\"\n    sha256 \"abc123\"\n  end\n\n",
		},
		{name: "lockfile", input: lockInput, want: lockOutput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, err := run(t, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stdout)
			assert.Empty(t, stderr)
		})
	}
}

func TestRun_Verbose(t *testing.T) {
	for _, flag := range []string{"--verbose", "-v"} {
		t.Run(flag, func(t *testing.T) {
			stdout, stderr, err := run(t, lockInput, flag)
			require.NoError(t, err)
			assert.Equal(t, lockOutput, stdout)
			assert.Contains(t, stderr, "parsing lockfile")
			assert.Contains(t, stderr, "component=walker")
		})
	}
}

func TestRun_VerboseFromEnvironment(t *testing.T) {
	t.Setenv("UV2BREW_VERBOSE", "true")

	stdout, stderr, err := run(t, lockInput)
	require.NoError(t, err)
	assert.Equal(t, lockOutput, stdout)
	assert.NotEmpty(t, stderr)
}

func TestRun_Malformed(t *testing.T) {
	input := lockInput + "[[package]]\nversion = \"2.0\"\n\n[[package]]\nname = \"after\"\n"

	stdout, _, err := run(t, input)
	require.Error(t, err)
	assert.ErrorIs(t, err, lockfile.ErrMalformed)
	// Blocks before the bad record are already written.
	assert.Equal(t, lockOutput, stdout)
}

func TestRun_RejectsArguments(t *testing.T) {
	stdout, _, err := run(t, lockInput, "uv.lock")
	require.Error(t, err)
	assert.Empty(t, stdout)
}
