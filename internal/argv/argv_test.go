package argv

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProgram() *Program {
	return &Program{
		Name: "tool",
		Flags: []Flag{
			{ID: 'R', Description: "Match with regex.", ValueName: "REGEX"},
			{ID: 'r', Description: "Search recursively."},
			{ID: 'n', Description: "Print line number."},
			{ID: 'e', Description: "Exclude files/directories.", ValueName: "SUBSTR"},
			{ID: 'p', Description: "Specify paths to search into.", ValueName: "PATH"},
		},
		Long:     []LongFlag{{Name: "color", Description: "Colour output.", ValueName: "WHEN"}},
		Examples: []string{"tool 'foreach' -rn"},
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		free   []string
		flags  []rune
		values map[rune][]string
	}{
		{
			name: "free arguments only",
			args: []string{"foo", "bar"},
			free: []string{"foo", "bar"},
		},
		{
			name:  "clustered switches keep following values free",
			args:  []string{"foo", "-rn", "bar"},
			free:  []string{"foo", "bar"},
			flags: []rune{'r', 'n'},
		},
		{
			name:   "value flag owns values until next flag",
			args:   []string{"foo", "-p", "/a", "/b", "-r"},
			free:   []string{"foo"},
			flags:  []rune{'p', 'r'},
			values: map[rune][]string{'p': {"/a", "/b"}},
		},
		{
			name:   "last flag of a cluster owns values",
			args:   []string{"-rR", "a.*", "b"},
			flags:  []rune{'r', 'R'},
			values: map[rune][]string{'R': {"a.*", "b"}},
		},
		{
			name:   "repeated value flag accumulates",
			args:   []string{"x", "-e", "one", "-r", "-e", "two"},
			free:   []string{"x"},
			flags:  []rune{'e', 'r'},
			values: map[rune][]string{'e': {"one", "two"}},
		},
		{
			name:   "double dash ends flag parsing",
			args:   []string{"-p", "/a", "--", "-r", "-x"},
			free:   []string{"-r", "-x"},
			flags:  []rune{'p'},
			values: map[rune][]string{'p': {"/a"}},
		},
		{
			name: "lone dash is a value",
			args: []string{"-"},
			free: []string{"-"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := testProgram().Parse(tt.args)
			require.NoError(t, err)

			assert.Equal(t, tt.free, parsed.Free)

			if tt.flags == nil {
				assert.Empty(t, parsed.Flags())
			} else {
				assert.Equal(t, tt.flags, parsed.Flags())
			}

			for _, id := range tt.flags {
				assert.True(t, parsed.Has(id))
				assert.Equal(t, tt.values[id], parsed.Values(id), "values of -%c", id)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"unknown short flag", []string{"foo", "-z"}, ErrUnknownFlag},
		{"unknown flag inside cluster", []string{"-rzn"}, ErrUnknownFlag},
		{"unknown long flag", []string{"--nope"}, ErrUnknownFlag},
		{"value flag at end", []string{"foo", "-p"}, ErrMissingValues},
		{"value flag followed by flag", []string{"foo", "-p", "-r"}, ErrMissingValues},
		{"value flag not last in cluster", []string{"foo", "-pr", "x"}, ErrMissingValues},
		{"value flag before double dash", []string{"-R", "--", "x"}, ErrMissingValues},
		{"help", []string{"foo", "--help"}, ErrHelp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := testProgram().Parse(tt.args)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParse_LongFlags(t *testing.T) {
	parsed, err := testProgram().Parse([]string{"foo", "--color=never", "bar"})
	require.NoError(t, err)

	value, ok := parsed.Long("color")
	assert.True(t, ok)
	assert.Equal(t, "never", value)
	assert.Equal(t, []string{"foo", "bar"}, parsed.Free)

	_, ok = parsed.Long("missing")
	assert.False(t, ok)
}

func TestParse_LongFlagReleasesValueOwner(t *testing.T) {
	parsed, err := testProgram().Parse([]string{"-p", "/a", "--color=always", "foo"})
	require.NoError(t, err)

	assert.Equal(t, []string{"/a"}, parsed.Values('p'))
	assert.Equal(t, []string{"foo"}, parsed.Free)
}

func TestUsage(t *testing.T) {
	var out bytes.Buffer
	testProgram().Usage(&out)

	text := out.String()
	assert.Contains(t, text, "USAGE: tool [VALUES] [OPTIONS] [ARGS]")
	assert.Contains(t, text, "OPTIONS:")
	assert.Contains(t, text, "-R REGEX...")
	assert.Contains(t, text, "Search recursively.")
	assert.Contains(t, text, "--color=WHEN")
	assert.Contains(t, text, "--help")
	assert.Contains(t, text, "EXAMPLES:")
	assert.Contains(t, text, "tool 'foreach' -rn")
}

func TestUsageError(t *testing.T) {
	_, err := testProgram().Parse([]string{"-z"})
	require.Error(t, err)

	usageErr := &UsageError{Program: testProgram(), Err: err}
	assert.ErrorIs(t, usageErr, ErrUnknownFlag)
	assert.Equal(t, "tool: unknown flag: -z", usageErr.Error())
}
