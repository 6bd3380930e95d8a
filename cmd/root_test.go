package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"rsearch.dev/pkg/rsearch/internal/controller"
	"rsearch.dev/pkg/rsearch/internal/domain"
	domainmocks "rsearch.dev/pkg/rsearch/internal/domain/mocks"
	m "rsearch.dev/pkg/rsearch/internal/model"
)

// useTestEnv points logging at a temp file and swaps in a mock workflow.
func useTestEnv(t *testing.T) *domainmocks.MockWorkflow {
	t.Helper()

	viper.Set(logFilenameKey, filepath.Join(t.TempDir(), "rsearch.log"))
	t.Cleanup(func() { viper.Set(logFilenameKey, defaultLogFilename()) })

	mockWorkflow := domainmocks.NewMockWorkflow(t)

	originalWorkflow := workflow
	workflow = mockWorkflow
	t.Cleanup(func() { workflow = originalWorkflow })

	return mockWorkflow
}

func TestParsePaths(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []m.Path
	}{
		{"empty", []string{}, []m.Path{}},
		{"single", []string{"src"}, []m.Path{m.Path("src")}},
		{
			"multiple",
			[]string{"./cmd", "./pkg", "./internal"},
			[]m.Path{m.Path("./cmd"), m.Path("./pkg"), m.Path("./internal")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parsePaths(tt.args)
			require.Len(t, got, len(tt.want))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()
	assert.Equal(t, "rsearch", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, rootLongDescription, cmd.Long)

	for _, name := range []string{colorKey, logFileFlagName, verboseFlagName} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}
}

func TestRootCmd_HelpOutput(t *testing.T) {
	useTestEnv(t)

	cmd := newRootCmd()
	output := &bytes.Buffer{}
	cmd.SetOut(output)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, output.String(), "rsearch bundles small Unix-style file tools")
}

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, sub := range rootCmd.Commands() {
		names[sub.Name()] = true
	}

	for _, want := range []string{"grep", "find", "cat", "ls", "init", "version"} {
		assert.True(t, names[want], want)
	}
}

func TestApplyColorMode(t *testing.T) {
	require.NoError(t, applyColorMode("never"))
	require.NoError(t, applyColorMode(""))
	require.Error(t, applyColorMode("rainbow"))

	t.Cleanup(func() { simpleUI.SetColorMode(controller.ColorAuto) })
}

func TestCatCmd(t *testing.T) {
	mockWorkflow := useTestEnv(t)

	cmd := newRootCmd()
	cmd.AddCommand(newCatCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	mockWorkflow.On("Cat", mock.Anything, domain.CatArgs{Paths: []m.Path{"a.txt", "b.txt"}}).Return(nil).Once()

	cmd.SetArgs([]string{"cat", "a.txt", "b.txt"})
	require.NoError(t, cmd.Execute())
}

func TestCatCmd_RequiresFiles(t *testing.T) {
	useTestEnv(t)

	cmd := newRootCmd()
	cmd.AddCommand(newCatCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{"cat"})
	require.Error(t, cmd.Execute())
}

func TestLsCmd(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want m.Path
	}{
		{"defaults to current directory", []string{"ls"}, "."},
		{"explicit directory", []string{"ls", "src"}, "src"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWorkflow := useTestEnv(t)

			cmd := newRootCmd()
			cmd.AddCommand(newLsCmd())
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})

			mockWorkflow.On("List", mock.Anything, domain.ListArgs{Path: tt.want}).Return(nil).Once()

			cmd.SetArgs(tt.args)
			require.NoError(t, cmd.Execute())
		})
	}
}
