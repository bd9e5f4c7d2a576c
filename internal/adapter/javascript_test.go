package adapter_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/dtm/internal/adapter"
	"github.com/mouse-blink/dtm/internal/adapter/mocks"
	"github.com/mouse-blink/dtm/internal/logging"
	m "github.com/mouse-blink/dtm/internal/model"
)

func npmViewSpec(dir, pkg string) adapter.CommandSpec {
	return adapter.CommandSpec{Dir: dir, Name: "npm", Args: []string{"view", pkg, "versions", "--json"}}
}

func TestJSOracle_EnumerateVersions(t *testing.T) {
	tests := []struct {
		name   string
		result adapter.CommandResult
		runErr error
		want   []string
	}{
		{
			name:   "array of versions",
			result: adapter.CommandResult{Stdout: `["1.0.0", "1.3.0", "1.1.0", "1.3.0-beta.1"]`},
			want:   []string{"1.0.0", "1.1.0", "1.3.0-beta.1", "1.3.0"},
		},
		{
			name:   "single published version",
			result: adapter.CommandResult{Stdout: `"0.1.0"` + "\n"},
			want:   []string{"0.1.0"},
		},
		{
			name:   "unknown package",
			result: adapter.CommandResult{Stderr: "npm ERR! code E404\nnpm ERR! 404 Not Found - GET https://registry.npmjs.org/ghost"},
			runErr: nonZeroExit("npm"),
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := mocks.NewMockCommandRunner(t)
			runner.EXPECT().Run(mock.Anything, npmViewSpec("", "left-pad")).Return(tt.result, tt.runErr)

			oracle := adapter.NewJSOracle("left-pad", nil, runner, "npm", logging.Nop())

			versions, err := oracle.EnumerateVersions(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, versions.Strings())
		})
	}

	t.Run("npm failure is a registry error", func(t *testing.T) {
		runner := mocks.NewMockCommandRunner(t)
		runner.EXPECT().Run(mock.Anything, npmViewSpec("", "left-pad")).
			Return(adapter.CommandResult{Stderr: "npm ERR! code ECONNREFUSED"}, nonZeroExit("npm")).Once()

		oracle := adapter.NewJSOracle("left-pad", nil, runner, "npm", logging.Nop())

		_, err := oracle.EnumerateVersions(context.Background())

		var regErr *m.RegistryError
		require.ErrorAs(t, err, &regErr)
		assert.Equal(t, m.JavaScript, regErr.Ecosystem)
	})

	t.Run("garbage output is a registry error", func(t *testing.T) {
		runner := mocks.NewMockCommandRunner(t)
		runner.EXPECT().Run(mock.Anything, npmViewSpec("", "left-pad")).
			Return(adapter.CommandResult{Stdout: "<html>"}, nil).Once()

		oracle := adapter.NewJSOracle("left-pad", nil, runner, "npm", logging.Nop())

		_, err := oracle.EnumerateVersions(context.Background())

		var regErr *m.RegistryError
		assert.ErrorAs(t, err, &regErr)
	})
}

func TestJSOracle_InstallVersion(t *testing.T) {
	dir := t.TempDir()
	env := adapter.NewEnvironment("project", dir, false)
	runner := mocks.NewMockCommandRunner(t)

	runner.EXPECT().Run(mock.Anything, adapter.CommandSpec{
		Dir:  dir,
		Name: "npm",
		Args: []string{"install", "react@18.2.0", "--no-save", "--no-audit", "--no-fund"},
	}).Return(adapter.CommandResult{}, nil).Once()
	runner.EXPECT().Run(mock.Anything, adapter.CommandSpec{
		Dir:  dir,
		Name: "npm",
		Args: []string{"install", "react@99.0.0", "--no-save", "--no-audit", "--no-fund"},
	}).Return(adapter.CommandResult{Stderr: "npm ERR! code ETARGET"}, nonZeroExit("npm")).Once()

	oracle := adapter.NewJSOracle("react", env, runner, "npm", logging.Nop())

	require.NoError(t, oracle.InstallVersion(context.Background(), "18.2.0"))

	err := oracle.InstallVersion(context.Background(), "99.0.0")

	var installErr *m.InstallError
	require.ErrorAs(t, err, &installErr)
	assert.Equal(t, "react", installErr.Package)
	assert.Contains(t, installErr.Output, "ETARGET")
}

func TestJSOracle_RunTests(t *testing.T) {
	dir := t.TempDir()
	env := adapter.NewEnvironment("project", dir, false)
	runner := mocks.NewMockCommandRunner(t)

	runner.EXPECT().Run(mock.Anything, adapter.CommandSpec{Dir: dir, Name: "npm", Args: []string{"test", "--silent"}}).
		Return(adapter.CommandResult{Stdout: "Tests: 1 failed"}, nonZeroExit("npm")).Once()

	oracle := adapter.NewJSOracle("react", env, runner, "npm", logging.Nop())

	run, err := oracle.RunTests(context.Background(), "npm test --silent")
	require.NoError(t, err)
	assert.False(t, run.Passed)
	assert.Equal(t, "Tests: 1 failed", run.Output)
}
