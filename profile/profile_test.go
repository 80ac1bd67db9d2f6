package profile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.neoscout.dev/neoscout/profile"
)

func TestNewConfig(t *testing.T) {
	t.Parallel()

	p := profile.NewConfig()

	// All profile paths should be empty (disabled).
	assert.Empty(t, p.CPUProfile)
	assert.Empty(t, p.HeapProfile)
	assert.Empty(t, p.AllocsProfile)
	assert.Empty(t, p.GoroutineProfile)
	assert.Empty(t, p.ThreadcreateProfile)
	assert.Empty(t, p.BlockProfile)
	assert.Empty(t, p.MutexProfile)

	// Rate fields should be zero.
	assert.Zero(t, p.MemProfileRate)
	assert.Zero(t, p.BlockProfileRate)
	assert.Zero(t, p.MutexProfileFraction)
}

func TestArgs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"--cpu-profile", "profile/file1.prof"},
		profile.Args("profile/file1.prof"))
}

func TestConfig_RegisterFlags(t *testing.T) {
	t.Parallel()

	p := profile.NewConfig()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)

	p.RegisterFlags(flags)

	// Verify all flags are registered.
	wantFlags := []string{
		"cpu-profile",
		"heap-profile",
		"allocs-profile",
		"goroutine-profile",
		"threadcreate-profile",
		"block-profile",
		"mutex-profile",
		"mem-profile-rate",
		"block-profile-rate",
		"mutex-profile-fraction",
	}

	for _, name := range wantFlags {
		flag := flags.Lookup(name)
		require.NotNil(t, flag, "flag %s should be registered", name)
	}
}

func TestConfig_RegisterFlags_Parsing(t *testing.T) {
	t.Parallel()

	p := profile.NewConfig()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)

	p.RegisterFlags(flags)

	err := flags.Parse([]string{
		"--cpu-profile=cpu.prof",
		"--heap-profile=heap.prof",
		"--mem-profile-rate=1024",
		"--mutex-profile-fraction=10",
	})
	require.NoError(t, err)

	assert.Equal(t, "cpu.prof", p.CPUProfile)
	assert.Equal(t, "heap.prof", p.HeapProfile)
	assert.Equal(t, 1024, p.MemProfileRate)
	assert.Equal(t, 10, p.MutexProfileFraction)

	// Defaults for the rest.
	assert.Empty(t, p.BlockProfile)
	assert.Equal(t, 1, p.BlockProfileRate)
}

func TestConfig_RegisterCompletions(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		flag string
	}{
		"mem-profile-rate completions": {
			flag: "mem-profile-rate",
		},
		"block-profile-rate completions": {
			flag: "block-profile-rate",
		},
		"mutex-profile-fraction completions": {
			flag: "mutex-profile-fraction",
		},
	}

	cfg := profile.NewConfig()

	cmd := &cobra.Command{Use: "test"}
	cfg.RegisterFlags(cmd.Flags())

	err := cfg.RegisterCompletions(cmd)
	require.NoError(t, err)

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			completionFn, ok := cmd.GetFlagCompletionFunc(tc.flag)
			require.True(t, ok)

			values, directive := completionFn(cmd, nil, "")
			assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
			assert.Nil(t, values)
		})
	}
}

func TestProfiler_SnapshotProfiles(t *testing.T) {
	// Not parallel: profiling rates are process-global.
	dir := t.TempDir()

	cfg := profile.NewConfig()
	cfg.HeapProfile = filepath.Join(dir, "heap.prof")
	cfg.GoroutineProfile = filepath.Join(dir, "goroutine.prof")
	cfg.MemProfileRate = 524288
	cfg.MutexProfileFraction = 1
	cfg.BlockProfileRate = 1

	p := cfg.NewProfiler()
	require.NoError(t, p.Start())
	require.NoError(t, p.Stop())

	for _, path := range []string{cfg.HeapProfile, cfg.GoroutineProfile} {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}
}

func TestProfiler_CPUProfile(t *testing.T) {
	// Not parallel: only one CPU profile may be active per process.
	dir := t.TempDir()

	cfg := profile.NewConfig()
	cfg.CPUProfile = filepath.Join(dir, "cpu.prof")
	cfg.MemProfileRate = 524288
	cfg.MutexProfileFraction = 1
	cfg.BlockProfileRate = 1

	p := cfg.NewProfiler()
	require.NoError(t, p.Start())
	require.NoError(t, p.Stop())

	info, err := os.Stat(cfg.CPUProfile)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestProfiler_StartErrorOnBadPath(t *testing.T) {
	// Not parallel: mutates process-global profiling rates.
	cfg := profile.NewConfig()
	cfg.CPUProfile = filepath.Join(t.TempDir(), "missing", "cpu.prof")
	cfg.MemProfileRate = 524288
	cfg.MutexProfileFraction = 1
	cfg.BlockProfileRate = 1

	p := cfg.NewProfiler()
	require.Error(t, p.Start())
}
