package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markstos/tmux-xpanes/errors"
	"github.com/markstos/tmux-xpanes/pkg/layout"
)

func mustParse(t *testing.T, argv ...string) (Config, []string) {
	t.Helper()
	cfg, pos, err := Parse(argv)
	require.NoError(t, err)
	return cfg, pos
}

func TestParseEmpty(t *testing.T) {
	cfg, pos := mustParse(t)
	assert.Equal(t, Config{}, cfg)
	assert.Empty(t, pos)
}

func TestParseFlags(t *testing.T) {
	testCases := []struct {
		name  string
		argv  []string
		check func(t *testing.T, cfg Config)
	}{
		{"desync short", []string{"-d", "a"}, func(t *testing.T, cfg Config) {
			assert.True(t, cfg.Desync)
		}},
		{"desync long", []string{"--desync", "a"}, func(t *testing.T, cfg Config) {
			assert.True(t, cfg.Desync)
		}},
		{"execute as-is", []string{"-e", "ls"}, func(t *testing.T, cfg Config) {
			assert.True(t, cfg.ExecuteAsIs)
			assert.True(t, cfg.CommandProducing())
			assert.Equal(t, "-e", cfg.CommandOption)
		}},
		{"dry run", []string{"--dry-run", "a"}, func(t *testing.T, cfg Config) {
			assert.True(t, cfg.DryRun)
		}},
		{"stay", []string{"--stay", "a"}, func(t *testing.T, cfg Config) {
			assert.True(t, cfg.Stay)
		}},
		{"log without directory", []string{"--log", "a"}, func(t *testing.T, cfg Config) {
			assert.True(t, cfg.LogEnabled)
			assert.Empty(t, cfg.LogDir)
		}},
		{"log with directory", []string{"--log=/tmp/capture", "a"}, func(t *testing.T, cfg Config) {
			assert.True(t, cfg.LogEnabled)
			assert.Equal(t, "/tmp/capture", cfg.LogDir)
		}},
		{"log format", []string{"--log-format=[:ARG:].txt", "a"}, func(t *testing.T, cfg Config) {
			assert.Equal(t, "[:ARG:].txt", cfg.LogFormat)
		}},
		{"ssh template", []string{"--ssh", "host1"}, func(t *testing.T, cfg Config) {
			assert.True(t, cfg.UtilitySet)
			assert.Equal(t, SSHUtility, cfg.Utility)
			assert.Equal(t, "--ssh", cfg.CommandOption)
		}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, _, err := Parse(tc.argv)
			require.NoError(t, err)
			tc.check(t, cfg)
		})
	}
}

// Bundled flags apply independently of their order within the token.
func TestParseBundleOrderIndependence(t *testing.T) {
	de, pos1, err := Parse([]string{"-de", "a"})
	require.NoError(t, err)
	ed, pos2, err := Parse([]string{"-ed", "a"})
	require.NoError(t, err)

	assert.Equal(t, de, ed)
	assert.Equal(t, pos1, pos2)
	assert.True(t, de.Desync)
	assert.True(t, de.ExecuteAsIs)
}

func TestParseRepeatedFlagsIdempotent(t *testing.T) {
	once, _, err := Parse([]string{"-d", "a"})
	require.NoError(t, err)
	thrice, _, err := Parse([]string{"-d", "-dd", "a"})
	require.NoError(t, err)
	assert.Equal(t, once, thrice)
}

func TestParseValueOptions(t *testing.T) {
	testCases := []struct {
		name  string
		argv  []string
		check func(t *testing.T, cfg Config, pos []string)
	}{
		{"repstr inline", []string{"-I@@", "a"}, func(t *testing.T, cfg Config, pos []string) {
			assert.True(t, cfg.RepstrSet)
			assert.Equal(t, "@@", cfg.Repstr)
			assert.Equal(t, []string{"a"}, pos)
		}},
		{"repstr separate", []string{"-I", "@@", "a"}, func(t *testing.T, cfg Config, pos []string) {
			assert.True(t, cfg.RepstrSet)
			assert.Equal(t, "@@", cfg.Repstr)
			assert.Equal(t, []string{"a"}, pos)
		}},
		{"utility inline", []string{"-cping {}", "host1"}, func(t *testing.T, cfg Config, pos []string) {
			assert.True(t, cfg.UtilitySet)
			assert.Equal(t, "ping {}", cfg.Utility)
			assert.Equal(t, "-c", cfg.CommandOption)
		}},
		{"utility separate", []string{"-c", "ping {}", "host1"}, func(t *testing.T, cfg Config, pos []string) {
			assert.Equal(t, "ping {}", cfg.Utility)
			assert.Equal(t, []string{"host1"}, pos)
		}},
		{"count inline", []string{"-n2", "a"}, func(t *testing.T, cfg Config, pos []string) {
			assert.Equal(t, 2, cfg.MaxPerPane)
		}},
		{"count separate", []string{"-n", "31", "a"}, func(t *testing.T, cfg Config, pos []string) {
			assert.Equal(t, 31, cfg.MaxPerPane)
		}},
		{"layout short form", []string{"-leh", "a"}, func(t *testing.T, cfg Config, pos []string) {
			assert.Equal(t, layout.EvenHorizontal, cfg.Layout)
		}},
		{"layout long form", []string{"-l", "main-vertical", "a"}, func(t *testing.T, cfg Config, pos []string) {
			assert.Equal(t, layout.MainVertical, cfg.Layout)
		}},
		{"socket inline", []string{"-S/tmp/xpanes.sock", "a"}, func(t *testing.T, cfg Config, pos []string) {
			assert.Equal(t, "/tmp/xpanes.sock", cfg.SocketPath)
		}},
		{"bundled flag then value", []string{"-dI@@", "a"}, func(t *testing.T, cfg Config, pos []string) {
			assert.True(t, cfg.Desync)
			assert.Equal(t, "@@", cfg.Repstr)
		}},
		{"bundled flags then separate value", []string{"-dec", "tail -f {}", "x.log"}, func(t *testing.T, cfg Config, pos []string) {
			assert.True(t, cfg.Desync)
			assert.True(t, cfg.ExecuteAsIs)
			assert.Equal(t, "tail -f {}", cfg.Utility)
		}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, pos, err := Parse(tc.argv)
			require.NoError(t, err)
			tc.check(t, cfg, pos)
		})
	}
}

// -I is the one value option whose value may be absent: the token resets to
// the default downstream instead of failing.
func TestParseRepstrOmittedValue(t *testing.T) {
	t.Run("at end of input", func(t *testing.T) {
		cfg, pos := mustParse(t, "-I")
		assert.True(t, cfg.RepstrSet)
		assert.Empty(t, cfg.Repstr)
		assert.Empty(t, pos)
	})

	t.Run("followed by an option", func(t *testing.T) {
		cfg, pos := mustParse(t, "-I", "-d", "a")
		assert.True(t, cfg.RepstrSet)
		assert.Empty(t, cfg.Repstr)
		assert.True(t, cfg.Desync, "the next token must still parse as an option")
		assert.Equal(t, []string{"a"}, pos)
	})

	t.Run("explicit empty value", func(t *testing.T) {
		cfg, _ := mustParse(t, "-I", "", "a")
		assert.True(t, cfg.RepstrSet)
		assert.Empty(t, cfg.Repstr)
	})
}

func TestParseErrors(t *testing.T) {
	testCases := []struct {
		name     string
		argv     []string
		wantCode errors.ErrorCode
		wantExit int
	}{
		{"unknown short option", []string{"-z"}, errors.ErrCodeInvalidOption, errors.ExitInvalidArgument},
		{"unknown short in bundle", []string{"-dz"}, errors.ErrCodeInvalidOption, errors.ExitInvalidArgument},
		{"bare dash", []string{"-"}, errors.ErrCodeInvalidOption, errors.ExitInvalidArgument},
		{"unknown long option", []string{"--frobnicate"}, errors.ErrCodeInvalidOption, errors.ExitInvalidArgument},
		{"value on flag long option", []string{"--desync=yes"}, errors.ErrCodeInvalidOption, errors.ExitInvalidArgument},
		{"value on ssh", []string{"--ssh=host"}, errors.ErrCodeInvalidOption, errors.ExitInvalidArgument},
		{"log-format without value", []string{"--log-format"}, errors.ErrCodeInvalidOption, errors.ExitInvalidArgument},
		{"utility without value", []string{"-c"}, errors.ErrCodeInvalidOption, errors.ExitInvalidArgument},
		{"utility followed by option", []string{"-c", "-d"}, errors.ErrCodeInvalidOption, errors.ExitInvalidArgument},
		{"count without value", []string{"-n"}, errors.ErrCodeInvalidOption, errors.ExitInvalidArgument},
		{"count not a number", []string{"-nx", "a"}, errors.ErrCodeInvalidOption, errors.ExitInvalidArgument},
		{"count zero", []string{"-n0", "a"}, errors.ErrCodeInvalidOption, errors.ExitInvalidArgument},
		{"count negative", []string{"-n-1", "a"}, errors.ErrCodeInvalidOption, errors.ExitInvalidArgument},
		{"socket without value", []string{"-S"}, errors.ErrCodeInvalidOption, errors.ExitInvalidArgument},
		{"layout without value", []string{"-l"}, errors.ErrCodeInvalidOption, errors.ExitInvalidArgument},
		{"layout unknown", []string{"-l", "spiral", "a"}, errors.ErrCodeInvalidLayout, errors.ExitInvalidLayout},
		{"layout unknown inline", []string{"-lspiral", "a"}, errors.ErrCodeInvalidLayout, errors.ExitInvalidLayout},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := Parse(tc.argv)
			require.Error(t, err)
			assert.Equal(t, tc.wantCode, errors.GetCode(err))
			assert.Equal(t, tc.wantExit, errors.ExitCodeFor(err))
		})
	}
}

func TestParseErrorNamesOption(t *testing.T) {
	_, _, err := Parse([]string{"-c"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "-c")

	_, _, err = Parse([]string{"--log-format"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--log-format")
}

func TestParseTerminator(t *testing.T) {
	t.Run("options after terminator are positional", func(t *testing.T) {
		cfg, pos := mustParse(t, "--", "-d", "a")
		assert.False(t, cfg.Desync)
		assert.Equal(t, []string{"-d", "a"}, pos)
	})

	t.Run("later terminators are positional", func(t *testing.T) {
		cfg, pos := mustParse(t, "-d", "--", "--", "-e")
		assert.True(t, cfg.Desync)
		assert.False(t, cfg.ExecuteAsIs)
		assert.Equal(t, []string{"--", "-e"}, pos)
	})

	t.Run("terminator after bare argument is positional", func(t *testing.T) {
		_, pos := mustParse(t, "a", "--", "b")
		assert.Equal(t, []string{"a", "--", "b"}, pos)
	})
}

func TestParseFirstBareArgumentStopsOptions(t *testing.T) {
	cfg, pos := mustParse(t, "-d", "host1", "-e", "--stay")
	assert.True(t, cfg.Desync)
	assert.False(t, cfg.ExecuteAsIs)
	assert.False(t, cfg.Stay)
	assert.Equal(t, []string{"host1", "-e", "--stay"}, pos)
}

func TestParseEmptyStringArgument(t *testing.T) {
	cfg, pos := mustParse(t, "", "-d")
	assert.False(t, cfg.Desync)
	assert.Equal(t, []string{"", "-d"}, pos)
}

func TestParseShortCircuit(t *testing.T) {
	t.Run("help stops before later junk", func(t *testing.T) {
		cfg, _, err := Parse([]string{"-h", "--frobnicate", "-z"})
		require.NoError(t, err, "tokens after -h must never be inspected")
		assert.True(t, cfg.Help)
	})

	t.Run("help mid bundle", func(t *testing.T) {
		cfg, _, err := Parse([]string{"-dh", "-z"})
		require.NoError(t, err)
		assert.True(t, cfg.Help)
		assert.True(t, cfg.Desync)
	})

	t.Run("help before value option wins", func(t *testing.T) {
		cfg, _, err := Parse([]string{"-hc"})
		require.NoError(t, err)
		assert.True(t, cfg.Help)
		assert.False(t, cfg.UtilitySet)
	})

	t.Run("version short", func(t *testing.T) {
		cfg, _, err := Parse([]string{"-V", "nonsense", "-z"})
		require.NoError(t, err)
		assert.True(t, cfg.Version)
	})

	t.Run("version long", func(t *testing.T) {
		cfg, _, err := Parse([]string{"--version"})
		require.NoError(t, err)
		assert.True(t, cfg.Version)
	})

	t.Run("help long", func(t *testing.T) {
		cfg, _, err := Parse([]string{"--help"})
		require.NoError(t, err)
		assert.True(t, cfg.Help)
	})
}

// The last command-producing option wins, whichever form it takes.
func TestParseLastCommandOptionWins(t *testing.T) {
	cfg, _ := mustParse(t, "-c", "ping {}", "--ssh", "host1")
	assert.Equal(t, SSHUtility, cfg.Utility)
	assert.Equal(t, "--ssh", cfg.CommandOption)

	cfg, _ = mustParse(t, "--ssh", "-c", "ping {}", "host1")
	assert.Equal(t, "ping {}", cfg.Utility)
	assert.Equal(t, "-c", cfg.CommandOption)

	cfg, _ = mustParse(t, "-I%", "-I", "@@", "host1")
	assert.Equal(t, "@@", cfg.Repstr)
}

func TestParseFullInvocation(t *testing.T) {
	cfg, pos := mustParse(t,
		"-d", "-I", "@@", "-n", "2", "-l", "mv", "--log=/tmp/capture", "-c", "ping @@", "host1", "host2", "host3")

	assert.True(t, cfg.Desync)
	assert.Equal(t, "@@", cfg.Repstr)
	assert.Equal(t, 2, cfg.MaxPerPane)
	assert.Equal(t, layout.MainVertical, cfg.Layout)
	assert.True(t, cfg.LogEnabled)
	assert.Equal(t, "/tmp/capture", cfg.LogDir)
	assert.Equal(t, "ping @@", cfg.Utility)
	assert.Equal(t, []string{"host1", "host2", "host3"}, pos)
}
