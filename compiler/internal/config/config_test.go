package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scopec.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	content := `
[analysis]
policy = "declare-before-use"
workers = 4
max_depth = 64

[log]
level = "debug"
format = "json"

[output]
format = "plain"
`
	cfg, err := Load(writeConfig(t, content))
	require.NoError(t, err)

	assert.Equal(t, "declare-before-use", cfg.Analysis.Policy)
	assert.Equal(t, 4, cfg.Analysis.Workers)
	assert.Equal(t, 64, cfg.Analysis.MaxDepth)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "plain", cfg.Output.Format)
}

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "[analysis]\nworkers = 2\n"))
	require.NoError(t, err)

	assert.Equal(t, "auto-declare", cfg.Analysis.Policy)
	assert.Equal(t, 2, cfg.Analysis.Workers)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "table", cfg.Output.Format)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err, "explicit path must exist")

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	defer func() { _ = os.Chdir(wd) }()

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name    string
		content string
		msg     string
	}{
		{"unknown key", "[analysis]\nstrictness = 1\n", "unknown keys: analysis.strictness"},
		{"bad level", "[log]\nlevel = \"loud\"\n", "log.level"},
		{"bad log format", "[log]\nformat = \"xml\"\n", "log.format"},
		{"bad output", "[output]\nformat = \"json\"\n", "output.format"},
		{"negative workers", "[analysis]\nworkers = -1\n", "analysis.workers"},
		{"syntax", "[analysis\n", "scopec.toml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("info")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, lvl)
}
