package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadVersionFile_FillsDefaultsOnly(t *testing.T) {
	origVersion, origBuild, origCommit := Version, Build, GitCommit
	t.Cleanup(func() { Version, Build, GitCommit = origVersion, origBuild, origCommit })

	Version, Build, GitCommit = "dev", "2026-01-01", "unknown"

	path := filepath.Join(t.TempDir(), ".version")
	content := "# build metadata\nversion: 1.4.0\nbuild: 2026-10-01\ncommit: abc1234\nnonsense\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	loadVersionFile(path)

	assert.Equal(t, "1.4.0", Version)
	assert.Equal(t, "2026-01-01", Build, "ldflags value must win over file")
	assert.Equal(t, "abc1234", GitCommit)
	assert.Equal(t, VersionInfo{Version: "1.4.0", Build: "2026-01-01", GitCommit: "abc1234"}, GetVersionInfo())
}

func TestLoadVersionFile_Missing(t *testing.T) {
	orig := Version
	t.Cleanup(func() { Version = orig })

	loadVersionFile(filepath.Join(t.TempDir(), "absent"))
	assert.Equal(t, orig, Version)
}
