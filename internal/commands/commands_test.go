package commands

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	require.NoError(t, root.Execute(), out.String())
	return out.String()
}

func TestInitSeedsOnce(t *testing.T) {
	db := filepath.Join(t.TempDir(), "vault.db")

	out := run(t, "--db", db, "init")
	assert.Contains(t, out, "Database "+db+" is ready")
	assert.Contains(t, out, "2 default account types created")

	out = run(t, "--db", db, "init")
	assert.Contains(t, out, "0 default account types created")
}

func TestAbout(t *testing.T) {
	db := filepath.Join(t.TempDir(), "vault.db")

	out := run(t, "--db", db, "--timezone", "UTC", "about")
	assert.Contains(t, out, "The Vault")
	assert.Contains(t, out, "SQLite: 3.")
	assert.Contains(t, out, "Database: "+db)
	assert.Contains(t, out, "Time zone: UTC")
}

func TestVersionFlag(t *testing.T) {
	out := run(t, "--version")
	assert.Contains(t, out, "dev (commit: none, built: unknown)")
}

func TestRejectsArguments(t *testing.T) {
	root := NewRootCommand()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"init", "extra"})
	assert.Error(t, root.Execute())
}
