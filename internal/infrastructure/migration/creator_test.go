package migration

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeName(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"add seo data table", "add_seo_data_table"},
		{"Add-Promotion-Dates", "add_promotion_dates"},
		{"landing  ssl   flag", "landing_ssl_flag"},
		{"drop v2 columns!", "drop_v2_columns"},
		{"_leading and trailing_", "leading_and_trailing"},
		{"", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, sanitizeName(tc.input), "input %q", tc.input)
	}
}

func TestCreateMigration(t *testing.T) {
	dir := t.TempDir()

	mf, err := CreateMigration(dir, "add seo data table", "per-landing SEO overrides")
	require.NoError(t, err)

	assert.Len(t, mf.Version, 14)
	assert.Equal(t, filepath.Join(dir, mf.Version+"_add_seo_data_table.up.sql"), mf.UpPath)
	assert.Equal(t, filepath.Join(dir, mf.Version+"_add_seo_data_table.down.sql"), mf.DownPath)

	up, err := os.ReadFile(mf.UpPath)
	require.NoError(t, err)
	assert.Contains(t, string(up), "add seo data table")
	assert.Contains(t, string(up), "per-landing SEO overrides")

	down, err := os.ReadFile(mf.DownPath)
	require.NoError(t, err)
	assert.Contains(t, string(down), "(rollback)")
	assert.Contains(t, string(down), "undoes the up migration")
}

func TestCreateMigration_CreatesDirectory(t *testing.T) {
	nested := filepath.Join(t.TempDir(), "db", "migrations")

	mf, err := CreateMigration(nested, "init", "")
	require.NoError(t, err)

	info, err := os.Stat(nested)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.True(t, strings.HasSuffix(mf.UpPath, ".up.sql"))
}

func TestListMigrations(t *testing.T) {
	dir := t.TempDir()

	// Pairs plus noise that must be skipped
	for _, name := range []string{
		"20250301120000_init_schema.up.sql",
		"20250301120000_init_schema.down.sql",
		"20250415090000_add_seo_data.up.sql",
		"20250415090000_add_seo_data.down.sql",
		"README.md",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("-- x"), 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "archive.up.sql"), 0755))

	migrations, err := ListMigrations(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"20250301120000_init_schema",
		"20250415090000_add_seo_data",
	}, migrations)
}

func TestListMigrations_MissingDirectory(t *testing.T) {
	migrations, err := ListMigrations(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Empty(t, migrations)
}
