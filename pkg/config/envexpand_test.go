package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandEnv(t *testing.T) {
	t.Setenv("SYMPHONY_TEST_HOST", "db.internal")
	t.Setenv("SYMPHONY_TEST_PORT", "5433")
	os.Unsetenv("SYMPHONY_TEST_ABSENT")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "single reference",
			in:   "url: postgresql://{{.SYMPHONY_TEST_HOST}}/symphony",
			want: "url: postgresql://db.internal/symphony",
		},
		{
			name: "multiple references on one line",
			in:   "url: {{.SYMPHONY_TEST_HOST}}:{{.SYMPHONY_TEST_PORT}}",
			want: "url: db.internal:5433",
		},
		{
			name: "missing variable expands empty",
			in:   "key: {{.SYMPHONY_TEST_ABSENT}}",
			want: "key: ",
		},
		{
			name: "no references pass through",
			in:   "host: 0.0.0.0\nport: 8000\n",
			want: "host: 0.0.0.0\nport: 8000\n",
		},
		{
			name: "literal dollar untouched",
			in:   `prompt: "Summarize $PATH and ${HOME} usage"`,
			want: `prompt: "Summarize $PATH and ${HOME} usage"`,
		},
		{
			name: "single braces untouched",
			in:   `prompt: "Assess {query} against the plan"`,
			want: `prompt: "Assess {query} against the plan"`,
		},
		{
			name: "malformed template returned unchanged",
			in:   "value: {{.UNBALANCED",
			want: "value: {{.UNBALANCED",
		},
		{
			name: "empty input",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, string(expandEnv([]byte(tt.in))))
		})
	}
}

func TestLoadExpandsEnvReferences(t *testing.T) {
	t.Setenv("SYMPHONY_TEST_DB_HOST", "db.example.com")
	t.Setenv("SYMPHONY_TEST_SELF", "symphony-staging")

	dir := t.TempDir()
	path := filepath.Join(dir, "symphony.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
database:
  url: postgresql://symphony@{{.SYMPHONY_TEST_DB_HOST}}:5432/symphony
rooms:
  self_name: "{{.SYMPHONY_TEST_SELF}}"
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "postgresql://symphony@db.example.com:5432/symphony", cfg.Database.URL)
	assert.Equal(t, "symphony-staging", cfg.Rooms.SelfName)
}
