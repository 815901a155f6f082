package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper(t *testing.T) *viper.Viper {
	t.Helper()
	v := viper.New()
	SetDefaults(v)
	return v
}

func TestNew_defaults(t *testing.T) {
	c, err := New(newViper(t))
	require.NoError(t, err)

	assert.Equal(t, "primers.txt", c.Reference)
	assert.Equal(t, "table", c.Format)
	assert.False(t, c.Verbose)
}

func TestNew_settingsFile(t *testing.T) {
	settings := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(settings, []byte("reference: /data/eurofins.txt\nformat: json\n"), 0644))

	v := newViper(t)
	v.Set("settings", settings)

	c, err := New(v)
	require.NoError(t, err)
	assert.Equal(t, "/data/eurofins.txt", c.Reference)
	assert.Equal(t, "json", c.Format)
}

func TestNew_missingSettingsFile(t *testing.T) {
	v := newViper(t)
	v.Set("settings", filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := New(v)
	assert.Error(t, err)
}

func TestNew_env(t *testing.T) {
	t.Setenv("PRIMERNAME_REFERENCE", "/env/primers.txt")
	t.Setenv("PRIMERNAME_FORMAT", "yaml")

	c, err := New(newViper(t))
	require.NoError(t, err)
	assert.Equal(t, "/env/primers.txt", c.Reference)
	assert.Equal(t, "yaml", c.Format)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		conf    Config
		wantErr bool
	}{
		{"valid", Config{Reference: "p.txt", Format: "json"}, false},
		{"no reference", Config{Format: "json"}, true},
		{"bad format", Config{Reference: "p.txt", Format: "xml"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.conf.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Config.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
