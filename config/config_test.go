package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func boolPtr(b bool) *bool    { return &b }

func TestDefaults(t *testing.T) {
	s := Defaults()

	assert.Equal(t, "", s.Host)
	assert.Equal(t, "", s.Username)
	assert.Equal(t, "", s.Password)
	assert.Equal(t, 60, s.Interval)
	assert.False(t, s.Once)
	assert.False(t, s.Verbose)
	assert.True(t, s.VerifyCertificate)
}

func TestLoadFile(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("full yaml", func(t *testing.T) {
		path := writeConfig(t, "config.yaml", `
host: "localhost:8080"
username: "admin"
password: "adminadmin"
interval: 30
once: true
verbose: true
verify_certificate: false
`)
		layer := LoadFile(path, logger)
		require.NotNil(t, layer.Host)
		assert.Equal(t, "localhost:8080", *layer.Host)
		assert.Equal(t, "admin", *layer.Username)
		assert.Equal(t, "adminadmin", *layer.Password)
		assert.Equal(t, 30, *layer.Interval)
		assert.True(t, *layer.Once)
		assert.True(t, *layer.Verbose)
		assert.False(t, *layer.VerifyCertificate)
	})

	t.Run("absent keys stay unset", func(t *testing.T) {
		path := writeConfig(t, "config.yaml", "host: h:1\nunknown_key: 3\n")
		layer := LoadFile(path, logger)
		require.NotNil(t, layer.Host)
		assert.Equal(t, "h:1", *layer.Host)
		assert.Nil(t, layer.Interval)
		assert.Nil(t, layer.VerifyCertificate)
	})

	t.Run("no extension is read as yaml", func(t *testing.T) {
		path := writeConfig(t, "queuemeta", "interval: 15\n")
		layer := LoadFile(path, logger)
		require.NotNil(t, layer.Interval)
		assert.Equal(t, 15, *layer.Interval)
	})

	t.Run("unsupported extension is read as yaml", func(t *testing.T) {
		path := writeConfig(t, "queuemeta.conf", "host: h:1\ninterval: 20\n")
		layer := LoadFile(path, logger)
		require.NotNil(t, layer.Host)
		assert.Equal(t, "h:1", *layer.Host)
		assert.Equal(t, 20, *layer.Interval)
	})

	t.Run("empty path", func(t *testing.T) {
		assert.True(t, LoadFile("", logger).IsEmpty())
	})

	t.Run("missing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing.yaml")
		assert.True(t, LoadFile(path, logger).IsEmpty())
	})

	t.Run("malformed content", func(t *testing.T) {
		path := writeConfig(t, "config.yaml", "host: [unterminated\n")
		assert.True(t, LoadFile(path, logger).IsEmpty())
	})

	t.Run("wrong value type", func(t *testing.T) {
		path := writeConfig(t, "config.yaml", "host: h:1\ninterval: often\n")
		assert.True(t, LoadFile(path, logger).IsEmpty())
	})

	t.Run("empty file", func(t *testing.T) {
		path := writeConfig(t, "config.yaml", "")
		assert.True(t, LoadFile(path, logger).IsEmpty())
	})
}

func TestIsSupportedExt(t *testing.T) {
	cases := map[string]bool{
		"config.yaml":    true,
		"config.YML":     true,
		"config.json":    true,
		"config.toml":    true,
		"config.conf":    false,
		"queuemeta":      false,
		"/etc/queuemeta": false,
	}

	for path, want := range cases {
		assert.Equal(t, want, isSupportedExt(path), path)
	}
}

func TestBuildPrecedence(t *testing.T) {
	tests := []struct {
		name      string
		file      Layer
		overrides Layer
		want      Settings
	}{
		{
			name: "defaults only",
			want: Defaults(),
		},
		{
			name: "file over defaults",
			file: Layer{Host: strPtr("h:1"), Interval: intPtr(30)},
			want: Settings{Host: "h:1", Interval: 30, VerifyCertificate: true},
		},
		{
			name:      "override wins over file",
			file:      Layer{Host: strPtr("h:1"), Interval: intPtr(30)},
			overrides: Layer{Interval: intPtr(45)},
			want:      Settings{Host: "h:1", Interval: 45, VerifyCertificate: true},
		},
		{
			name: "file disables certificate verification",
			file: Layer{Host: strPtr("h:1"), VerifyCertificate: boolPtr(false)},
			want: Settings{Host: "h:1", Interval: 60, VerifyCertificate: false},
		},
		{
			name:      "force-enable flag beats file",
			file:      Layer{Host: strPtr("h:1"), VerifyCertificate: boolPtr(false)},
			overrides: Layer{VerifyCertificate: boolPtr(true)},
			want:      Settings{Host: "h:1", Interval: 60, VerifyCertificate: true},
		},
		{
			name:      "force-disable flag beats default",
			overrides: Layer{Host: strPtr("h:2"), VerifyCertificate: boolPtr(false)},
			want:      Settings{Host: "h:2", Interval: 60, VerifyCertificate: false},
		},
		{
			name:      "credentials and switches",
			file:      Layer{Username: strPtr("admin"), Once: boolPtr(true)},
			overrides: Layer{Host: strPtr(" h:3 "), Password: strPtr("secret"), Verbose: boolPtr(true)},
			want: Settings{
				Host:              "h:3",
				Username:          "admin",
				Password:          "secret",
				Interval:          60,
				Once:              true,
				Verbose:           true,
				VerifyCertificate: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Build(Defaults(), tt.file, tt.overrides))
		})
	}
}

func TestBuildFromFileWithOverride(t *testing.T) {
	path := writeConfig(t, "config.yaml", "host: \"h:1\"\ninterval: 30\n")

	file := LoadFile(path, zerolog.Nop())
	settings := Build(Defaults(), file, Layer{Interval: intPtr(45)})

	assert.Equal(t, "h:1", settings.Host)
	assert.Equal(t, 45, settings.Interval)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
		wantErr  error
	}{
		{
			name:     "valid",
			settings: Settings{Host: "localhost:8080", Interval: 60},
		},
		{
			name:     "missing host",
			settings: Settings{Interval: 60},
			wantErr:  ErrHostRequired,
		},
		{
			name:     "zero interval",
			settings: Settings{Host: "localhost:8080"},
			wantErr:  ErrInvalidInterval,
		},
		{
			name:     "negative interval",
			settings: Settings{Host: "localhost:8080", Interval: -5},
			wantErr:  ErrInvalidInterval,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
