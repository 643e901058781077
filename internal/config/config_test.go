package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
devmode = false
title = "AmigoVet"

[webserver]
port = 8080
url = "http://localhost:8080"
shutdowntime = 1

[webserver.session]
expirytime = "12h"

[db]
host = "localhost"
port = 5432
user = "amigovet"
password = "secret"
name = "amigovet"

[media]
path = "./uploads"
publicpath = "/uploads"
maxwidth = 1600
maxheight = 1200
quality = 85
tokensecret = "test-secret"
`

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "main.toml"), []byte(content), 0o600)
	require.NoError(t, err, "failed to write test config")

	return dir + string(filepath.Separator)
}

func TestReadConfig(t *testing.T) {
	path := writeTestConfig(t, testConfig)

	cfg, err := ReadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "AmigoVet", cfg.Title)
	assert.Equal(t, 8080, cfg.Webserver.Port)
	assert.Equal(t, "http://localhost:8080", cfg.Webserver.URL)
	assert.Equal(t, 12*time.Hour, cfg.Webserver.Session.ExpiryTime)
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, 1600, cfg.Media.MaxWidth)
}

func TestReadConfigEnvOverride(t *testing.T) {
	path := writeTestConfig(t, testConfig)

	t.Setenv(EnvConfigJSON, `{"Title":"AmigoVet Staging","DB":{"Host":"db.internal"}}`)

	cfg, err := ReadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "AmigoVet Staging", cfg.Title)
	assert.Equal(t, "db.internal", cfg.DB.Host)
	// untouched values survive the merge
	assert.Equal(t, 8080, cfg.Webserver.Port)
}

func TestReadConfigDefaultShutDownTime(t *testing.T) {
	path := writeTestConfig(t, `
title = "AmigoVet"

[webserver]
port = 8080
url = "http://localhost:8080"

[media]
tokensecret = "x"
`)

	cfg, err := ReadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Webserver.ShutDownTime)
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name: "valid config",
			config: Config{
				Webserver: Webserver{Port: 8080, URL: "http://localhost"},
				Media:     Media{TokenSecret: "x"},
			},
		},
		{
			name: "missing port",
			config: Config{
				Webserver: Webserver{URL: "http://localhost"},
				Media:     Media{TokenSecret: "x"},
			},
			wantErr: ErrWebServerPortCanNotBeZero,
		},
		{
			name: "missing url",
			config: Config{
				Webserver: Webserver{Port: 8080},
				Media:     Media{TokenSecret: "x"},
			},
			wantErr: ErrEmptyURL,
		},
		{
			name: "missing media token secret",
			config: Config{
				Webserver: Webserver{Port: 8080, URL: "http://localhost"},
			},
			wantErr: ErrEmptyMediaTokenSecret,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate(tt.config)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDumpConfigJSON(t *testing.T) {
	out, err := DumpConfigJSON(Config{Title: "AmigoVet"})
	require.NoError(t, err)
	assert.Contains(t, out, `"Title": "AmigoVet"`)
}
