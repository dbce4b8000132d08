package configutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	BaseUrl   string `json:"base_url"`
	StorePath string `json:"store_path"`
}

func TestReadConfig(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "config.json5")

	err := os.WriteFile(name, []byte(`{
		// comments are allowed
		base_url: "https://example.org/",
		store_path: "notices.json",
	}`), 0644)
	if err != nil {
		t.Fatal(err)
	}

	cfg, err := ReadConfig[testConfig](name)
	require.NoError(t, err)
	require.Equal(t, "https://example.org/", cfg.BaseUrl)
	require.Equal(t, "notices.json", cfg.StorePath)
}

func TestReadConfigLocalOverride(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "config.json5")

	err := os.WriteFile(name, []byte(`{
		base_url: "https://example.org/",
		store_path: "notices.json",
	}`), 0644)
	if err != nil {
		t.Fatal(err)
	}
	err = os.WriteFile(filepath.Join(dir, "config.local.json5"), []byte(`{
		store_path: "/var/lib/noticewatch/notices.json",
	}`), 0644)
	if err != nil {
		t.Fatal(err)
	}

	cfg, err := ReadConfig[testConfig](name)
	require.NoError(t, err)
	require.Equal(t, "https://example.org/", cfg.BaseUrl)
	require.Equal(t, "/var/lib/noticewatch/notices.json", cfg.StorePath)
}

func TestReadConfigMissing(t *testing.T) {
	_, err := ReadConfig[testConfig](filepath.Join(t.TempDir(), "config.json5"))
	require.True(t, os.IsNotExist(err))
}
