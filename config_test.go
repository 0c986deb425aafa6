package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFileConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "server.toml")
	contents := `
root = "/srv/www"
bind_addr = "127.0.0.1"
port = 9000
mime_file = "types.yaml"
restrict_files = "^\\."
disable_cache = true
cache_size = 50
cache_check = "30s"
max_conns = 64
log_output = "file"
log_opts = "timestamp"
system_log = "/var/log/httpor/system.log"
access_log = "/var/log/httpor/access.log"
debug = true
open_browser = true
`
	if err := os.WriteFile(configPath, []byte(contents), 0644); err != nil {
		t.Fatalf("failed writing config file: %v", err)
	}

	fileConfig, err := loadFileConfig(configPath)
	if err != nil {
		t.Fatalf("loadFileConfig failed: %v", err)
	}

	if fileConfig.Root != "/srv/www" {
		t.Errorf("Root = %q", fileConfig.Root)
	}
	if fileConfig.BindAddr != "127.0.0.1" {
		t.Errorf("BindAddr = %q", fileConfig.BindAddr)
	}
	if fileConfig.Port != 9000 {
		t.Errorf("Port = %d", fileConfig.Port)
	}
	if fileConfig.MimeFile != "types.yaml" {
		t.Errorf("MimeFile = %q", fileConfig.MimeFile)
	}
	if fileConfig.RestrictFiles != "^\\." {
		t.Errorf("RestrictFiles = %q", fileConfig.RestrictFiles)
	}
	if !fileConfig.DisableCache {
		t.Errorf("DisableCache should be true")
	}
	if fileConfig.CacheSize != 50 {
		t.Errorf("CacheSize = %d", fileConfig.CacheSize)
	}
	if fileConfig.CacheCheck != "30s" {
		t.Errorf("CacheCheck = %q", fileConfig.CacheCheck)
	}
	if fileConfig.MaxConns != 64 {
		t.Errorf("MaxConns = %d", fileConfig.MaxConns)
	}
	if fileConfig.LogOutput != "file" {
		t.Errorf("LogOutput = %q", fileConfig.LogOutput)
	}
	if fileConfig.LogOpts != "timestamp" {
		t.Errorf("LogOpts = %q", fileConfig.LogOpts)
	}
	if fileConfig.SystemLog != "/var/log/httpor/system.log" {
		t.Errorf("SystemLog = %q", fileConfig.SystemLog)
	}
	if fileConfig.AccessLog != "/var/log/httpor/access.log" {
		t.Errorf("AccessLog = %q", fileConfig.AccessLog)
	}
	if !fileConfig.Debug {
		t.Errorf("Debug should be true")
	}
	if !fileConfig.OpenBrowser {
		t.Errorf("OpenBrowser should be true")
	}
}

func TestLoadFileConfigErrors(t *testing.T) {
	if _, err := loadFileConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Errorf("expected error for missing config file")
	}

	badPath := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(badPath, []byte("root = [unclosed"), 0644); err != nil {
		t.Fatalf("failed writing bad config file: %v", err)
	}
	if _, err := loadFileConfig(badPath); err == nil {
		t.Errorf("expected error for malformed config file")
	}
}
