package main

import (
	"regexp"
	"time"

	"github.com/BurntSushi/toml"
)

/* ServerConfig:
 * Holds onto global server configuration details and any data
 * objects we want to keep in memory (e.g. loggers, restricted
 * files regular expressions and the listing cache). Constructed
 * once during setupServer() and never mutated afterwards, so it
 * is safe to share across request goroutines without locking.
 */
type ServerConfig struct {
	/* Base settings */
	RootDir  string
	BindAddr string
	Port     int

	/* Content settings */
	MimeTypes       *MimeTable
	RestrictedFiles []*regexp.Regexp

	/* Response settings */
	DisableCache bool

	/* Runtime settings */
	MaxConns      int
	DebugLogging  bool
	LaunchBrowser bool

	/* Logging */
	SysLog LoggerInterface
	AccLog LoggerInterface

	/* Listing cache, nil when disabled */
	ListingCache *ListingCache
	CacheCheck   time.Duration
}

func (config *ServerConfig) LogSystem(format string, args ...interface{}) {
	config.SysLog.Info("", format, args...)
}

func (config *ServerConfig) LogSystemError(format string, args ...interface{}) {
	config.SysLog.Error("", format, args...)
}

func (config *ServerConfig) LogSystemFatal(format string, args ...interface{}) {
	config.SysLog.Fatal("", format, args...)
}

/* FileConfig:
 * Optional TOML config file mirroring the command line flags.
 * Values from the file only apply for flags the user did not
 * set explicitly.
 */
type FileConfig struct {
	Root          string `toml:"root"`
	BindAddr      string `toml:"bind_addr"`
	Port          int    `toml:"port"`
	MimeFile      string `toml:"mime_file"`
	RestrictFiles string `toml:"restrict_files"`
	DisableCache  bool   `toml:"disable_cache"`
	CacheSize     int    `toml:"cache_size"`
	CacheCheck    string `toml:"cache_check"`
	MaxConns      int    `toml:"max_conns"`
	LogOutput     string `toml:"log_output"`
	LogOpts       string `toml:"log_opts"`
	SystemLog     string `toml:"system_log"`
	AccessLog     string `toml:"access_log"`
	Debug         bool   `toml:"debug"`
	OpenBrowser   bool   `toml:"open_browser"`
}

func loadFileConfig(path string) (*FileConfig, error) {
	fileConfig := new(FileConfig)
	if _, err := toml.DecodeFile(path, fileConfig); err != nil {
		return nil, err
	}
	return fileConfig, nil
}
