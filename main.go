package main

import (
	"flag"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"
)

func main() {
	/* Setup the entire server, getting config, server and socket in return */
	config, server, listener := setupServer()

	/* Handle signals so we can _actually_ shutdown */
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	/* Start serving. Each accepted connection gets its own goroutine
	 * so one slow client or slow disk does not stall others.
	 */
	go func() {
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			config.LogSystemFatal("Error serving: %s\n", err.Error())
		}
	}()

	if config.LaunchBrowser {
		launchBrowser(config)
	}

	/* When OS signal received, we close-up */
	sig := <-signals
	config.LogSystem("Signal received: %v. Shutting down...\n", sig)
	os.Exit(0)
}

func setupServer() (*ServerConfig, *http.Server, net.Listener) {
	/* First we setup all the flags and parse them... */

	/* Base server settings */
	serverRoot := flag.String("root", ".", "Change server root directory.")
	serverBindAddr := flag.String("bind-addr", "", "Change server socket bind address (blank binds all interfaces).")
	serverPort := flag.Int("port", 8080, "Change server port.")
	configFile := flag.String("config", "", "Load a TOML config file. Explicit flags take precedence.")

	/* Content settings */
	mimeFile := flag.String("mime-file", "", "YAML file of extension to content-type overrides, merged over the built-in table.")
	restrictedFiles := flag.String("restrict-files", "", "New-line separated list of regex statements restricting files from showing in directory listings.")

	/* Response settings */
	disableCache := flag.Bool("disable-cache", false, "Send cache-busting headers so clients revalidate on every request.")

	/* Listing cache settings */
	cacheSize := flag.Int("cache-size", 0, "Change listing cache size, measured in listing count (0 disables).")
	cacheCheckFreq := flag.String("cache-check", "60s", "Change listing cache freshness check frequency.")

	/* Runtime settings */
	maxConns := flag.Int("max-conns", 0, "Limit concurrently served connections (0 means unlimited).")
	debugLogging := flag.Bool("debug", false, "Log per-request traces and mid-stream failures.")
	openBrowser := flag.Bool("open", false, "Open the default browser at the server URL once listening.")

	/* Logging settings */
	logOutput := flag.String("log-output", "stderr", "Change server log output type (disable|stderr|file).")
	logOpts := flag.String("log-opts", "timestamp,ip", "Comma-separated list of log options (timestamp|ip).")
	systemLogPath := flag.String("system-log", "", "Change server system log file (used with '-log-output file').")
	accessLogPath := flag.String("access-log", "", "Change server access log file (used with '-log-output file').")

	version := flag.Bool("version", false, "Print version string then exit.")

	/* Parse parse parse!! */
	flag.Parse()
	if *version {
		printVersionExit()
	}

	/* Apply config file values for any flags the user left unset */
	if *configFile != "" {
		fileConfig, err := loadFileConfig(*configFile)
		if err != nil {
			log.Fatalf("Failed to load config file %s: %s\n", *configFile, err.Error())
		}

		explicit := make(map[string]bool)
		flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

		if !explicit["root"] && fileConfig.Root != "" {
			*serverRoot = fileConfig.Root
		}
		if !explicit["bind-addr"] && fileConfig.BindAddr != "" {
			*serverBindAddr = fileConfig.BindAddr
		}
		if !explicit["port"] && fileConfig.Port != 0 {
			*serverPort = fileConfig.Port
		}
		if !explicit["mime-file"] && fileConfig.MimeFile != "" {
			*mimeFile = fileConfig.MimeFile
		}
		if !explicit["restrict-files"] && fileConfig.RestrictFiles != "" {
			*restrictedFiles = fileConfig.RestrictFiles
		}
		if !explicit["disable-cache"] && fileConfig.DisableCache {
			*disableCache = true
		}
		if !explicit["cache-size"] && fileConfig.CacheSize != 0 {
			*cacheSize = fileConfig.CacheSize
		}
		if !explicit["cache-check"] && fileConfig.CacheCheck != "" {
			*cacheCheckFreq = fileConfig.CacheCheck
		}
		if !explicit["max-conns"] && fileConfig.MaxConns != 0 {
			*maxConns = fileConfig.MaxConns
		}
		if !explicit["debug"] && fileConfig.Debug {
			*debugLogging = true
		}
		if !explicit["open"] && fileConfig.OpenBrowser {
			*openBrowser = true
		}
		if !explicit["log-output"] && fileConfig.LogOutput != "" {
			*logOutput = fileConfig.LogOutput
		}
		if !explicit["log-opts"] && fileConfig.LogOpts != "" {
			*logOpts = fileConfig.LogOpts
		}
		if !explicit["system-log"] && fileConfig.SystemLog != "" {
			*systemLogPath = fileConfig.SystemLog
		}
		if !explicit["access-log"] && fileConfig.AccessLog != "" {
			*accessLogPath = fileConfig.AccessLog
		}
	}

	/* Setup the server configuration instance and enter as much as we can right now */
	config := new(ServerConfig)
	config.BindAddr = *serverBindAddr
	config.Port = *serverPort
	config.DisableCache = *disableCache
	config.MaxConns = *maxConns
	config.DebugLogging = *debugLogging
	config.LaunchBrowser = *openBrowser

	/* Setup logging */
	config.SysLog, config.AccLog = setupLoggers(*logOutput, *logOpts, *systemLogPath, *accessLogPath)

	/* Resolve the server root and ensure it is a directory */
	rootDir, err := filepath.Abs(*serverRoot)
	if err != nil {
		config.LogSystemFatal("Failed to resolve root directory %s: %s\n", *serverRoot, err.Error())
	}
	stat, err := os.Stat(rootDir)
	if err != nil {
		config.LogSystemFatal("Failed to stat root directory %s: %s\n", rootDir, err.Error())
	} else if !stat.IsDir() {
		config.LogSystemFatal("Root is not a directory: %s\n", rootDir)
	}
	config.RootDir = rootDir

	/* Built-in MIME table plus any user overrides */
	config.MimeTypes = defaultMimeTable()
	if *mimeFile != "" {
		if err := config.MimeTypes.LoadOverrides(*mimeFile); err != nil {
			config.LogSystemFatal("Failed to load MIME overrides %s: %s\n", *mimeFile, err.Error())
		}
		config.LogSystem("Loaded MIME overrides: %s\n", *mimeFile)
	}

	/* Compile user restricted files regex if supplied */
	config.RestrictedFiles, err = compileRestrictedFilesRegex(*restrictedFiles)
	if err != nil {
		config.LogSystemFatal("Failed compiling user restricted files regex: %s\n", err.Error())
	}

	/* Setup listing cache and freshness monitor if requested */
	if *cacheSize > 0 {
		checkFreq, err := time.ParseDuration(*cacheCheckFreq)
		if err != nil {
			config.LogSystemFatal("Error parsing supplied cache check frequency %s: %s\n", *cacheCheckFreq, err.Error())
		}
		config.CacheCheck = checkFreq
		config.ListingCache = NewListingCache(*cacheSize)
		startListingMonitor(config)
	}

	/* Open the socket */
	listener, err := beginListen(config.BindAddr, config.Port, config.MaxConns)
	if err != nil {
		config.LogSystemFatal("Error setting up listener: %s\n", err.Error())
	}
	config.LogSystem("Serving %s at http://%s\n", config.RootDir, listener.Addr())

	return config, &http.Server{Handler: NewServer(config)}, listener
}
