package main

import (
	"os/exec"
	"runtime"
	"strconv"
)

/* Convenience glue: point the platform's default browser at the
 * freshly started server. Failures only log, the server keeps
 * running either way.
 */
func launchBrowser(config *ServerConfig) {
	host := config.BindAddr
	if host == "" || host == "0.0.0.0" {
		host = "127.0.0.1"
	}
	url := "http://" + host + ":" + strconv.Itoa(config.Port) + "/"

	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}

	if err := cmd.Start(); err != nil {
		config.LogSystemError("Failed to open browser at %s: %s\n", url, err.Error())
		return
	}

	config.LogSystem("Opened browser at %s\n", url)
}
