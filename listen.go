package main

import (
	"net"
	"strconv"

	"golang.org/x/net/netutil"
)

/* Open the server socket. An empty bind address means every
 * interface. When maxConns is positive the listener is wrapped
 * so at most that many connections are served at once.
 */
func beginListen(bindAddr string, port, maxConns int) (net.Listener, error) {
	if bindAddr == "*" {
		bindAddr = ""
	}

	listener, err := net.Listen("tcp", bindAddr+":"+strconv.Itoa(port))
	if err != nil {
		return nil, err
	}

	if maxConns > 0 {
		listener = netutil.LimitListener(listener, maxConns)
	}

	return listener, nil
}
