package utils

import (
	"fmt"
	"net"
	"strconv"
	"strings"
)

// NormalizeListenAddr turns a bare port such as "12000" into ":12000".
// Addresses that already carry a host are returned unchanged.
func NormalizeListenAddr(addr string) (string, error) {
	if strings.Contains(addr, ":") {
		return addr, nil
	}

	port, err := strconv.Atoi(addr)
	if err != nil {
		return "", fmt.Errorf("invalid port: %v", err)
	}
	if port < 0 || port > 65535 {
		return "", fmt.Errorf("invalid port: %d", port)
	}

	return fmt.Sprintf(":%d", port), nil
}

// BaseURL builds the http:// URL a client uses to reach a listen address.
// A missing host means localhost.
func BaseURL(addr string) (string, error) {
	normalized, err := NormalizeListenAddr(addr)
	if err != nil {
		return "", err
	}

	if strings.HasPrefix(normalized, ":") {
		normalized = "localhost" + normalized
	}

	return "http://" + normalized, nil
}

// IsAddrAvailable reports whether a TCP listener can be bound on addr.
func IsAddrAvailable(addr string) bool {
	Verbose("Checking if %s is available", addr)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		Verbose("error: %v", err)
		return false
	}

	defer listener.Close()
	return true
}
