package utils

import (
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
)

// FormatKey returns the decimal form of a key.
func FormatKey(key uint32) string {
	return strconv.FormatUint(uint64(key), 10)
}

// ParseKey parses a decimal key. Signs, spaces and values above 2^32-1 are rejected.
func ParseKey(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}

// MakeShortURL joins base url and key.
func MakeShortURL(baseURL string, key uint32) string {
	return fmt.Sprintf("%s/%s", strings.TrimRight(baseURL, "/"), FormatKey(key))
}

// ResolveIP returns the client ip from X-Real-IP or X-Forwarded-For.
func ResolveIP(r *http.Request) (net.IP, error) {
	// check "X-Real-IP" header
	ipStr := r.Header.Get("X-Real-IP")
	ip := net.ParseIP(ipStr)
	if ip == nil {
		// X-Real-IP is empty then try X-Forwarded-For
		ips := r.Header.Get("X-Forwarded-For")
		ipSplit := strings.Split(ips, ",")
		ipStr = strings.TrimSpace(ipSplit[0])
		ip = net.ParseIP(ipStr)
	}
	if ip == nil {
		return nil, fmt.Errorf("failed parse ip from http header")
	}
	return ip, nil
}
