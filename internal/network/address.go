package network

import (
	"fmt"
	"net"
	"strings"
)

// Parses a dotted-quad IPv4 group address
func ParseGroup(address string) (group net.IP, err error) {
	address = strings.TrimSpace(address)
	ip := net.ParseIP(address)
	if ip == nil {
		err = fmt.Errorf("invalid IP: %q", address)
		return
	}

	group = ip.To4()
	if group == nil {
		err = fmt.Errorf("not an IPv4 address: %q", address)
		return
	}
	return
}

// True when ip is in 224.0.0.0/4
func IsMulticastGroup(ip net.IP) bool {
	v4 := ip.To4()
	return v4 != nil && v4.IsMulticast()
}
