package network

import (
	"context"
	"fmt"
	"net"
	"syscall"

	"golang.org/x/sys/unix"
)

// Listens for UDP on every local IPv4 address with address and port reuse enabled,
// allowing several subscribers on one host to share the group port
func ReuseUDPPort(port int) (conn *net.UDPConn, err error) {
	cfg := net.ListenConfig{
		Control: func(network, address string, c syscall.RawConn) error {
			var err error
			ctrlErr := c.Control(func(fd uintptr) {
				err = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_REUSEADDR, 1)
				if err != nil {
					return
				}
				err = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_REUSEPORT, 1)
			})
			if ctrlErr != nil {
				return ctrlErr
			}
			return err
		},
	}

	addr := net.UDPAddr{IP: net.IPv4zero, Port: port}
	pc, err := cfg.ListenPacket(context.Background(), "udp4", addr.String())
	if err != nil {
		err = fmt.Errorf("failed to listen on reusable udp port %d: %w", port, err)
		return
	}
	conn = pc.(*net.UDPConn)
	return
}

// Opens an unconnected socket for sending to a multicast group.
// Loopback delivery stays enabled so subscribers on the same host receive the data.
func NewMulticastSender(group net.IP, port int) (conn *net.UDPConn, destination *net.UDPAddr, err error) {
	cfg := net.ListenConfig{
		Control: func(network, address string, c syscall.RawConn) error {
			var err error
			ctrlErr := c.Control(func(fd uintptr) {
				err = unix.SetsockoptInt(int(fd), unix.IPPROTO_IP, unix.IP_MULTICAST_LOOP, 1)
			})
			if ctrlErr != nil {
				return ctrlErr
			}
			return err
		},
	}

	pc, err := cfg.ListenPacket(context.Background(), "udp4", "0.0.0.0:0")
	if err != nil {
		err = fmt.Errorf("failed to open sending socket: %w", err)
		return
	}
	conn = pc.(*net.UDPConn)

	err = JoinGroup(conn, group)
	if err != nil {
		conn.Close()
		conn = nil
		return
	}

	destination = &net.UDPAddr{IP: group, Port: port}
	return
}

// Adds socket membership for group on the default interface (IP_ADD_MEMBERSHIP)
func JoinGroup(conn *net.UDPConn, group net.IP) (err error) {
	v4 := group.To4()
	if v4 == nil {
		err = fmt.Errorf("group %v is not an IPv4 address", group)
		return
	}

	rawConn, err := conn.SyscallConn()
	if err != nil {
		err = fmt.Errorf("failed to access raw socket: %w", err)
		return
	}

	mreq := &unix.IPMreq{}
	copy(mreq.Multiaddr[:], v4)

	var sockErr error
	err = rawConn.Control(func(fd uintptr) {
		sockErr = unix.SetsockoptIPMreq(int(fd), unix.IPPROTO_IP, unix.IP_ADD_MEMBERSHIP, mreq)
	})
	if err == nil {
		err = sockErr
	}
	if err != nil {
		err = fmt.Errorf("failed to join multicast group %v: %w", group, err)
		return
	}
	return
}
