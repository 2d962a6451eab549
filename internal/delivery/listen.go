package delivery

import (
	"net"
	"strconv"
)

// ListenAddr is the all-interfaces address for port.
func ListenAddr(port int) string {
	return net.JoinHostPort("0.0.0.0", strconv.Itoa(port))
}
