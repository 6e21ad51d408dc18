package tcp

import (
	"context"
	"fmt"
	"net"
	"strconv"

	"github.com/rocketscienceinc/reversi-agent/internal/apperror"
	"github.com/rocketscienceinc/reversi-agent/internal/protocol"
)

const greetingBufferSize = 1024

// Connect - dials the per-player endpoint (base port plus player number),
// reads the server greeting and cross-checks the player number the server
// assigned against the configured one. A mismatch is a configuration error
// and is never retried.
func Connect(ctx context.Context, host string, basePort int, player int8) (net.Conn, *protocol.Greeting, error) {
	addr := net.JoinHostPort(host, strconv.Itoa(basePort+int(player)))

	var dialer net.Dialer

	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to game server at %s: %w", addr, err)
	}

	greeting, err := readGreeting(conn)
	if err != nil {
		conn.Close()
		return nil, nil, err
	}

	if greeting.Player != player {
		conn.Close()
		return nil, nil, fmt.Errorf("%w: expected %d, got %d", apperror.ErrPlayerMismatch, player, greeting.Player)
	}

	return conn, greeting, nil
}

func readGreeting(conn net.Conn) (*protocol.Greeting, error) {
	buffer := make([]byte, greetingBufferSize)

	bytesRead, err := conn.Read(buffer)
	if err != nil {
		return nil, fmt.Errorf("failed to read server greeting: %w", err)
	}

	return protocol.ParseGreeting(string(buffer[:bytesRead])), nil
}
