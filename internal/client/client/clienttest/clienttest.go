// Package clienttest connects GRPCClients to an in-process server backed by
// apitest, over bufconn.
package clienttest

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/dmitrijs2005/notevault/internal/api/apitest"
	"github.com/dmitrijs2005/notevault/internal/client/client"
	gs "github.com/dmitrijs2005/notevault/internal/server/grpc"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/test/bufconn"
)

type Server struct {
	Env *apitest.Env
	lis *bufconn.Listener
}

// Start serves a fresh apitest.Env until the test ends.
func Start(t *testing.T) *Server {
	t.Helper()

	env := apitest.New(t)
	srv := gs.NewGRPCServer("bufconn", env.Log, env.Facade, nil)

	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, lis) }()

	t.Cleanup(func() {
		cancel()
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Error("server did not stop")
		}
	})
	return &Server{Env: env, lis: lis}
}

// Client returns a new client connected to s, closed when the test ends.
func (s *Server) Client(t *testing.T) *client.GRPCClient {
	t.Helper()

	c, err := client.NewNotevaultClient("passthrough:///bufconn",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return s.lis.DialContext(ctx) }),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}
