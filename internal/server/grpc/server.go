package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/notevault/internal/api"
	"github.com/dmitrijs2005/notevault/internal/logging"
	pb "github.com/dmitrijs2005/notevault/internal/proto"
	"github.com/dmitrijs2005/notevault/internal/server/peerlimit"
	"google.golang.org/grpc"
)

type GRPCServer struct {
	pb.UnimplementedVaultServer
	address string
	api     *api.Facade
	peers   *peerlimit.Limiter
	logger  logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, f *api.Facade, peers *peerlimit.Limiter) *GRPCServer {
	return &GRPCServer{
		address: a,
		logger:  l.With("module", "grpc_server"),
		api:     f,
		peers:   peers,
	}
}

// NewServer returns a grpc.Server with the vault service and its
// interceptors registered.
func (s *GRPCServer) NewServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(
		s.peerLimitInterceptor,
		s.sessionTokenInterceptor,
		s.statusInterceptor,
	))
	pb.RegisterVaultServer(srv, s)
	return srv
}

// Run serves until ctx is done, then stops gracefully.
func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve is Run on an existing listener.
func (s *GRPCServer) Serve(ctx context.Context, listen net.Listener) error {
	srv := s.NewServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
