package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/notevault/internal/api"
	"github.com/dmitrijs2005/notevault/internal/common"
	"github.com/dmitrijs2005/notevault/internal/server/peerlimit"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
)

// peerLimitInterceptor rejects callers that exceed the per-address rate.
func (s *GRPCServer) peerLimitInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if s.peers == nil {
		return handler(ctx, req)
	}

	addr := "unknown"
	if p, ok := peer.FromContext(ctx); ok && p.Addr != nil {
		addr = peerlimit.Host(p.Addr.String())
	}
	if !s.peers.Allow(addr) {
		s.logger.Warn(ctx, "peer rate limit exceeded", "peer", addr, "method", info.FullMethod)
		return nil, status.Error(codes.ResourceExhausted, common.ErrorRateLimited.Error())
	}
	return handler(ctx, req)
}

// sessionTokenField is carried by every message of an authenticated call
// and by the responses that echo the token.
const sessionTokenField protoreflect.Name = "session_token"

func tokenField(m proto.Message) protoreflect.FieldDescriptor {
	fd := m.ProtoReflect().Descriptor().Fields().ByName(sessionTokenField)
	if fd == nil || fd.Kind() != protoreflect.StringKind {
		return nil
	}
	return fd
}

// sessionTokenInterceptor lets clients send the session token as metadata
// instead of in the message, and returns a rotated token as a header.
func (s *GRPCServer) sessionTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	in, ok := req.(proto.Message)
	if !ok {
		return handler(ctx, req)
	}
	fd := tokenField(in)
	if fd == nil {
		return handler(ctx, req)
	}

	m := in.ProtoReflect()
	presented := m.Get(fd).String()
	if presented == "" {
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if values := md.Get(common.SessionTokenHeaderName); len(values) > 0 {
				presented = values[0]
				m.Set(fd, protoreflect.ValueOfString(presented))
			}
		}
	}

	resp, err := handler(ctx, req)
	if err != nil {
		return nil, err
	}

	out, ok := resp.(proto.Message)
	if !ok {
		return resp, nil
	}
	if ofd := tokenField(out); ofd != nil {
		if tok := out.ProtoReflect().Get(ofd).String(); tok != "" && tok != presented {
			if err := grpc.SetHeader(ctx, metadata.Pairs(common.RotatedSessionTokenHeaderName, tok)); err != nil {
				s.logger.Warn(ctx, "cannot set rotated token header", "error", err)
			}
		}
	}
	return resp, nil
}

// statusInterceptor turns api errors into gRPC statuses.
func (s *GRPCServer) statusInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	resp, err := handler(ctx, req)
	if err != nil {
		return nil, toStatus(err)
	}
	return resp, nil
}

func toStatus(err error) error {
	if _, ok := status.FromError(err); ok {
		return err
	}
	pub := api.Classify(err)
	return status.Error(codeFor(pub.Kind), pub.Message)
}

func codeFor(kind error) codes.Code {
	switch {
	case errors.Is(kind, common.ErrorConflict):
		return codes.AlreadyExists
	case errors.Is(kind, common.ErrorValidation):
		return codes.InvalidArgument
	case errors.Is(kind, common.ErrorUnauthorized):
		return codes.Unauthenticated
	case errors.Is(kind, common.ErrorRateLimited):
		return codes.ResourceExhausted
	case errors.Is(kind, common.ErrorNotFound):
		return codes.NotFound
	case errors.Is(kind, common.ErrorCryptoFailure):
		return codes.FailedPrecondition
	default:
		return codes.Internal
	}
}
