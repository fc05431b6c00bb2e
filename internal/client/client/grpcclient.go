package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/notevault/internal/api"
	"github.com/dmitrijs2005/notevault/internal/common"
	pb "github.com/dmitrijs2005/notevault/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/known/timestamppb"
)

var _ Client = (*GRPCClient)(nil)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.VaultClient

	mu           sync.Mutex
	sessionToken string
}

func withSessionToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.SessionTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

// sessionToken returns the session_token field of m, if it has one.
func sessionToken(m any) (string, bool) {
	msg, ok := m.(proto.Message)
	if !ok {
		return "", false
	}
	fd := msg.ProtoReflect().Descriptor().Fields().ByName("session_token")
	if fd == nil || fd.Kind() != protoreflect.StringKind {
		return "", false
	}
	return msg.ProtoReflect().Get(fd).String(), true
}

// sessionTokenInterceptor attaches the current token to authenticated calls
// and keeps the token the server hands back.
func (s *GRPCClient) sessionTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	authenticated := false
	if _, ok := sessionToken(req); ok {
		authenticated = true
		if token := s.SessionToken(); token != "" {
			ctx = withSessionToken(ctx, token)
		}
	}

	var header metadata.MD
	opts = append(opts, grpc.Header(&header))

	if err := invoker(ctx, method, req, reply, cc, opts...); err != nil {
		return err
	}

	if values := header.Get(common.RotatedSessionTokenHeaderName); len(values) > 0 && values[0] != "" {
		s.SetSessionToken(values[0])
	} else if tok, ok := sessionToken(reply); ok && authenticated && tok != "" {
		s.SetSessionToken(tok)
	}
	return nil
}

func NewNotevaultClient(endpointURL string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	err := c.InitGRPCClient(opts...)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient(extra ...grpc.DialOption) error {
	opts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.sessionTokenInterceptor),
	}
	conn, err := grpc.NewClient(s.endpointURL, append(opts, extra...)...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewVaultClient(conn)
	return nil
}

func (s *GRPCClient) SessionToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessionToken
}

func (s *GRPCClient) SetSessionToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessionToken = token
}

func timestamp(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

func fromTimestamp(ts *timestamppb.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return ts.AsTime()
}

func loginResponse(r *pb.LoginResponse) *api.LoginResponse {
	return &api.LoginResponse{
		AccountID:                 r.GetAccountId(),
		Username:                  r.GetUsername(),
		E2EESalt:                  r.GetEncryptionSalt(),
		PassphraseVerifierSalt:    r.GetPassphraseVerifierSalt(),
		PassphraseVerifierVersion: int(r.GetPassphraseVerifierVersion()),
		SessionToken:              r.GetSessionToken(),
	}
}

func wrappedDEKResponse(r *pb.WrappedDekResponse) *api.WrappedDEKResponse {
	return &api.WrappedDEKResponse{
		WrappedDEK:   r.GetWrappedDek(),
		WrapNonce:    r.GetWrapNonce(),
		Version:      int(r.GetVersion()),
		SessionToken: r.GetSessionToken(),
	}
}

func (s *GRPCClient) Register(ctx context.Context, req *api.RegisterRequest) (*api.RegisterResponse, error) {
	resp, err := s.client.Register(ctx, &pb.RegisterRequest{
		Username:                  req.Username,
		Email:                     req.Email,
		EnableTotp:                req.EnableTOTP,
		PassphraseVerifier:        req.PassphraseVerifier,
		PassphraseVerifierSalt:    req.PassphraseVerifierSalt,
		PassphraseVerifierVersion: int32(req.PassphraseVerifierVersion),
	})
	if err != nil {
		return nil, s.MapError(err)
	}
	s.SetSessionToken(resp.GetSessionToken())
	return &api.RegisterResponse{
		AccountID:    resp.GetAccountId(),
		E2EESalt:     resp.GetEncryptionSalt(),
		SessionToken: resp.GetSessionToken(),
		TOTPSecret:   resp.GetTotpSecret(),
		TOTPURI:      resp.GetTotpUri(),
	}, nil
}

func (s *GRPCClient) RequestLoginLink(ctx context.Context, email string) (*api.RequestLoginLinkResponse, error) {
	resp, err := s.client.RequestLoginLink(ctx, &pb.RequestLoginLinkRequest{Email: email})
	if err != nil {
		return nil, s.MapError(err)
	}
	return &api.RequestLoginLinkResponse{ExpiresAt: fromTimestamp(resp.GetExpiresAt())}, nil
}

func (s *GRPCClient) VerifyLoginLink(ctx context.Context, req *api.VerifyLoginLinkRequest) (*api.LoginResponse, error) {
	resp, err := s.client.VerifyLoginLink(ctx, &pb.VerifyLoginLinkRequest{Email: req.Email, Token: req.Token, Link: req.Link})
	if err != nil {
		return nil, s.MapError(err)
	}
	s.SetSessionToken(resp.GetSessionToken())
	return loginResponse(resp), nil
}

func (s *GRPCClient) LoginWithCode(ctx context.Context, username, code string) (*api.LoginResponse, error) {
	resp, err := s.client.LoginWithCode(ctx, &pb.LoginWithCodeRequest{Username: username, Code: code})
	if err != nil {
		return nil, s.MapError(err)
	}
	s.SetSessionToken(resp.GetSessionToken())
	return loginResponse(resp), nil
}

func (s *GRPCClient) StoreMasterWrappedDEK(ctx context.Context, req *api.StoreMasterWrappedDEKRequest) error {
	_, err := s.client.StoreMasterWrappedDek(ctx, &pb.StoreMasterWrappedDekRequest{
		SessionToken:    req.SessionToken,
		WrappedDek:      req.WrappedDEK,
		WrapNonce:       req.WrapNonce,
		Version:         int32(req.Version),
		PassphraseProof: req.PassphraseProof,
	})
	return s.MapError(err)
}

func (s *GRPCClient) FetchMasterWrappedDEK(ctx context.Context) (*api.WrappedDEKResponse, error) {
	resp, err := s.client.FetchMasterWrappedDek(ctx, &pb.SessionRequest{})
	if err != nil {
		return nil, s.MapError(err)
	}
	return wrappedDEKResponse(resp), nil
}

func (s *GRPCClient) UpdatePassphrase(ctx context.Context, req *api.UpdatePassphraseRequest) error {
	_, err := s.client.UpdatePassphrase(ctx, &pb.UpdatePassphraseRequest{
		SessionToken:        req.SessionToken,
		NewEncryptionSalt:   req.NewE2EESalt,
		NewWrappedDek:       req.NewWrappedDEK,
		NewWrapNonce:        req.NewWrapNonce,
		Version:             int32(req.Version),
		PassphraseProof:     req.PassphraseProof,
		NextVerifier:        req.NextVerifier,
		NextVerifierSalt:    req.NextVerifierSalt,
		NextVerifierVersion: int32(req.NextVerifierVersion),
	})
	return s.MapError(err)
}

func (s *GRPCClient) RegisterDevice(ctx context.Context, req *api.RegisterDeviceRequest) error {
	_, err := s.client.RegisterDevice(ctx, &pb.RegisterDeviceRequest{
		SessionToken: req.SessionToken,
		DeviceId:     req.DeviceID,
		WrappedDek:   req.WrappedDEK,
		WrapNonce:    req.WrapNonce,
		Version:      int32(req.Version),
	})
	return s.MapError(err)
}

func (s *GRPCClient) FetchWrappedDEKForDevice(ctx context.Context, deviceID string) (*api.WrappedDEKResponse, error) {
	resp, err := s.client.FetchWrappedDekForDevice(ctx, &pb.FetchWrappedDekForDeviceRequest{DeviceId: deviceID})
	if err != nil {
		return nil, s.MapError(err)
	}
	return wrappedDEKResponse(resp), nil
}

// RevokeSession ends the current session and forgets its token.
func (s *GRPCClient) RevokeSession(ctx context.Context) error {
	if _, err := s.client.RevokeSession(ctx, &pb.SessionRequest{SessionToken: s.SessionToken()}); err != nil {
		return s.MapError(err)
	}
	s.SetSessionToken("")
	return nil
}

func (s *GRPCClient) CreateNote(ctx context.Context, req *api.CreateNoteRequest) error {
	_, err := s.client.CreateNote(ctx, &pb.CreateNoteRequest{
		SessionToken: req.SessionToken,
		ClientNoteId: req.ClientNoteID,
		Ciphertext:   req.Ciphertext,
		Nonce:        req.Nonce,
		Aad:          req.AAD,
		Version:      int32(req.Version),
		CreatedAt:    timestamp(req.CreatedAt),
	})
	return s.MapError(err)
}

func (s *GRPCClient) ListNotes(ctx context.Context) ([]api.Note, error) {
	resp, err := s.client.ListNotes(ctx, &pb.SessionRequest{})
	if err != nil {
		return nil, s.MapError(err)
	}

	notes := make([]api.Note, 0, len(resp.GetNotes()))
	for _, n := range resp.GetNotes() {
		notes = append(notes, api.Note{
			ID:         n.GetId(),
			Ciphertext: n.GetCiphertext(),
			Nonce:      n.GetNonce(),
			AAD:        n.GetAad(),
			Version:    int(n.GetVersion()),
			CreatedAt:  fromTimestamp(n.GetCreatedAt()),
		})
	}
	return notes, nil
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.MapError(err)
	}
	if resp.GetStatus() != "OK" {
		return ErrUnavailable
	}
	return nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

// MapError turns a gRPC status into the matching common error, keeping the
// server's message.
func (s *GRPCClient) MapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)

	var kind error
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		kind = common.ErrorUnauthorized
	case codes.AlreadyExists:
		kind = common.ErrorConflict
	case codes.InvalidArgument:
		kind = common.ErrorValidation
	case codes.NotFound:
		kind = common.ErrorNotFound
	case codes.ResourceExhausted:
		kind = common.ErrorRateLimited
	case codes.FailedPrecondition:
		kind = common.ErrorCryptoFailure
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}

	if st.Message() == "" || st.Message() == kind.Error() {
		return kind
	}
	return fmt.Errorf("%w (%s)", kind, st.Message())
}
