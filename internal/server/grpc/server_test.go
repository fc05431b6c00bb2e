package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/dmitrijs2005/notevault/internal/api/apitest"
	"github.com/dmitrijs2005/notevault/internal/common"
	pb "github.com/dmitrijs2005/notevault/internal/proto"
	"github.com/dmitrijs2005/notevault/internal/server/peerlimit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

type testConn struct {
	env    *apitest.Env
	conn   *grpc.ClientConn
	client pb.VaultClient
}

func startServer(t *testing.T, peers *peerlimit.Limiter) *testConn {
	t.Helper()

	env := apitest.New(t)
	s := NewGRPCServer("bufconn", env.Log, env.Facade, peers)

	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, lis) }()

	conn, err := grpc.NewClient("passthrough:///bufconn",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
		cancel()
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Error("server did not stop")
		}
	})
	return &testConn{env: env, conn: conn, client: pb.NewVaultClient(conn)}
}

func registerRequest(t *testing.T, username string) *pb.RegisterRequest {
	req, _ := apitest.RegisterRequest(t, username, username+"@example.com", false)
	return &pb.RegisterRequest{
		Username:                  req.Username,
		Email:                     req.Email,
		PassphraseVerifier:        req.PassphraseVerifier,
		PassphraseVerifierSalt:    req.PassphraseVerifierSalt,
		PassphraseVerifierVersion: int32(req.PassphraseVerifierVersion),
	}
}

func TestServer_Ping(t *testing.T) {
	c := startServer(t, nil)

	out, err := c.client.Ping(context.Background(), &pb.PingRequest{})
	require.NoError(t, err)
	assert.Equal(t, "OK", out.GetStatus())
}

func TestServer_RegisterAndSessionFromMetadata(t *testing.T) {
	c := startServer(t, nil)
	ctx := context.Background()

	reg, err := c.client.Register(ctx, registerRequest(t, "alice"))
	require.NoError(t, err)
	require.NotEmpty(t, reg.GetSessionToken())
	assert.Len(t, reg.GetEncryptionSalt(), 16)

	mdCtx := metadata.AppendToOutgoingContext(ctx, common.SessionTokenHeaderName, reg.GetSessionToken())
	var header metadata.MD
	prefs, err := c.client.GetPreferences(mdCtx, &pb.SessionRequest{}, grpc.Header(&header))
	require.NoError(t, err)
	assert.Equal(t, "magic", prefs.GetAuthMethod())
	assert.Equal(t, reg.GetSessionToken(), prefs.GetSessionToken())
	assert.Empty(t, header.Get(common.RotatedSessionTokenHeaderName))
}

func TestServer_NotesRoundTripTimestamps(t *testing.T) {
	c := startServer(t, nil)
	ctx := context.Background()

	reg, err := c.client.Register(ctx, registerRequest(t, "bob"))
	require.NoError(t, err)

	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	_, err = c.client.CreateNote(ctx, &pb.CreateNoteRequest{
		SessionToken: reg.GetSessionToken(),
		ClientNoteId: "note-1",
		Ciphertext:   []byte("sealed"),
		Nonce:        make([]byte, 12),
		Aad:          []byte(`{"v":1}`),
		Version:      1,
		CreatedAt:    timestamp(created),
	})
	require.NoError(t, err)

	list, err := c.client.ListNotes(ctx, &pb.SessionRequest{SessionToken: reg.GetSessionToken()})
	require.NoError(t, err)
	require.Len(t, list.GetNotes(), 1)
	n := list.GetNotes()[0]
	assert.Equal(t, "note-1", n.GetId())
	assert.Equal(t, []byte("sealed"), n.GetCiphertext())
	assert.True(t, created.Equal(n.GetCreatedAt().AsTime()))
}

func TestServer_ErrorCodes(t *testing.T) {
	c := startServer(t, nil)
	ctx := context.Background()

	req := registerRequest(t, "alice")
	reg, err := c.client.Register(ctx, req)
	require.NoError(t, err)

	_, err = c.client.Register(ctx, req)
	assert.Equal(t, codes.AlreadyExists, status.Code(err))

	_, err = c.client.ListNotes(ctx, &pb.SessionRequest{SessionToken: "bogus"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	assert.Equal(t, "unauthorized", status.Convert(err).Message())

	_, err = c.client.FetchMasterWrappedDek(ctx, &pb.SessionRequest{SessionToken: reg.GetSessionToken()})
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = c.client.RequestLoginLink(ctx, &pb.RequestLoginLinkRequest{})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	err = c.conn.Invoke(ctx, "/notevault.v1.Vault/NoSuchMethod", &pb.PingRequest{}, &pb.PingResponse{})
	assert.Equal(t, codes.Unimplemented, status.Code(err))
}

func TestServer_PeerLimit(t *testing.T) {
	c := startServer(t, peerlimit.New(0.001, 2, time.Minute))
	ctx := context.Background()

	_, err := c.client.Ping(ctx, &pb.PingRequest{})
	require.NoError(t, err)
	_, err = c.client.Ping(ctx, &pb.PingRequest{})
	require.NoError(t, err)

	_, err = c.client.Ping(ctx, &pb.PingRequest{})
	assert.Equal(t, codes.ResourceExhausted, status.Code(err))
}

func TestTimestamp(t *testing.T) {
	assert.Nil(t, timestamp(time.Time{}))
	assert.True(t, fromTimestamp(nil).IsZero())

	now := time.Date(2026, 1, 2, 3, 4, 5, 6, time.UTC)
	assert.True(t, now.Equal(fromTimestamp(timestamp(now))))
}

func TestCodeFor(t *testing.T) {
	tests := []struct {
		kind error
		want codes.Code
	}{
		{common.ErrorConflict, codes.AlreadyExists},
		{common.ErrorValidation, codes.InvalidArgument},
		{common.ErrorUnauthorized, codes.Unauthenticated},
		{common.ErrorRateLimited, codes.ResourceExhausted},
		{common.ErrorNotFound, codes.NotFound},
		{common.ErrorCryptoFailure, codes.FailedPrecondition},
		{common.ErrorInternal, codes.Internal},
	}
	for _, tt := range tests {
		t.Run(tt.kind.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, codeFor(tt.kind))
		})
	}
}
