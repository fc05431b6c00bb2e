package server

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/dmitrijs2005/notevault/internal/api"
	"github.com/dmitrijs2005/notevault/internal/server/blobstore"
	"github.com/dmitrijs2005/notevault/internal/server/config"
	"github.com/dmitrijs2005/notevault/internal/server/mailer"
	"github.com/dmitrijs2005/notevault/internal/server/repositories/memory"
	"github.com/dmitrijs2005/notevault/internal/server/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoryConfig() *config.Config {
	c := &config.Config{}
	c.LoadDefaults()
	c.DatabaseDSN = config.MemoryDSN
	c.EndpointAddrGRPC = "127.0.0.1:0"
	c.EndpointAddrHTTP = "127.0.0.1:0"
	c.LogLevel = "error"
	c.AuthFloor = 0
	return c
}

func TestNewApp_MemoryStore(t *testing.T) {
	app, err := NewApp(context.Background(), memoryConfig())
	require.NoError(t, err)
	t.Cleanup(app.Close)

	resp, err := app.facade.Ping(context.Background(), &api.PingRequest{})
	require.NoError(t, err)
	assert.Equal(t, "OK", resp.Status)
}

func TestNewApp_InvalidConfig(t *testing.T) {
	c := memoryConfig()
	c.ServerSecret = "c2hvcnQ="

	_, err := NewApp(context.Background(), c)
	require.Error(t, err)
}

func TestApp_BackendSelection(t *testing.T) {
	c := memoryConfig()
	app, err := NewApp(context.Background(), c)
	require.NoError(t, err)
	t.Cleanup(app.Close)

	m := memory.NewManager()
	assert.IsType(t, &services.StoreLimiter{}, app.initLimiter(m, m))
	assert.IsType(t, &mailer.WriterMailer{}, app.initMailer())

	blobs, err := app.initBlobs(context.Background())
	require.NoError(t, err)
	assert.IsType(t, &blobstore.Memory{}, blobs)

	mr := miniredis.RunT(t)
	c.RedisAddr = mr.Addr()
	c.SMTPAddr = "smtp.example.com:587"
	assert.IsType(t, &services.RedisLimiter{}, app.initLimiter(m, m))
	assert.IsType(t, &mailer.SMTPMailer{}, app.initMailer())
}

func TestApp_RunStopsOnCancel(t *testing.T) {
	app, err := NewApp(context.Background(), memoryConfig())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		app.Run(ctx)
		close(done)
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("app did not stop")
	}
}
