package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/notevault/internal/flagx"
	"github.com/dmitrijs2005/notevault/internal/timex"
)

// JsonConfig is the on-disk shape of the server configuration. Duration
// fields accept both "15m" style strings and integer nanoseconds.
type JsonConfig struct {
	EndpointAddrGRPC     string         `json:"endpoint_addr_grpc"`
	EndpointAddrHTTP     string         `json:"endpoint_addr_http"`
	DatabaseDSN          string         `json:"database_dsn"`
	ServerSecret         string         `json:"server_secret"`
	SessionTTL           timex.Duration `json:"session_ttl"`
	SessionRefreshWindow timex.Duration `json:"session_refresh_window"`
	LinkTTL              timex.Duration `json:"link_ttl"`
	AuthFloor            timex.Duration `json:"auth_floor"`
	RedisAddr            string         `json:"redis_addr"`
	LogFormat            string         `json:"log_format"`
	LogLevel             string         `json:"log_level"`
	PublicBaseURL        string         `json:"public_base_url"`
	TOTPIssuer           string         `json:"totp_issuer"`
	PeerRateLimit        float64        `json:"peer_rate_limit"`
	PeerBurst            int            `json:"peer_burst"`
	CORSOrigins          []string       `json:"cors_origins"`
	SMTPAddr             string         `json:"smtp_addr"`
	SMTPUser             string         `json:"smtp_user"`
	SMTPPassword         string         `json:"smtp_password"`
	SMTPFrom             string         `json:"smtp_from"`
	BlobBackend          string         `json:"blob_backend"`
	S3RootUser           string         `json:"s3_root_user"`
	S3RootPassword       string         `json:"s3_root_password"`
	S3Bucket             string         `json:"s3_bucket"`
	S3Region             string         `json:"s3_region"`
	S3BaseEndpoint       string         `json:"s3_base_endpoint"`
}

// parseJson overlays values from the file named by -c/-config onto config.
// Keys missing from the file keep their current values. Unreadable files and
// invalid JSON panic.
func parseJson(config *Config) {
	jsonConfigFile := flagx.ConfigFile(os.Args[1:])
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := toJson(config)
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	config.EndpointAddrGRPC = c.EndpointAddrGRPC
	config.EndpointAddrHTTP = c.EndpointAddrHTTP
	config.DatabaseDSN = c.DatabaseDSN
	config.ServerSecret = c.ServerSecret
	config.SessionTTL = c.SessionTTL.Duration
	config.SessionRefreshWindow = c.SessionRefreshWindow.Duration
	config.LinkTTL = c.LinkTTL.Duration
	config.AuthFloor = c.AuthFloor.Duration
	config.RedisAddr = c.RedisAddr
	config.LogFormat = c.LogFormat
	config.LogLevel = c.LogLevel
	config.PublicBaseURL = c.PublicBaseURL
	config.TOTPIssuer = c.TOTPIssuer
	config.PeerRateLimit = c.PeerRateLimit
	config.PeerBurst = c.PeerBurst
	config.CORSOrigins = c.CORSOrigins
	config.SMTPAddr = c.SMTPAddr
	config.SMTPUser = c.SMTPUser
	config.SMTPPassword = c.SMTPPassword
	config.SMTPFrom = c.SMTPFrom
	config.BlobBackend = c.BlobBackend
	config.S3RootUser = c.S3RootUser
	config.S3RootPassword = c.S3RootPassword
	config.S3Bucket = c.S3Bucket
	config.S3Region = c.S3Region
	config.S3BaseEndpoint = c.S3BaseEndpoint
}

func toJson(c *Config) *JsonConfig {
	return &JsonConfig{
		EndpointAddrGRPC:     c.EndpointAddrGRPC,
		EndpointAddrHTTP:     c.EndpointAddrHTTP,
		DatabaseDSN:          c.DatabaseDSN,
		ServerSecret:         c.ServerSecret,
		SessionTTL:           timex.Duration{Duration: c.SessionTTL},
		SessionRefreshWindow: timex.Duration{Duration: c.SessionRefreshWindow},
		LinkTTL:              timex.Duration{Duration: c.LinkTTL},
		AuthFloor:            timex.Duration{Duration: c.AuthFloor},
		RedisAddr:            c.RedisAddr,
		LogFormat:            c.LogFormat,
		LogLevel:             c.LogLevel,
		PublicBaseURL:        c.PublicBaseURL,
		TOTPIssuer:           c.TOTPIssuer,
		PeerRateLimit:        c.PeerRateLimit,
		PeerBurst:            c.PeerBurst,
		CORSOrigins:          c.CORSOrigins,
		SMTPAddr:             c.SMTPAddr,
		SMTPUser:             c.SMTPUser,
		SMTPPassword:         c.SMTPPassword,
		SMTPFrom:             c.SMTPFrom,
		BlobBackend:          c.BlobBackend,
		S3RootUser:           c.S3RootUser,
		S3RootPassword:       c.S3RootPassword,
		S3Bucket:             c.S3Bucket,
		S3Region:             c.S3Region,
		S3BaseEndpoint:       c.S3BaseEndpoint,
	}
}
