package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/notevault/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-w string   HTTP bind address, empty disables
//	-d string   PostgreSQL DSN or memory://
//	-s string   base64 server secret
//	-t int      session lifetime, minutes
//	-r int      session refresh window, minutes
//	-l int      login link lifetime, minutes
//	-f int      authentication response floor, milliseconds
//	-q string   Redis address for rate limiting
//	-o string   log format (json, text, zap)
//	-v string   log level
//	-x string   public base URL used in login links
//	-n string   note blob backend (memory, s3)
//	-u string   S3 root user
//	-p string   S3 root password
//	-b string   S3 bucket name
//	-g string   S3 region
//	-e string   S3 base endpoint (e.g., "http://127.0.0.1:9000/")
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{
		"-a", "-w", "-d", "-s", "-t", "-r", "-l", "-f", "-q", "-o", "-v", "-x", "-n", "-u", "-p", "-b", "-g", "-e",
	})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run gRPC server")
	fs.StringVar(&config.EndpointAddrHTTP, "w", config.EndpointAddrHTTP, "address and port to run HTTP server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.ServerSecret, "s", config.ServerSecret, "base64 server secret")
	sessionTTL := fs.Int("t", int(config.SessionTTL.Minutes()), "session ttl (in minutes)")
	refreshWindow := fs.Int("r", int(config.SessionRefreshWindow.Minutes()), "session refresh window (in minutes)")
	linkTTL := fs.Int("l", int(config.LinkTTL.Minutes()), "login link ttl (in minutes)")
	authFloor := fs.Int("f", int(config.AuthFloor.Milliseconds()), "auth response floor (in milliseconds)")
	fs.StringVar(&config.RedisAddr, "q", config.RedisAddr, "redis address for rate limits")
	fs.StringVar(&config.LogFormat, "o", config.LogFormat, "log format")
	fs.StringVar(&config.LogLevel, "v", config.LogLevel, "log level")
	fs.StringVar(&config.PublicBaseURL, "x", config.PublicBaseURL, "public base url")
	fs.StringVar(&config.BlobBackend, "n", config.BlobBackend, "note blob backend")
	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.SessionTTL = time.Duration(*sessionTTL) * time.Minute
	config.SessionRefreshWindow = time.Duration(*refreshWindow) * time.Minute
	config.LinkTTL = time.Duration(*linkTTL) * time.Minute
	config.AuthFloor = time.Duration(*authFloor) * time.Millisecond
}
