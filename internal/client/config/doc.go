// Package config loads runtime configuration for the notevault CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   address:port of the backend gRPC endpoint
//	-d string   data directory for the local database
//	-device     device id; generated once per data directory when empty
//	-t int      per-request timeout (seconds)
//
// # JSON schema
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "data_dir": "notevault-data",
//	  "device_id": "laptop",
//	  "request_timeout": "30s"
//	}
//
// Durations accept strings like "30s" or integer nanoseconds.
package config
