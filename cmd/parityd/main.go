package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/paritylab/go-parity-classifier/internal/config"
	"github.com/paritylab/go-parity-classifier/internal/server"
)

func main() {
	configFile := flag.String("config", "", "config file (default is .parityd.yaml)")
	flag.Parse()

	fileCfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cfg := server.DefaultConfig()
	cfg.Addr = fileCfg.Server.Addr
	cfg.ReadTimeout = time.Duration(fileCfg.Server.ReadTimeoutSec) * time.Second
	cfg.WriteTimeout = time.Duration(fileCfg.Server.WriteTimeoutSec) * time.Second
	cfg.IdleTimeout = time.Duration(fileCfg.Server.IdleTimeoutSec) * time.Second
	cfg.EnableDebug = fileCfg.Server.EnableDebug
	cfg.LoggerConfig.LogDir = fileCfg.Log.Dir
	cfg.LoggerConfig.FileName = fileCfg.Log.FileName
	cfg.LoggerConfig.Stdout = fileCfg.Log.Stdout
	cfg.ClassifierCfg.EmitReason = fileCfg.Classifier.EmitReason
	if fileCfg.Server.TLSCertFile != "" && fileCfg.Server.TLSKeyFile != "" {
		cfg.TLSEnabled = true
		cfg.TLSCertFile = fileCfg.Server.TLSCertFile
		cfg.TLSKeyFile = fileCfg.Server.TLSKeyFile
	}

	// Allow port override from environment
	if port := os.Getenv("PORT"); port != "" {
		cfg.Addr = ":" + port
	}

	// Enable debug endpoint in development
	if os.Getenv("DEBUG") == "true" {
		cfg.EnableDebug = true
	}

	// TLS configuration from environment
	tlsCert := os.Getenv("TLS_CERT")
	tlsKey := os.Getenv("TLS_KEY")
	if tlsCert != "" && tlsKey != "" {
		cfg.TLSEnabled = true
		cfg.TLSCertFile = tlsCert
		cfg.TLSKeyFile = tlsKey
	}

	srv, err := server.New(cfg)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	if err := srv.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
