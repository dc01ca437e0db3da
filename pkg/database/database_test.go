package database_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/JaimeStill/advocates/pkg/database"
	"github.com/JaimeStill/advocates/pkg/lifecycle"
)

func testConfig() database.Config {
	return database.Config{
		Host:            "127.0.0.1",
		Port:            1,
		Name:            "advocates",
		User:            "advocates",
		SSLMode:         "disable",
		MaxOpenConns:    42,
		MaxIdleConns:    7,
		ConnMaxLifetime: "10m",
		ConnTimeout:     "200ms",
	}
}

func TestNewSetsPoolParams(t *testing.T) {
	cfg := testConfig()

	sys, err := database.New(&cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	conn := sys.Connection()
	defer conn.Close()

	if got := conn.Stats().MaxOpenConnections; got != 42 {
		t.Errorf("MaxOpenConnections = %d, want 42", got)
	}
}

func TestStartupFailsWithoutServer(t *testing.T) {
	cfg := testConfig()

	sys, err := database.New(&cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	lc := lifecycle.New()
	if err := sys.Start(lc); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	// nothing listens on port 1; the ping hook must fail and block readiness
	if err := lc.WaitForStartup(); err == nil {
		t.Fatal("WaitForStartup() error = nil, want ping failure")
	}
	if lc.Ready() {
		t.Error("Ready() = true after failed ping")
	}

	if err := lc.Shutdown(5 * time.Second); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}
}
