package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/JaimeStill/advocates/internal/api"
	"github.com/JaimeStill/advocates/internal/config"
	"github.com/JaimeStill/advocates/internal/infrastructure"
	"github.com/JaimeStill/advocates/pkg/openapi"
)

func main() {
	specOut := flag.String("openapi", "", "write the OpenAPI document to this file and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config load failed: ", err)
	}

	if *specOut != "" {
		if err := writeSpec(cfg, *specOut); err != nil {
			log.Fatal("openapi generation failed: ", err)
		}
		return
	}

	srv, err := NewServer(cfg)
	if err != nil {
		log.Fatal("server init failed: ", err)
	}

	if err := srv.Start(); err != nil {
		log.Fatal("server start failed: ", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	if err := srv.Shutdown(cfg.ShutdownTimeoutDuration()); err != nil {
		log.Fatal("shutdown failed: ", err)
	}
}

func writeSpec(cfg *config.Config, filename string) error {
	infra, err := infrastructure.New(cfg)
	if err != nil {
		return err
	}

	runtime := api.NewRuntime(cfg, infra)
	spec := api.Spec(runtime, api.NewDomain(runtime))
	return openapi.WriteJSON(spec, filename)
}
