package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/JaimeStill/advocates/internal/config"
	"github.com/JaimeStill/advocates/internal/listing"
	"github.com/JaimeStill/advocates/web/app"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config load failed: ", err)
	}

	defaultEndpoint := fmt.Sprintf("http://localhost:%d%s/advocates", cfg.Server.Port, cfg.API.BasePath)

	var (
		endpoint = flag.String("endpoint", defaultEndpoint, "Advocates list endpoint")
		pageSize = flag.Int("page-size", cfg.API.Pagination.DefaultPageSize, "Initial page size")
		timeout  = flag.Duration("timeout", 10*time.Second, "Per-request timeout")
	)
	flag.Parse()

	view := app.NewConfig(
		*endpoint,
		*pageSize,
		cfg.API.Pagination.MaxPageSize,
		cfg.Web.DebounceDelayDuration(),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client := listing.NewClient(*endpoint, &http.Client{Timeout: *timeout})
	b := newBrowser(ctx, client, view, cfg.Web.DebounceDelayDuration())

	p := tea.NewProgram(b, tea.WithAltScreen())
	b.send = p.Send

	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}
