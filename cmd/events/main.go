package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"studynotes-be/internal/config"
	"studynotes-be/internal/pkg/logger"
	"studynotes-be/pkg/events"
	pktNats "studynotes-be/pkg/nats"

	"github.com/fatih/color"
)

var eventColors = map[string]*color.Color{
	events.NoteCreated:    color.New(color.FgGreen),
	events.NoteLiked:      color.New(color.FgMagenta),
	events.NoteSaved:      color.New(color.FgCyan),
	events.NoteDeleted:    color.New(color.FgRed),
	events.CommentCreated: color.New(color.FgYellow),
}

func main() {
	subject := flag.String("subject", pktNats.SubjectPrefix+">", "subject filter")
	durable := flag.String("durable", "events-tail", "durable consumer name")
	flag.Parse()

	cfg := config.Load()
	if cfg.App.NatsURL == "" {
		color.Red("Error: NATS_URL is not set")
		os.Exit(1)
	}

	sub, err := pktNats.NewSubscriber(cfg.App.NatsURL, logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction()))
	if err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
	defer sub.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	color.Cyan("Tailing %s (durable %s)", *subject, *durable)
	err = sub.Subscribe(ctx, *subject, *durable, func(_ context.Context, event events.Event) error {
		payload, err := json.Marshal(event.Payload())
		if err != nil {
			return err
		}
		c, ok := eventColors[event.EventType()]
		if !ok {
			c = color.New(color.FgWhite)
		}
		c.Printf("%s %-16s ", event.Timestamp().Format("15:04:05"), event.EventType())
		fmt.Println(string(payload))
		return nil
	})
	if err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}
