package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"attest/internal/batch"
	"attest/internal/conf"
	"attest/internal/specfile"
	"attest/internal/ui"
)

type checkOutcome struct {
	results []batch.Result
	err     error
}

// runCheckWithUI runs a directory check while a Bubble Tea progress
// model consumes batch events on the foreground goroutine.
func runCheckWithUI(ctx context.Context, doc *specfile.Document, dir string, cfg *conf.Config, opts batch.Options) ([]batch.Result, error) {
	files, err := batch.ListJSONFiles(dir)
	if err != nil {
		return nil, err
	}

	events := make(chan batch.Event, 256)
	outcomeCh := make(chan checkOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Sink = batch.ChannelSink{Ch: events}
		results, err := batch.CheckFiles(ctx, doc, files, cfg, optsCopy)
		outcomeCh <- checkOutcome{results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel("checking "+dir, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
