package watcher

import "context"

// Watcher monitors the input folder for transcripts
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler is called once per transcript file
type EventHandler func(ctx context.Context, filePath string) error
