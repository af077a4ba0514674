package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/go-drift/formkit/pkg/widgets"
)

func init() {
	RegisterCommand(&Command{
		Name:  "watch",
		Short: "Re-inspect a definition whenever it changes",
		Long: `Watch a form definition and re-run inspect each time the file is
written or replaced.

Usage:
  formkit watch signup.yaml   # Ctrl+C to stop`,
		Usage: "formkit watch <definition>",
		Run:   runWatch,
	})
}

// watchSettle coalesces the bursts of events editors produce on save.
const watchSettle = 100 * time.Millisecond

func runWatch(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("definition file is required\n\nUsage: formkit watch <definition>")
	}
	path, err := filepath.Abs(args[0])
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// Editors often replace the file, so watch its directory.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(path), err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	fmt.Printf("Watching %s (Ctrl+C to stop)...\n\n", args[0])
	inspectOnce(path)

	var settle <-chan time.Time
	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != path {
				continue
			}
			if ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create) {
				settle = time.After(watchSettle)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "Warning: watch error: %v\n", err)
		case <-settle:
			settle = nil
			fmt.Printf("\n--- %s ---\n", time.Now().Format("15:04:05"))
			inspectOnce(path)
		case <-sigChan:
			fmt.Println("\nWatch stopped.")
			return nil
		}
	}
}

func inspectOnce(path string) {
	_, form, err := loadForm(path, widgets.Options{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	defer form.Dispose()
	printForm(newOutput(os.Stdout), form)
}
