package config

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func TestWatcher_ReloadsOnChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bfhl.yaml")
	if err := os.WriteFile(path, []byte("identity:\n  user_id: first\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	w, err := NewWatcher(path, 20*time.Millisecond, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("failed to create watcher: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	reloaded := make(chan *Config, 4)
	done := make(chan error, 1)
	go func() {
		done <- w.Watch(ctx, func(cfg *Config, err error) {
			if err == nil {
				select {
				case reloaded <- cfg:
				default:
				}
			}
		})
	}()

	// Give the watcher time to register the directory.
	time.Sleep(50 * time.Millisecond)

	if err := os.WriteFile(path, []byte("identity:\n  user_id: second\n"), 0644); err != nil {
		t.Fatalf("failed to rewrite config: %v", err)
	}

	// A truncating write may surface an intermediate empty file first.
	deadline := time.After(2 * time.Second)
	for got := ""; got != "second"; {
		select {
		case cfg := <-reloaded:
			got = cfg.Identity.UserID
		case <-deadline:
			t.Fatalf("timed out waiting for reload, last user id %q", got)
		}
	}

	cancel()
	if err := <-done; err != nil {
		t.Errorf("watch returned error: %v", err)
	}
}

func TestWatcher_ReportsInvalidReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bfhl.yaml")
	if err := os.WriteFile(path, []byte("{}\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	w, err := NewWatcher(path, 10*time.Millisecond, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("failed to create watcher: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	failed := make(chan error, 4)
	done := make(chan error, 1)
	go func() {
		done <- w.Watch(ctx, func(cfg *Config, err error) {
			if err != nil {
				select {
				case failed <- err:
				default:
				}
			}
		})
	}()
	time.Sleep(50 * time.Millisecond)

	if err := os.WriteFile(path, []byte("api:\n  paths: []\n  max_body_bytes: -1\n"), 0644); err != nil {
		t.Fatalf("failed to rewrite config: %v", err)
	}

	select {
	case <-failed:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for failed reload")
	}

	cancel()
	<-done
}

func TestNewWatcher_RequiresPath(t *testing.T) {
	if _, err := NewWatcher("", time.Millisecond, nil); err == nil {
		t.Error("expected error for empty path")
	}
}

func TestDebouncer_CoalescesTriggers(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)
	defer d.Stop()

	var calls atomic.Int32
	for i := 0; i < 5; i++ {
		d.Trigger(func() { calls.Add(1) })
		time.Sleep(5 * time.Millisecond)
	}

	time.Sleep(100 * time.Millisecond)
	if got := calls.Load(); got != 1 {
		t.Errorf("expected 1 call, got %d", got)
	}
}

func TestDebouncer_StopCancelsPending(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)

	var calls atomic.Int32
	d.Trigger(func() { calls.Add(1) })
	d.Stop()
	d.Trigger(func() { calls.Add(1) })

	time.Sleep(60 * time.Millisecond)
	if got := calls.Load(); got != 0 {
		t.Errorf("expected no calls after stop, got %d", got)
	}
}
