package motd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bnema/shellchat/internal/ports"
	"github.com/fsnotify/fsnotify"
)

// Static serves a fixed banner.
type Static struct {
	text string
}

var _ ports.MOTDSource = Static{}

func NewStatic(greeting string) Static {
	return Static{text: Banner(greeting)}
}

func (s Static) MOTD() string {
	return s.text
}

// FileSource serves the content of a file and reloads it when the file
// changes. A missing or empty file falls back to the default banner.
type FileSource struct {
	path   string
	logger *slog.Logger

	mu   sync.RWMutex
	text string
}

var _ ports.MOTDSource = (*FileSource)(nil)

func NewFileSource(path string, logger *slog.Logger) (*FileSource, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve motd path: %w", err)
	}

	source := &FileSource{path: absPath, logger: logger}
	if err := source.reload(); err != nil {
		return nil, err
	}
	return source, nil
}

func (s *FileSource) MOTD() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.text
}

func (s *FileSource) reload() error {
	data, err := os.ReadFile(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("read motd file: %w", err)
	}

	text := string(data)
	switch {
	case strings.TrimSpace(text) == "":
		text = Banner(DefaultGreeting)
	case !strings.HasSuffix(text, "\n"):
		text += "\n"
	}

	s.mu.Lock()
	s.text = text
	s.mu.Unlock()
	return nil
}

// Watch reloads the file on every change until ctx is cancelled. The parent
// directory is watched so that editors replacing the file are noticed.
func (s *FileSource) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create motd watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(s.path)); err != nil {
		return fmt.Errorf("watch motd directory: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != s.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			if err := s.reload(); err != nil {
				s.logger.Warn("reload motd", "path", s.path, "error", err)
				continue
			}
			s.logger.Debug("motd reloaded", "path", s.path)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Warn("motd watcher error", "error", err)
		}
	}
}
