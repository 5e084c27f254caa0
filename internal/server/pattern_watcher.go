package server

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"jobsift/internal/errors"
)

// PatternWatcher watches the pattern override file for changes and triggers
// registry reloads
type PatternWatcher struct {
	mu sync.RWMutex

	// File to watch
	patternFile string

	// File metadata
	lastModTime time.Time

	// Watcher components
	fsWatcher     *fsnotify.Watcher
	debounceDelay time.Duration
	debounceTimer *time.Timer

	// Control channels
	stopChan   chan struct{}
	reloadChan chan struct{}

	// Callback and logging
	reloadCallback func()
	logger         *errors.Logger

	// State
	running     bool
	reloadCount int
}

// NewPatternWatcher creates a new pattern file watcher
func NewPatternWatcher(patternFile string, debounceDelay time.Duration, reloadCallback func(), logger *errors.Logger) (*PatternWatcher, error) {
	if patternFile == "" {
		return nil, fmt.Errorf("pattern file path is required")
	}
	if debounceDelay == 0 {
		debounceDelay = time.Second // Default 1 second debounce
	}

	return &PatternWatcher{
		patternFile:    patternFile,
		debounceDelay:  debounceDelay,
		stopChan:       make(chan struct{}),
		reloadChan:     make(chan struct{}, 1), // Buffered to prevent blocking
		reloadCallback: reloadCallback,
		logger:         logger,
	}, nil
}

// Start begins watching the pattern file for changes
func (pw *PatternWatcher) Start() error {
	pw.mu.Lock()
	defer pw.mu.Unlock()

	if pw.running {
		return fmt.Errorf("pattern watcher is already running")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	pw.fsWatcher = watcher

	if stat, err := os.Stat(pw.patternFile); err == nil {
		pw.lastModTime = stat.ModTime()
	} else if !os.IsNotExist(err) {
		pw.cleanupWatcher()
		return fmt.Errorf("failed to stat pattern file %s: %w", pw.patternFile, err)
	}

	if err := pw.addFileToWatcher(); err != nil {
		pw.cleanupWatcher()
		return err
	}

	pw.running = true
	go pw.watchLoop()

	if pw.logger != nil {
		pw.logger.Info("Pattern file watcher started",
			"file", pw.patternFile,
			"debounce_delay", pw.debounceDelay)
	}
	return nil
}

// cleanupWatcher closes the file watcher and logs any errors
func (pw *PatternWatcher) cleanupWatcher() {
	if pw.fsWatcher != nil {
		if closeErr := pw.fsWatcher.Close(); closeErr != nil && pw.logger != nil {
			pw.logger.LogError(closeErr, "Failed to close file watcher during cleanup")
		}
	}
}

// addFileToWatcher adds the pattern file and its directory to the watcher
func (pw *PatternWatcher) addFileToWatcher() error {
	if err := pw.fsWatcher.Add(pw.patternFile); err != nil {
		// If the file doesn't exist, watch its directory instead
		if os.IsNotExist(err) {
			dir := filepath.Dir(pw.patternFile)
			if err := pw.fsWatcher.Add(dir); err != nil {
				return fmt.Errorf("failed to watch directory %s: %w", dir, err)
			}
			if pw.logger != nil {
				pw.logger.Info("Watching directory for pattern file",
					"file", pw.patternFile, "directory", dir)
			}
			return nil
		}
		return fmt.Errorf("failed to watch file %s: %w", pw.patternFile, err)
	}

	// Also watch the directory to catch atomic writes (rename operations)
	dir := filepath.Dir(pw.patternFile)
	if err := pw.fsWatcher.Add(dir); err != nil {
		if pw.logger != nil {
			pw.logger.Warn("Failed to watch directory for atomic writes",
				"directory", dir, "error", err)
		}
	}

	return nil
}

// Stop stops the pattern file watcher
func (pw *PatternWatcher) Stop() error {
	pw.mu.Lock()
	defer pw.mu.Unlock()

	if !pw.running {
		return nil
	}

	// Signal stop
	close(pw.stopChan)

	// Stop debounce timer if running
	if pw.debounceTimer != nil {
		pw.debounceTimer.Stop()
	}

	// Close file system watcher
	if pw.fsWatcher != nil {
		if err := pw.fsWatcher.Close(); err != nil {
			if pw.logger != nil {
				pw.logger.LogError(err, "Failed to close file system watcher")
			}
			return err
		}
	}

	pw.running = false

	if pw.logger != nil {
		pw.logger.Info("Pattern file watcher stopped")
	}

	return nil
}

// hasFileChanged checks if the pattern file has been modified since last check
func (pw *PatternWatcher) hasFileChanged() bool {
	stat, err := os.Stat(pw.patternFile)
	if err != nil {
		if os.IsNotExist(err) {
			// File was deleted
			if !pw.lastModTime.IsZero() {
				pw.lastModTime = time.Time{}
				return true
			}
		}
		return false
	}

	if pw.lastModTime.IsZero() || stat.ModTime().After(pw.lastModTime) {
		pw.lastModTime = stat.ModTime()
		return true
	}

	return false
}

// watchLoop is the main event loop for file watching
func (pw *PatternWatcher) watchLoop() {
	for {
		select {
		case event, ok := <-pw.fsWatcher.Events:
			if !ok {
				return
			}

			if pw.shouldProcessEvent(event) {
				pw.scheduleReload()
			}

		case err, ok := <-pw.fsWatcher.Errors:
			if !ok {
				return
			}
			if pw.logger != nil {
				pw.logger.LogError(err, "File watcher error")
			}

		case <-pw.reloadChan:
			// Debounced reload trigger
			pw.mu.Lock()
			changed := pw.hasFileChanged()
			if changed {
				pw.reloadCount++
			}
			pw.mu.Unlock()

			if changed {
				if pw.logger != nil {
					pw.logger.Info("Pattern file changed, triggering reload",
						"file", pw.patternFile)
				}
				pw.reloadCallback()
			}

		case <-pw.stopChan:
			return
		}
	}
}

// shouldProcessEvent determines if a file system event should trigger a reload check
func (pw *PatternWatcher) shouldProcessEvent(event fsnotify.Event) bool {
	if event.Name != pw.patternFile && filepath.Base(event.Name) != filepath.Base(pw.patternFile) {
		return false
	}

	// Process write, create, and rename events
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0
}

// scheduleReload schedules a debounced reload
func (pw *PatternWatcher) scheduleReload() {
	pw.mu.Lock()
	defer pw.mu.Unlock()

	// Reset the debounce timer
	if pw.debounceTimer != nil {
		pw.debounceTimer.Stop()
	}

	pw.debounceTimer = time.AfterFunc(pw.debounceDelay, func() {
		select {
		case pw.reloadChan <- struct{}{}:
			// Reload scheduled
		default:
			// Channel is full, reload already scheduled
		}
	})
}

// IsRunning returns whether the watcher is currently running
func (pw *PatternWatcher) IsRunning() bool {
	pw.mu.RLock()
	defer pw.mu.RUnlock()
	return pw.running
}

// PatternFile returns the watched pattern file path
func (pw *PatternWatcher) PatternFile() string {
	return pw.patternFile
}

// ReloadCount returns the number of reloads triggered so far
func (pw *PatternWatcher) ReloadCount() int {
	pw.mu.RLock()
	defer pw.mu.RUnlock()
	return pw.reloadCount
}
