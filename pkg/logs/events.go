package logs

// Event names written by the viewer.
const (
	EvRunStart      = "run.start"
	EvRunEnd        = "run.end"
	EvKey           = "key"
	EvQuit          = "quit"
	EvWatchEvent    = "watch.event"
	EvWatchError    = "watch.error"
	EvReloadSuccess = "reload.success"
	EvReloadError   = "reload.error"
	EvLockContended = "lock.contended"
	EvFatal         = "fatal"
)

// RunStart records the files the runner watches.
func (l *Logger) RunStart(watch []string) {
	l.Event(EvRunStart, map[string]any{"watch": watch})
}

func (l *Logger) RunEnd() { l.Event(EvRunEnd, nil) }

// Key records a keyboard command by name.
func (l *Logger) Key(command string) {
	l.Event(EvKey, map[string]any{"command": command})
}

func (l *Logger) Quit() { l.Event(EvQuit, nil) }

// FileChanged records a watcher notification.
func (l *Logger) FileChanged(file, op string) {
	l.Event(EvWatchEvent, map[string]any{"file": file, "op": op})
}

func (l *Logger) WatchError(err error) {
	l.Event(EvWatchError, map[string]any{"error": err.Error()})
}

// Reload records the outcome of re-reading file; size is the new source
// length and only logged on success.
func (l *Logger) Reload(file string, size int, err error) {
	if err != nil {
		l.Event(EvReloadError, map[string]any{"file": file, "error": err.Error()})
		return
	}
	l.Event(EvReloadSuccess, map[string]any{"file": file, "bytes": size})
}

// Contended records an update dropped because the view was busy. skipped is
// the running total.
func (l *Logger) Contended(source string, skipped int64) {
	l.Event(EvLockContended, map[string]any{"source": source, "skipped": skipped})
}

func (l *Logger) Fatal(err error) {
	l.Event(EvFatal, map[string]any{"error": err.Error()})
}
