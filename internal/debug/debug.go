// Package debug provides optional file-based debug logging.
//
// When the MULTISPLIT_DEBUG environment variable is set to a file path,
// debug messages are appended to that file. Otherwise, logging is a
// no-op. The engine itself never logs through any other channel.
package debug

import (
	"fmt"
	"os"
	"sync"
	"time"
)

var (
	mu   sync.Mutex
	file *os.File
	once sync.Once
)

// Log appends a formatted message to the debug file, if one is
// configured. Safe to call from anywhere; does nothing when
// MULTISPLIT_DEBUG is unset or the file cannot be opened.
func Log(format string, args ...any) {
	once.Do(open)
	if file == nil {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(file, "%s ", time.Now().Format("15:04:05.000"))
	fmt.Fprintf(file, format, args...)
	fmt.Fprintln(file)
}

func open() {
	path := os.Getenv("MULTISPLIT_DEBUG")
	if path == "" {
		return
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return
	}
	file = f
}
