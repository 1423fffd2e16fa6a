// ABOUTME: Journal entry file management
// ABOUTME: Computes entry paths, appends timestamp blocks, and hands files to the editor
package journal

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/mwhite/jrnl/internal/editor"
)

// DateLayout is the on-disk date format, used for both file names and the
// date header line inside entries.
const DateLayout = "2006-01-02"

// timeLayout is the session time marker format.
const timeLayout = "15:04"

// Entry is an existing journal entry file.
type Entry struct {
	Date time.Time `json:"date"`
	Path string    `json:"path"`
}

// EntryPath returns the year directory and entry file path for a date. The
// path is a pure function of the journal root and the calendar date.
func EntryPath(root string, date time.Time) (yearDir, entryPath string) {
	yearDir = filepath.Join(root, strconv.Itoa(date.Year()))
	entryPath = filepath.Join(yearDir, date.Format(DateLayout)+".txt")
	return yearDir, entryPath
}

// Open prepares and opens one journal entry in the editor, blocking until the
// editor exits. In read mode a missing entry is reported to errW and skipped
// without creating anything. The timestamp block, when requested, is stamped
// with now rather than the entry's date.
func Open(date time.Time, editorName, root string, writeStamp, readMode bool, errW io.Writer, now time.Time) error {
	yearDir, entryPath := EntryPath(root, date)

	if readMode {
		if _, err := os.Stat(entryPath); errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(errW, "%s does not exist!\n", entryPath)
			return nil
		}
	}

	if err := os.MkdirAll(yearDir, 0755); err != nil {
		return fmt.Errorf("failed to create year directory: %w", err)
	}

	if writeStamp {
		if err := WriteTimestamp(entryPath, now); err != nil {
			return fmt.Errorf("failed to write timestamp: %w", err)
		}
	}

	return editor.Launch(editorName, entryPath)
}

// WriteTimestamp appends a date/time stamp block to the entry at path.
//
// A new file gets the date line and time line. An existing file gets the time
// line for every call but the date line only if today's date isn't already
// somewhere in the file, with a blank line separating the block from prior
// content.
func WriteTimestamp(path string, now time.Time) error {
	dateLine := now.Format(DateLayout)
	timeLine := now.Format(timeLayout)

	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return os.WriteFile(path, []byte(dateLine+"\n"+timeLine+"\n"), 0644)
	}
	if err != nil {
		return err
	}

	printDate := !strings.Contains(string(content), dateLine)
	printNewLine := !strings.HasSuffix(string(content), "\n\n")

	var stamp strings.Builder
	if printNewLine {
		stamp.WriteString("\n")
	}
	if printDate {
		stamp.WriteString(dateLine + "\n")
	}
	stamp.WriteString(timeLine + "\n\n")

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.WriteString(stamp.String())
	return err
}

// List returns existing entries under root, newest first. Files and
// directories that don't follow the <year>/<YYYY-MM-DD>.txt layout are
// ignored so stray notes don't break listing.
func List(root string) ([]Entry, error) {
	years, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}

	var entries []Entry
	for _, year := range years {
		if !year.IsDir() {
			continue
		}
		if _, err := strconv.Atoi(year.Name()); err != nil {
			continue
		}

		files, err := os.ReadDir(filepath.Join(root, year.Name()))
		if err != nil {
			return nil, err
		}
		for _, file := range files {
			name := file.Name()
			if file.IsDir() || !strings.HasSuffix(name, ".txt") {
				continue
			}
			date, err := time.ParseInLocation(DateLayout, strings.TrimSuffix(name, ".txt"), time.Local)
			if err != nil {
				continue
			}
			entries = append(entries, Entry{
				Date: date,
				Path: filepath.Join(root, year.Name(), name),
			})
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})

	return entries, nil
}
