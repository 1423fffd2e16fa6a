// ABOUTME: Tests for config discovery and loading
// ABOUTME: Validates search-path order, TOML/YAML decoding, defaults, and validation
package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jrnl.toml")
	writeFile(t, path, `
editor = "vim"
journal_path = "/srv/journal"
hours_past_midnight_included_in_day = 6
write_timestamp = false
create_new_entries_when_specifying_dates = true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Editor != "vim" {
		t.Errorf("got editor %s", cfg.Editor)
	}
	if cfg.JournalPath != "/srv/journal" {
		t.Errorf("got journal_path %s", cfg.JournalPath)
	}
	if cfg.HoursPastMidnightIncludedInDay != 6 {
		t.Errorf("got hours %d, want 6", cfg.HoursPastMidnightIncludedInDay)
	}
	if cfg.WriteTimestamp {
		t.Error("expected write_timestamp false")
	}
	if !cfg.CreateNewEntriesWhenSpecifyingDates {
		t.Error("expected create_new_entries_when_specifying_dates true")
	}
}

func TestLoadLegacyYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".jrnlrc")
	writeFile(t, path, `
editor: nano
journal_path: /srv/journal
hours_past_midnight_included_in_day: 2
write_timestamp: true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Editor != "nano" {
		t.Errorf("got editor %s", cfg.Editor)
	}
	if cfg.HoursPastMidnightIncludedInDay != 2 {
		t.Errorf("got hours %d, want 2", cfg.HoursPastMidnightIncludedInDay)
	}
}

func TestLoadDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jrnl.toml")
	writeFile(t, path, `
editor = "vim"
journal_path = "/srv/journal"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.HoursPastMidnightIncludedInDay != 4 {
		t.Errorf("got hours %d, want default 4", cfg.HoursPastMidnightIncludedInDay)
	}
	if !cfg.WriteTimestamp {
		t.Error("expected write_timestamp default true")
	}
	if cfg.CreateNewEntriesWhenSpecifyingDates {
		t.Error("expected create_new_entries_when_specifying_dates default false")
	}
}

func TestLoadValidation(t *testing.T) {
	t.Run("missing editor", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "jrnl.toml")
		writeFile(t, path, `journal_path = "/srv/journal"`)

		_, err := Load(path)
		if err == nil {
			t.Fatal("expected error for missing editor")
		}
	})

	t.Run("missing journal_path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "jrnl.toml")
		writeFile(t, path, `editor = "vim"`)

		_, err := Load(path)
		if err == nil {
			t.Fatal("expected error for missing journal_path")
		}
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "jrnl.toml")
		writeFile(t, path, `this is not toml at all {{{`)

		_, err := Load(path)
		if err == nil {
			t.Fatal("expected error for malformed config")
		}
	})
}

func TestLoadExpandsJournalPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "jrnl.toml")
	writeFile(t, path, `
editor = "vim"
journal_path = "~/journal"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if want := filepath.Join(home, "journal"); cfg.JournalPath != want {
		t.Errorf("got %s, want %s", cfg.JournalPath, want)
	}
}

func TestLoadDiscovery(t *testing.T) {
	t.Run("legacy jrnlrc wins over toml", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)
		t.Setenv("XDG_CONFIG_HOME", "")

		writeFile(t, filepath.Join(home, ".jrnlrc"), "editor: nano\njournal_path: /legacy\n")
		writeFile(t, filepath.Join(home, ".config", "jrnl.toml"), "editor = \"vim\"\njournal_path = \"/modern\"\n")

		cfg, err := Load("")
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if cfg.JournalPath != "/legacy" {
			t.Errorf("got %s, want the legacy config's path", cfg.JournalPath)
		}
	})

	t.Run("XDG config dir is searched", func(t *testing.T) {
		home := t.TempDir()
		xdg := t.TempDir()
		t.Setenv("HOME", home)
		t.Setenv("XDG_CONFIG_HOME", xdg)

		writeFile(t, filepath.Join(xdg, "jrnl.toml"), "editor = \"vim\"\njournal_path = \"/xdg\"\n")

		cfg, err := Load("")
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if cfg.JournalPath != "/xdg" {
			t.Errorf("got %s, want /xdg", cfg.JournalPath)
		}
	})

	t.Run("no config anywhere", func(t *testing.T) {
		t.Setenv("HOME", t.TempDir())
		t.Setenv("XDG_CONFIG_HOME", "")

		_, err := Load("")
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("got %v, want ErrNotFound", err)
		}
	})
}
