// ABOUTME: External editor probing and launching
// ABOUTME: Resolves a runnable editor and spawns it synchronously on entry files
package editor

import (
	"fmt"
	"os"
	"os/exec"
)

// fallbackEditor is tried when the configured editor isn't runnable.
const fallbackEditor = "sensible-editor"

// Available reports whether name resolves to a runnable program.
func Available(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// Choose returns the configured editor if it is runnable, falling back to
// sensible-editor. Errors when neither can be found.
func Choose(configured string) (string, error) {
	if Available(configured) {
		return configured, nil
	}
	if Available(fallbackEditor) {
		return fallbackEditor, nil
	}
	return "", fmt.Errorf("%s not available", configured)
}

// UserDefault returns the user's usual editor from the environment, for use
// in generated config files.
func UserDefault() string {
	if ed := os.Getenv("EDITOR"); ed != "" {
		return ed
	}
	if ed := os.Getenv("VISUAL"); ed != "" {
		return ed
	}
	return "vi"
}

// Launch opens path in the named editor and blocks until the editor exits.
// The editor's exit status is ignored.
func Launch(name, path string) error {
	cmd := exec.Command(name, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to launch %s: %w", name, err)
	}
	_ = cmd.Wait()
	return nil
}
