// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package credential resolves the Google API key for the Gemini client.
//
// Resolution order: the process environment always wins, then an optional
// .env file (next to the executable, then the working directory), then an
// interactive prompt. The resolved key lives in process memory only; it is
// never written to disk and never logged raw.
package credential

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"golang.org/x/term"
)

// EnvVar is the environment variable holding the Google API key.
const EnvVar = "GOOGLE_API_KEY"

// ErrMissing indicates no key could be resolved from the environment, the
// .env file, or the interactive prompt.
var ErrMissing = errors.New("missing credential")

// Instructions is printed once before the interactive prompt.
const Instructions = `Google API Key not found.

To get a key:
1. Go to Google AI Studio: https://aistudio.google.com/
    Or search gemini API on google.
2. Log in with your Google Account.
3. Click 'Get API key', then 'Create API key'.
4. Generate an api key.
5. Copy your new API key.
`

// promptLabel matches the original key-entry wording.
const promptLabel = "Please paste your Google API Key: "

// =============================================================================
// OPTIONS
// =============================================================================

// Options controls where Resolve looks for a key.
type Options struct {
	// UseEnvFile enables the .env file step. When false only the process
	// environment and the interactive prompt are consulted.
	UseEnvFile bool

	// EnvFile overrides the candidate search with an explicit .env path.
	EnvFile string

	// Prompt is the interactive fallback. Nil uses a hidden terminal read.
	Prompt func() (string, error)

	// Out receives the instruction text. Nil means os.Stdout.
	Out io.Writer
}

// DefaultOptions returns the standard resolution behavior with the .env
// file step enabled.
func DefaultOptions() Options {
	return Options{UseEnvFile: true}
}

// =============================================================================
// RESOLUTION
// =============================================================================

// Resolve returns the API key from the first source that has one. Sources
// that are absent are skipped silently; only exhausting all of them is an
// error. Any non-empty string is accepted; the service itself is the
// authority on key validity.
func Resolve(opts Options) (string, error) {
	if key, ok := FromEnv(); ok {
		return key, nil
	}

	if opts.UseEnvFile {
		paths := envFileCandidates()
		if opts.EnvFile != "" {
			paths = []string{opts.EnvFile}
		}
		for _, path := range paths {
			if key, ok := FromEnvFile(path); ok {
				return key, nil
			}
		}
	}

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	fmt.Fprintln(out, Instructions)

	prompt := opts.Prompt
	if prompt == nil {
		prompt = func() (string, error) {
			return promptSecure(promptLabel), nil
		}
	}

	key, err := prompt()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMissing, err)
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return "", ErrMissing
	}
	return key, nil
}

// FromEnv reads the key from the process environment.
func FromEnv() (string, bool) {
	key := strings.TrimSpace(os.Getenv(EnvVar))
	return key, key != ""
}

// FromEnvFile reads the key from a .env file without mutating the process
// environment. A missing or unreadable file is not an error.
func FromEnvFile(path string) (string, bool) {
	vars, err := godotenv.Read(path)
	if err != nil {
		return "", false
	}
	key := strings.TrimSpace(vars[EnvVar])
	return key, key != ""
}

// envFileCandidates returns the .env locations to try, in order: next to
// the running executable (packaged layout), then the working directory
// (run-from-source layout).
func envFileCandidates() []string {
	var paths []string
	if exe, err := os.Executable(); err == nil {
		paths = append(paths, filepath.Join(filepath.Dir(exe), ".env"))
	}
	paths = append(paths, ".env")
	return paths
}

// =============================================================================
// INPUT HELPERS
// =============================================================================

var inputReader = bufio.NewReader(os.Stdin)
var inputMutex sync.Mutex

// promptSecure prompts for sensitive input without echoing.
// Uses golang.org/x/term when stdin is a terminal, falling back to a
// buffered line read for pipes.
func promptSecure(prompt string) string {
	inputMutex.Lock()
	defer inputMutex.Unlock()

	if prompt != "" {
		fmt.Print(prompt)
	}

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		keyBytes, err := term.ReadPassword(fd)
		if err != nil {
			return ""
		}
		fmt.Println() // Add newline after hidden input
		return strings.TrimSpace(string(keyBytes))
	}

	line, err := inputReader.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.TrimSpace(line)
}
