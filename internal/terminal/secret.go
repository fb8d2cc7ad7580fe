package terminal

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"
)

// IsTerminal returns true if stdin is a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(syscall.Stdin))
}

// ReadSecret prompts for a sensitive value (API key, token) without echoing
// input. Pressing Enter on an empty line returns "" so optional credentials
// can be skipped.
func ReadSecret(prompt string) (string, error) {
	if !IsTerminal() {
		return "", fmt.Errorf("cannot read secret: not a terminal")
	}

	fmt.Print(prompt)
	secret, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println() // newline after hidden entry
	if err != nil {
		return "", fmt.Errorf("failed to read secret: %w", err)
	}

	return strings.TrimSpace(string(secret)), nil
}

// ReadSecretFromStdin reads a secret from piped stdin.
// Use this when a --from-stdin style flag is provided.
func ReadSecretFromStdin() (string, error) {
	reader := bufio.NewReader(os.Stdin)
	secret, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read secret from stdin: %w", err)
	}
	return strings.TrimSuffix(secret, "\n"), nil
}

// ReadSecretMultiSource attempts to read a secret from multiple sources in order:
//  1. If useStdin is true, read from stdin (for piped input)
//  2. The named environment variable, if set
//  3. Interactive terminal prompt
func ReadSecretMultiSource(useStdin bool, envVar, prompt string) (string, error) {
	if useStdin {
		return ReadSecretFromStdin()
	}

	if envVar != "" {
		if v := os.Getenv(envVar); v != "" {
			return v, nil
		}
	}

	return ReadSecret(prompt)
}
