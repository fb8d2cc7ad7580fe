// Package envfile renders, parses, and updates the flat KEY=VALUE
// credentials file consumed by the service integrations.
package envfile

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/joho/godotenv"

	"github.com/johanlido/ai-mcp-template/internal/constants"
)

//go:embed env.tmpl
var template string

// placeholderRe matches {{KEY}} substitution slots in the template.
var placeholderRe = regexp.MustCompile(`\{\{([A-Z0-9_]+)\}\}`)

// ErrExists is returned by Write when the target file already exists and
// force was not set. Callers decide whether to prompt or abort.
var ErrExists = fmt.Errorf("env file already exists")

// Render fills the embedded template with the given values. Placeholders
// without a value render as empty assignments so the key still appears in
// the file as documentation. Values for keys the template does not know are
// appended at the end.
func Render(values map[string]string) string {
	seen := make(map[string]bool)
	content := placeholderRe.ReplaceAllStringFunc(template, func(match string) string {
		key := placeholderRe.FindStringSubmatch(match)[1]
		seen[key] = true
		return values[key]
	})

	var extra []string
	for key := range values {
		if !seen[key] {
			extra = append(extra, key)
		}
	}
	if len(extra) > 0 {
		sort.Strings(extra)
		var b strings.Builder
		b.WriteString(content)
		b.WriteString("\n# Additional integration settings\n")
		for _, key := range extra {
			fmt.Fprintf(&b, "%s=%s\n", key, values[key])
		}
		content = b.String()
	}

	return content
}

// Parse reads an existing env file into a key/value map.
func Parse(path string) (map[string]string, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse env file %s: %w", path, err)
	}
	return values, nil
}

// Merge appends keys missing from existing content without touching lines
// the user already has: existing values, comments, and ordering are
// preserved verbatim. Returns the merged content and the keys added.
func Merge(existing string, values map[string]string) (string, []string) {
	present, _ := godotenv.Unmarshal(existing)

	var added []string
	for key := range values {
		if _, ok := present[key]; !ok {
			added = append(added, key)
		}
	}
	if len(added) == 0 {
		return existing, nil
	}
	sort.Strings(added)

	var b strings.Builder
	b.WriteString(existing)
	if !strings.HasSuffix(existing, "\n") {
		b.WriteString("\n")
	}
	b.WriteString("\n# Added by aimcp setup\n")
	for _, key := range added {
		fmt.Fprintf(&b, "%s=%s\n", key, values[key])
	}
	return b.String(), added
}

// Set replaces the value of key in existing content, or appends the
// assignment when the key is not present. Unlike Merge this is an explicit
// update: the caller has asked for exactly this key to change.
func Set(existing, key, value string) string {
	assignRe := regexp.MustCompile(`(?m)^\s*(?:export\s+)?` + regexp.QuoteMeta(key) + `=.*$`)
	if assignRe.MatchString(existing) {
		replaced := false
		return assignRe.ReplaceAllStringFunc(existing, func(line string) string {
			if replaced {
				return line
			}
			replaced = true
			return fmt.Sprintf("%s=%s", key, value)
		})
	}

	var b strings.Builder
	b.WriteString(existing)
	if existing != "" && !strings.HasSuffix(existing, "\n") {
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "%s=%s\n", key, value)
	return b.String()
}

// Write writes content to path with credential-safe permissions, via a
// temp file and rename so a crash never leaves a half-written credentials
// file. When the file already exists and force is false it returns
// ErrExists and leaves the file untouched.
func Write(path, content string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%w: %s", ErrExists, path)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, constants.EnvFileName+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp env file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write env file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write env file: %w", err)
	}
	if err := os.Chmod(tmpName, constants.SecretFilePermissions); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to set env file permissions: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace env file: %w", err)
	}
	return nil
}

// MissingKeys returns the required keys that are absent or empty in the
// env file at path. A missing file reports every key as missing.
func MissingKeys(path string, required []string) []string {
	values, err := Parse(path)
	if err != nil {
		return append([]string(nil), required...)
	}

	var missing []string
	for _, key := range required {
		if strings.TrimSpace(values[key]) == "" {
			missing = append(missing, key)
		}
	}
	return missing
}
