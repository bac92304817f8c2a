package level

import (
	"fmt"
	"os"
)

// Load reads level text from a file. The caller decides whether to fall back
// to FallbackLevel on failure; this package never guesses.
func Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("level: cannot read %s: %w", path, err)
	}
	return string(data), nil
}
