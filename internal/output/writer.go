package output

import (
	"fmt"
	"os"
	"strings"
)

// WriteList writes display names to path, one per line with a trailing
// newline, overwriting any existing file. There is no partial-write
// recovery; a failure surfaces to the caller and is fatal to the run.
func WriteList(path string, names []string) error {
	var sb strings.Builder

	for _, name := range names {
		sb.WriteString(name)
		sb.WriteByte('\n')
	}

	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write listing: %w", err)
	}

	return nil
}
