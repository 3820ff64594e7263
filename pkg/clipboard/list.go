package clipboard

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// Summary describes one clipboard with contents, for status display
type Summary struct {
	// Name is the clipboard name
	Name string

	// Text is true when the clipboard holds a raw text buffer
	Text bool

	// Preview is the first line of the text buffer (text mode only)
	Preview string

	// Entries are the staged entry names (file mode only)
	Entries []string
}

// List returns a summary of every clipboard under baseDir that has
// contents, sorted by name. Clipboards with empty staging directories
// are omitted.
func List(baseDir string) ([]Summary, error) {
	dirEntries, err := os.ReadDir(baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read clipboards directory: %w", err)
	}

	var summaries []Summary
	for _, entry := range dirEntries {
		if !entry.IsDir() {
			continue
		}

		clip, err := New(baseDir, entry.Name())
		if err != nil {
			continue
		}
		if empty, err := clip.Empty(); err != nil || empty {
			continue
		}

		summary := Summary{Name: clip.Name()}
		if clip.IsText() {
			summary.Text = true
			if raw, err := clip.ReadRaw(); err == nil {
				summary.Preview = strings.ReplaceAll(string(raw), "\n", "")
			}
		} else {
			items, err := clip.Entries()
			if err != nil {
				continue
			}
			for _, item := range items {
				summary.Entries = append(summary.Entries, item.Name)
			}
		}
		summaries = append(summaries, summary)
	}

	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Name < summaries[j].Name })
	return summaries, nil
}
