// Package clipboard manages the on-disk staging area backing each
// named clipboard: a data directory holding either a raw text buffer
// or a tree of copied items, plus sibling metadata files (originals
// list, note, lock).
package clipboard

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bdeleeuw/clipstash/internal/platform"
	"github.com/bdeleeuw/clipstash/pkg/models"
)

const (
	dataDirName       = "data"
	rawFileName       = "rawdata"
	metadataDirName   = "metadata"
	originalsFileName = "originals"
	notesFileName     = "notes"
	lockFileName      = "lock"
)

// Clipboard is one named staging directory
type Clipboard struct {
	name string
	root string
}

// New opens (creating if necessary) the clipboard with the given name
// under baseDir.
func New(baseDir, name string) (*Clipboard, error) {
	if err := platform.ValidateClipboardName(name); err != nil {
		return nil, err
	}

	root, err := filepath.Abs(filepath.Join(baseDir, name))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve clipboard path: %w", err)
	}

	for _, dir := range []string{dataDirName, metadataDirName} {
		if err := os.MkdirAll(filepath.Join(root, dir), 0755); err != nil {
			return nil, fmt.Errorf("failed to create clipboard directory: %w", err)
		}
	}

	return &Clipboard{name: name, root: root}, nil
}

// Name returns the clipboard name
func (c *Clipboard) Name() string { return c.name }

// Root returns the clipboard's top-level directory
func (c *Clipboard) Root() string { return c.root }

// DataDir returns the staging directory holding copied items
func (c *Clipboard) DataDir() string { return filepath.Join(c.root, dataDirName) }

// RawFile returns the path of the raw text buffer file
func (c *Clipboard) RawFile() string { return filepath.Join(c.DataDir(), rawFileName) }

func (c *Clipboard) metadataPath(name string) string {
	return filepath.Join(c.root, metadataDirName, name)
}

// IsText reports whether the clipboard currently holds a raw text
// buffer rather than a tree of items. The mode is determined by
// whichever exists when the operation begins.
func (c *Clipboard) IsText() bool {
	info, err := os.Stat(c.RawFile())
	return err == nil && info.Mode().IsRegular()
}

// Empty reports whether the staging directory has no contents
func (c *Clipboard) Empty() (bool, error) {
	entries, err := os.ReadDir(c.DataDir())
	if err != nil {
		if os.IsNotExist(err) {
			return true, nil
		}
		return false, fmt.Errorf("failed to read staging directory: %w", err)
	}
	return len(entries) == 0, nil
}

// Entries lists the direct children of the staging directory in name
// order.
func (c *Clipboard) Entries() (models.Batch, error) {
	dirEntries, err := os.ReadDir(c.DataDir())
	if err != nil {
		return nil, fmt.Errorf("failed to read staging directory: %w", err)
	}

	batch := make(models.Batch, 0, len(dirEntries))
	for _, entry := range dirEntries {
		item := models.Item{
			Path:  filepath.Join(c.DataDir(), entry.Name()),
			Name:  entry.Name(),
			IsDir: entry.IsDir(),
		}
		if info, err := entry.Info(); err == nil && !entry.IsDir() {
			item.Size = info.Size()
		}
		batch = append(batch, item)
	}
	return batch, nil
}

// RemoveEntry deletes one staged entry by name
func (c *Clipboard) RemoveEntry(name string) error {
	if name == "" || name != filepath.Base(name) {
		return fmt.Errorf("invalid staged entry name: %q", name)
	}
	if err := os.RemoveAll(filepath.Join(c.DataDir(), name)); err != nil {
		return fmt.Errorf("failed to remove staged entry: %w", err)
	}
	return nil
}

// Clear removes all staged data and the originals log, keeping the
// clipboard directories in place.
func (c *Clipboard) Clear() error {
	entries, err := os.ReadDir(c.DataDir())
	if err != nil {
		return fmt.Errorf("failed to read staging directory: %w", err)
	}
	for _, entry := range entries {
		if err := os.RemoveAll(filepath.Join(c.DataDir(), entry.Name())); err != nil {
			return fmt.Errorf("failed to clear staging directory: %w", err)
		}
	}
	return c.ClearOriginals()
}

// WriteRaw replaces the staging contents with a raw text buffer
func (c *Clipboard) WriteRaw(content []byte) (int64, error) {
	if err := os.WriteFile(c.RawFile(), content, 0644); err != nil {
		return 0, fmt.Errorf("failed to write text buffer: %w", err)
	}
	return int64(len(content)), nil
}

// AppendRaw appends to the raw text buffer
func (c *Clipboard) AppendRaw(content []byte) (int64, error) {
	file, err := os.OpenFile(c.RawFile(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return 0, fmt.Errorf("failed to open text buffer: %w", err)
	}
	defer file.Close()

	n, err := file.Write(content)
	if err != nil {
		return int64(n), fmt.Errorf("failed to append to text buffer: %w", err)
	}
	return int64(n), nil
}

// ReadRaw returns the raw text buffer contents
func (c *Clipboard) ReadRaw() ([]byte, error) {
	data, err := os.ReadFile(c.RawFile())
	if err != nil {
		return nil, fmt.Errorf("failed to read text buffer: %w", err)
	}
	return data, nil
}

// WriteRawFrom streams a reader into the raw text buffer, replacing it.
// Used when stdin is a pipe rather than a terminal.
func (c *Clipboard) WriteRawFrom(r io.Reader) (int64, error) {
	file, err := os.OpenFile(c.RawFile(), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return 0, fmt.Errorf("failed to open text buffer: %w", err)
	}
	defer file.Close()

	n, err := io.Copy(file, r)
	if err != nil {
		return n, fmt.Errorf("failed to write text buffer: %w", err)
	}
	return n, file.Close()
}

// StreamTo writes the clipboard contents to a writer: the raw buffer
// for a text clipboard, every staged regular file in path order for a
// file clipboard. Used when stdout is a pipe rather than a terminal.
func (c *Clipboard) StreamTo(w io.Writer) (int64, error) {
	if c.IsText() {
		file, err := os.Open(c.RawFile())
		if err != nil {
			return 0, fmt.Errorf("failed to open text buffer: %w", err)
		}
		defer file.Close()
		return io.Copy(w, file)
	}

	var total int64
	err := filepath.WalkDir(c.DataDir(), func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}

		file, err := os.Open(path)
		if err != nil {
			return err
		}
		n, err := io.Copy(w, file)
		total += n
		file.Close()
		return err
	})
	if err != nil {
		return total, fmt.Errorf("failed to stream clipboard contents: %w", err)
	}
	return total, nil
}

// AppendOriginal records an absolute source path in the originals log,
// one path per line. Written only for cut semantics; an external
// cleanup step reads and truncates the log.
func (c *Clipboard) AppendOriginal(path string) error {
	file, err := os.OpenFile(c.metadataPath(originalsFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open originals log: %w", err)
	}
	defer file.Close()

	if _, err := io.WriteString(file, path+"\n"); err != nil {
		return fmt.Errorf("failed to append to originals log: %w", err)
	}
	return nil
}

// Originals returns the recorded source paths in log order
func (c *Clipboard) Originals() ([]string, error) {
	file, err := os.Open(c.metadataPath(originalsFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open originals log: %w", err)
	}
	defer file.Close()

	var paths []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			paths = append(paths, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read originals log: %w", err)
	}
	return paths, nil
}

// ClearOriginals truncates the originals log
func (c *Clipboard) ClearOriginals() error {
	err := os.Remove(c.metadataPath(originalsFileName))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear originals log: %w", err)
	}
	return nil
}

// ConsumeOriginals deletes every path in the originals log and
// truncates it. This is the point where a cut becomes a move: for a
// cut of files the recorded sources go away, for a cut of text the
// recorded path is the clipboard's own raw buffer.
func (c *Clipboard) ConsumeOriginals() error {
	paths, err := c.Originals()
	if err != nil {
		return err
	}
	for _, path := range paths {
		if err := os.RemoveAll(path); err != nil {
			return fmt.Errorf("failed to remove cut source: %w", err)
		}
	}
	return c.ClearOriginals()
}

// Note returns the clipboard note, or an empty string if none is set
func (c *Clipboard) Note() (string, error) {
	data, err := os.ReadFile(c.metadataPath(notesFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read note: %w", err)
	}
	return string(data), nil
}

// SetNote stores the clipboard note
func (c *Clipboard) SetNote(text string) error {
	if err := os.WriteFile(c.metadataPath(notesFileName), []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write note: %w", err)
	}
	return nil
}

// RemoveNote deletes the clipboard note
func (c *Clipboard) RemoveNote() error {
	err := os.Remove(c.metadataPath(notesFileName))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove note: %w", err)
	}
	return nil
}

// LockedBy reports whether an advisory lock file is present and, if
// so, its contents (the pid of the locking process). The engine never
// acquires or checks this lock; it is surfaced for display only.
func (c *Clipboard) LockedBy() (string, bool) {
	data, err := os.ReadFile(c.metadataPath(lockFileName))
	if err != nil {
		return "", false
	}
	return strings.TrimSpace(string(data)), true
}

// LoadInto replaces the destination clipboard's staging contents with
// a full copy of this clipboard's staging tree.
func (c *Clipboard) LoadInto(dest *Clipboard) error {
	if dest.Root() == c.Root() {
		return fmt.Errorf("cannot load clipboard %q into itself", c.name)
	}
	if err := dest.Clear(); err != nil {
		return err
	}
	if err := copyTree(c.DataDir(), dest.DataDir()); err != nil {
		return fmt.Errorf("failed to load clipboard %q: %w", dest.Name(), err)
	}
	return nil
}

// copyTree duplicates a directory tree with full byte copies
func copyTree(srcDir, dstDir string) error {
	entries, err := os.ReadDir(srcDir)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		src := filepath.Join(srcDir, entry.Name())
		dst := filepath.Join(dstDir, entry.Name())

		if entry.IsDir() {
			if err := os.MkdirAll(dst, 0755); err != nil {
				return err
			}
			if err := copyTree(src, dst); err != nil {
				return err
			}
			continue
		}

		if err := copyFile(src, dst); err != nil {
			return err
		}
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
