package integration

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bdeleeuw/clipstash/pkg/clipboard"
	"github.com/bdeleeuw/clipstash/pkg/engine"
	"github.com/bdeleeuw/clipstash/pkg/models"
)

// TestHelper provides utilities for integration tests
type TestHelper struct {
	t         *testing.T
	tempDir   string
	sourceDir string
	destDir   string
	clip      *clipboard.Clipboard
}

// NewTestHelper creates a new integration test helper
func NewTestHelper(t *testing.T) *TestHelper {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "clipstash-integration-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	sourceDir := filepath.Join(tempDir, "source")
	destDir := filepath.Join(tempDir, "dest")

	if err := os.MkdirAll(sourceDir, 0755); err != nil {
		t.Fatalf("failed to create source dir: %v", err)
	}
	if err := os.MkdirAll(destDir, 0755); err != nil {
		t.Fatalf("failed to create dest dir: %v", err)
	}

	clip, err := clipboard.New(filepath.Join(tempDir, "clipboards"), "0")
	if err != nil {
		t.Fatalf("failed to create clipboard: %v", err)
	}

	return &TestHelper{
		t:         t,
		tempDir:   tempDir,
		sourceDir: sourceDir,
		destDir:   destDir,
		clip:      clip,
	}
}

// CreateSourceFile creates a file in the source directory
func (h *TestHelper) CreateSourceFile(name, content string) string {
	h.t.Helper()
	path := filepath.Join(h.sourceDir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		h.t.Fatalf("failed to create source subdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		h.t.Fatalf("failed to create source file: %v", err)
	}
	return path
}

// ReadDestFile reads a file from the destination directory
func (h *TestHelper) ReadDestFile(name string) string {
	h.t.Helper()
	data, err := os.ReadFile(filepath.Join(h.destDir, name))
	if err != nil {
		h.t.Fatalf("failed to read dest file %s: %v", name, err)
	}
	return string(data)
}

func (h *TestHelper) newEngine(action models.Action, safe bool, policy models.ConflictPolicy) *engine.Engine {
	req := &models.CopyRequest{
		ID:        "integration",
		Action:    action,
		Clipboard: h.clip.Name(),
		SafeCopy:  safe,
		Policy:    policy,
		CreatedAt: time.Now(),
	}
	return engine.New(h.clip, req, nil, engine.NewConflictResolver(policy, nil), nil, nil)
}

func TestCopyThenPaste(t *testing.T) {
	h := NewTestHelper(t)

	paths := []string{
		h.CreateSourceFile("readme.md", "docs"),
		h.CreateSourceFile(filepath.Join("project", "main.go"), "package main"),
	}
	// the directory itself is the second staged item
	sources := []string{paths[0], filepath.Join(h.sourceDir, "project")}

	batch, err := engine.ResolveSources(sources)
	if err != nil {
		t.Fatalf("ResolveSources() error = %v", err)
	}

	copier := h.newEngine(models.ActionCopy, true, models.ConflictAsk)
	copier.CopyBatch(batch)
	if failures := copier.Aggregator().Failures(); len(failures) != 0 {
		t.Fatalf("copy failures: %v", failures)
	}

	paster := h.newEngine(models.ActionPaste, true, models.ConflictAsk)
	if err := paster.PasteBatch(h.destDir, nil); err != nil {
		t.Fatalf("PasteBatch() error = %v", err)
	}

	if got := h.ReadDestFile("readme.md"); got != "docs" {
		t.Errorf("readme.md = %q, want docs", got)
	}
	if got := h.ReadDestFile(filepath.Join("project", "main.go")); got != "package main" {
		t.Errorf("project/main.go = %q, want package main", got)
	}

	stats := paster.Aggregator().Stats()
	if stats.Files != 1 || stats.Directories != 1 {
		t.Errorf("paste stats = %+v, want 1 file and 1 directory", stats)
	}

	// a copy leaves the clipboard intact for further pastes
	entries, err := h.clip.Entries()
	if err != nil {
		t.Fatalf("Entries() error = %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("clipboard has %d entries after paste, want 2", len(entries))
	}
}

func TestCutThenPaste(t *testing.T) {
	h := NewTestHelper(t)

	src := h.CreateSourceFile("moved.txt", "on the move")
	batch, err := engine.ResolveSources([]string{src})
	if err != nil {
		t.Fatalf("ResolveSources() error = %v", err)
	}

	cutter := h.newEngine(models.ActionCut, true, models.ConflictAsk)
	cutter.CopyBatch(batch)

	originals, err := h.clip.Originals()
	if err != nil {
		t.Fatalf("Originals() error = %v", err)
	}
	if len(originals) != 1 {
		t.Fatalf("originals = %v, want the cut source recorded", originals)
	}

	paster := h.newEngine(models.ActionCut, true, models.ConflictAsk)
	if err := paster.PasteBatch(h.destDir, nil); err != nil {
		t.Fatalf("PasteBatch() error = %v", err)
	}

	if got := h.ReadDestFile("moved.txt"); got != "on the move" {
		t.Errorf("moved.txt = %q, want original content", got)
	}

	// the staged entry is consumed by the paste
	entries, err := h.clip.Entries()
	if err != nil {
		t.Fatalf("Entries() error = %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("clipboard has %d entries after cut paste, want 0", len(entries))
	}
}

func TestPasteTwiceWithReplaceAll(t *testing.T) {
	h := NewTestHelper(t)

	src := h.CreateSourceFile("file.txt", "v1")
	batch, err := engine.ResolveSources([]string{src})
	if err != nil {
		t.Fatalf("ResolveSources() error = %v", err)
	}
	h.newEngine(models.ActionCopy, true, models.ConflictAsk).CopyBatch(batch)

	first := h.newEngine(models.ActionPaste, true, models.ConflictAsk)
	if err := first.PasteBatch(h.destDir, nil); err != nil {
		t.Fatalf("first PasteBatch() error = %v", err)
	}

	// restage changed content under the same name
	if err := h.clip.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if err := os.WriteFile(src, []byte("v2"), 0644); err != nil {
		t.Fatalf("failed to update source: %v", err)
	}
	h.newEngine(models.ActionCopy, true, models.ConflictAsk).CopyBatch(batch)

	second := h.newEngine(models.ActionPaste, true, models.ConflictReplaceAll)
	if err := second.PasteBatch(h.destDir, nil); err != nil {
		t.Fatalf("second PasteBatch() error = %v", err)
	}

	if got := h.ReadDestFile("file.txt"); got != "v2" {
		t.Errorf("file.txt = %q, want replaced v2", got)
	}
	if failures := second.Aggregator().Failures(); len(failures) != 0 {
		t.Errorf("unexpected failures: %v", failures)
	}
}

func TestFastCopySharesStorage(t *testing.T) {
	h := NewTestHelper(t)

	src := h.CreateSourceFile("linked.txt", "shared bytes")
	batch, err := engine.ResolveSources([]string{src})
	if err != nil {
		t.Fatalf("ResolveSources() error = %v", err)
	}

	copier := h.newEngine(models.ActionCopy, false, models.ConflictAsk)
	copier.CopyBatch(batch)
	if failures := copier.Aggregator().Failures(); len(failures) != 0 {
		t.Skipf("fast copy unavailable on this filesystem: %v", failures)
	}

	if bytes := copier.Aggregator().Stats().Bytes; bytes != 0 {
		t.Errorf("Bytes = %d, want 0 for a hard-linked copy", bytes)
	}

	srcInfo, err := os.Stat(src)
	if err != nil {
		t.Fatalf("stat source: %v", err)
	}
	stagedInfo, err := os.Stat(filepath.Join(h.clip.DataDir(), "linked.txt"))
	if err != nil {
		t.Fatalf("stat staged: %v", err)
	}
	if !os.SameFile(srcInfo, stagedInfo) {
		t.Error("fast copy should stage the same filesystem entry")
	}
}
