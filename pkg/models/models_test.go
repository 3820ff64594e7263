package models

import (
	"errors"
	"testing"
	"time"
)

// ============== Action Tests ==============

func TestAction(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
		cut      bool
	}{
		{ActionCopy, "copy", false},
		{ActionCut, "cut", true},
		{ActionAdd, "add", false},
		{ActionPaste, "paste", false},
		{ActionRemove, "remove", false},
		{ActionLoad, "load", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			if string(tt.action) != tt.expected {
				t.Errorf("Action = %s, want %s", string(tt.action), tt.expected)
			}
			if tt.action.CutSemantics() != tt.cut {
				t.Errorf("CutSemantics() = %v, want %v", tt.action.CutSemantics(), tt.cut)
			}
		})
	}
}

// ============== ConflictPolicy Tests ==============

func TestConflictPolicy(t *testing.T) {
	tests := []struct {
		policy   ConflictPolicy
		expected string
		sticky   bool
	}{
		{ConflictAsk, "ask", false},
		{ConflictSkipOnce, "skip", false},
		{ConflictReplaceOnce, "replace", false},
		{ConflictSkipAll, "skip-all", true},
		{ConflictReplaceAll, "replace-all", true},
	}

	for _, tt := range tests {
		t.Run(string(tt.policy), func(t *testing.T) {
			if string(tt.policy) != tt.expected {
				t.Errorf("ConflictPolicy = %s, want %s", string(tt.policy), tt.expected)
			}
			if tt.policy.Sticky() != tt.sticky {
				t.Errorf("Sticky() = %v, want %v", tt.policy.Sticky(), tt.sticky)
			}
		})
	}
}

// ============== CopyRequest Tests ==============

func TestCopyRequestValidate(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		req := &CopyRequest{
			ID:        "test-id",
			Action:    ActionCopy,
			Clipboard: "0",
			Policy:    ConflictAsk,
			CreatedAt: time.Now(),
		}
		if err := req.Validate(); err != nil {
			t.Errorf("Validate() error = %v", err)
		}
	})

	t.Run("MissingClipboard", func(t *testing.T) {
		req := &CopyRequest{Action: ActionCopy}
		if err := req.Validate(); err == nil {
			t.Error("Validate() should fail without a clipboard name")
		}
	})

	t.Run("UnknownAction", func(t *testing.T) {
		req := &CopyRequest{Action: Action("shred"), Clipboard: "0"}
		if err := req.Validate(); err == nil {
			t.Error("Validate() should fail for unknown action")
		}
	})

	t.Run("OncePolicyAsInitial", func(t *testing.T) {
		req := &CopyRequest{Action: ActionPaste, Clipboard: "0", Policy: ConflictSkipOnce}
		if err := req.Validate(); err == nil {
			t.Error("Validate() should reject a once-variant as initial policy")
		}
	})
}

// ============== Report Tests ==============

func TestReportStatus(t *testing.T) {
	tests := []struct {
		name     string
		stats    Statistics
		failures []Failure
		expected BatchStatus
		exit     int
	}{
		{
			name:     "AllSucceeded",
			stats:    Statistics{Files: 3, Directories: 1},
			expected: StatusSuccess,
			exit:     0,
		},
		{
			name:     "EmptyBatch",
			expected: StatusSuccess,
			exit:     0,
		},
		{
			name:     "SomeFailed",
			stats:    Statistics{Files: 2},
			failures: []Failure{{Item: "a.txt", Err: errors.New("permission denied")}},
			expected: StatusPartial,
			exit:     1,
		},
		{
			name:     "AllFailed",
			failures: []Failure{{Item: "a.txt", Err: errors.New("not found")}},
			expected: StatusFailed,
			exit:     2,
		},
		{
			name:     "BytesOnlySuccess",
			stats:    Statistics{Bytes: 42},
			failures: []Failure{{Item: "b.txt", Err: errors.New("disk full")}},
			expected: StatusPartial,
			exit:     1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := &Report{Stats: tt.stats, Failures: tt.failures}
			if got := report.Status(); got != tt.expected {
				t.Errorf("Status() = %s, want %s", got, tt.expected)
			}
			if got := report.Status().ExitCode(); got != tt.exit {
				t.Errorf("ExitCode() = %d, want %d", got, tt.exit)
			}
		})
	}
}

// ============== Error Tests ==============

func TestPatternError(t *testing.T) {
	inner := errors.New("missing closing ]")
	err := &PatternError{Pattern: "[a-", Err: inner}

	if !errors.Is(err, inner) {
		t.Error("PatternError should unwrap to the compile error")
	}
	if err.Error() == "" {
		t.Error("PatternError message should not be empty")
	}
}
