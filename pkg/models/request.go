package models

import (
	"time"
)

// Action identifies the clipboard operation being performed
type Action string

const (
	// ActionCopy stages items without touching the sources
	ActionCopy Action = "copy"
	// ActionCut stages items and logs the sources for later removal
	ActionCut Action = "cut"
	// ActionAdd appends items to an already populated clipboard
	ActionAdd Action = "add"
	// ActionPaste copies staged items into the working directory
	ActionPaste Action = "paste"
	// ActionRemove deletes staged items matching a pattern
	ActionRemove Action = "remove"
	// ActionLoad replicates the staging tree into other clipboards
	ActionLoad Action = "load"
)

// ConflictPolicy defines how paste-time collisions are handled
type ConflictPolicy string

const (
	// ConflictAsk prompts the user for each collision
	ConflictAsk ConflictPolicy = "ask"
	// ConflictSkipOnce skips the current item only
	ConflictSkipOnce ConflictPolicy = "skip"
	// ConflictReplaceOnce overwrites the current item only
	ConflictReplaceOnce ConflictPolicy = "replace"
	// ConflictSkipAll skips every remaining collision in the batch
	ConflictSkipAll ConflictPolicy = "skip-all"
	// ConflictReplaceAll overwrites every remaining collision in the batch
	ConflictReplaceAll ConflictPolicy = "replace-all"
)

// Sticky returns true if the policy persists for the rest of the batch
func (p ConflictPolicy) Sticky() bool {
	return p == ConflictSkipAll || p == ConflictReplaceAll
}

// CutSemantics returns true if the action logs originals for cleanup
func (a Action) CutSemantics() bool {
	return a == ActionCut
}

// CopyRequest represents one batch operation configuration
type CopyRequest struct {
	ID        string
	Action    Action
	Clipboard string

	// SafeCopy forces full byte copies instead of hard links
	SafeCopy bool

	// Policy is the starting conflict policy for paste collisions
	Policy ConflictPolicy

	// Patterns are raw filename filters (whole-string regular expressions)
	Patterns []string

	CreatedAt time.Time
}

// Validate checks if the request configuration is valid
func (r *CopyRequest) Validate() error {
	if r.Clipboard == "" {
		return &ValidationError{Field: "Clipboard", Message: "clipboard name is required"}
	}
	switch r.Action {
	case ActionCopy, ActionCut, ActionAdd, ActionPaste, ActionRemove, ActionLoad:
	default:
		return &ValidationError{Field: "Action", Message: "unknown action: " + string(r.Action)}
	}
	switch r.Policy {
	case "", ConflictAsk, ConflictSkipAll, ConflictReplaceAll:
	default:
		return &ValidationError{Field: "Policy", Message: "initial policy must be ask, skip-all, or replace-all"}
	}
	return nil
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
