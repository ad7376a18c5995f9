package models

// CopyDecision is the outcome of evaluating one candidate file against
// its prospective target path
type CopyDecision string

const (
	// DecisionNewFile means no file exists at the target path
	DecisionNewFile CopyDecision = "new_file"
	// DecisionSizeMismatch means the target exists with a different size
	DecisionSizeMismatch CopyDecision = "size_mismatch"
	// DecisionHashMismatch means sizes match but content digests differ
	DecisionHashMismatch CopyDecision = "hash_mismatch"
	// DecisionIdenticalHash means the target already holds identical content
	DecisionIdenticalHash CopyDecision = "identical_hash"
	// DecisionSourceHashFailed means the source could not be hashed
	DecisionSourceHashFailed CopyDecision = "source_hash_failed"
	// DecisionTargetHashFailed means the target could not be hashed
	DecisionTargetHashFailed CopyDecision = "target_hash_failed"
	// DecisionComparisonError means the comparison itself failed
	DecisionComparisonError CopyDecision = "comparison_error"
)

// Action is what the engine does about a decision
type Action string

const (
	// ActionCopy writes the source to a previously unoccupied target path
	ActionCopy Action = "copy"
	// ActionRename writes the source under a disambiguated name, keeping
	// the existing different file intact
	ActionRename Action = "rename"
	// ActionReplace overwrites an existing target file
	ActionReplace Action = "replace"
	// ActionSkip leaves the target untouched
	ActionSkip Action = "skip"
	// ActionForceCopy copies despite an inconclusive comparison; hashing
	// failures never silently skip
	ActionForceCopy Action = "force_copy"
)

// Action maps each decision to the action the engine takes. Copies are
// placed atomically, so a file at a final target name is always a
// complete earlier copy: a confirmed content difference means a genuine
// collision between distinct files, which renames rather than
// overwrites. Only an unreadable target is replaced outright.
func (d CopyDecision) Action() Action {
	switch d {
	case DecisionNewFile:
		return ActionCopy
	case DecisionSizeMismatch, DecisionHashMismatch:
		return ActionRename
	case DecisionTargetHashFailed:
		return ActionReplace
	case DecisionIdenticalHash:
		return ActionSkip
	case DecisionSourceHashFailed, DecisionComparisonError:
		return ActionForceCopy
	default:
		return ActionForceCopy
	}
}

// RenameReason explains how a target path was disambiguated
type RenameReason string

const (
	// RenameNone means the base candidate path was free
	RenameNone RenameReason = "none"
	// RenameSkipIdentical means an on-disk file already holds this content
	RenameSkipIdentical RenameReason = "skip_identical"
	// RenameWithHint means a tag derived from the source folder was appended
	RenameWithHint RenameReason = "renamed_with_hint"
	// RenameWithNumber means a numeric suffix was appended
	RenameWithNumber RenameReason = "renamed_with_number"
	// RenameExhausted means the numeric suffix bound was exceeded
	RenameExhausted RenameReason = "too_many_duplicates"
)

// TargetResolution is the result of resolving a collision-free
// destination for one file
type TargetResolution struct {
	Path   string
	Reason RenameReason
	Tag    string // hint tag or numeric suffix, when applicable
}
