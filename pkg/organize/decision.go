package organize

import (
	"context"
	"fmt"
	"os"

	"github.com/romsort/romsort/pkg/hashing"
	"github.com/romsort/romsort/pkg/models"
)

// Decider evaluates one source file against a prospective target path
// and produces a copy decision. Decisions absorb comparison failures
// instead of propagating them: an unhashable file is never silently
// skipped, it forces a copy attempt that may then fail on its own.
type Decider struct {
	hasher *hashing.Hasher
}

// NewDecider creates a decider around a content hasher
func NewDecider(hasher *hashing.Hasher) *Decider {
	if hasher == nil {
		hasher = hashing.NewHasher()
	}
	return &Decider{hasher: hasher}
}

// Decide compares sourcePath against targetPath. The returned detail is
// advisory context for logging; it never changes what the engine does.
func (d *Decider) Decide(ctx context.Context, sourcePath, targetPath string) (models.CopyDecision, string) {
	targetInfo, err := os.Stat(targetPath)
	if os.IsNotExist(err) {
		return models.DecisionNewFile, ""
	}
	if err != nil {
		return models.DecisionComparisonError, fmt.Sprintf("target stat failed: %v", err)
	}

	sourceInfo, err := os.Stat(sourcePath)
	if err != nil {
		return models.DecisionComparisonError, fmt.Sprintf("source stat failed: %v", err)
	}

	if sourceInfo.Size() != targetInfo.Size() {
		return models.DecisionSizeMismatch,
			fmt.Sprintf("source %d bytes, target %d bytes", sourceInfo.Size(), targetInfo.Size())
	}

	sourceDigest, err := d.hasher.Digest(ctx, sourcePath)
	if err != nil {
		return models.DecisionSourceHashFailed, fmt.Sprintf("source digest failed: %v", err)
	}
	targetDigest, err := d.hasher.Digest(ctx, targetPath)
	if err != nil {
		return models.DecisionTargetHashFailed, fmt.Sprintf("target digest failed: %v", err)
	}

	if sourceDigest == targetDigest {
		return models.DecisionIdenticalHash, ""
	}
	return models.DecisionHashMismatch, "equal size, different content"
}
