package organize

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/romsort/romsort/pkg/models"
)

// maxNumberedSuffix bounds the numbered-rename fallback; exceeding it
// reports too_many_duplicates instead of looping
const maxNumberedSuffix = 99

// Resolver hands out collision-free target paths. It is shared by
// every work unit in a run because multiple source folders commonly
// feed the same platform directory, so the claimed set must be one
// lock-protected whole. Claims are never released: a claimed path is
// spoken for until the run ends, whether or not its copy succeeds.
type Resolver struct {
	mu      sync.Mutex
	claimed map[string]struct{}
}

// NewResolver creates an empty resolver
func NewResolver() *Resolver {
	return &Resolver{claimed: make(map[string]struct{})}
}

// Claim marks path as taken for this run. Returns false when another
// file already claimed it.
func (r *Resolver) Claim(path string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, taken := r.claimed[path]; taken {
		return false
	}
	r.claimed[path] = struct{}{}
	return true
}

// ResolveCollision finds a free disambiguated path when basePath is
// occupied by a different file. It tries the folder-hint rename first,
// then numbered suffixes (2)..(99), claiming the returned path before
// returning so no later resolution in the run can race onto it.
func (r *Resolver) ResolveCollision(basePath, sourceFolder string) models.TargetResolution {
	dir := filepath.Dir(basePath)
	filename := filepath.Base(basePath)
	ext := filepath.Ext(filename)
	stem := strings.TrimSuffix(filename, ext)

	if hint := ExtractHint(sourceFolder); hint != "" {
		candidate := filepath.Join(dir, fmt.Sprintf("%s (%s)%s", stem, hint, ext))
		if r.claimIfFree(candidate) {
			return models.TargetResolution{
				Path:   candidate,
				Reason: models.RenameWithHint,
				Tag:    hint,
			}
		}
	}

	for n := 2; n <= maxNumberedSuffix; n++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s (%d)%s", stem, n, ext))
		if r.claimIfFree(candidate) {
			return models.TargetResolution{
				Path:   candidate,
				Reason: models.RenameWithNumber,
				Tag:    strconv.Itoa(n),
			}
		}
	}

	return models.TargetResolution{Reason: models.RenameExhausted}
}

// claimIfFree claims candidate when it is neither claimed in this run
// nor present on disk. The stat happens under the lock so two workers
// cannot both observe the same candidate as free.
func (r *Resolver) claimIfFree(candidate string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, taken := r.claimed[candidate]; taken {
		return false
	}
	if _, err := os.Stat(candidate); err == nil {
		return false
	}
	r.claimed[candidate] = struct{}{}
	return true
}
