package scanner

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync/atomic"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"
	"golang.org/x/sync/errgroup"

	"stat-scanner/src/pkg/record"
)

/*
ListImages returns the screenshots directly inside dir whose extension (case
insensitive) is one of extensions, sorted by file name. Subdirectories are
not visited.
*/
func ListImages(dir string, extensions []string) (paths []string, e *xerr.Error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		e = xerr.NewError(err, "list screenshot folder", dir)
		return nil, e
	}

	for _, entry := range entries {
		if entry.IsDir() || !HasImageExtension(entry.Name(), extensions) {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}

	tl.Log(tl.Info, palette.Cyan, "Found %d screenshots in '%s'", len(paths), dir)
	return paths, nil
}

func HasImageExtension(name string, extensions []string) bool {
	return slices.Contains(extensions, strings.ToLower(filepath.Ext(name)))
}

// SeenChecker reports whether a screenshot with this content hash is already stored.
type SeenChecker interface {
	Seen(contentHash string) (bool, *xerr.Error)
}

/*
FilterSeen drops the paths whose content checker already holds. A nil
checker keeps every path. A path that cannot be hashed or checked is kept.
*/
func FilterSeen(paths []string, checker SeenChecker) []string {
	if checker == nil {
		return paths
	}

	kept := make([]string, 0, len(paths))
	for _, path := range paths {
		hash, e := HashFile(path)
		if e != nil {
			tl.Log(tl.Warning, palette.Yellow, "Could not hash '%s', processing it anyway: %v", path, e)
			kept = append(kept, path)
			continue
		}
		seen, e := checker.Seen(hash)
		if e != nil {
			tl.Log(tl.Warning, palette.Yellow, "Could not check '%s' in store, processing it anyway: %v", path, e)
		}
		if seen {
			tl.Log(tl.Info1, palette.Purple, "Already stored, skipping '%s'", path)
			continue
		}
		kept = append(kept, path)
	}
	return kept
}

// Result is the outcome for one input path. Exactly one of Record and Err is meaningful.
type Result struct {
	Path   string
	Record record.Record
	Err    *xerr.Error
}

func (r Result) Failed() bool {
	return r.Err != nil
}

type BatchResult struct {
	// one entry per input path, in input order
	Results []Result
}

// Records returns the successful records in input order.
func (b BatchResult) Records() []record.Record {
	records := make([]record.Record, 0, len(b.Results))
	for _, r := range b.Results {
		if !r.Failed() {
			records = append(records, r.Record)
		}
	}
	return records
}

func (b BatchResult) Failures() []Result {
	var failures []Result
	for _, r := range b.Results {
		if r.Failed() {
			failures = append(failures, r)
		}
	}
	return failures
}

/*
RunBatch processes every path. A failing screenshot is logged and kept in
the result, it never stops the batch. With workers > 1 up to that many
screenshots are processed at once; the result order still follows paths.
*/
func (s *Scanner) RunBatch(paths []string, workers int) BatchResult {
	if workers < 1 {
		workers = 1
	}
	tl.Log(
		tl.Notice, palette.BlueBold, "%s batch of %d screenshots with %d workers",
		"Starting", len(paths), workers,
	)

	results := make([]Result, len(paths))
	var failed atomic.Int64

	var group errgroup.Group
	group.SetLimit(workers)
	for i, path := range paths {
		group.Go(func() error {
			rec, e := s.ProcessImage(path)
			results[i] = Result{Path: path, Record: rec, Err: e}
			if e != nil {
				failed.Add(1)
				tl.Log(tl.Error, palette.Red, "Skipping '%s': %v", path, e)
			}
			return nil
		})
	}
	_ = group.Wait()

	tl.Log(
		tl.Notice1, palette.GreenBold, "Batch finished: %d processed, %d failed",
		len(paths)-int(failed.Load()), failed.Load(),
	)
	return BatchResult{Results: results}
}
