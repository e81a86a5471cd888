package batch

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"attest/internal/check"
	"attest/internal/conf"
	"attest/internal/specfile"
)

// Result is the outcome of checking one document.
type Result struct {
	Path    string
	OK      bool
	Cached  bool
	Message string // violation or diagnosis text, empty when OK
	Err     error  // read/decode/internal failure, nil otherwise
}

// Options configures a batch run.
type Options struct {
	Jobs  int          // 0 means GOMAXPROCS
	Cache *ResultCache // nil disables caching
	Sink  Sink         // nil disables progress events
}

// ListJSONFiles returns the sorted list of *.json files under dir, for
// a deterministic processing and output order.
func ListJSONFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".json") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// CheckDir validates every *.json document under dir against the
// specification document, in parallel.
func CheckDir(ctx context.Context, doc *specfile.Document, dir string, cfg *conf.Config, opts Options) ([]Result, error) {
	files, err := ListJSONFiles(dir)
	if err != nil {
		return nil, err
	}
	return CheckFiles(ctx, doc, files, cfg, opts)
}

// CheckFiles validates the given documents against the specification
// document. Results come back in input order regardless of scheduling.
func CheckFiles(ctx context.Context, doc *specfile.Document, files []string, cfg *conf.Config, opts Options) ([]Result, error) {
	if cfg == nil {
		cfg = conf.Default()
	}
	sink := opts.Sink
	if sink == nil {
		sink = nopSink{}
	}
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	if cfg.Mode == conf.ModeSampled {
		// Sampled outcomes are per-seed; caching them would replay a
		// stale verdict.
		opts.Cache = nil
	}

	results := make([]Result, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, path := range files {
		i, path := i, path
		sink.Post(Event{Path: path, Status: StatusQueued})
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sink.Post(Event{Path: path, Status: StatusChecking})
			results[i] = checkOne(doc, path, cfg, opts.Cache)
			sink.Post(Event{Path: path, Status: results[i].status()})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (r Result) status() Status {
	switch {
	case r.Err != nil:
		return StatusError
	case r.OK:
		return StatusOK
	default:
		return StatusViolation
	}
}

func checkOne(doc *specfile.Document, path string, cfg *conf.Config, cache *ResultCache) Result {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{Path: path, Err: err}
	}
	docDigest := specfile.Digest(sha256.Sum256(data))
	key := Key(doc.Digest, docDigest)

	if cache != nil {
		var payload CachePayload
		if hit, err := cache.Get(key, &payload); err == nil && hit {
			return Result{Path: path, OK: payload.OK, Cached: true, Message: payload.Message}
		}
	}

	var subject any
	if err := json.Unmarshal(data, &subject); err != nil {
		return Result{Path: path, Err: err}
	}

	res := Result{Path: path, OK: true}
	err = check.Check(subject, doc.Root, doc.Path, "document "+filepath.Base(path), cfg)
	var violation *check.Violation
	switch {
	case err == nil:
	case errors.As(err, &violation):
		res.OK = false
		res.Message = violation.Error()
	default:
		res.Err = err
		return res
	}

	if cache != nil {
		payload := CachePayload{
			Schema:     cacheSchemaVersion,
			SpecDigest: doc.Digest,
			DocDigest:  docDigest,
			OK:         res.OK,
			Message:    res.Message,
		}
		// A failed write only costs a recheck next run.
		_ = cache.Put(key, &payload)
	}
	return res
}
