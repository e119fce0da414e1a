// Package tagging assigns skill tags to raw job rows with a generative model.
package tagging

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/jonathan/job-compare/internal/llm"
	"github.com/jonathan/job-compare/internal/prompts"
	"github.com/jonathan/job-compare/internal/tags"
)

const (
	DefaultBatchSize   = 10
	DefaultInterval    = 6 * time.Second
	DefaultMaxTags     = 2
	DefaultMaxAttempts = 3

	promptFile = "tagging.json"
)

// Generator is the part of llm.Client the tagger needs.
type Generator interface {
	Generate(ctx context.Context, req llm.Request) (string, error)
}

// Options controls batching and pacing.
type Options struct {
	BatchSize int
	// Interval is the minimum gap between model calls. Zero disables pacing.
	Interval time.Duration
	MaxTags  int
	// MaxAttempts bounds retries of a batch whose answer has the wrong
	// number of lines.
	MaxAttempts int
	Tier        llm.ModelTier
	// Fallback is the tag assigned when nothing else fits.
	Fallback int
}

func (o Options) withDefaults() Options {
	if o.BatchSize <= 0 {
		o.BatchSize = DefaultBatchSize
	}
	if o.Interval < 0 {
		o.Interval = 0
	}
	if o.MaxTags <= 0 {
		o.MaxTags = DefaultMaxTags
	}
	if o.MaxAttempts <= 0 {
		o.MaxAttempts = DefaultMaxAttempts
	}
	if o.Tier == "" {
		o.Tier = llm.TierStandard
	}
	if o.Fallback <= 0 {
		o.Fallback = tags.NoneOfTheAbove
	}
	return o
}

// Tagger labels job text with tag ids from a registry.
type Tagger struct {
	gen     Generator
	reg     *tags.Registry
	opts    Options
	limiter *rate.Limiter
	menu    string
}

// New creates a tagger. Only ids present in reg are ever returned.
func New(gen Generator, reg *tags.Registry, opts Options) *Tagger {
	opts = opts.withDefaults()

	var menu strings.Builder
	for _, tag := range reg.All() {
		fmt.Fprintf(&menu, "%d. %s\n", tag.ID, tag.Name)
	}

	t := &Tagger{
		gen:  gen,
		reg:  reg,
		opts: opts,
		menu: strings.TrimRight(menu.String(), "\n"),
	}
	if opts.Interval > 0 {
		t.limiter = rate.NewLimiter(rate.Every(opts.Interval), 1)
	}
	return t
}

// TagAll tags every job in order, one model call per batch. The result has
// one entry per job.
func (t *Tagger) TagAll(ctx context.Context, jobs []string) ([][]int, error) {
	out := make([][]int, 0, len(jobs))
	for start := 0; start < len(jobs); start += t.opts.BatchSize {
		end := min(start+t.opts.BatchSize, len(jobs))
		got, err := t.TagBatch(ctx, jobs[start:end])
		if err != nil {
			return out, fmt.Errorf("tagging rows %d-%d: %w", start+1, end, err)
		}
		out = append(out, got...)
		log.Printf("[tagging] tagged %d/%d rows", len(out), len(jobs))
	}
	return out, nil
}

// TagBatch tags one batch with a single model call, retrying when the answer
// does not have one line per job.
func (t *Tagger) TagBatch(ctx context.Context, jobs []string) ([][]int, error) {
	if len(jobs) == 0 {
		return [][]int{}, nil
	}

	req, err := t.request(jobs)
	if err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := 1; attempt <= t.opts.MaxAttempts; attempt++ {
		if err := t.wait(ctx); err != nil {
			return nil, err
		}

		raw, err := t.gen.Generate(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("model call failed: %w", err)
		}

		parsed, err := ParseResponse(raw, len(jobs), t.opts.MaxTags)
		if err == nil {
			return t.resolve(parsed), nil
		}
		lastErr = err
		log.Printf("[tagging] attempt %d/%d: %v", attempt, t.opts.MaxAttempts, err)
	}
	return nil, lastErr
}

func (t *Tagger) wait(ctx context.Context) error {
	if t.limiter == nil {
		return ctx.Err()
	}
	return t.limiter.Wait(ctx)
}

func (t *Tagger) request(jobs []string) (llm.Request, error) {
	count := strconv.Itoa(len(jobs))
	fallback := strconv.Itoa(t.opts.Fallback)

	system, err := prompts.Render(promptFile, "system", map[string]string{
		"Count":    count,
		"MaxTags":  strconv.Itoa(t.opts.MaxTags),
		"Fallback": fallback,
	})
	if err != nil {
		return llm.Request{}, err
	}

	var list strings.Builder
	for i, job := range jobs {
		fmt.Fprintf(&list, "%d. %s\n", i+1, oneLine(job))
	}
	prompt, err := prompts.Render(promptFile, "batch", map[string]string{
		"Menu":     t.menu,
		"Count":    count,
		"Fallback": fallback,
		"Jobs":     strings.TrimRight(list.String(), "\n"),
	})
	if err != nil {
		return llm.Request{}, err
	}

	return llm.Request{System: system, Prompt: prompt, Tier: t.opts.Tier}, nil
}

// resolve drops ids the registry does not know and substitutes the fallback
// for rows left empty.
func (t *Tagger) resolve(rows [][]int) [][]int {
	out := make([][]int, len(rows))
	for i, ids := range rows {
		kept := make([]int, 0, len(ids))
		for _, id := range ids {
			if t.reg.Has(id) {
				kept = append(kept, id)
			} else {
				log.Printf("[tagging] dropping unknown tag %d", id)
			}
		}
		if len(kept) == 0 {
			kept = append(kept, t.opts.Fallback)
		}
		out[i] = kept
	}
	return out
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
