// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rebrand

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/rebrand/pkg/log"
	"github.com/walteh/rebrand/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🔧 Options configures a run
type Options struct {
	// Root is the directory the pattern is resolved against
	Root string

	// Pattern selects the files to process
	Pattern string

	// Rules are applied in order to every file
	Rules []text.ReplacementRule

	// Replacer applies Rules; defaults to a SimpleTextReplacer
	Replacer text.TextReplacer
}

// 🏭 DefaultOptions returns the options for rebranding the blog under root
func DefaultOptions(root string) Options {
	return Options{
		Root:     root,
		Pattern:  DefaultPattern,
		Rules:    DefaultRules(),
		Replacer: text.NewSimpleTextReplacer(),
	}
}

// 📊 Stats counts what happened during a run
type Stats struct {
	Updated      int
	Errors       int
	Total        int
	Replacements int
}

// 📊 Result is everything a run produced
type Result struct {
	Stats    Stats
	Outcomes []Outcome
}

func (r *Result) record(o Outcome) {
	r.Outcomes = append(r.Outcomes, o)
	switch o.Status {
	case StatusUpdated:
		r.Stats.Updated++
		r.Stats.Replacements += o.Replacements
	case StatusErrored:
		r.Stats.Errors++
	}
}

// Failed returns the outcomes of files that could not be processed
func (r *Result) Failed() []Outcome {
	var failed []Outcome
	for _, o := range r.Outcomes {
		if o.Status == StatusErrored {
			failed = append(failed, o)
		}
	}
	return failed
}

// 🏃 Run discovers the files, processes them one at a time in discovery order
// and prints the summary. Per-file failures are counted, not returned; the
// only errors returned are invalid rules and a failed discovery, in which case
// no file has been touched and no summary is printed.
func Run(ctx context.Context, opts Options) (*Result, error) {
	zlog := zerolog.Ctx(ctx)
	logger := log.FromContext(ctx)

	if opts.Replacer == nil {
		opts.Replacer = text.NewSimpleTextReplacer()
	}
	if opts.Root == "" {
		opts.Root = "."
	}

	if err := opts.Replacer.ValidateRules(opts.Rules); err != nil {
		return nil, errors.Errorf("validating rules: %w", err)
	}

	files, err := Discover(ctx, opts.Root, opts.Pattern)
	if err != nil {
		return nil, errors.Errorf("discovering files: %w", err)
	}

	result := &Result{
		Stats:    Stats{Total: len(files)},
		Outcomes: make([]Outcome, 0, len(files)),
	}
	logger.Discovered(opts.Pattern, len(files))

	for _, path := range files {
		outcome := ProcessFile(ctx, opts.Replacer, path, opts.Rules)
		result.record(outcome)

		switch outcome.Status {
		case StatusUpdated:
			logger.FileUpdated(path, outcome.Replacements)
		case StatusUnchanged:
			logger.FileUnchanged(path)
		case StatusErrored:
			cause := outcome.Err
			var fe *FileError
			if errors.As(outcome.Err, &fe) {
				cause = fe.Err
			}
			logger.FileFailed(path, cause)
		}
	}

	logger.Summary(result.Stats.Updated, result.Stats.Errors, result.Stats.Total)
	zlog.Debug().Int("replacements", result.Stats.Replacements).Msg("rebrand finished")

	return result, nil
}
