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
	"bytes"
	"context"
	"os"
	"unicode/utf8"

	"github.com/walteh/rebrand/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// Status is the terminal state of one file in a run
type Status int

const (
	StatusUnchanged Status = iota
	StatusUpdated
	StatusErrored
)

func (s Status) String() string {
	switch s {
	case StatusUnchanged:
		return "unchanged"
	case StatusUpdated:
		return "updated"
	case StatusErrored:
		return "errored"
	default:
		return "unknown"
	}
}

// 📄 Outcome is the result of processing a single file
type Outcome struct {
	Path         string
	Status       Status
	Replacements int

	// Err is a *FileError when Status is StatusErrored
	Err error
}

// 📄 ProcessFile reads path, applies rules and writes the file back only if
// its content changed. Failures are returned in the Outcome, never panicked or
// propagated, so the caller can keep going.
func ProcessFile(ctx context.Context, replacer text.TextReplacer, path string, rules []text.ReplacementRule) Outcome {
	result, err := readAndReplace(ctx, replacer, path, rules)
	if err != nil {
		return Outcome{Path: path, Status: StatusErrored, Err: &FileError{Path: path, Op: OpRead, Err: err}}
	}

	if bytes.Equal(result.OriginalContent, result.ModifiedContent) {
		return Outcome{Path: path, Status: StatusUnchanged}
	}

	if err := writeFile(path, result.ModifiedContent); err != nil {
		return Outcome{Path: path, Status: StatusErrored, Err: &FileError{Path: path, Op: OpWrite, Err: err}}
	}

	return Outcome{Path: path, Status: StatusUpdated, Replacements: result.ReplacementCount}
}

func readAndReplace(ctx context.Context, replacer text.TextReplacer, path string, rules []text.ReplacementRule) (*text.ReplacementResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Errorf("opening file: %w", err)
	}
	defer f.Close()

	result, err := replacer.ReplaceText(ctx, f, rules)
	if err != nil {
		return nil, errors.Errorf("replacing text: %w", err)
	}

	if !utf8.Valid(result.OriginalContent) {
		return nil, errors.Errorf("content is not valid UTF-8")
	}

	return result, nil
}

// writeFile truncates and rewrites an existing file. It never creates one.
func writeFile(path string, content []byte) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return errors.Errorf("opening file for write: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Errorf("closing file: %w", cerr)
		}
	}()

	if _, err := f.Write(content); err != nil {
		return errors.Errorf("writing file: %w", err)
	}

	return nil
}
