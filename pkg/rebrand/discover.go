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
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🔍 Discover returns the regular files under root matching pattern.
// `**` matches across directory boundaries. Paths are joined to root and
// returned in traversal order. No matches is not an error. Matches with a
// hidden path segment, such as app/blog/.draft/page.mdx, are dropped.
func Discover(ctx context.Context, root, pattern string) ([]string, error) {
	logger := zerolog.Ctx(ctx)

	if !doublestar.ValidatePattern(pattern) {
		return nil, errors.Errorf("invalid pattern %q: %w", pattern, doublestar.ErrBadPattern)
	}

	matches, err := doublestar.Glob(os.DirFS(root), pattern,
		doublestar.WithFilesOnly(),
		doublestar.WithFailOnIOErrors(),
	)
	if err != nil {
		return nil, errors.Errorf("globbing %q in %s: %w", pattern, root, err)
	}

	files := make([]string, 0, len(matches))
	for _, match := range matches {
		if isHidden(match) {
			logger.Debug().Str("file", match).Msg("skipping hidden path")
			continue
		}
		files = append(files, filepath.Join(root, filepath.FromSlash(match)))
	}

	logger.Debug().Str("root", root).Str("pattern", pattern).Int("count", len(files)).Msg("discovery complete")
	return files, nil
}

// isHidden reports whether any segment of a slash-separated match starts with a dot
func isHidden(match string) bool {
	for _, segment := range strings.Split(match, "/") {
		if strings.HasPrefix(segment, ".") {
			return true
		}
	}
	return false
}
