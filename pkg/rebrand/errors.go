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
	"fmt"

	"gitlab.com/tozd/go/errors"
)

// Op names the step of file processing that failed
type Op string

const (
	OpRead  Op = "read"
	OpWrite Op = "write"
)

var (
	// ErrRead matches any FileError raised while reading or decoding a file
	ErrRead = errors.Base("read failed")

	// ErrWrite matches any FileError raised while writing a file
	ErrWrite = errors.Base("write failed")
)

// FileError is a failure confined to a single file
type FileError struct {
	Path string
	Op   Op
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s failed for %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is classify a FileError by its Op
func (e *FileError) Is(target error) bool {
	switch target {
	case ErrRead:
		return e.Op == OpRead
	case ErrWrite:
		return e.Op == OpWrite
	}
	return false
}
