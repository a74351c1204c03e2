// Copyright 2026 Conductor OSS
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.

package md2docx

import (
	"errors"
	"fmt"
)

var (
	errInvalidUTF8       = errors.New("input is not valid UTF-8")
	errUnknownCharset    = errors.New("unknown charset")
	errNoCharsetDetected = errors.New("no usable charset detected")
)

// InputNotFoundError is returned when an input path does not exist. It is the
// one condition a batch reports and skips.
type InputNotFoundError struct {
	Path string
}

func (e *InputNotFoundError) Error() string {
	return fmt.Sprintf("file not found: %s", e.Path)
}

// OutputCollisionError is returned when the derived output path is the input
// path itself, which happens when the input name has no ".md" in it.
type OutputCollisionError struct {
	Path string
}

func (e *OutputCollisionError) Error() string {
	return fmt.Sprintf("output path would overwrite input: %s", e.Path)
}

// DecodeError is returned when input bytes cannot be decoded in the
// requested charset.
type DecodeError struct {
	Charset string
	Err     error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode input as %q: %v", e.Charset, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsInputNotFound reports whether the error is an InputNotFoundError.
func IsInputNotFound(err error) bool {
	var target *InputNotFoundError
	return errors.As(err, &target)
}

// IsOutputCollision reports whether the error is an OutputCollisionError.
func IsOutputCollision(err error) bool {
	var target *OutputCollisionError
	return errors.As(err, &target)
}
