//
// Copyright 2021 Johns Hopkins University
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
//

// Writes synthetic RDF triples to a file, for use as a benchmarking fixture.
package generate

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"rdfgen/model"
	"time"
)

type Kind int

const (
	InvalidArgument Kind = iota
	IOError
)

func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "InvalidArgument"
	case IOError:
		return "IOError"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

var (
	ErrInvalidArgument = errors.New("generate: invalid argument")
	ErrIO              = errors.New("generate: i/o error")
)

type GenErr struct {
	Kind    Kind
	Path    string
	Message string
	Wrapped error
}

func (ge GenErr) Error() string {
	if ge.Path == "" {
		return fmt.Sprintf("generate: %s: %s", ge.Kind, ge.Message)
	}
	return fmt.Sprintf("generate: %s: %s %s", ge.Kind, ge.Message, ge.Path)
}

func (ge GenErr) Unwrap() error {
	return ge.Wrapped
}

// Allows errors.Is(err, ErrInvalidArgument) and errors.Is(err, ErrIO) to classify a GenErr
func (ge GenErr) Is(target error) bool {
	switch target {
	case ErrInvalidArgument:
		return ge.Kind == InvalidArgument
	case ErrIO:
		return ge.Kind == IOError
	}
	return false
}

type Result struct {
	// number of triples written to the output
	Written int
	// time spent writing, flushing and closing the output; opening the output is not included
	Elapsed time.Duration
}

func (r Result) Seconds() float64 {
	return r.Elapsed.Seconds()
}

// Generate creates or truncates the file at outputPath and writes count triples to it, ids 0 through count-1 in
// increasing order.
//
// The file is always closed before Generate returns.  If a write fails part way, the triples already flushed remain
// on disk and the returned error is an IOError; Result.Written reports how many triples were handed to the writer
// before the failure.
func Generate(count int, outputPath string) (Result, error) {
	if count < 0 {
		return Result{}, GenErr{
			Kind:    InvalidArgument,
			Message: fmt.Sprintf("triple count must be non-negative, was %d", count),
		}
	}

	out, err := os.OpenFile(outputPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return Result{}, GenErr{Kind: IOError, Path: outputPath, Message: "error opening file", Wrapped: err}
	}

	closed := false
	defer func() {
		if !closed {
			out.Close()
		}
	}()

	start := time.Now()

	buf := bufio.NewWriter(out)
	written, err := WriteTriples(buf, count)
	if err != nil {
		return Result{Written: written, Elapsed: time.Since(start)},
			GenErr{Kind: IOError, Path: outputPath, Message: "error writing file", Wrapped: err}
	}

	if err = buf.Flush(); err != nil {
		return Result{Written: written, Elapsed: time.Since(start)},
			GenErr{Kind: IOError, Path: outputPath, Message: "error flushing file", Wrapped: err}
	}

	closed = true
	if err = out.Close(); err != nil {
		return Result{Written: written, Elapsed: time.Since(start)},
			GenErr{Kind: IOError, Path: outputPath, Message: "error closing file", Wrapped: err}
	}

	return Result{Written: written, Elapsed: time.Since(start)}, nil
}

// WriteTriples writes count triples to w in increasing id order, answering the number of triples written.  Writing
// stops at the first error.
func WriteTriples(w io.Writer, count int) (int, error) {
	for i := 0; i < count; i++ {
		if _, err := io.WriteString(w, model.Triple{Id: uint64(i)}.Render()); err != nil {
			return i, err
		}
	}

	return count, nil
}
