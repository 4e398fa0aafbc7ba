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

// Re-reads generated fixtures and confirms their content with independent RDF parsers.
package verify

import (
	"fmt"
	"github.com/knakk/rdf"
	"github.com/piprate/json-gold/ld"
	"io"
	"io/ioutil"
	"os"
	"rdfgen/model"
)

const defaultGraph = "@default"

type VerifyErr struct {
	// 1-based line of the offending triple, 0 if the error is not tied to a line
	Line    int
	Message string
	Wrapped error
}

func (ve VerifyErr) Error() string {
	if ve.Line > 0 {
		return fmt.Sprintf("verify: line %d: %s", ve.Line, ve.Message)
	}
	return fmt.Sprintf("verify: %s", ve.Message)
}

func (ve VerifyErr) Unwrap() error {
	return ve.Wrapped
}

type Report struct {
	Path string
	// number of triples that decoded and matched, in order
	Triples int
}

// Verify decodes the N-Triples at path and checks that line i holds the triple with id i, and that exactly expected
// triples are present.
func Verify(path string, expected int) (Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return Report{Path: path}, VerifyErr{Message: fmt.Sprintf("error opening %s", path), Wrapped: err}
	}
	defer f.Close()

	report, err := Stream(f, expected)
	report.Path = path
	return report, err
}

// Stream performs the checks of Verify on an arbitrary reader.
func Stream(r io.Reader, expected int) (Report, error) {
	report := Report{}
	dec := rdf.NewTripleDecoder(r, rdf.NTriples)

	for {
		triple, err := dec.Decode()
		if err == io.EOF {
			break
		}

		line := report.Triples + 1
		if err != nil {
			return report, VerifyErr{Line: line, Message: "unable to decode triple", Wrapped: err}
		}

		if report.Triples >= expected {
			return report, VerifyErr{Line: line, Message: fmt.Sprintf("expected %d triples, found more", expected)}
		}

		want := model.Triple{Id: uint64(report.Triples)}
		if !want.Matches(triple) {
			return report, VerifyErr{
				Line:    line,
				Message: fmt.Sprintf("expected %q, found %q", want.Render(), triple.Serialize(rdf.NTriples)),
			}
		}

		report.Triples++
	}

	if report.Triples != expected {
		return report, VerifyErr{Message: fmt.Sprintf("expected %d triples, found %d", expected, report.Triples)}
	}

	return report, nil
}

// CountQuads parses the file at path as N-Quads and answers the number of statements in the default graph.  The file
// is read fully into memory.
func CountQuads(path string) (int, error) {
	content, err := ioutil.ReadFile(path)
	if err != nil {
		return 0, VerifyErr{Message: fmt.Sprintf("error reading %s", path), Wrapped: err}
	}

	dataset, err := ld.ParseNQuads(string(content))
	if err != nil {
		return 0, VerifyErr{Message: fmt.Sprintf("error parsing %s as n-quads", path), Wrapped: err}
	}

	return len(dataset.Graphs[defaultGraph]), nil
}
