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

package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"rdfgen/generate"
	"strconv"
	"strings"
)

// Usage: ./rdfgen <number_of_triples> <output_file>
func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

type params struct {
	count      int
	outputPath string
}

// run generates the fixture described by args and answers the process exit code.  The summary line goes to stdout;
// usage and errors go to stderr.
func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "", log.LstdFlags)

	p, err := parseArgs(args)
	if err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintf(stderr, "Usage: %s <number_of_triples> <output_file>\n", program(args))
		} else {
			logger.Printf("%s", err.Error())
		}
		return 1
	}

	result, err := generate.Generate(p.count, p.outputPath)
	if err != nil {
		logger.Printf("%s", err.Error())
		if result.Written > 0 {
			logger.Printf("%d of %d triples were written to %s before the failure", result.Written, p.count, p.outputPath)
		}
		return 1
	}

	fmt.Fprintf(stdout, "Generated %d triples in %.6g seconds.\n", result.Written, result.Seconds())
	return 0
}

var errUsage = errors.New("wrong number of arguments")

func program(args []string) string {
	if len(args) == 0 {
		return "rdfgen"
	}
	return args[0]
}

func parseArgs(args []string) (params, error) {
	if len(args) != 3 {
		return params{}, errUsage
	}

	count, err := handleCount(args[1])
	if err != nil {
		return params{}, err
	}

	// the output path is not checked here; any problem with it surfaces as an IOError when the file is opened
	return params{count: count, outputPath: args[2]}, nil
}

// the count must be a base-10 integer >= 0; surrounding whitespace is ignored
func handleCount(cliVal string) (int, error) {
	cliVal = strings.TrimSpace(cliVal)

	count, err := strconv.Atoi(cliVal)
	if err != nil {
		return 0, generate.GenErr{
			Kind:    generate.InvalidArgument,
			Message: fmt.Sprintf("number_of_triples must be an integer, was %q", cliVal),
			Wrapped: err,
		}
	}

	if count < 0 {
		return 0, generate.GenErr{
			Kind:    generate.InvalidArgument,
			Message: fmt.Sprintf("number_of_triples must be non-negative, was %d", count),
		}
	}

	return count, nil
}
