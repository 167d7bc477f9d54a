// Copyright 2024 The omg-idl-gen Authors
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

// Command idlgen is the command-line front end: argument parsing,
// stdin/stdout wiring, and file opening, none of which the core package
// set depends on (spec.md §1's "out of scope" list).
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/gauntl3t12/omg-idl-gen/internal/driver"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var includeDir string
	var outputFile string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "idlgen IDL_FILE",
		Short: "Generate target-language source from an OMG IDL file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], includeDir, outputFile, verbose)
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVarP(&includeDir, "include_dir", "I", ".", "search root for includes and for the root IDL file")
	cmd.Flags().StringVarP(&outputFile, "output_file", "o", "", "destination file; absent writes to standard output")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable trace logging of walker descent")

	return cmd
}

func run(idlFile, includeDir, outputFile string, verbose bool) error {
	out := os.Stdout
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	logger := log.New(os.Stderr, "", 0)
	cfg := driver.Config{
		SearchPath: includeDir,
		IDLFile:    idlFile,
		Verbose:    verbose,
	}
	return driver.Generate(out, cfg, logger)
}
