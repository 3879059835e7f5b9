// Copyright 2023-2025 The upb-go Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// upbcmp compares two protobuf unknown-field captures and reports whether
// they are semantically equal.
//
// Exit status: 0 for Equal, 1 for NotEqual, 2 for fatal verdicts and usage
// or I/O errors.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/protocolbuffers/protoscope"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/EliSchleifer/upb"
)

// options holds the root command's flag values.
type options struct {
	maxDepth     int
	scratchLimit int
	protoscope   bool
	verbose      bool
}

// newRootCmd builds the root command. The process exit status for a
// completed comparison is written to status; Execute errors mean status was
// never set and the caller exits 2.
func newRootCmd(status *int) *cobra.Command {
	opts := new(options)
	cmd := &cobra.Command{
		Use:   "upbcmp <file1> <file2>",
		Short: "Compare two protobuf unknown-field encodings for semantic equality",
		Long: `upbcmp parses two wire-format captures and reports whether they carry
the same fields with the same values, independent of the order in which the
fields were serialized (recursively so inside groups).

Inputs are raw wire-format files, or protoscope text with --protoscope.
Inputs must be valid wire format restricted to unknown-field encodings;
malformed input is not diagnosed.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args, status)
		},
	}

	cmd.Flags().IntVar(&opts.maxDepth, "max-depth", upb.DefaultMaxDepth,
		"maximum group nesting depth")
	cmd.Flags().IntVar(&opts.scratchLimit, "scratch-limit", 0,
		"scratch memory budget in bytes, 0 for unbounded")
	cmd.Flags().BoolVar(&opts.protoscope, "protoscope", false,
		"treat inputs as protoscope text rather than raw wire bytes")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false,
		"log comparison details to stderr")
	return cmd
}

func run(cmd *cobra.Command, opts *options, args []string, status *int) error {
	log := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
		With().Timestamp().Logger()
	if !opts.verbose {
		log = log.Level(zerolog.WarnLevel)
	}

	buf1, err := load(args[0], opts.protoscope)
	if err != nil {
		return err
	}
	buf2, err := load(args[1], opts.protoscope)
	if err != nil {
		return err
	}
	log.Info().
		Str("file1", args[0]).Int("bytes1", len(buf1)).
		Str("file2", args[1]).Int("bytes2", len(buf2)).
		Int("max_depth", opts.maxDepth).
		Msg("comparing")

	result := upb.UnknownFieldsEqual(buf1, buf2,
		upb.WithMaxDepth(opts.maxDepth),
		upb.WithScratchLimit(opts.scratchLimit))
	fmt.Fprintln(cmd.OutOrStdout(), result)

	switch result {
	case upb.Equal:
		*status = 0
	case upb.NotEqual:
		*status = 1
	default:
		log.Error().Stringer("result", result).Msg("comparison aborted")
		*status = 2
	}
	return nil
}

// load reads one input, compiling it from protoscope text if requested.
func load(path string, asText bool) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if !asText {
		return data, nil
	}
	wire, err := protoscope.NewScanner(string(data)).Exec()
	if err != nil {
		return nil, fmt.Errorf("compiling %s: %w", path, err)
	}
	return wire, nil
}

// realMain wires a fresh command to the given streams and returns the
// process exit status.
func realMain(args []string, stdout, stderr io.Writer) int {
	var status int
	cmd := newRootCmd(&status)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(stderr, "upbcmp:", err)
		return 2
	}
	return status
}

func main() {
	os.Exit(realMain(os.Args[1:], os.Stdout, os.Stderr))
}
