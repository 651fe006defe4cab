// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Command jsontool inspects JSON configuration documents: it re-serializes
// them to canonical form, reports their content hash, and lists their
// top-level keys. The canonical form and hash are the same ones the document
// engine uses for configuration diffing and caching, so two files that
// jsontool hashes identically are interchangeable as configuration.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/asraa/envoy/json/document"
)

var lenient bool

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	root := &cobra.Command{
		Use:           "jsontool",
		Short:         "Inspect JSON configuration documents",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVar(&lenient, "lenient", false,
		"accept comments and trailing commas in the input")

	root.AddCommand(&cobra.Command{
		Use:   "canon [file | -]",
		Short: "Print the canonical rendering of a document",
		Args:  cobra.MaximumNArgs(1),
		RunE: runLoad(func(v *document.Value) error {
			fmt.Println(v.JSON())
			return nil
		}),
	}, &cobra.Command{
		Use:   "hash [file | -]",
		Short: "Print the 64-bit content hash of a document",
		Args:  cobra.MaximumNArgs(1),
		RunE: runLoad(func(v *document.Value) error {
			fmt.Printf("%016x\n", v.Hash())
			return nil
		}),
	}, &cobra.Command{
		Use:   "keys [file | -]",
		Short: "List the top-level keys of a document",
		Args:  cobra.MaximumNArgs(1),
		RunE: runLoad(func(v *document.Value) error {
			return v.Iterate(func(key string, _ *document.Value) bool {
				fmt.Println(key)
				return true
			})
		}),
	})

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("jsontool failed")
		os.Exit(1)
	}
}

// runLoad adapts f into a cobra handler that loads the document named by the
// command's argument, or standard input when the argument is absent or "-".
func runLoad(f func(*document.Value) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		text, err := readInput(args)
		if err != nil {
			return err
		}
		load := document.LoadFromString
		if lenient {
			load = document.LoadFromStringLenient
		}
		v, err := load(text)
		if err != nil {
			return err
		}
		return f(v)
	}
}

func readInput(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(args[0])
	return string(data), err
}
