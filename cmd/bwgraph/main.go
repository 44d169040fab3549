// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Bwgraph draws the read and write bandwidth of an object store
// benchmark run as grouped bar charts.
//
// Usage:
//
//	bwgraph [--title text] [-n] results.csv
//
// The input is a CSV file with a header naming at least the columns
// objsz, workers, type and bandwidth; see package bwcsv. Bwgraph
// writes a PNG next to the input, named after it with the extension
// replaced by ".png" (results.png above). The image has two panels,
// "Write bandwidth" for put results and "Read bandwidth" for get
// results. Each panel has one group of bars per object size, with
// one bar per worker count.
//
// The --title option draws its text above the panels. Unless -n
// (--nograph) is given, bwgraph then opens the image in the system's
// image viewer.
//
// Use bwcmp to compare several runs.
package main

import (
	"log"

	"github.com/spf13/cobra"
	"golang.org/x/bwgraph/bwchart"
	"golang.org/x/bwgraph/bwcsv"
)

var show = bwchart.Show // replaced during testing

func newCommand() *cobra.Command {
	var (
		title   string
		noGraph bool
	)
	cmd := &cobra.Command{
		Use:           "bwgraph [--title text] [-n] csvfile",
		Short:         "Draw bar charts of object store bandwidth results",
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return bwgraph(args[0], title, !noGraph)
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "draw `text` above the charts")
	cmd.Flags().BoolVarP(&noGraph, "nograph", "n", false, "do not open the image in a viewer")
	return cmd
}

func bwgraph(path, title string, display bool) error {
	d, err := bwcsv.Load(path)
	if err != nil {
		return err
	}
	f, err := bwchart.Single(d, bwchart.Options{Title: title})
	if err != nil {
		return err
	}
	if err := f.Save(); err != nil {
		return err
	}
	log.Printf("wrote %s", f.Path)
	if display {
		return show(f.Path)
	}
	return nil
}

func main() {
	log.SetPrefix("bwgraph: ")
	log.SetFlags(0)
	if err := newCommand().Execute(); err != nil {
		log.Fatal(err)
	}
}
