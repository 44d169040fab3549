// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Bwcmp compares the bandwidth of several object store benchmark
// runs.
//
// Usage:
//
//	bwcmp [--title text] [-n] [-o dir] old.csv [new.csv ...]
//
// Each input is a CSV file in the format read by bwgraph. Bwcmp
// writes two images to dir (by default the current directory):
// write-cmp.png compares the put results of every input and
// read-cmp.png the get results. Each image has one panel per input,
// titled with the input's base name, upper-cased and without its
// extension. All panels in an image share the same bandwidth scale.
//
// An input may be given as label=path, in which case the panel is
// titled label instead.
//
// The inputs must come from comparable runs: they must have the same
// number of rows and columns and the same set of object sizes.
// Otherwise bwcmp fails before drawing anything.
//
// The --title option draws its text above the panels of both images
// in place of "Write bandwidth" and "Read bandwidth". Unless -n
// (--nograph) is given, bwcmp opens both images in the system's image
// viewer.
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
		dir     string
		noGraph bool
	)
	cmd := &cobra.Command{
		Use:           "bwcmp [--title text] [-n] [-o dir] csvfile...",
		Short:         "Compare object store bandwidth results",
		Args:          cobra.MinimumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return bwcmp(args, bwchart.Options{Title: title, Dir: dir}, !noGraph)
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "draw `text` above the charts")
	cmd.Flags().StringVarP(&dir, "dir", "o", "", "write images to `dir`")
	cmd.Flags().BoolVarP(&noGraph, "nograph", "n", false, "do not open the images in a viewer")
	return cmd
}

func bwcmp(paths []string, opts bwchart.Options, display bool) error {
	dss, err := bwcsv.LoadFiles(paths)
	if err != nil {
		return err
	}
	figs, err := bwchart.Compare(dss, opts)
	if err != nil {
		return err
	}
	for _, f := range figs {
		if err := f.Save(); err != nil {
			return err
		}
		log.Printf("wrote %s", f.Path)
	}
	if !display {
		return nil
	}
	for _, f := range figs {
		if err := show(f.Path); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	log.SetPrefix("bwcmp: ")
	log.SetFlags(0)
	if err := newCommand().Execute(); err != nil {
		log.Fatal(err)
	}
}
