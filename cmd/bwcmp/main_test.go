// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"image"
	_ "image/png"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/bwgraph/bwcsv"
)

func run(t *testing.T, args ...string) (shown []string, err error) {
	t.Helper()
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)
	defer func(old func(string) error) { show = old }(show)
	show = func(path string) error {
		shown = append(shown, path)
		return nil
	}

	t.Logf("bwcmp %s", strings.Join(args, " "))
	cmd := newCommand()
	cmd.SetArgs(args)
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	err = cmd.Execute()
	return shown, err
}

func files(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

func TestCompare(t *testing.T) {
	dir := t.TempDir()
	shown, err := run(t, "-n", "-o", dir, "testdata/hdd.csv", "testdata/ssd.csv", "testdata/nvme.csv")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"read-cmp.png", "write-cmp.png"}, files(t, dir)); diff != "" {
		t.Errorf("output files mismatch (-want +got):\n%s", diff)
	}
	if len(shown) != 0 {
		t.Errorf("-n showed %v", shown)
	}
	for _, name := range []string{"read-cmp.png", "write-cmp.png"} {
		f, err := os.Open(filepath.Join(dir, name))
		if err != nil {
			t.Fatal(err)
		}
		cfg, _, err := image.DecodeConfig(f)
		f.Close()
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if cfg.Width != 2400 || cfg.Height != 600 {
			t.Errorf("%s is %dx%d, want 2400x600", name, cfg.Width, cfg.Height)
		}
	}
}

func TestCompareShow(t *testing.T) {
	dir := t.TempDir()
	shown, err := run(t, "--dir", dir, "--title", "disks", "old=testdata/hdd.csv", "new=testdata/ssd.csv")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{filepath.Join(dir, "write-cmp.png"), filepath.Join(dir, "read-cmp.png")}
	if diff := cmp.Diff(want, shown); diff != "" {
		t.Errorf("shown mismatch (-want +got):\n%s", diff)
	}
}

func TestCompareMismatch(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, "-n", "-o", dir, "testdata/hdd.csv", "testdata/short.csv")
	var me *bwcsv.MismatchError
	if !errors.As(err, &me) {
		t.Fatalf("got %v, want *bwcsv.MismatchError", err)
	}
	if me.File != "testdata/short.csv" {
		t.Errorf("mismatch reported for %s, want testdata/short.csv", me.File)
	}
	if got := files(t, dir); len(got) != 0 {
		t.Errorf("wrote %v before failing", got)
	}
}

func TestCompareUsage(t *testing.T) {
	if _, err := run(t, "-n"); err == nil {
		t.Errorf("no inputs: succeeded")
	}
	if _, err := run(t, "-n", "-o", t.TempDir(), "testdata/missing.csv"); err == nil {
		t.Errorf("missing input: succeeded")
	}
}
