// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bwcsv

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
)

func names(dss []*Dataset) []string {
	var out []string
	for _, d := range dss {
		out = append(out, d.Name)
	}
	return out
}

func TestLoadFiles(t *testing.T) {
	dss, err := LoadFiles([]string{"testdata/run1.csv", "testdata/run2.csv"})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := strings.Join(names(dss), ","), "RUN1,RUN2"; got != want {
		t.Errorf("names = %s, want %s", got, want)
	}
	for _, d := range dss {
		if r, c := d.Shape(); r != 24 || c != 4 {
			t.Errorf("%s: Shape() = (%d, %d), want (24, 4)", d.Path, r, c)
		}
	}
}

func TestLoadFilesLabels(t *testing.T) {
	dss, err := LoadFiles([]string{"old=testdata/run1.csv", "testdata/run1.csv", "testdata/run1.csv"})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := strings.Join(names(dss), ","), "old,RUN1#0,RUN1#1"; got != want {
		t.Errorf("names = %s, want %s", got, want)
	}
	if dss[0].Path != "testdata/run1.csv" {
		t.Errorf("labeled input has Path %q", dss[0].Path)
	}
}

func TestLoadFilesMismatch(t *testing.T) {
	for _, test := range []struct {
		other string
		msg   string
	}{
		{"testdata/short.csv", "shape (22, 4) != (24, 4)"},
		{"testdata/othersizes.csv", "object sizes [4KB 512KB 1MB] != [256KB 512KB 1MB]"},
	} {
		_, err := LoadFiles([]string{"testdata/run1.csv", "testdata/run2.csv", test.other})
		var me *MismatchError
		if !errors.As(err, &me) {
			t.Errorf("%s: got error %v, want *MismatchError", test.other, err)
			continue
		}
		if me.File != test.other || me.Ref != "testdata/run1.csv" || me.Msg != test.msg {
			t.Errorf("%s: got %s, want message %q", test.other, me, test.msg)
		}
	}
}

func TestLoadFilesSingle(t *testing.T) {
	dss, err := LoadFiles([]string{"testdata/short.csv"})
	if err != nil || len(dss) != 1 {
		t.Fatalf("LoadFiles(short.csv) = %d datasets, %v", len(dss), err)
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := LoadFiles([]string{"testdata/run1.csv", "testdata/nonexistent.csv"})
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("got %v, want a not-exist error", err)
	}
}
