// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bwcsv

import (
	"fmt"
	"strings"
)

// A MismatchError reports that two inputs cannot be compared because
// they come from incompatible benchmark runs.
type MismatchError struct {
	File string // the input that does not match
	Ref  string // the input it was compared against
	Msg  string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s does not match %s: %s", e.File, e.Ref, e.Msg)
}

// LoadFiles loads a set of inputs to be compared with each other.
//
// Each entry of paths is either a file name or label=path. A label
// replaces the Dataset's default Name. Unlabeled inputs that would
// get the same Name are disambiguated by appending "#N".
//
// After loading, LoadFiles checks the inputs with Compatible and
// returns its error, if any. No datasets are returned on error.
func LoadFiles(paths []string) ([]*Dataset, error) {
	type input struct {
		path, label string
		isLabeled   bool
	}
	var inputs []input
	nameCount := make(map[string]int)
	for _, path := range paths {
		if i := strings.Index(path, "="); i >= 0 {
			inputs = append(inputs, input{path[i+1:], path[:i], true})
			continue
		}
		nameCount[Name(path)]++
		inputs = append(inputs, input{path, Name(path), false})
	}
	nameI := make(map[string]int)
	for i := range inputs {
		inp := &inputs[i]
		if inp.isLabeled || nameCount[inp.label] == 1 {
			continue
		}
		name := inp.label
		inp.label = fmt.Sprintf("%s#%d", name, nameI[name])
		nameI[name]++
	}

	dss := make([]*Dataset, 0, len(inputs))
	for _, inp := range inputs {
		d, err := Load(inp.path)
		if err != nil {
			return nil, err
		}
		d.Name = inp.label
		dss = append(dss, d)
	}
	if err := Compatible(dss); err != nil {
		return nil, err
	}
	return dss, nil
}

// Compatible checks that every dataset in dss has the same shape and
// the same object size labels as the first one.
func Compatible(dss []*Dataset) error {
	if len(dss) < 2 {
		return nil
	}
	ref := dss[0]
	rr, rc := ref.Shape()
	for _, d := range dss[1:] {
		r, c := d.Shape()
		if r != rr || c != rc {
			return &MismatchError{d.id(), ref.id(), fmt.Sprintf("shape (%d, %d) != (%d, %d)", r, c, rr, rc)}
		}
		if !d.Sizes.Equal(ref.Sizes) {
			return &MismatchError{d.id(), ref.id(), fmt.Sprintf("object sizes %v != %v", d.Sizes, ref.Sizes)}
		}
	}
	return nil
}

// id returns the name used for d in error messages.
func (d *Dataset) id() string {
	if d.Path != "" {
		return d.Path
	}
	return d.Name
}
