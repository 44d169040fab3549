// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sizemap assigns benchmark object sizes to ordered
// categorical buckets and gives each bucket a display label.
//
// Object sizes are plotted as categories, not as a numeric axis: the
// smallest distinct size in an input goes in bucket 0, the next in
// bucket 1, and so on. A Map is built once per input and never
// modified, so every consumer of an input sees the same bucket for a
// given size.
package sizemap

import (
	"sort"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/generic/slice"
)

// Label formats size (in bytes) as "{n}B", "{n}KB" or "{n}MB".
//
// Each step divides by 1024 and truncates, so Label(1500) is "1KB"
// and no fractional units are produced. Sizes of 1024 MB or more are
// still reported in MB.
func Label(size int) string {
	if size < 1024 {
		return strconv.Itoa(size) + "B"
	}
	size /= 1024
	if size < 1024 {
		return strconv.Itoa(size) + "KB"
	}
	size /= 1024
	return strconv.Itoa(size) + "MB"
}

// A Map is an immutable mapping from raw object sizes to bucket
// indexes and labels. The zero Map has no buckets.
type Map struct {
	sizes  []int
	labels []string
	index  map[int]int
}

// New returns a Map over the distinct values in sizes, ordered
// ascending. sizes may contain duplicates and is not retained.
func New(sizes []int) *Map {
	m := &Map{index: make(map[int]int)}
	if len(sizes) == 0 {
		return m
	}
	m.sizes = slice.Nub(sizes).([]int)
	sort.Ints(m.sizes)
	m.labels = make([]string, len(m.sizes))
	for i, sz := range m.sizes {
		m.index[sz] = i
		m.labels[i] = Label(sz)
	}
	return m
}

// Len returns the number of buckets.
func (m *Map) Len() int {
	return len(m.sizes)
}

// Index returns the bucket of size, or false if size was not one of
// the sizes m was built from.
func (m *Map) Index(size int) (int, bool) {
	i, ok := m.index[size]
	return i, ok
}

// Size returns the raw object size of bucket i.
func (m *Map) Size(i int) int {
	return m.sizes[i]
}

// Label returns the display label of bucket i.
func (m *Map) Label(i int) string {
	return m.labels[i]
}

// Sizes returns the distinct sizes in bucket order.
func (m *Map) Sizes() []int {
	return append([]int(nil), m.sizes...)
}

// Labels returns the bucket labels in bucket order.
func (m *Map) Labels() []string {
	return append([]string(nil), m.labels...)
}

// Equal reports whether m and o have the same label sequence.
//
// Labels, not raw sizes, are compared: two runs whose sizes differ
// only below the label's precision plot identically.
func (m *Map) Equal(o *Map) bool {
	if len(m.labels) != len(o.labels) {
		return false
	}
	for i := range m.labels {
		if m.labels[i] != o.labels[i] {
			return false
		}
	}
	return true
}

func (m *Map) String() string {
	return "[" + strings.Join(m.labels, " ") + "]"
}
