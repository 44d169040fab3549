// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sizemap

import (
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLabel(t *testing.T) {
	for _, test := range []struct {
		size int
		want string
	}{
		{0, "0B"},
		{1, "1B"},
		{1023, "1023B"},
		{1024, "1KB"},
		{1500, "1KB"},
		{2047, "1KB"},
		{256 << 10, "256KB"},
		{1<<20 - 1, "1023KB"},
		{1 << 20, "1MB"},
		{3<<20 + 1<<19, "3MB"},
		{1 << 30, "1024MB"},
	} {
		if got := Label(test.size); got != test.want {
			t.Errorf("Label(%d) = %q, want %q", test.size, got, test.want)
		}
	}
}

func TestLabelForm(t *testing.T) {
	// Every label is the truncated quotient followed by its unit.
	for size := 0; size < 4<<20; size += 4093 {
		want := ""
		switch {
		case size < 1024:
			want = strconv.Itoa(size) + "B"
		case size < 1<<20:
			want = strconv.Itoa(size/1024) + "KB"
		default:
			want = strconv.Itoa(size/1024/1024) + "MB"
		}
		if got := Label(size); got != want {
			t.Fatalf("Label(%d) = %q, want %q", size, got, want)
		}
	}
}

func TestNew(t *testing.T) {
	in := []int{1048576, 262144, 524288, 262144, 1048576}
	m := New(in)

	if m.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", m.Len())
	}
	if diff := cmp.Diff([]int{262144, 524288, 1048576}, m.Sizes()); diff != "" {
		t.Errorf("Sizes() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"256KB", "512KB", "1MB"}, m.Labels()); diff != "" {
		t.Errorf("Labels() mismatch (-want +got):\n%s", diff)
	}
	for want, size := range []int{262144, 524288, 1048576} {
		got, ok := m.Index(size)
		if !ok || got != want {
			t.Errorf("Index(%d) = %d, %v, want %d, true", size, got, ok, want)
		}
	}
	if _, ok := m.Index(4096); ok {
		t.Errorf("Index(4096) found a bucket for a size not in the input")
	}

	// The input must not be reordered.
	if diff := cmp.Diff([]int{1048576, 262144, 524288, 262144, 1048576}, in); diff != "" {
		t.Errorf("New modified its input (-want +got):\n%s", diff)
	}
}

func TestNewEmpty(t *testing.T) {
	m := New(nil)
	if m.Len() != 0 || len(m.Labels()) != 0 {
		t.Errorf("New(nil) has %d buckets, want 0", m.Len())
	}
	if _, ok := m.Index(0); ok {
		t.Errorf("empty Map has a bucket for 0")
	}
}

func TestImmutable(t *testing.T) {
	m := New([]int{1, 2, 3})
	m.Labels()[0] = "x"
	m.Sizes()[0] = 100
	if m.Label(0) != "1B" || m.Size(0) != 1 {
		t.Errorf("Map changed through a returned slice: %v", m)
	}
}

func TestEqual(t *testing.T) {
	a := New([]int{1024, 2048})
	for _, test := range []struct {
		sizes []int
		want  bool
	}{
		{[]int{2048, 1024}, true},
		// Same labels, different raw sizes.
		{[]int{1500, 2100}, true},
		{[]int{1024}, false},
		{[]int{1024, 4096}, false},
		{[]int{1024, 2048, 4096}, false},
	} {
		if got := a.Equal(New(test.sizes)); got != test.want {
			t.Errorf("%v.Equal(%v) = %v, want %v", a, test.sizes, got, test.want)
		}
	}
}

func TestString(t *testing.T) {
	if got, want := New([]int{1 << 20, 512}).String(), "[512B 1MB]"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
