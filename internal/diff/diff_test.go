// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diff

import "testing"

func TestDiff(t *testing.T) {
	if d := Diff("a\nb\n", "a\nb\n"); d != "" {
		t.Errorf("equal inputs: got diff %q", d)
	}
	if d := Diff("a\nb\n", "a\nc\n"); d == "" {
		t.Errorf("different inputs: got no diff")
	}
}
