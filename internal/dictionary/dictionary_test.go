// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package dictionary

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSlice(t *testing.T) {
	s := Slice{[]byte("GET"), []byte("POST"), []byte("HTTP/1.1")}
	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}
	if string(s.At(1)) != "POST" {
		t.Fatalf("At(1) = %q, want %q", s.At(1), "POST")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dict.txt")
	content := "GET\nPOST\n\nHTTP/1.1\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}
	want := []string{"GET", "POST", "HTTP/1.1"}
	for i, w := range want {
		if string(s.At(i)) != w {
			t.Errorf("entry %d = %q, want %q", i, s.At(i), w)
		}
	}
}
