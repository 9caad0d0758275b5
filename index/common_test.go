// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package index

import (
	"testing"

	"gviegas/gldraw/driver"
	"gviegas/gldraw/driver/null"
)

// newCtx opens a null driver context for testing.
func newCtx(t *testing.T) driver.Context {
	var d null.Driver
	ctx, err := d.Open()
	if err != nil {
		t.Fatalf("null.Driver.Open:\nhave %v\nwant nil", err)
	}
	t.Cleanup(d.Close)
	return ctx
}

// caps is a shorthand for tests that exercise support
// predicates.
func caps(api driver.API, major, minor int, exts driver.Extensions) driver.Caps {
	return driver.Caps{
		Ver:  driver.Version{API: api, Major: major, Minor: minor},
		Exts: exts,
	}
}

// readBack fetches the contents of a buffer range.
func readBack(t *testing.T, r driver.Range) []byte {
	data, ok := r.Buffer.ReadBack(r.Off, r.Size)
	if !ok {
		t.Fatal("driver.Buffer.ReadBack:\nhave _, false\nwant _, true")
	}
	return data
}

// wantPanic fails the test unless f panics.
func wantPanic(t *testing.T, name string, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("%s: unexpected success", name)
		}
	}()
	f()
}
