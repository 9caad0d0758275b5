// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package pixel

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

// newCtxNoReadBack opens a null driver context whose
// buffers cannot be read back.
func newCtxNoReadBack(t *testing.T) driver.Context {
	d := null.Driver{NoReadBack: true}
	ctx, err := d.Open()
	if err != nil {
		t.Fatalf("null.Driver.Open:\nhave %v\nwant nil", err)
	}
	t.Cleanup(d.Close)
	return ctx
}

// recSink records the raw image it was handed.
type recSink struct {
	set bool
	img RawImage
}

func (s *recSink) SetRaw(img RawImage) {
	s.set = true
	s.img = img
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
