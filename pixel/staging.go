// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package pixel

import (
	"errors"

	"gviegas/gldraw/driver"
)

// Pooled buffer capacities are rounded up to a multiple
// of this, so downloads of varied shapes can share them.
const stagingBlock = 65536

// Staging amortizes buffer creation across repeated
// downloads, such as per-frame screen grabs, by recycling
// the staging buffers it hands out.
type Staging struct {
	ctx driver.Context
	ch  chan *Buffer
}

// NewStaging creates a staging pool that keeps up to n
// idle buffers around.
func NewStaging(ctx driver.Context, n int) *Staging {
	if n < 1 {
		panic(prefix + "staging pool must hold at least one buffer")
	}
	return &Staging{ctx, make(chan *Buffer, n)}
}

// Download is like the package-level Download, except that
// it reuses an idle pooled buffer when one is big enough.
// Returned buffers go back to the pool through Recycle.
func (s *Staging) Download(src driver.Range, width, height int, f Format) (*Buffer, error) {
	switch {
	case width < 1 || height < 1:
		panic(prefix + "non-positive dimensions")
	case f.Size() == 0:
		panic(prefix + "invalid format")
	}
	n := int64(width) * int64(height) * int64(f.Size())
	if n > src.Size {
		return nil, errors.New(prefix + "not enough source data for the given shape")
	}
	data, ok := src.Buffer.ReadBack(src.Off, n)
	if !ok {
		return nil, errors.New(prefix + "buffer readback not supported")
	}
	b, err := s.get(n)
	if err != nil {
		return nil, err
	}
	if err := b.buf.Write(0, data); err != nil {
		b.Destroy()
		return nil, err
	}
	b.StoreInfos(width, height, f)
	return b, nil
}

// get yields an idle buffer with room for n bytes,
// creating one when the pool cannot provide it.
func (s *Staging) get(n int64) (*Buffer, error) {
	select {
	case b := <-s.ch:
		if b.Size() >= n {
			return b, nil
		}
		b.Destroy()
	default:
	}
	n = (n + stagingBlock - 1) &^ (stagingBlock - 1)
	return NewEmpty(s.ctx, n)
}

// Recycle makes a buffer previously returned by Download
// available to further Download calls.
// The buffer must not be used afterwards.
// When the pool is full, the buffer is destroyed instead.
func (s *Staging) Recycle(b *Buffer) {
	if b == nil || b.buf == nil {
		return
	}
	b.clearInfos()
	select {
	case s.ch <- b:
	default:
		b.Destroy()
	}
}

// Free invalidates s and destroys every pooled buffer.
func (s *Staging) Free() {
	for {
		select {
		case b := <-s.ch:
			b.Destroy()
		default:
			*s = Staging{}
			return
		}
	}
}
