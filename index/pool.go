// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package index

import (
	"errors"
	"sync"

	"gviegas/gldraw/driver"
	"gviegas/gldraw/internal/bitvec"
)

// CommandPool suballocates runs of DrawCommand records
// inside a single indirect buffer.
// Batching systems that rebuild many small multi-draws
// per frame use it to avoid creating one buffer per
// batch.
type CommandPool struct {
	buf driver.Buffer
	vec bitvec.V[uint32]
	mu  sync.Mutex
}

// Number of records granted per bit vector word.
const poolNBit = 32

// NewCommandPool creates a command pool with room for n
// DrawCommand records.
// The capacity is rounded up to a multiple of 32 records.
func NewCommandPool(ctx driver.Context, n int) (*CommandPool, error) {
	if n < 1 {
		panic("index.NewCommandPool: n < 1")
	}
	nw := (n + poolNBit - 1) / poolNBit
	buf, err := ctx.NewBuffer(int64(nw)*poolNBit*drawCmdSize, driver.UIndirect|driver.UCopyDst)
	if err != nil {
		return nil, err
	}
	p := &CommandPool{buf: buf}
	p.vec.Grow(nw)
	return p, nil
}

// Cap returns the number of records the pool can hold.
func (p *CommandPool) Cap() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.vec.Len()
}

// Rem returns the number of records not currently
// reserved by a span.
func (p *CommandPool) Rem() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.vec.Rem()
}

// Alloc reserves a contiguous run of n records.
// It fails when the pool does not have n contiguous
// records available; freeing spans may make further
// allocations succeed.
// The initial contents of the records are indeterminate.
func (p *CommandPool) Alloc(n int) (CommandSpan, error) {
	if n < 1 {
		panic("index.CommandPool.Alloc: n < 1")
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	is, ok := p.vec.SearchRange(n)
	if !ok {
		return CommandSpan{}, errors.New(prefix + "command pool exhausted")
	}
	for i := 0; i < n; i++ {
		p.vec.Set(is + i)
	}
	return CommandSpan{is, is + n}, nil
}

// Free releases a span previously returned by Alloc,
// making its records available to further Alloc calls.
// The span must not be used afterwards.
func (p *CommandPool) Free(s CommandSpan) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i := s.start; i < s.end; i++ {
		p.vec.Unset(i)
	}
}

// Set stores records in the span, starting at record
// position i relative to the span's start.
// It panics if the range is out of the span's bounds.
func (p *CommandPool) Set(s CommandSpan, i int, cmds []DrawCommand) error {
	if i < 0 || i+len(cmds) > s.Len() {
		panic(prefix + "command range out of span bounds")
	}
	if len(cmds) == 0 {
		return nil
	}
	return p.buf.Write(int64(s.start+i)*drawCmdSize, cmdBytes(cmds))
}

// Source returns a MultidrawArraySource that issues the
// records of s with the given topology.
func (p *CommandPool) Source(s CommandSpan, t Topology) Source {
	return MultidrawArraySource{
		Commands: driver.Slice(p.buf, int64(s.start)*drawCmdSize, int64(s.Len())*drawCmdSize),
		Topology: t,
	}
}

// Destroy invalidates p and destroys the underlying
// buffer.
func (p *CommandPool) Destroy() {
	if p == nil {
		return
	}
	if p.buf != nil {
		p.buf.Destroy()
	}
	*p = CommandPool{}
}

// CommandSpan identifies a contiguous run of records
// reserved from a CommandPool.
type CommandSpan struct {
	start, end int
}

// Len returns the number of records in the span.
func (s CommandSpan) Len() int { return s.end - s.start }
