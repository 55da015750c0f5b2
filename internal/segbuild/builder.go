package segbuild

import "github.com/lumilearn/mathify-go/internal/types"

// Separator is the content of a deliberately inserted spacing segment.
// It is the only segment allowed to consist of whitespace.
const Separator = " "

// Builder accumulates an ordered segment list while enforcing the
// no-empty-content invariant: segments with empty content are dropped
// instead of emitted.
type Builder struct {
	segs []types.Segment
}

// New creates a new Builder.
func New() *Builder {
	return &Builder{
		segs: make([]types.Segment, 0, 4),
	}
}

// Append adds a segment unless its content is empty.
func (b *Builder) Append(seg types.Segment) {
	if seg.Content == "" {
		return
	}
	b.segs = append(b.segs, seg)
}

// AppendSeparator adds the single-space text separator segment.
// This is the one deliberate exception to the non-blank rule.
func (b *Builder) AppendSeparator() {
	b.segs = append(b.segs, types.Segment{
		Kind:    types.KindText,
		Content: Separator,
	})
}

// Len returns the number of accumulated segments.
func (b *Builder) Len() int {
	return len(b.segs)
}

// Segments returns the accumulated list. The builder keeps no reference
// to the returned slice; callers own it.
func (b *Builder) Segments() []types.Segment {
	out := b.segs
	b.segs = nil
	if out == nil {
		return []types.Segment{}
	}
	return out
}

// Reset clears the builder for reuse.
func (b *Builder) Reset() {
	b.segs = b.segs[:0]
}
