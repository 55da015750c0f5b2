package segbuild

import (
	"testing"

	"github.com/lumilearn/mathify-go/internal/types"
)

func TestBuilder_DropsEmptyContent(t *testing.T) {
	b := New()
	b.Append(types.Segment{Kind: types.KindText, Content: ""})
	b.Append(types.Segment{Kind: types.KindMath, Content: ""})
	if b.Len() != 0 {
		t.Errorf("Len() = %d, want 0", b.Len())
	}
}

func TestBuilder_PreservesOrder(t *testing.T) {
	b := New()
	b.Append(types.Segment{Kind: types.KindText, Content: "a"})
	b.Append(types.Segment{Kind: types.KindMath, Content: "x=1"})
	b.Append(types.Segment{Kind: types.KindText, Content: "b"})
	segs := b.Segments()
	if len(segs) != 3 {
		t.Fatalf("len = %d, want 3", len(segs))
	}
	if segs[0].Content != "a" || segs[1].Content != "x=1" || segs[2].Content != "b" {
		t.Errorf("order broken: %+v", segs)
	}
}

func TestBuilder_SeparatorIsOnlyBlankSegment(t *testing.T) {
	b := New()
	b.AppendSeparator()
	segs := b.Segments()
	if len(segs) != 1 {
		t.Fatalf("len = %d, want 1", len(segs))
	}
	if segs[0].Content != Separator || segs[0].Kind != types.KindText {
		t.Errorf("separator = %+v", segs[0])
	}
}

func TestBuilder_SegmentsNeverNil(t *testing.T) {
	b := New()
	if segs := b.Segments(); segs == nil {
		t.Error("Segments() = nil, want empty slice")
	}
}

func TestBuilder_RelinquishesSlice(t *testing.T) {
	b := New()
	b.Append(types.Segment{Kind: types.KindText, Content: "a"})
	first := b.Segments()
	b.Append(types.Segment{Kind: types.KindText, Content: "b"})
	second := b.Segments()
	if len(first) != 1 || first[0].Content != "a" {
		t.Errorf("first = %+v", first)
	}
	if len(second) != 1 || second[0].Content != "b" {
		t.Errorf("second = %+v", second)
	}
}

func TestBuilder_Reset(t *testing.T) {
	b := New()
	b.Append(types.Segment{Kind: types.KindText, Content: "a"})
	b.Reset()
	if b.Len() != 0 {
		t.Errorf("Len() after Reset = %d, want 0", b.Len())
	}
}
