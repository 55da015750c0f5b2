package segmenter

import (
	"testing"

	"github.com/lumilearn/mathify-go/internal/types"
)

// TestResolveDisplayMode 块级判定与提升
func TestResolveDisplayMode(t *testing.T) {
	cases := []struct {
		name    string
		seg     types.Segment
		force   bool
		display bool
	}{
		{"inline by default", types.Segment{Kind: types.KindMath, Content: "x^2 = 4"}, false, false},
		{"begin env promotes", types.Segment{Kind: types.KindMath, Content: `\begin{aligned} x \end{aligned}`}, false, true},
		{"left promotes", types.Segment{Kind: types.KindMath, Content: `\left( x \right)`}, false, true},
		{"force promotes", types.Segment{Kind: types.KindMath, Content: "x^2"}, true, true},
		{"already display stays", types.Segment{Kind: types.KindMath, Content: "x", DisplayMode: true}, false, true},
	}
	for _, c := range cases {
		got := ResolveDisplayMode([]types.Segment{c.seg}, c.force)
		if got[0].DisplayMode != c.display {
			t.Errorf("%s: DisplayMode = %t, want %t", c.name, got[0].DisplayMode, c.display)
		}
	}
}

// TestResolveDisplayMode_TextUntouched 非公式片段不受影响
func TestResolveDisplayMode_TextUntouched(t *testing.T) {
	segs := []types.Segment{{Kind: types.KindText, Content: `contains \left in prose`}}
	got := ResolveDisplayMode(segs, true)
	if got[0].DisplayMode {
		t.Error("text segment must never carry display mode")
	}
}

// TestResolveDisplayMode_FreshSlice 返回新切片，不改写入参
func TestResolveDisplayMode_FreshSlice(t *testing.T) {
	in := []types.Segment{{Kind: types.KindMath, Content: "x"}}
	_ = ResolveDisplayMode(in, true)
	if in[0].DisplayMode {
		t.Error("input slice was mutated")
	}
}
