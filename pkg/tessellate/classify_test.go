package tessellate_test

import (
	"testing"

	"github.com/chazu/hachure/pkg/entity"
	"github.com/chazu/hachure/pkg/tessellate"
	"github.com/jbeda/geom"
)

// boxLoop builds a classified-input loop with just the fields the
// classifier reads.
func boxLoop(index int, typ entity.LoopType, minX, minY, maxX, maxY float64) tessellate.Loop {
	return tessellate.Loop{
		Index: index,
		Type:  typ,
		Bounds: geom.Rect{
			Min: geom.Coord{X: minX, Y: minY},
			Max: geom.Coord{X: maxX, Y: maxY},
		},
	}
}

func TestClassifySingleLoop(t *testing.T) {
	loops := []tessellate.Loop{
		boxLoop(0, entity.LoopDefault, 0, 0, 1, 1),
	}

	p := tessellate.Classify(loops, entity.StyleNormal)
	if p.Outer == nil {
		t.Fatal("no outer loop selected")
	}
	if p.Outer.Index != 0 {
		t.Errorf("outer index = %d, want 0", p.Outer.Index)
	}
	if len(p.Holes) != 0 {
		t.Errorf("expected no holes, got %d", len(p.Holes))
	}
}

func TestClassifyLargestFootprintWins(t *testing.T) {
	loops := []tessellate.Loop{
		boxLoop(0, entity.LoopDefault, 0, 0, 1, 1),
		boxLoop(1, entity.LoopDefault, 0, 0, 10, 10),
		boxLoop(2, entity.LoopDefault, 2, 2, 5, 5),
	}

	p := tessellate.Classify(loops, entity.StyleNormal)
	if p.Outer == nil || p.Outer.Index != 1 {
		t.Fatalf("outer = %+v, want loop 1", p.Outer)
	}
	if len(p.Holes) != 2 {
		t.Fatalf("expected 2 holes, got %d", len(p.Holes))
	}
	if p.Holes[0].Index != 0 || p.Holes[1].Index != 2 {
		t.Errorf("hole indices = (%d, %d), want (0, 2)", p.Holes[0].Index, p.Holes[1].Index)
	}
}

func TestClassifyOutermostStyle(t *testing.T) {
	loops := []tessellate.Loop{
		boxLoop(0, entity.LoopExternal|entity.LoopOutermost, 0, 0, 10, 10),
		boxLoop(1, entity.LoopOutermost, 1, 1, 3, 3),
		boxLoop(2, entity.LoopDefault, 4, 4, 6, 6),
		boxLoop(3, entity.LoopExternal, 7, 7, 9, 9),
	}

	p := tessellate.Classify(loops, entity.StyleOutermost)
	if p.Outer == nil || p.Outer.Index != 0 {
		t.Fatalf("outer = %+v, want loop 0", p.Outer)
	}
	if len(p.Holes) != 1 {
		t.Fatalf("expected 1 hole, got %d", len(p.Holes))
	}
	if p.Holes[0].Index != 1 {
		t.Errorf("hole index = %d, want 1", p.Holes[0].Index)
	}
}

func TestClassifyNormalStyleIgnoresFlags(t *testing.T) {
	loops := []tessellate.Loop{
		boxLoop(0, entity.LoopExternal, 0, 0, 10, 10),
		boxLoop(1, entity.LoopDefault, 1, 1, 3, 3),
		boxLoop(2, entity.LoopExternal, 4, 4, 6, 6),
	}

	p := tessellate.Classify(loops, entity.StyleNormal)
	if p.Outer == nil || p.Outer.Index != 0 {
		t.Fatalf("outer = %+v, want loop 0", p.Outer)
	}
	if len(p.Holes) != 2 {
		t.Fatalf("expected 2 holes, got %d", len(p.Holes))
	}
}

func TestClassifyEmpty(t *testing.T) {
	p := tessellate.Classify(nil, entity.StyleNormal)
	if p.Outer != nil || p.Holes != nil {
		t.Errorf("expected empty partition, got %+v", p)
	}
}
