package drag

import "testing"

func TestResolveBoundary_Midpoint(t *testing.T) {
	d := doc("a", "b", "c")
	m := rowMapper{doc: d}

	cases := []struct {
		name string
		p    Point
		want int
		ok   bool
	}{
		{name: "upper half before line", p: rowPoint(2, false), want: 2, ok: true},
		{name: "lower half before next", p: rowPoint(2, true), want: 4, ok: true},
		{name: "exact midpoint is before", p: Point{X: 1, Y: 1.5}, want: 2, ok: true},
		{name: "last line lower half is end", p: rowPoint(3, true), want: 5, ok: true},
		{name: "first line upper half is start", p: rowPoint(1, false), want: 0, ok: true},
		{name: "above content", p: Point{X: 1, Y: -1}, ok: false},
		{name: "below content", p: Point{X: 1, Y: 3.5}, ok: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ResolveBoundary(d, m, tc.p, Span{})
			if ok != tc.ok || (ok && got != tc.want) {
				t.Fatalf("got %d (ok=%v), want %d (ok=%v)", got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestResolveBoundary_SuppressesInteriorOfBlock(t *testing.T) {
	d := doc("a", "b", "c")
	m := rowMapper{doc: d}
	block := BlockRange{Start: 1, End: 2}.Span(d)

	if _, ok := ResolveBoundary(d, m, rowPoint(1, true), block); ok {
		t.Fatalf("expected boundary between block lines to be suppressed")
	}
	if got, ok := ResolveBoundary(d, m, rowPoint(1, false), block); !ok || got != 0 {
		t.Fatalf("block start: got %d (ok=%v), want 0", got, ok)
	}
	if got, ok := ResolveBoundary(d, m, rowPoint(2, true), block); !ok || got != 4 {
		t.Fatalf("block end: got %d (ok=%v), want 4", got, ok)
	}
}

func TestResolveBoundary_BottomFallbacks(t *testing.T) {
	d := doc("a", "b", "c")
	m := rowMapper{doc: d, noLineEnd: true}

	// Line 1 falls back to the top of line 2: same midpoint as a full row.
	if got, ok := ResolveBoundary(d, m, rowPoint(1, true), Span{}); !ok || got != 2 {
		t.Fatalf("next-line fallback: got %d (ok=%v), want 2", got, ok)
	}

	// The last line has no next line, so its bottom collapses onto its top.
	if got, ok := ResolveBoundary(d, m, rowPoint(3, false), Span{}); !ok || got != 5 {
		t.Fatalf("single-line fallback below top: got %d (ok=%v), want 5", got, ok)
	}
	if got, ok := ResolveBoundary(d, m, Point{X: 1, Y: 2}, Span{}); !ok || got != 4 {
		t.Fatalf("single-line fallback at top: got %d (ok=%v), want 4", got, ok)
	}
}

func TestResolveBoundary_NilMapper(t *testing.T) {
	if _, ok := ResolveBoundary(doc("a"), nil, Point{}, Span{}); ok {
		t.Fatalf("expected no boundary without a mapper")
	}
}
