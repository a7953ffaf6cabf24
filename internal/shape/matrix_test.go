package shape

import "testing"

var testShapes = map[string][][]int{
	"I": {{1, 1, 1, 1}},
	"T": {{1, 1, 1}, {0, 1, 0}},
	"L": {{1, 1, 1}, {1, 0, 0}},
	"J": {{1, 1, 1}, {0, 0, 1}},
	"O": {{1, 1}, {1, 1}},
	"S": {{0, 1, 1}, {1, 1, 0}},
	"Z": {{1, 1, 0}, {0, 1, 1}},
}

func TestRotateClockwise(t *testing.T) {
	tests := []struct {
		name string
		in   [][]int
		want [][]int
	}{
		{"I", [][]int{{1, 1, 1, 1}}, [][]int{{1}, {1}, {1}, {1}}},
		{"T", [][]int{{1, 1, 1}, {0, 1, 0}}, [][]int{{0, 1}, {1, 1}, {0, 1}}},
		{"L", [][]int{{1, 1, 1}, {1, 0, 0}}, [][]int{{1, 1}, {0, 1}, {0, 1}}},
		{"S", [][]int{{0, 1, 1}, {1, 1, 0}}, [][]int{{1, 0}, {1, 1}, {0, 1}}},
	}

	for _, tt := range tests {
		got := FromInts(tt.in).Rotate()
		want := FromInts(tt.want)
		if !got.Equal(want) {
			t.Errorf("%s.Rotate() =\n%s\nwant\n%s", tt.name, got, want)
		}
	}
}

func TestRotateFourTimesIsIdentity(t *testing.T) {
	for name, rows := range testShapes {
		m := FromInts(rows)
		got := m.Rotate().Rotate().Rotate().Rotate()
		if !got.Equal(m) {
			t.Errorf("%s rotated 4 times =\n%s\nwant\n%s", name, got, m)
		}
	}
}

func TestRotateDoesNotModifyReceiver(t *testing.T) {
	m := FromInts(testShapes["T"])
	before := m.Clone()
	_ = m.Rotate()
	if !m.Equal(before) {
		t.Errorf("Rotate() modified receiver: %s", m)
	}
}

func TestRotatePreservesCellCount(t *testing.T) {
	for name, rows := range testShapes {
		m := FromInts(rows)
		r := m.Rotate()
		if r.Count() != m.Count() {
			t.Errorf("%s: count %d after rotate, want %d", name, r.Count(), m.Count())
		}
		if r.Width() != m.Height() || r.Height() != m.Width() {
			t.Errorf("%s: rotated dims %dx%d, want %dx%d", name, r.Width(), r.Height(), m.Height(), m.Width())
		}
	}
}

func TestEach(t *testing.T) {
	m := FromInts([][]int{{0, 1}, {1, 0}})
	var got [][2]int
	m.Each(func(c, r int) { got = append(got, [2]int{c, r}) })

	want := [][2]int{{1, 0}, {0, 1}}
	if len(got) != len(want) {
		t.Fatalf("Each visited %d cells, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Each cell %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestEqual(t *testing.T) {
	a := FromInts([][]int{{1, 0}})
	if a.Equal(FromInts([][]int{{1, 0}, {0, 0}})) {
		t.Error("matrices with different heights should not be equal")
	}
	if a.Equal(FromInts([][]int{{1}})) {
		t.Error("matrices with different widths should not be equal")
	}
	if !a.Equal(a.Clone()) {
		t.Error("clone should be equal")
	}
}

func TestEmptyMatrix(t *testing.T) {
	var m Matrix
	if m.Width() != 0 || m.Height() != 0 {
		t.Errorf("empty matrix dims = %dx%d, want 0x0", m.Width(), m.Height())
	}
	if m.Count() != 0 {
		t.Errorf("empty matrix count = %d, want 0", m.Count())
	}
}
