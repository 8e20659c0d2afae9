// Package colortable maps RGB colors to the nearest pen of a bounded
// palette. Pens are projected onto the palette's two principal axes so a
// lookup can binary-search one sorted component and stop scanning as soon
// as the first-axis distance alone exceeds the best candidate.
package colortable

import (
	"math"
	"sort"

	"github.com/hnimtadd/termseq/utils"
)

// MaxEntries is the largest palette a table can hold.
const MaxEntries = 256

// penUnset marks pens that have no color assigned; the alpha byte is
// never set by SetPenColor.
const penUnset = 0xffffffff

type entry struct {
	pen int
	v   [2]float64
}

// Table is a palette of up to 256 pens. Assign colors with SetPenColor,
// call Sort once, then query with FindNearestPen. Colors are packed
// 0x00RRGGBB.
type Table struct {
	pens    [MaxEntries]uint32
	entries []entry

	axes    [2][3]float64
	average [3]float64
	sorted  bool
}

func New() *Table {
	t := &Table{sorted: true}
	for i := range t.pens {
		t.pens[i] = penUnset
	}
	return t
}

// SetPenColor assigns a color to a pen and invalidates the sort.
func (t *Table) SetPenColor(pen int, color uint32) {
	utils.Assert(pen >= 0 && pen < MaxEntries, "colortable: pen %d out of range", pen)
	t.pens[pen] = color & 0x00ffffff
	t.sorted = false
}

// PenColor returns the color assigned to pen, or 0xffffffff if unset.
func (t *Table) PenColor(pen int) uint32 {
	utils.Assert(pen >= 0 && pen < MaxEntries, "colortable: pen %d out of range", pen)
	return t.pens[pen]
}

func channels(color uint32) (r, g, b int) {
	return int(color >> 16 & 0xff), int(color >> 8 & 0xff), int(color & 0xff)
}

func colorDiff(a, b uint32) int {
	ar, ag, ab := channels(a)
	br, bg, bb := channels(b)
	dr, dg, db := ar-br, ag-bg, ab-bb
	return dr*dr + dg*dg + db*db
}

func (t *Table) project(color uint32, v *[2]float64) {
	r, g, b := channels(color)
	p := [3]float64{
		float64(r) - t.average[0],
		float64(g) - t.average[1],
		float64(b) - t.average[2],
	}
	for i := range 2 {
		v[i] = p[0]*t.axes[i][0] + p[1]*t.axes[i][1] + p[2]*t.axes[i][2]
	}
}

// Sort recomputes the principal axes over the assigned pens and orders the
// lookup entries by first projected component. It is idempotent and must
// run after the last SetPenColor and before the first FindNearestPen.
func (t *Table) Sort() {
	if t.sorted {
		return
	}

	t.entries = t.entries[:0]
	for pen, color := range t.pens {
		if color == penUnset {
			continue
		}
		t.entries = append(t.entries, entry{pen: pen})
	}

	t.computeAxes()

	for i := range t.entries {
		e := &t.entries[i]
		t.project(t.pens[e.pen], &e.v)
	}
	sort.Slice(t.entries, func(i, j int) bool {
		return t.entries[i].v[0] < t.entries[j].v[0]
	})
	t.sorted = true
}

// computeAxes finds the palette's mean and its two principal covariance
// eigenvectors by power iteration with deflation. Any orthonormal pair
// keeps lookups exact (projected distances never exceed RGB distances);
// the principal pair just makes the early-out effective.
func (t *Table) computeAxes() {
	n := len(t.entries)
	t.average = [3]float64{}
	if n == 0 {
		t.axes = [2][3]float64{{1, 0, 0}, {0, 1, 0}}
		return
	}

	for _, e := range t.entries {
		r, g, b := channels(t.pens[e.pen])
		t.average[0] += float64(r)
		t.average[1] += float64(g)
		t.average[2] += float64(b)
	}
	for i := range t.average {
		t.average[i] /= float64(n)
	}

	var cov [3][3]float64
	for _, e := range t.entries {
		r, g, b := channels(t.pens[e.pen])
		d := [3]float64{
			float64(r) - t.average[0],
			float64(g) - t.average[1],
			float64(b) - t.average[2],
		}
		for i := range 3 {
			for j := range 3 {
				cov[i][j] += d[i] * d[j]
			}
		}
	}

	t.axes[0] = principalAxis(cov, [3]float64{1, 1, 1})

	// Deflate: remove the first axis from the covariance, then iterate
	// again for the second.
	a := t.axes[0]
	lambda := dot(mulVec(cov, a), a)
	for i := range 3 {
		for j := range 3 {
			cov[i][j] -= lambda * a[i] * a[j]
		}
	}
	t.axes[1] = orthonormalize(principalAxis(cov, [3]float64{1, -1, 0}), a)
}

func principalAxis(cov [3][3]float64, start [3]float64) [3]float64 {
	v := normalize(start)
	for range 64 {
		next := mulVec(cov, v)
		norm := math.Sqrt(dot(next, next))
		if norm < 1e-9 {
			// Degenerate covariance (single color): any unit vector works.
			return v
		}
		for i := range 3 {
			next[i] /= norm
		}
		v = next
	}
	return v
}

func orthonormalize(v, against [3]float64) [3]float64 {
	d := dot(v, against)
	for i := range 3 {
		v[i] -= d * against[i]
	}
	if dot(v, v) < 1e-9 {
		// v collapsed onto the first axis; pick any perpendicular.
		if math.Abs(against[0]) < 0.9 {
			v = [3]float64{1, 0, 0}
		} else {
			v = [3]float64{0, 1, 0}
		}
		d = dot(v, against)
		for i := range 3 {
			v[i] -= d * against[i]
		}
	}
	return normalize(v)
}

func normalize(v [3]float64) [3]float64 {
	norm := math.Sqrt(dot(v, v))
	for i := range 3 {
		v[i] /= norm
	}
	return v
}

func dot(a, b [3]float64) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func mulVec(m [3][3]float64, v [3]float64) [3]float64 {
	var out [3]float64
	for i := range 3 {
		out[i] = m[i][0]*v[0] + m[i][1]*v[1] + m[i][2]*v[2]
	}
	return out
}

// refine considers entry j as a nearest-pen candidate. It returns false
// when the first-axis distance alone already exceeds the best RGB
// distance found, at which point the caller can stop scanning in that
// direction: entries are sorted by that axis and projections never exceed
// the full RGB distance.
func (t *Table) refine(want uint32, v *[2]float64, j int, bestEntry, bestDiff *int) bool {
	e := &t.entries[j]

	d0 := e.v[0] - v[0]
	if d0*d0 > float64(*bestDiff) {
		return false
	}
	d1 := e.v[1] - v[1]
	if d1*d1 > float64(*bestDiff) {
		return true
	}
	if d := colorDiff(t.pens[e.pen], want); d <= *bestDiff {
		*bestEntry = j
		*bestDiff = d
	}
	return true
}

// FindNearestPen returns the pen whose color has the smallest squared RGB
// distance to want. The table must be sorted and hold at least one pen.
func (t *Table) FindNearestPen(want uint32) int {
	utils.Assert(t.sorted, "colortable: FindNearestPen before Sort")
	utils.Assert(len(t.entries) > 0, "colortable: empty table")

	want &= 0x00ffffff

	var v [2]float64
	t.project(want, &v)

	// Binary search for the insertion point on the first axis.
	m := sort.Search(len(t.entries), func(i int) bool {
		return t.entries[i].v[0] >= v[0]
	})

	bestEntry := 0
	bestDiff := math.MaxInt

	for j := min(m, len(t.entries)-1); j >= 0; j-- {
		if !t.refine(want, &v, j, &bestEntry, &bestDiff) {
			break
		}
	}
	for j := m + 1; j < len(t.entries); j++ {
		if !t.refine(want, &v, j, &bestEntry, &bestDiff) {
			break
		}
	}

	return t.entries[bestEntry].pen
}
