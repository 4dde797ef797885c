package dsv_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kmerlath/dsv"
)

func sum(xs []int) int {
	s := 0
	for _, x := range xs {
		s += x
	}
	return s
}

func TestEmplaceAndSingletons(t *testing.T) {
	d := dsv.New[string](2)
	assert.Equal(t, 0, d.Emplace("a"))
	assert.Equal(t, 1, d.Emplace("b"))
	assert.Equal(t, 2, d.Emplace("c"))

	assert.Equal(t, 3, d.Len())
	assert.Equal(t, 3, d.Sets())
	assert.Equal(t, []int{3}, d.RankHistogram())
	for i := 0; i < 3; i++ {
		assert.Equal(t, i, d.Find(i))
	}
	assert.Equal(t, "b", d.Value(1))
	assert.False(t, d.SameSet(0, 2))
}

func TestUnionByRank(t *testing.T) {
	d := dsv.New[int](0)
	for i := 0; i < 4; i++ {
		d.Emplace(i * 10)
	}

	// equal ranks: j under i, i's rank grows
	r := d.Union(0, 1)
	assert.Equal(t, 0, r)
	assert.Equal(t, 1, d.Rank(0))
	assert.Equal(t, []int{2, 1}, d.RankHistogram())

	// lower rank goes under higher rank regardless of argument order
	r = d.Union(2, 0)
	assert.Equal(t, 0, r)
	assert.Equal(t, 1, d.Rank(0))
	assert.Equal(t, 0, d.Rank(2))
	assert.Equal(t, []int{1, 1}, d.RankHistogram())

	// no-op on the same set
	assert.Equal(t, 0, d.Union(1, 2))
	assert.Equal(t, 2, d.Sets())

	r = d.Union(3, 1)
	assert.Equal(t, 0, r)
	assert.Equal(t, 1, d.Sets())
	assert.Equal(t, []int{0, 1}, d.RankHistogram())

	// payloads untouched
	for i := 0; i < 4; i++ {
		assert.Equal(t, i*10, d.Value(i))
	}
}

func TestFindCompressesPath(t *testing.T) {
	d := dsv.New[int](8)
	for i := 0; i < 8; i++ {
		d.Emplace(i)
	}
	// build a rank-3 tree rooted at 0
	d.Union(0, 1)
	d.Union(2, 3)
	d.Union(4, 5)
	d.Union(6, 7)
	d.Union(0, 2)
	d.Union(4, 6)
	d.Union(0, 4)
	assert.Equal(t, 3, d.Rank(0))
	assert.Equal(t, []int{0, 0, 0, 1}, d.RankHistogram())

	for i := 0; i < 8; i++ {
		assert.Equal(t, 0, d.Find(i))
		assert.Equal(t, 0, d.Find(i), "idempotent")
	}
}

func TestOutOfRangePanics(t *testing.T) {
	d := dsv.New[int](0)
	d.Emplace(1)
	assert.Panics(t, func() { d.Find(1) })
	assert.Panics(t, func() { d.Union(0, -1) })
	assert.Panics(t, func() { d.Value(5) })
	assert.Panics(t, func() { d.Rank(2) })
}

func TestGroupsAndAll(t *testing.T) {
	d := dsv.New[byte](0)
	for _, c := range []byte("abcdef") {
		d.Emplace(c)
	}
	d.Union(4, 1)
	d.Union(5, 3)
	d.Union(3, 1)

	assert.Equal(t, [][]int{{0}, {1, 3, 4, 5}, {2}}, d.Groups())

	var got []byte
	for i, v := range d.All() {
		assert.Equal(t, d.Value(i), v)
		got = append(got, v)
	}
	assert.Equal(t, "abcdef", string(got))
}

// TestRandomAgainstLabels checks SameSet against a naive relabeling oracle
// after every union, together with the histogram sum.
func TestRandomAgainstLabels(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	const n = 300
	d := dsv.New[int](n)
	label := make([]int, n)
	for i := 0; i < n; i++ {
		d.Emplace(i)
		label[i] = i
	}
	sets := n

	for step := 0; step < 500; step++ {
		a, b := r.Intn(n), r.Intn(n)
		d.Union(a, b)
		if la, lb := label[a], label[b]; la != lb {
			for i := range label {
				if label[i] == lb {
					label[i] = la
				}
			}
			sets--
		}

		require.Equal(t, sets, d.Sets())
		require.Equal(t, d.Sets(), sum(d.RankHistogram()))
		for k := 0; k < 20; k++ {
			x, y := r.Intn(n), r.Intn(n)
			require.Equal(t, label[x] == label[y], d.SameSet(x, y), "step %d: %d,%d", step, x, y)
		}
	}
	assert.Len(t, d.Groups(), d.Sets())
}

func BenchmarkUnionFind(b *testing.B) {
	r := rand.New(rand.NewSource(42))
	const n = 1 << 16
	pairs := make([][2]int, n)
	for i := range pairs {
		pairs[i] = [2]int{r.Intn(n), r.Intn(n)}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d := dsv.New[struct{}](n)
		for j := 0; j < n; j++ {
			d.Emplace(struct{}{})
		}
		for _, p := range pairs {
			d.Union(p[0], p[1])
		}
	}
}
