package dominant

import (
	"math"
	"math/rand"
	"sync"

	"github.com/anthonynsimon/bild/parallel"
)

const (
	// maxIterations caps the Lloyd refinement loop. Hitting the cap is not
	// an error; the centroids at that point are an accepted approximation.
	maxIterations = 50

	// seedAttempts is how many random samples a single seeding slot may
	// draw before the slot is considered exhausted.
	seedAttempts = 10
)

// cluster is one k-means cluster: a centroid plus the accumulators filled
// by the most recent assignment pass.
//
// The centroid always reflects the mean of the previous iteration's
// assignment, one step behind the accumulators. The convergence test
// depends on that staleness: it compares the current centroid against the
// mean of the freshly accumulated sums.
type cluster struct {
	centroid [3]uint8  // Current center in RGB space
	sum      [3]uint64 // Channel sums of pixels assigned this iteration
	weight   uint64    // Number of pixels assigned this iteration
}

// converged reports whether the centroid already equals the integer mean of
// the accumulated sums. A cluster that attracted no pixels counts as
// converged and keeps its centroid.
func (c *cluster) converged() bool {
	if c.weight == 0 {
		return true
	}
	return c.centroid[0] == uint8(c.sum[0]/c.weight) &&
		c.centroid[1] == uint8(c.sum[1]/c.weight) &&
		c.centroid[2] == uint8(c.sum[2]/c.weight)
}

// recompute replaces the centroid with the truncating integer mean of the
// accumulated sums. Division truncates rather than rounds; converged relies
// on the exact same arithmetic. Clusters with no assigned pixels keep their
// previous centroid.
func (c *cluster) recompute() {
	if c.weight == 0 {
		return
	}
	c.centroid[0] = uint8(c.sum[0] / c.weight)
	c.centroid[1] = uint8(c.sum[1] / c.weight)
	c.centroid[2] = uint8(c.sum[2] / c.weight)
}

// seedClusters picks up to n distinct initial centroids by sampling random
// pixels from px.
//
// Each slot draws up to seedAttempts random samples and accepts the first
// opaque pixel whose exact RGB value is not already a centroid. A slot that
// exhausts its attempts aborts seeding entirely rather than moving on to
// the next slot, so low-diversity images yield fewer clusters than
// requested: a single solid color seeds exactly one cluster, and a fully
// transparent image seeds none.
func seedClusters(px []Pixel, n int, rng *rand.Rand) []cluster {
	clusters := make([]cluster, 0, n)
	if len(px) == 0 {
		return clusters
	}

	for len(clusters) < n {
		seeded := false
		for attempt := 0; attempt < seedAttempts; attempt++ {
			p := px[rng.Intn(len(px))]
			if p.A == 0 {
				continue
			}
			if isCentroid(clusters, p) {
				continue
			}
			clusters = append(clusters, cluster{centroid: [3]uint8{p.R, p.G, p.B}})
			seeded = true
			break
		}
		if !seeded {
			break
		}
	}

	return clusters
}

// isCentroid reports whether a pixel's exact RGB value is already in use as
// a cluster centroid.
func isCentroid(clusters []cluster, p Pixel) bool {
	for i := range clusters {
		c := clusters[i].centroid
		if c[0] == p.R && c[1] == p.G && c[2] == p.B {
			return true
		}
	}
	return false
}

// nearest returns the index of the cluster whose centroid is closest to p
// in Euclidean RGB distance. Ties go to the earliest cluster in the current
// ordering.
func nearest(clusters []cluster, p Pixel) int {
	best := 0
	bestDist := math.MaxFloat64

	for i := range clusters {
		dr := float64(int(p.R) - int(clusters[i].centroid[0]))
		dg := float64(int(p.G) - int(clusters[i].centroid[1]))
		db := float64(int(p.B) - int(clusters[i].centroid[2]))
		dist := math.Sqrt(dr*dr + dg*dg + db*db)
		if dist < bestDist {
			bestDist = dist
			best = i
		}
	}

	return best
}

// assign accumulates every opaque pixel in px[start:end] into its nearest
// cluster. Centroids are only read, so multiple assign calls over disjoint
// ranges may run concurrently as long as each writes to its own clusters
// slice.
func assign(px []Pixel, clusters []cluster, start, end int) {
	for i := start; i < end; i++ {
		p := px[i]
		if p.A == 0 {
			continue
		}
		k := nearest(clusters, p)
		clusters[k].sum[0] += uint64(p.R)
		clusters[k].sum[1] += uint64(p.G)
		clusters[k].sum[2] += uint64(p.B)
		clusters[k].weight++
	}
}

// assignParallel splits the assignment pass across CPU cores. Each
// partition accumulates into its own cluster copies, which are then merged
// by integer addition, so the result is identical to a serial assign over
// the full range.
func assignParallel(px []Pixel, clusters []cluster) {
	var mu sync.Mutex

	parallel.Line(len(px), func(start, end int) {
		part := make([]cluster, len(clusters))
		for i := range clusters {
			part[i].centroid = clusters[i].centroid
		}

		assign(px, part, start, end)

		mu.Lock()
		for i := range clusters {
			clusters[i].sum[0] += part[i].sum[0]
			clusters[i].sum[1] += part[i].sum[1]
			clusters[i].sum[2] += part[i].sum[2]
			clusters[i].weight += part[i].weight
		}
		mu.Unlock()
	})
}

// refine runs Lloyd iterations over px until every cluster converges or
// maxIterations is reached.
//
// Each iteration resets the accumulators, assigns every opaque pixel to its
// nearest centroid, tests convergence by comparing the current centroids
// against the integer means of the fresh sums, and then recomputes the
// centroids from those sums. Hitting the cap without convergence is not an
// error; the clusters keep their last recomputed centroids and the weights
// from the final assignment.
func refine(px []Pixel, clusters []cluster, parallelAssign bool) {
	if len(clusters) == 0 {
		return
	}

	for iter := 0; iter < maxIterations; iter++ {
		for i := range clusters {
			clusters[i].sum = [3]uint64{}
			clusters[i].weight = 0
		}

		if parallelAssign {
			assignParallel(px, clusters)
		} else {
			assign(px, clusters, 0, len(px))
		}

		done := true
		for i := range clusters {
			if !clusters[i].converged() {
				done = false
			}
		}

		for i := range clusters {
			clusters[i].recompute()
		}

		if done {
			break
		}
	}
}
