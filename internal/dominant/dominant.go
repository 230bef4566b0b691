package dominant

import (
	"image"
	"math/rand"
	"sort"
	"time"
)

// DefaultClusters is the cluster count used when a caller does not request
// a specific palette size.
const DefaultClusters = 4

// Brightness window for single-color selection. A candidate's channel sum
// r+g+b must fall strictly inside the open interval to be picked, which
// screens out near-black and near-white clusters.
const (
	minBrightness = 100
	maxBrightness = 665
)

// config collects the per-call knobs set through Options.
type config struct {
	rng      *rand.Rand
	parallel bool
}

// Option adjusts a single clustering call.
type Option func(*config)

// WithSeed pins the random source used for cluster seeding, making the
// result reproducible. Calls with the same image and seed produce identical
// output.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies the random source directly. The generator is used only
// for the duration of the call; callers must not share one generator across
// concurrent calls.
func WithRand(rng *rand.Rand) Option {
	return func(c *config) {
		c.rng = rng
	}
}

// WithParallel spreads the pixel-assignment step across CPU cores. The
// result is identical to the serial pass for a fixed seed.
func WithParallel() Option {
	return func(c *config) {
		c.parallel = true
	}
}

func newConfig(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return cfg
}

// Find returns the single color that best represents the image.
//
// The image is clustered into DefaultClusters clusters and the palette is
// scanned in descending weight order for the first color whose channel sum
// lies strictly inside the brightness window (100, 665). If every cluster
// is too dark or too bright, the highest-weight cluster wins regardless.
// An image that produces no clusters at all (fully transparent or
// zero-sized) returns a fully transparent black.
func Find(img image.Image, opts ...Option) RGBA {
	return Select(FindWeight(img, DefaultClusters, opts...))
}

// FindN returns up to n dominant colors in descending dominance order.
//
// The result may be shorter than n when the image does not contain enough
// distinct colors; a single-color image always yields exactly one entry.
// All returned colors are fully opaque.
func FindN(img image.Image, n int, opts ...Option) []RGBA {
	cfg := newConfig(opts)
	clusters, _ := findClusters(img, n, cfg)

	colors := make([]RGBA, len(clusters))
	for i := range clusters {
		c := clusters[i].centroid
		colors[i] = RGBA{R: c[0], G: c[1], B: c[2], A: 255}
	}
	return colors
}

// FindWeight returns up to n dominant colors with their normalized weights,
// in descending weight order.
//
// Each weight is the cluster's pixel count divided by the total pixel count
// of the downscaled image. The denominator includes transparent pixels even
// though they are never assigned, so the weights sum to at most 1 and to
// exactly 1 for fully opaque images. n <= 0 selects DefaultClusters.
func FindWeight(img image.Image, n int, opts ...Option) []Color {
	cfg := newConfig(opts)
	clusters, total := findClusters(img, n, cfg)

	colors := make([]Color, len(clusters))
	for i := range clusters {
		c := clusters[i].centroid
		colors[i] = Color{
			R:      c[0],
			G:      c[1],
			B:      c[2],
			A:      255,
			Weight: float64(clusters[i].weight) / float64(total),
		}
	}
	return colors
}

// findClusters runs the full pipeline: downscale, flatten to pixels, seed,
// refine, and sort by weight. It returns the converged clusters in
// descending weight order together with the total pixel count of the
// downscaled image, which is the denominator for weight normalization.
func findClusters(img image.Image, n int, cfg config) ([]cluster, int) {
	if n <= 0 {
		n = DefaultClusters
	}

	px := Pixels(Downscale(img))
	clusters := seedClusters(px, n, cfg.rng)
	refine(px, clusters, cfg.parallel)

	sort.Slice(clusters, func(i, j int) bool {
		return clusters[i].weight > clusters[j].weight
	})

	return clusters, len(px)
}

// Select applies the brightness-window heuristic to a palette sorted in
// descending weight order, as produced by FindWeight. It returns the first
// color inside the window, falling back to the heaviest color when none
// qualifies and to a transparent black when the palette is empty.
//
// Find is equivalent to Select over a FindWeight palette of DefaultClusters
// colors; callers that already hold such a palette can apply Select directly
// instead of clustering twice.
func Select(palette []Color) RGBA {
	if len(palette) == 0 {
		return RGBA{}
	}

	for _, c := range palette {
		sum := int(c.R) + int(c.G) + int(c.B)
		if sum > minBrightness && sum < maxBrightness {
			return RGBA{R: c.R, G: c.G, B: c.B, A: 255}
		}
	}

	best := palette[0]
	return RGBA{R: best.R, G: best.G, B: best.B, A: 255}
}
