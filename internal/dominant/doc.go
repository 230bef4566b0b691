// Package dominant extracts representative colors from images by k-means
// clustering in RGB space.
//
// The package implements the full pipeline behind the dominant-color tools:
// downscaling oversized images, seeding clusters from random pixel samples,
// refining centroids with Lloyd's algorithm, and ranking the converged
// clusters by the number of pixels they attracted. Three entry points expose
// the results at different levels of detail:
//   - Find: the single best color, filtered through a brightness window
//   - FindN: up to N colors in descending dominance order
//   - FindWeight: the same palette with each color's pixel share attached
//
// # Algorithm
//
// Images whose longer side exceeds 256 pixels are first reduced to that
// limit, preserving aspect ratio. Initial centroids are seeded by sampling
// random pixels; each seed must be an exact RGB value not already used by
// another cluster. Lloyd iteration then alternates between assigning every
// pixel to its nearest centroid (Euclidean distance in RGB) and recomputing
// each centroid as the integer mean of its assigned pixels, for up to 50
// iterations or until no centroid changes.
//
// Fully transparent pixels (alpha 0) are invisible to the algorithm: they
// are never sampled as seeds and never assigned to a cluster.
//
// # Degenerate Inputs
//
// Degenerate images are not errors. A single-color image produces exactly
// one cluster no matter how many were requested. A fully transparent or
// zero-sized image produces no clusters at all: FindN and FindWeight return
// empty slices, and Find returns a fully transparent black.
//
// # Determinism
//
// Random sampling uses a generator scoped to one call. By default a fresh
// time-seeded source is used; pass WithSeed or WithRand to pin the sequence
// and make results reproducible. Two calls on the same image with the same
// seed produce identical output.
//
// # Thread Safety
//
// The package keeps no global state. Entry points only read the input image
// and may be called concurrently on the same image as long as the image
// itself is not mutated. The WithParallel option spreads the assignment
// step across CPU cores without changing the result.
package dominant
