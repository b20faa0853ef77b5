// Package bins partitions the spectral domain [0, wmax) into contiguous
// frequency bins for piecewise integration of a wave spectrum.
//
// Two sampling schemes are available. The peak-weighted scheme draws
// interior boundaries from a normal distribution centered on the spectral
// peak, so bins are narrow where the energy concentrates and wide in the
// tails. The uniform-jittered scheme spaces boundaries evenly with a
// bounded random perturbation, trading peak resolution for a predictable
// draw count.
//
// Randomness always flows through an explicit source, so partitions are
// reproducible given a fixed seed.
package bins
