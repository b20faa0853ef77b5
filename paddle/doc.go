// Package paddle converts per-bin spectral energy into physical
// wavemaker stroke amplitudes using linear wave theory, and realizes
// the resulting component set as a paddle drive time series.
//
// The dispersion relation is the explicit Eckart/Fenton approximation,
// so no implicit solve is required. Transfer functions are provided for
// flap- and piston-type wavemakers.
package paddle
