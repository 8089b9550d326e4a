// Package retrieval reconstructs a time-domain waveform from a histogram of
// photon-coincidence timing differences using only its magnitude spectrum.
//
// The histogram counts are transformed once into a target magnitude
// spectrum. Each seed then starts from random phases and alternates between
// enforcing that magnitude in the frequency domain and a centered support
// window (optionally non-negativity) in the time domain. The seed whose
// final waveform has the lowest spectral residual is returned.
//
// All randomness comes from the rand.Source handed to NewReconstructor, so a
// fixed source gives bit-identical results.
package retrieval
