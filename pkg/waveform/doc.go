// Package waveform generates synthetic time series for demonstrations and tests.
//
// Supported shapes are a random walk, a sine wave, a square wave and a sawtooth.
// Only the random walk draws random numbers: the source is injected with the
// Rand or Seed options, so generated series can be reproduced.
package waveform
