// Package resample provides rational sample-rate conversion for recorded
// signals using a polyphase Kaiser-windowed FIR with anti-aliasing defaults.
//
// The conversion is offline: the whole signal is available, so the filter
// group delay is compensated and the output stays time-aligned with the
// input. Slow trends (e.g. a heart-rate baseline) survive the conversion.
//
// Quality modes:
//   - QualityFast: lower CPU, lower attenuation
//   - QualityBalanced: default mode
//   - QualityBest: higher attenuation and flatter passband
//
// Common workflows:
//   - Resample(input, inRate, outRate, opts...)
//   - Rational(input, up, down, opts...)
package resample
