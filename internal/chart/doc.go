// Package chart implements the request-normalization core of the server:
// validating loosely-typed caller arguments, shaping them into the structured
// configuration the remote QuickChart-style renderer expects, and encoding
// that configuration into a rendering URL.
//
// # Pipeline
//
// A tool call flows through three stages:
//
//  1. Validate — presence and shape checks on the raw Request. Fails fast
//     with an InvalidParams error; performs no transformation.
//  2. Build — dispatches on chart type. Chart-family types produce a
//     normalized ChartConfig (defaulted labels, merged dataset overrides,
//     derived title block, per-type shaping). The graphviz and wordcloud
//     types skip dataset shaping entirely and produce a tagged placeholder;
//     their fields are extracted later by the encoder, since neither has a
//     dataset or axis concept.
//  3. Encode — turns the built value into the final URL. Chart-family
//     configs are serialized to compact JSON and percent-encoded as the
//     single c= query parameter. Graphviz requests carry the DOT text plus
//     layout and format parameters. Word clouds carry the text plus a
//     fixed-order set of optional parameters, passing through only what the
//     caller set.
//
// Encoding is deterministic: identical input always yields a byte-identical
// URL.
//
// # Chart types
//
// Supported types: bar, line, pie, doughnut, radar, polarArea, scatter,
// bubble, radialGauge, speedometer, graphviz, wordcloud. All but the last
// two share the dataset/label/options shape ("chart family").
//
// Type-specific contracts:
//   - radialGauge and speedometer require a single scalar reading: the first
//     dataset's first data value must be present and non-zero.
//   - scatter and bubble require point data: every dataset's first data
//     element must be an [x, y] or [x, y, r] array.
//
// All three stages are pure functions of their input plus the immutable
// endpoint configuration captured at startup; the package holds no mutable
// state and is safe for concurrent use.
package chart
