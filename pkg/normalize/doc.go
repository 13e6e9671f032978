// Package normalize provides deterministic text canonicalization that
// defeats common content-obfuscation techniques before pattern matching.
//
// # Overview
//
// Normalize applies a fixed sequence of folding steps to arbitrary UTF-8
// input:
//
//  1. Unicode decomposition (NFD) with combining-mark removal
//  2. Invisible / zero-width character stripping
//  3. Spacing and punctuation-insertion collapse ("k.i.l.l" -> "kill")
//  4. Leetspeak decoding, longest tokens first ("b0mb" -> "bomb")
//  5. Homoglyph folding (Cyrillic/Greek/fullwidth confusables)
//  6. A second spacing collapse over letters minted by steps 4-5
//  7. Lowercasing
//  8. Punctuation run collapse and boundary trimming
//
// The step order is load-bearing: unicode folding must run before
// invisible-character removal so marks introduced by decomposition are
// caught, and leetspeak decoding must run after de-spacing so split
// tokens ("b 0 m b") do not survive. The second collapse keeps the
// output a fixed point when decoding turns symbols into single-letter
// words ("@ b c" -> "a b c" -> "abc").
//
// # Properties
//
// Normalize is total (never fails, empty input yields "") and idempotent:
// Normalize(Normalize(s)) == Normalize(s) for all s.
//
// # Diagnostics
//
// DetectObfuscation reports which obfuscation techniques appear to be
// present in the raw input. It is a telemetry side channel only and has
// no effect on the normalized output.
package normalize
