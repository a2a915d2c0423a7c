// Package phoneme normalizes raw engine phoneme output into the canonical
// phoneme alphabet expected by the downstream TTS model. Normalization is a
// fixed, ordered sequence of string rewrites; it is pure, total and
// deterministic, so malformed engine output passes through unchanged rather
// than failing.
package phoneme
