// Package engine wraps the espeak-ng text-to-phoneme engine behind an
// explicit session object. A session owns the engine handle for its whole
// lifetime: it is created once, serializes all engine calls, and is
// released with Close. The raw phoneme output it produces is engine
// notation; normalization lives in the phoneme package.
package engine
