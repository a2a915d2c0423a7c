// Package phonemizer exposes text-to-phoneme conversion behind a Provider
// interface. The primary provider drives a local espeak-ng engine session
// and normalizes its output into the canonical phoneme alphabet; an
// OpenAI-backed provider serves as a network fallback. Wrappers add
// fallback chaining and sqlite-backed caching.
package phonemizer
