// Package cache persists phonemization results in a local sqlite database
// so repeated conversions of the same text skip the engine entirely.
package cache
