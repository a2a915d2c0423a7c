// Package batch reads phonemization input files for batch processing.
package batch
