// Package processor contains the core orchestration logic for the
// phonemize tool. It wires the configured provider, cache and language
// selection together and drives single, batch and stdin processing.
package processor
