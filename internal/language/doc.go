// Package language defines the closed set of languages supported by the
// phonemization pipeline and the registry that maps each language to an
// engine voice name. The registry is built once from the engine's voice
// catalog, validated atomically, and read-only afterwards.
package language
