// Package store reads and writes insightagent documents on disk.
//
// Documents are payloads, envelopes, request descriptors and insights,
// encoded as indented JSON or YAML. Writes go to a temp file in the target
// directory which then replaces the target, so a reader never sees a
// partial file. The agent keeps nothing between calls; this package only
// serves explicit CLI exports and inputs.
package store
