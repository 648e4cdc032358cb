// Package config defines the bundle manifest consumed by the bundler and
// provides helpers to load, validate and save it in YAML format.
//
// The Manifest type describes the packaging inputs: entry script, embedded
// data pairs, forced imports and output metadata. The expected artifact path
// is a pure function of the manifest, see (*Manifest).ArtifactPath.
package config
