// Package pipeline implements the catalog build: denormalizing sparse
// launcher metadata into per-release entities, filtering out unowned
// and hidden releases, collapsing duplicates across platforms,
// cross-checking subscription catalogs, and attaching tracked
// playtime. Each stage is a pure function over its inputs; Pipeline
// wires the stages together for a full run.
package pipeline
