// Package games defines the domain types shared across the pipeline:
// raw metadata rows read from the launcher database, per-release game
// entities produced by denormalization, and the merged logical games
// that make up the final catalog.
package games
