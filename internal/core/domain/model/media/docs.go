// Package media contains the MediaAsset aggregate: a single uploaded file
// tracked through its processing pipeline, together with the renditions
// (variants) the pipeline produces.
//
// An asset is identified externally by its storage provider and the
// provider's own asset id; the SHA-256 checksum, when known, deduplicates
// uploads within a studio. Variants are owned by the asset and carry a
// name unique within it.
package media
