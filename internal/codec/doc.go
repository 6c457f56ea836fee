// Package codec holds the format decoders that turn a raw source into a
// config.RawFieldMap, and the dispatch table that selects one by
// config.Format. Decoders check syntax only; completeness and numeric types
// are the validator's job.
package codec
