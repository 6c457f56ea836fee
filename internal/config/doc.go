// Package config defines the format-agnostic configuration model: the
// validated six-field Record consumed by the evaluator, the untyped
// RawFieldMap produced by decoders, the Format tags used for dispatch and
// rendering, and the error taxonomy shared by every loading stage.
//
// Concrete decoders live in separate packages (codec, hcl) and only depend
// on the interfaces declared here.
package config
