// Package hcl provides the HCL implementation of config.Decoder. A source is
// a flat body of attributes (`n0 = 0`) evaluated without variables or
// functions; blocks are rejected because the configuration has no nested
// structure.
package hcl
