// Package uniuri generates random strings good for use in URIs to identify
// unique objects. It is used for session identifiers and generated media
// file names.
//
// It uses crypto/rand and rejects bytes outside the unbiased range, so the
// resulting strings are uniformly distributed over their character set.
package uniuri
