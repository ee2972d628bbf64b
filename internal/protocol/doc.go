// Package protocol decodes one captured infrared transmission.
//
// Ownership boundary:
// - token parsing of the raw timing line
// - layout gates (length, preamble, epilogue)
// - region decoding and checksum verification
// - decoder error taxonomy and machine codes
//
// The package is stateless and never logs; callers own reporting.
package protocol
