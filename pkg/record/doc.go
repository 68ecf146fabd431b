// Package record provides type-safe Go definitions for the P-MATRIX runtime
// state record and its wire format.
//
// # Overview
//
// A runtime state record is an immutable, versioned snapshot of an autonomous
// agent's operational posture at one instant: four bounded evaluation inputs
// (the Functions block), two derived scores, and a discrete operating
// mode/risk-level pair. Records are either constructed once by the emitter
// package or decoded from an external byte stream; they are never updated in
// place.
//
// # Closed Enumerations
//
// Mode and RiskLevel are logically closed five-element enumerations. At the
// wire boundary they travel as strings, but Decode converts them immediately
// into the typed constants (or rejects the payload), so invalid values never
// circulate in memory. The canonical ordered tables Modes and RiskLevels are
// process-wide immutable constants.
//
// # Strict Decoding
//
// Decode is the hard strictness boundary for externally supplied bytes: it
// rejects unknown fields, missing fields, wrong field types, and enumeration
// values outside the closed tables. A payload that decodes successfully is
// structurally well-formed; semantic conformance is the job of the invariant
// package.
package record
