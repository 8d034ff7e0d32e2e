// Package pennywise provides the data engine of a personal grocery price
// tracker. It is designed to be local-first and portable, ensuring users have
// full control over their price data.
//
// The core functionalities include:
//   - Price Ledger: the authoritative current state of the dataset, recording
//     full and discounted prices per product (identified by barcode) and per
//     retail brand (identified case-insensitively), and enforcing the
//     price-history invariants on every mutation.
//   - Reconciliation: a deterministic, lossless and idempotent merge of an
//     independently evolved snapshot into the current dataset, reporting what
//     changed.
//   - Snapshot Codec: encoding and decoding the whole dataset to and from a
//     single human-readable JSON document used both for persistence and for
//     import/export exchange.
//
// The engine is synchronous and single-writer: every operation runs to
// completion on one in-memory dataset, and persistence is a whole-file
// write-through after each successful mutation. Exposing it over a network
// service would require adding concurrency control (a single-writer queue, or
// optimistic versioning on the snapshot's version field) on top.
//
// This package serves as the foundational logic for the `pw` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package pennywise
