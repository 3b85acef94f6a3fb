// Package importer is the data-import adapter for the circulation ledger.
// It owns everything to do with files and JSON: reading the import payload,
// decoding it, and handing the resulting pre-validated records to the
// Library. Per-record validation and duplicate handling stay in the core;
// this package only reports I/O and decoding failures.
package importer
