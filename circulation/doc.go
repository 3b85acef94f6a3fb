// Package circulation implements a small library-circulation ledger:
// a catalog of book titles with copy counts, registered patrons, and a loan
// log tracking who borrowed what, when, and whether a late fee applies.
//
// The Library type is the orchestrator. It is the only owner of all Books,
// Patrons, and Loans; entities refer to each other by key (ISBN, patron ID),
// never by shared live reference, and every invariant across the registries
// is enforced here: copy counts never go negative, a book with no available
// copy cannot originate a loan, and a loan is closed exactly once.
//
// File loading and report rendering live in their own packages (importer,
// report); this package only deals with pre-validated records and in-memory
// state.
package circulation
