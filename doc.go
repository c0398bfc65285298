// Package tasa keeps a book of daily exchange rates and converts amounts with
// them.
//
// Rates are stored newest first in a single, human readable json file. The
// first record of the file is the active rate, the one used by default to
// convert amounts. Every operation on a Store reads the whole file and writes
// it back entirely, which is fine for the few hundred records a person
// collects by hand.
//
// This package serves as the foundation of the `tasa` command-line tool.
package tasa
