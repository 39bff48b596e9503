// Package backend defines the contract between the gridstore facades and the
// physical storage layout behind them.
//
// A Backend owns its slots exclusively. It maps an index to a slot, creates
// or merges values through a value capability, enumerates occupied slots and
// accepts a narrow, enumerated set of configuration Commands at run time.
//
// The dense array implementation lives in the array subpackage.
package backend
