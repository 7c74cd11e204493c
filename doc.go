// Package hdrscan scans a corpus of C/C++ header files and produces a
// structured symbol catalog of interfaces, classes, structs, unions,
// enums, functions, preprocessor macros, and simple constants, with
// source provenance for each.
//
// It is approximate and single-pass by design: it does not expand
// macros, resolve #include directives, evaluate conditional
// compilation, instantiate templates, fully resolve types, evaluate
// constant expressions, or reformat source. A Builder accumulates
// parsed headers into a Root catalog; parsing is best-effort and
// non-fatal diagnostics are attached to the entity being built as
// Issue values rather than aborting the scan.
package hdrscan
