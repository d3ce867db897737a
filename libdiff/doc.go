// Package libdiff compares documents.
//
// Lines and Unified compare encoded documents line by line. Diff compares
// two trees structurally and reports the changed paths: records and
// elements are matched by child name, lists by aligning their items.
package libdiff
