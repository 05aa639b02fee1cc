// Package project resolves the paths the scaffolder touches inside a Node.js
// project and performs its two kinds of writes: an idempotent single-file
// write that never overwrites, and a recursive copy of a bundled tree.
package project
