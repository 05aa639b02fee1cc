// Package scaffold sets up TSTyche in an existing Node.js project. A
// Scaffolder runs a fixed, linear sequence of steps: check for package.json,
// install the dev dependency, write the default config if absent, offer the
// example test files and finally print a few commands to try. Every step runs
// at most once and nothing is retried.
package scaffold
