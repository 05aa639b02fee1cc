// Package pkgmanager classifies the package manager that launched the process
// (npm, yarn or pnpm) from the user-agent string it exports, and derives the
// manager-specific command lines the scaffolder prints or runs.
package pkgmanager
