// Package cli defines the create-tstyche command. There are no subcommands:
// the root command parses --next, loads settings and hands off to
// scaffold.Scaffolder, which owns the whole flow.
package cli
