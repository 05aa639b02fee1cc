// Package configfile owns the default tstyche.config.json written into a
// project and checks config files against an embedded subset of the TSTyche
// config schema.
package configfile
