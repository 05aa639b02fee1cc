// Package config loads the scaffolder's settings from environment variables
// (CREATE_TSTYCHE_*), an optional ~/.create-tstyche/config.yaml and the command
// line flags, in increasing order of precedence.
package config
