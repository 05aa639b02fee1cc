package configfile

// The default config is consumed by tstyche itself, so these bytes are part
// of the compatibility surface and must not drift.
const defaultConfig = `// For documentation, see: https://tstyche.org/reference/config-file
{
  "$schema": "https://tstyche.org/schemas/config.json",
  "testFileMatch": ["**/*.tst.*"]
}
`

// Contents returns the default config file bytes.
func Contents() []byte {
	return []byte(defaultConfig)
}
