package types

// Config holds the ambient settings for the logsnip CLI. The source file
// and the marker pair are fixed in the command layer and are deliberately
// not configurable.
type Config struct {
	// Verbose enables scan diagnostics on stderr (matched line positions).
	Verbose bool `json:"verbose" yaml:"verbose"`
}
