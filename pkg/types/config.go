package types

// CleanConfig holds settings for the cleaning stage (codepoint
// normalization and RTL run reversal).
type CleanConfig struct {
	// CharMapFile optionally overrides the built-in character maps with a
	// YAML file containing `cyrillic:` and `arabic:` mappings.
	CharMapFile string `json:"char_map_file,omitempty" yaml:"char_map_file,omitempty"`
}

// ParseConfig holds settings for the parsing stage.
type ParseConfig struct {
	// TablesFile optionally overrides the built-in abbreviation tables with
	// a YAML file containing `etymology:` and `register:` mappings.
	TablesFile string `json:"tables_file,omitempty" yaml:"tables_file,omitempty"`

	// LookaheadWindow is the number of characters inspected after a
	// headword match to validate an entry boundary (default 100).
	LookaheadWindow int `json:"lookahead_window" yaml:"lookahead_window"`
}

// StoreConfig holds settings for the dictionary store.
type StoreConfig struct {
	// DataDir is the directory holding the SQLite database (farhang.db).
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// MaxResults is the default maximum number of query results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}
