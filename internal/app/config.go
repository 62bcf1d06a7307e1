package app

import "flag"

// Config represents the command-line parameters for the application.
type Config struct {
	Token     string
	StatePath string
	Import    string
	Export    string
	DelayMS   int
	Soup      bool
	Seed      int64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		StatePath: "gameoflife.json",
		Export:    "gameoflife-export.json",
		DelayMS:   100,
		Seed:      42,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Token, "load", c.Token, "share token to load as the seed")
	fs.StringVar(&c.StatePath, "state", c.StatePath, "persisted seed file")
	fs.StringVar(&c.Import, "import", c.Import, "board JSON file to import at startup")
	fs.StringVar(&c.Export, "export", c.Export, "filename for board exports")
	fs.IntVar(&c.DelayMS, "delay", c.DelayMS, "milliseconds between generations while running")
	fs.BoolVar(&c.Soup, "soup", c.Soup, "start with a random soup instead of the saved seed")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random soup")
}
