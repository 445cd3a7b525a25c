package config

import "github.com/namsral/flag"

type Config struct {
	StructurePath string
	WordsPath     string
	OutputPath    string
	Debug         bool
}

func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSet("gridfill", flag.ContinueOnError)
	fs.StringVar(&c.StructurePath, "structure", "", "path to the grid structure file")
	fs.StringVar(&c.WordsPath, "words", "", "path to the word list, one word per line")
	fs.StringVar(&c.OutputPath, "output", "", "optional path to write the solved grid as a PNG")
	fs.BoolVar(&c.Debug, "debug", false, "log solver internals")
	err := fs.Parse(args)
	return err
}
