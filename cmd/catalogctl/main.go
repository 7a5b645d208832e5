package main

import (
	"fmt"
	"os"

	"gamelink-finder/configs"

	"github.com/spf13/cobra"
)

var version = "dev"

// globalFlags locate the same configuration the API server reads
type globalFlags struct {
	configDir string
	env       string
}

func main() {
	flags := &globalFlags{}
	root := &cobra.Command{
		Use:     "catalogctl",
		Short:   "Operator tools for the game link catalog",
		Version: version,
	}
	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "./configs", "directory holding config.yaml")
	root.PersistentFlags().StringVar(&flags.env, "env", "", "the environment to use")

	root.AddCommand(
		newSeedCmd(flags),
		newSearchCmd(flags),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (f *globalFlags) load() *configs.Config {
	configs.InitViper(f.configDir, f.env)
	return configs.GetViper()
}
