package main

import (
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/datachomps/stabilizer/internal/labels"
)

var labelsCmd = &cobra.Command{
	Use:   "labels [lang]",
	Short: "Print the label set for a language",
	Long: `Print every display string of a language as YAML. Useful for checking
translations.

Examples:
  stabilizer labels
  stabilizer labels es`,
	Args: cobra.MaximumNArgs(1),
	Run:  runLabels,
}

func runLabels(_ *cobra.Command, args []string) {
	name := string(labels.Default)
	if len(args) == 1 {
		name = args[0]
	} else if flagLang != "" {
		name = flagLang
	}

	locale, err := labels.Parse(name)
	if err != nil {
		fatal("%v", err)
	}
	set, err := labels.Load(locale)
	if err != nil {
		fatal("%v", err)
	}

	enc := yaml.NewEncoder(os.Stdout)
	defer enc.Close()
	if err := enc.Encode(set); err != nil {
		fatal("%v", err)
	}
}
