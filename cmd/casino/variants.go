package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/casino/internal/config"
)

var flagYAML bool

var variantsCmd = &cobra.Command{
	Use:   "variants",
	Short: "List the scoring variants",
	Long: `Shows the scoring variants from the active catalog. The default variant
is marked with an asterisk.

The catalog is read from --config, ~/.casino/configs/variants.yaml or
./configs/variants.yaml, falling back to the built-in variants.

Examples:
  casino variants
  casino variants --yaml > ~/.casino/configs/variants.yaml`,
	Args: cobra.NoArgs,
	Run:  runVariants,
}

func init() {
	variantsCmd.Flags().BoolVar(&flagYAML, "yaml", false, "Print the catalog as YAML")
}

func runVariants(cmd *cobra.Command, args []string) {
	cat, err := loadCatalog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagYAML {
		data, err := config.MarshalCatalog(cat)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding catalog: %v\n", err)
			os.Exit(1)
		}
		os.Stdout.Write(data)
		return
	}

	fmt.Println(stdoutRenderer().Variants(cat))
	fmt.Println()
	fmt.Println("Run 'casino sim --variant <name>' to play under a variant.")
}
