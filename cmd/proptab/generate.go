package main

import (
	"fmt"
	"os"

	"github.com/proptab/proptab/gen"
	"github.com/spf13/cobra"
)

func Execute() error {
	err := generateCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}

	return nil
}

var generateFlags = struct {
	url     *string
	version *string
	local   *string
	output  *string
	pkgName *string
	quiet   *bool
}{}

var generateCmd = &cobra.Command{
	Use:           "proptab",
	Short:         "Generate code-point tables from a UCD property listing",
	Long:          `proptab fetches a property listing of the Unicode Character Database and generates Go source code declaring one code-point table per target property. A consumer embeds the tables to classify characters without parsing anything at run time.`,
	Example:       `  proptab -o codepoint.go -p codepoint`,
	Args:          cobra.NoArgs,
	RunE:          runGenerate,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	cfg := gen.DefaultConfig()
	generateFlags.url = generateCmd.Flags().String("url", cfg.ListingURL, "URL of the property listing")
	generateFlags.version = generateCmd.Flags().String("unicode-version", cfg.UnicodeVersion, "Unicode version the listing belongs to")
	generateFlags.local = generateCmd.Flags().String("local", "", "path of a local copy of the listing; for debugging only")
	generateFlags.output = generateCmd.Flags().StringP("output", "o", cfg.OutputPath, "output file path")
	generateFlags.pkgName = generateCmd.Flags().StringP("package", "p", cfg.PackageName, "package name of the generated file")
	generateFlags.quiet = generateCmd.Flags().BoolP("quiet", "q", false, "suppress progress output")
}

func runGenerate(cmd *cobra.Command, args []string) (retErr error) {
	cfg := gen.DefaultConfig()
	cfg.ListingURL = *generateFlags.url
	cfg.UnicodeVersion = *generateFlags.version
	cfg.OutputPath = *generateFlags.output
	cfg.PackageName = *generateFlags.pkgName

	var opts []gen.Option
	if !*generateFlags.quiet {
		opts = append(opts, gen.EnableLogging(os.Stderr, "proptab: "))
	}
	if *generateFlags.local != "" {
		opts = append(opts, gen.UseFetcher(gen.NewFileFetcher(*generateFlags.local)))
	}

	err := gen.Generate(cfg, opts...)
	if err != nil {
		return fmt.Errorf("Failed to generate the code-point tables: %w", err)
	}

	return nil
}
