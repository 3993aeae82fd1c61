package gen

import (
	"bytes"
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/proptab/proptab/log"
	"github.com/proptab/proptab/table"
	"github.com/proptab/proptab/ucd"
)

// Config carries everything one run needs: where the listing lives, which
// properties to extract, and where the generated file goes.
type Config struct {
	ListingURL     string
	UnicodeVersion string
	OutputPath     string
	PackageName    string
	Targets        []table.Target
}

const defaultUnicodeVersion = "13.0.0"

func DefaultConfig() *Config {
	return &Config{
		ListingURL:     fmt.Sprintf("https://www.unicode.org/Public/%v/ucd/DerivedCoreProperties.txt", defaultUnicodeVersion),
		UnicodeVersion: defaultUnicodeVersion,
		OutputPath:     "codepoint.go",
		PackageName:    "codepoint",
		Targets:        table.DefaultTargets(),
	}
}

type Option func(c *genConfig) error

func EnableLogging(w io.Writer, prefix string) Option {
	return func(c *genConfig) error {
		logger, err := log.NewLogger(w, prefix)
		if err != nil {
			return err
		}
		c.logger = logger
		return nil
	}
}

func UseFetcher(f Fetcher) Option {
	return func(c *genConfig) error {
		if f == nil {
			return fmt.Errorf("f is nil; UseFetcher() needs a fetcher")
		}
		c.fetcher = f
		return nil
	}
}

func UseFormatter(f Formatter) Option {
	return func(c *genConfig) error {
		if f == nil {
			return fmt.Errorf("f is nil; UseFormatter() needs a formatter")
		}
		c.formatter = f
		return nil
	}
}

type genConfig struct {
	logger    log.Logger
	fetcher   Fetcher
	formatter Formatter
}

// Generate runs the whole pipeline: fetch the listing, parse its records,
// build one table per target, and write the formatted declarations to the
// output path. Every stage either fully succeeds or aborts the run; nothing
// is retried.
func Generate(cfg *Config, opts ...Option) error {
	err := table.ValidateTargets(cfg.Targets)
	if err != nil {
		return fmt.Errorf("invalid target properties:\n%w", err)
	}

	config := &genConfig{
		logger:    log.NewNopLogger(),
		fetcher:   NewHTTPFetcher(),
		formatter: NewGoFormatter(),
	}
	for _, opt := range opts {
		err := opt(config)
		if err != nil {
			return err
		}
	}

	config.logger.Log("Fetch %v", cfg.ListingURL)
	src, err := fetchListing(config.fetcher, cfg.ListingURL)
	if err != nil {
		return fmt.Errorf("failed to fetch the property listing: %w", err)
	}

	records, err := ucd.ParseListing(bytes.NewReader(src))
	if err != nil {
		return fmt.Errorf("failed to parse the property listing: %w", err)
	}

	tables := table.Build(records, cfg.Targets)
	for _, t := range tables {
		config.logger.Log("%v: %v code points", t.Name, len(t.CodePoints))
	}

	b, err := genDocument(cfg, tables)
	if err != nil {
		return fmt.Errorf("failed to generate the tables: %w", err)
	}

	err = writeDocument(cfg.OutputPath, b)
	if err != nil {
		return fmt.Errorf("failed to write %v: %w", cfg.OutputPath, err)
	}
	config.logger.Log("Write %v", cfg.OutputPath)

	err = config.formatter.Format(cfg.OutputPath)
	if err != nil {
		return fmt.Errorf("failed to format %v: %w", cfg.OutputPath, err)
	}
	config.logger.Log("Format %v", cfg.OutputPath)

	return nil
}

// fetchListing buffers the complete body before any parsing starts. The
// parser never consumes a partially fetched listing.
func fetchListing(f Fetcher, url string) ([]byte, error) {
	body, err := f.Fetch(url)
	if err != nil {
		return nil, err
	}
	defer body.Close()
	return ioutil.ReadAll(body)
}

func writeDocument(path string, b []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.Write(b)
	return err
}
