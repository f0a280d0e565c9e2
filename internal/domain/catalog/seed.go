package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
)

//go:embed seed.toml
var seedTOML []byte

type seedFile struct {
	Beats []Beat `toml:"beats"`
}

// DefaultCatalog returns the catalog snapshot embedded in the binary.
func DefaultCatalog() *Catalog {
	c, err := parseSeed(seedTOML)
	if err != nil {
		// The embedded seed ships with the binary; failing to parse it is a
		// build defect.
		panic(fmt.Sprintf("catalog: embedded seed invalid: %v", err))
	}
	return c
}

// LoadFile reads a catalog snapshot from a TOML seed file on disk.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read seed file: %w", err)
	}

	c, err := parseSeed(data)
	if err != nil {
		return nil, err
	}

	log.Info().Str("path", path).Int("beats", c.Len()).Msg("Catalog seed loaded")
	return c, nil
}

func parseSeed(data []byte) (*Catalog, error) {
	var f seedFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("catalog: parse seed: %w", err)
	}

	seen := make(map[string]bool, len(f.Beats))
	for _, b := range f.Beats {
		if b.ID == "" {
			return nil, fmt.Errorf("catalog: seed beat %q has no id", b.Title)
		}
		if seen[b.ID] {
			return nil, fmt.Errorf("catalog: duplicate beat id %q in seed", b.ID)
		}
		seen[b.ID] = true
	}

	return NewCatalog(f.Beats), nil
}
