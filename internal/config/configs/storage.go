package configs

import (
	"fmt"
	"strings"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

// Storage selects the backend the selection engine reads from. The memory
// driver keeps everything in process and is meant for local runs together
// with SeedDemo.
type Storage struct {
	Driver string `env:"DRIVER" envDefault:"postgres"`
	// SeedDemo loads a generated demo dataset on startup.
	SeedDemo bool `env:"SEED_DEMO" envDefault:"false"`
	// Seed makes the demo dataset reproducible.
	Seed uint64 `env:"SEED" envDefault:"1"`
}

// Validate normalises Driver and rejects unknown values.
func (c *Storage) Validate() error {
	c.Driver = strings.ToLower(strings.TrimSpace(c.Driver))
	switch c.Driver {
	case StorageDriverPostgres, StorageDriverMemory:
		return nil
	default:
		return fmt.Errorf("unknown storage driver %q", c.Driver)
	}
}
