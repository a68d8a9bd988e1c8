package config

type Storage struct {
	// Dir is the directory holding the JSON collection files.
	Dir string `env:"STORAGE_DIR" envDefault:"data"`

	// Seed creates missing collection files as empty arrays at
	// startup so a fresh checkout can serve traffic immediately.
	Seed bool `env:"STORAGE_SEED" envDefault:"true"`
}
