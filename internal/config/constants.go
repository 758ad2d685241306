package config

const (
	// DefaultDatabasePath is where the sqlite catalog lives unless
	// DATABASE_PATH is set. It sits next to the binary so a first run
	// needs no pre-created directories.
	DefaultDatabasePath = "./library.db"

	// DefaultCoversAPIURL is the volume search endpoint used for cover
	// image enrichment.
	DefaultCoversAPIURL = "https://www.googleapis.com/books/v1"
)
