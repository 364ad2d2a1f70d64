package cache

// Store is the local lookup cache for fetched PokeAPI data. It maps
// species/form names to National Dex numbers and species names to their
// boxable variant lists. Entries never expire; a refetch overwrites.
//
// A Store is explicitly constructed with [Open] and must be flushed (or
// closed) to persist updates. Single-process use only, no concurrent-writer
// protection.
type Store interface {
	DexNumber(name string) (int, bool)
	PutDexNumber(name string, dex int)
	Variants(name string) ([]string, bool)
	PutVariants(name string, variants []string)
	Len() (species, variants int)
	Flush() error
	Close() error
}

// Open initializes the cache store backed by files under dir.
// The backend is selected at build time: JSON key/value files by default,
// a single BoltDB file with the "bolt" build tag.
func Open(dir string) (Store, error) {
	return openStore(dir)
}

// Clear removes the cache's backing files under dir. A missing file is not
// an error.
func Clear(dir string) error {
	return clearStore(dir)
}
