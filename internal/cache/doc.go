// Package cache provides the local lookup cache for fetched PokeAPI data.
//
// The package defines the [Store] interface which abstracts cache
// operations, allowing different storage backends to be used
// interchangeably. Currently supported backends are JSON key/value files
// (default) and BoltDB (with the "bolt" build tag).
//
// # Store Interface
//
// The [Store] interface defines methods for:
//   - National Dex number lookups (DexNumber, PutDexNumber)
//   - Variant form list lookups (Variants, PutVariants)
//   - Lifecycle and maintenance (Len, Flush, Close)
//
// # Lifecycle
//
// Open a store explicitly, flush it after the run, and close it when done:
//
//	store, err := cache.Open(dir)
//	if err != nil { ... }
//	defer store.Close()
//
// The default backend loads both cache files fully into memory at Open and
// rewrites them at Flush. Entries never expire; a refetch overwrites. The
// store offers no concurrent-writer protection and is meant for the
// single-process, run-once pipeline.
package cache
