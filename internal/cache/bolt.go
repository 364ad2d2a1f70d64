//go:build bolt

package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"go.etcd.io/bbolt"
)

const (
	// BoltFile is the single BoltDB cache file
	BoltFile = "dexr.bolt"

	boltBucketSpecies  = "species"  // key: name -> dex number (decimal string)
	boltBucketVariants = "variants" // key: name -> variant name list JSON
)

type boltStore struct {
	db *bbolt.DB
}

func openStore(dir string) (Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	db, err := bbolt.Open(filepath.Join(dir, BoltFile), 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}

	if err := db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(boltBucketSpecies)); err != nil {
			return err
		}

		if _, err := tx.CreateBucketIfNotExists([]byte(boltBucketVariants)); err != nil {
			return err
		}

		return nil
	}); err != nil {
		_ = db.Close()

		return nil, err
	}

	return &boltStore{db: db}, nil
}

func clearStore(dir string) error {
	if err := os.Remove(filepath.Join(dir, BoltFile)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove cache file %s: %w", BoltFile, err)
	}

	return nil
}

func (b *boltStore) DexNumber(name string) (int, bool) {
	var (
		dex int
		ok  bool
	)

	_ = b.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket([]byte(boltBucketSpecies)).Get([]byte(name))
		if v == nil {
			return nil
		}

		n, err := strconv.Atoi(string(v))
		if err != nil {
			return nil
		}

		dex, ok = n, true

		return nil
	})

	return dex, ok
}

func (b *boltStore) PutDexNumber(name string, dex int) {
	_ = b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(boltBucketSpecies)).Put([]byte(name), []byte(strconv.Itoa(dex)))
	})
}

func (b *boltStore) Variants(name string) ([]string, bool) {
	var (
		variants []string
		ok       bool
	)

	_ = b.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket([]byte(boltBucketVariants)).Get([]byte(name))
		if v == nil {
			return nil
		}

		if err := json.Unmarshal(v, &variants); err != nil {
			return nil
		}

		ok = true

		return nil
	})

	return variants, ok
}

func (b *boltStore) PutVariants(name string, variants []string) {
	if variants == nil {
		variants = []string{}
	}

	data, err := json.Marshal(variants)
	if err != nil {
		return
	}

	_ = b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(boltBucketVariants)).Put([]byte(name), data)
	})
}

func (b *boltStore) Len() (int, int) {
	var species, variants int

	_ = b.db.View(func(tx *bbolt.Tx) error {
		species = tx.Bucket([]byte(boltBucketSpecies)).Stats().KeyN
		variants = tx.Bucket([]byte(boltBucketVariants)).Stats().KeyN

		return nil
	})

	return species, variants
}

// Flush is a no-op; BoltDB persists on every update transaction.
func (b *boltStore) Flush() error {
	return nil
}

func (b *boltStore) Close() error {
	return b.db.Close()
}
