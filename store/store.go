// Package store connects to the data store and persists exercise logs and the
// cached exercise reference data
package store

import (
	"encoding/binary"
	"errors"
	"io/fs"
	"time"

	bolt "go.etcd.io/bbolt"
)

const (
	storageBucket = "storage"
	cacheBucket   = "cache"

	// LogSlot is the storage slot holding the serialized log map.
	LogSlot = "rehab-tracker-v3"

	fetchedSuffix = ":fetched"
)

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
}

// Slot is a single named value in persistent storage.
type Slot interface {
	// Load returns the stored value, or nil if the slot is empty
	Load() ([]byte, error)
	// Save replaces the stored value
	Save(value []byte) error
}

type boltSlot struct {
	db   *bolt.DB
	name []byte
}

func (s *boltSlot) Load() ([]byte, error) {
	var value []byte

	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(storageBucket)).Get(s.name)
		if v != nil {
			// bolt values are only valid for the life of the transaction
			value = append([]byte(nil), v...)
		}

		return nil
	})

	return value, err
}

func (s *boltSlot) Save(value []byte) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(storageBucket)).Put(s.name, value)
	})
}

// Slot returns the named storage slot.
func (c *Client) Slot(name string) Slot {
	return &boltSlot{db: c.DB, name: []byte(name)}
}

// ReadCache returns a cached payload and the time it was written. A missing
// entry yields a nil payload and no error.
func (c *Client) ReadCache(key string) ([]byte, time.Time, error) {
	var (
		data    []byte
		fetched time.Time
	)

	err := c.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(cacheBucket))

		v := b.Get([]byte(key))
		if v == nil {
			return nil
		}

		data = append([]byte(nil), v...)

		ts := b.Get([]byte(key + fetchedSuffix))
		if len(ts) == 8 {
			fetched = time.UnixMilli(int64(binary.BigEndian.Uint64(ts)))
		}

		return nil
	})

	return data, fetched, err
}

// WriteCache stores a payload along with the time it was fetched.
func (c *Client) WriteCache(key string, data []byte, fetched time.Time) error {
	ts := make([]byte, 8)
	binary.BigEndian.PutUint64(ts, uint64(fetched.UnixMilli()))

	return c.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(cacheBucket))

		if err := b.Put([]byte(key), data); err != nil {
			return err
		}

		return b.Put([]byte(key+fetchedSuffix), ts)
	})
}

// open creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrTimeout) {
			return nil, errRehabRunning
		}

		return nil, errOpenDB.Wrap(err)
	}

	return db, nil
}

// NewClient returns a wrapper to a BoltDB connection.
func NewClient(dbPath string) (*Client, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	// Create the necessary buckets for storing data if they do not exist already
	err = db.Update(func(tx *bolt.Tx) error {
		_, err = tx.CreateBucketIfNotExists([]byte(storageBucket))
		if err != nil {
			return err
		}

		_, err = tx.CreateBucketIfNotExists([]byte(cacheBucket))

		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Client{
		db,
	}, nil
}
