// Package credstore persists the signed-in access/refresh credential pair in an app-scoped
// bbolt file. Values are sealed with secretbox before they touch the disk.
package credstore

//go:generate go run go.uber.org/mock/mockgen -source=./credstore.go -destination=./mocks/credstore_mock.go -package=mocks

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"seatpos/config"
	"seatpos/infras/otel"
	"seatpos/shared/timezone"
	"time"

	"github.com/rs/zerolog/log"
	bolt "go.etcd.io/bbolt"
	"golang.org/x/crypto/nacl/secretbox"
)

const (
	otelScopeName = "credstore"

	keySize   = 32
	nonceSize = 24
	fileMode  = 0o600
)

var (
	bucketCredentials = []byte("credentials")
	bucketMeta        = []byte("meta")
	keyPair           = []byte("pair")
	keySeal           = []byte("seal")
)

var (
	ErrNotFound    = errors.New("no stored credentials")
	ErrInvalidSeal = errors.New("stored credentials cannot be opened")
)

type Credentials struct {
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
	SavedAt      time.Time `json:"savedAt"`
}

type Store interface {
	Load(ctx context.Context) (Credentials, error)
	Save(ctx context.Context, credentials Credentials) error
	Remove(ctx context.Context) error
	Close() error
}

type boltStore struct {
	db   *bolt.DB
	key  [keySize]byte
	otel otel.Otel
}

// Open opens (or creates) the credential file at path.
func Open(path, secret string, ot otel.Otel) (Store, error) {
	db, err := bolt.Open(path, fileMode, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open credential store: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{bucketCredentials, bucketMeta} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("create bucket %s: %w", name, err)
			}
		}

		return nil
	})
	if err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("failed to prepare credential store: %w", err)
	}

	store := &boltStore{db: db, otel: ot}

	if err = store.loadKey(secret); err != nil {
		_ = db.Close()

		return nil, err
	}

	return store, nil
}

// New is the provider used by the injector.
func New(cfg *config.Config, ot otel.Otel) Store {
	store, err := Open(cfg.Credential.Path, cfg.Credential.Secret, ot)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Credential.Path).Msg("Failed to open credential store")
	}

	log.Info().Str("path", cfg.Credential.Path).Msg("Credential store opened")

	return store
}

// loadKey decodes the configured secret. Without one, a random key is generated once and
// kept in the file itself, which only protects against casual reads.
func (s *boltStore) loadKey(secret string) error {
	if secret != "" {
		raw, err := hex.DecodeString(secret)
		if err != nil || len(raw) != keySize {
			return fmt.Errorf("credential secret must be %d hex encoded bytes", keySize)
		}

		copy(s.key[:], raw)

		return nil
	}

	log.Warn().Msg("No credential secret configured, using a key kept beside the credentials")

	return s.db.Update(func(tx *bolt.Tx) error { //nolint:wrapcheck
		meta := tx.Bucket(bucketMeta)

		if stored := meta.Get(keySeal); len(stored) == keySize {
			copy(s.key[:], stored)

			return nil
		}

		if _, err := io.ReadFull(rand.Reader, s.key[:]); err != nil {
			return fmt.Errorf("generate credential key: %w", err)
		}

		return meta.Put(keySeal, s.key[:])
	})
}

func (s *boltStore) Load(ctx context.Context) (res Credentials, err error) {
	_, scope := s.otel.NewScope(ctx, otelScopeName, otelScopeName+".Load")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var sealed []byte

	err = s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucketCredentials).Get(keyPair); v != nil {
			sealed = append([]byte(nil), v...)
		}

		return nil
	})
	if err != nil {
		return res, fmt.Errorf("failed to read credentials: %w", err)
	}

	if sealed == nil {
		return res, ErrNotFound
	}

	if len(sealed) < nonceSize+secretbox.Overhead {
		return res, ErrInvalidSeal
	}

	var nonce [nonceSize]byte
	copy(nonce[:], sealed[:nonceSize])

	plain, ok := secretbox.Open(nil, sealed[nonceSize:], &nonce, &s.key)
	if !ok {
		return res, ErrInvalidSeal
	}

	if err = json.Unmarshal(plain, &res); err != nil {
		return res, fmt.Errorf("%w: %w", ErrInvalidSeal, err)
	}

	return res, nil
}

func (s *boltStore) Save(ctx context.Context, credentials Credentials) (err error) {
	_, scope := s.otel.NewScope(ctx, otelScopeName, otelScopeName+".Save")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if credentials.SavedAt.IsZero() {
		credentials.SavedAt = timezone.Now()
	}

	plain, err := json.Marshal(credentials)
	if err != nil {
		return fmt.Errorf("failed to encode credentials: %w", err)
	}

	var nonce [nonceSize]byte
	if _, err = io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return fmt.Errorf("failed to generate nonce: %w", err)
	}

	sealed := secretbox.Seal(nonce[:], plain, &nonce, &s.key)

	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketCredentials).Put(keyPair, sealed)
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to persist credentials")

		return fmt.Errorf("failed to persist credentials: %w", err)
	}

	return nil
}

func (s *boltStore) Remove(ctx context.Context) (err error) {
	_, scope := s.otel.NewScope(ctx, otelScopeName, otelScopeName+".Remove")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketCredentials).Delete(keyPair)
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to remove credentials")

		return fmt.Errorf("failed to remove credentials: %w", err)
	}

	return nil
}

func (s *boltStore) Close() error {
	return s.db.Close() //nolint:wrapcheck
}
