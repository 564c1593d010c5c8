package bolt

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/DRSN-tech/catalog-backend/internal/cfg"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/DRSN-tech/catalog-backend/pkg/logger"
	"github.com/jimlawless/whereami"
	"go.etcd.io/bbolt"
)

// Ключи хранилища
var (
	catalogBucket = []byte("catalog")
	adminsBucket  = []byte("admins")
	snapshotKey   = []byte("bsb_catalog_data")
)

// Store держит весь каталог в памяти и сохраняет его снимком в bbolt.
// Каждое изменение сначала записывается на диск и только потом
// подменяет состояние в памяти.
type Store struct {
	db     *bbolt.DB
	mu     sync.RWMutex
	state  snapshot
	logger logger.Logger
}

// Open открывает файл базы, создает бакеты и загружает снимок каталога.
func Open(cfg *cfg.BoltCfg, logger logger.Logger) (*Store, error) {
	if dir := filepath.Dir(cfg.Path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
	}

	db, err := bbolt.Open(cfg.Path, 0o600, &bbolt.Options{Timeout: cfg.Timeout})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	s := &Store{db: db, logger: logger}
	if err := s.load(); err != nil {
		_ = db.Close()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	logger.Infof("bolt store opened at %s: %d categories, %d products",
		cfg.Path, len(s.state.Categories), len(s.state.Products))
	return s, nil
}

func (s *Store) load() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(catalogBucket)
		if err != nil {
			return err
		}
		if _, err := tx.CreateBucketIfNotExists(adminsBucket); err != nil {
			return err
		}

		data := b.Get(snapshotKey)
		if data == nil {
			s.state = snapshot{Categories: []categoryRecord{}, Products: []productRecord{}}
			return nil
		}

		var snap snapshot
		if err := json.Unmarshal(data, &snap); err != nil {
			return err
		}
		s.state = snap
		return nil
	})
}

// Close закрывает файл базы.
func (s *Store) Close(context.Context) error {
	return s.db.Close()
}

// view выполняет чтение под разделяемой блокировкой.
func (s *Store) view(fn func(snap *snapshot)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(&s.state)
}

// update применяет fn к копии снимка, записывает результат в bbolt
// и только после успешной записи делает его текущим.
func (s *Store) update(fn func(snap *snapshot) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.clone()
	if err := fn(&next); err != nil {
		return err
	}

	data, err := json.Marshal(next)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(catalogBucket).Put(snapshotKey, data)
	}); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	s.state = next
	return nil
}

// TxManager сериализует составные операции над снимком.
// Отката нет: каждое изменение снимка атомарно само по себе.
type TxManager struct {
	mu sync.Mutex
}

func NewTxManager() *TxManager {
	return &TxManager{}
}

type txKey struct{}

func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(context.WithValue(ctx, txKey{}, struct{}{}))
}
