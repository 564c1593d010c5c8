package bolt

import (
	"context"
	"encoding/json"

	"github.com/DRSN-tech/catalog-backend/internal/domain"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/jimlawless/whereami"
	"go.etcd.io/bbolt"
)

// AdminRepo хранит администраторов в отдельном бакете с ключом по email.
type AdminRepo struct {
	store *Store
}

func NewAdminRepo(store *Store) *AdminRepo {
	return &AdminRepo{store: store}
}

// Create не перезаписывает существующую запись с тем же email.
func (a *AdminRepo) Create(_ context.Context, admin *domain.Admin) error {
	data, err := json.Marshal(adminRecord{
		ID:           admin.ID,
		Email:        admin.Email,
		PasswordHash: admin.PasswordHash,
		CreatedAt:    admin.CreatedAt,
	})
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := a.store.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(adminsBucket)
		if b.Get([]byte(admin.Email)) != nil {
			return nil
		}
		return b.Put([]byte(admin.Email), data)
	}); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	return nil
}

func (a *AdminRepo) GetByEmail(_ context.Context, email string) (*domain.Admin, error) {
	var rec *adminRecord
	if err := a.store.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(adminsBucket).Get([]byte(email))
		if data == nil {
			return nil
		}
		rec = &adminRecord{}
		return json.Unmarshal(data, rec)
	}); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	if rec == nil {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrAdminNotFound)
	}

	return &domain.Admin{
		ID:           rec.ID,
		Email:        rec.Email,
		PasswordHash: rec.PasswordHash,
		CreatedAt:    rec.CreatedAt,
	}, nil
}
