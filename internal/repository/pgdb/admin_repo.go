package pgdb

import (
	"context"
	"errors"

	"github.com/DRSN-tech/catalog-backend/internal/domain"
	"github.com/DRSN-tech/catalog-backend/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/DRSN-tech/catalog-backend/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jimlawless/whereami"
)

// AdminRepo хранит учетные записи администраторов в PostgreSQL.
type AdminRepo struct {
	db   tr.Querier
	conv converter.AdminConverter
}

func NewAdminRepo(db tr.Querier, conv converter.AdminConverter) *AdminRepo {
	return &AdminRepo{db: db, conv: conv}
}

// Create идемпотентно создает администратора, игнорируя повтор email.
func (a *AdminRepo) Create(ctx context.Context, admin *domain.Admin) error {
	m := a.conv.ToModel(admin)

	query := `
		INSERT INTO admins (id, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO NOTHING;
	`

	if _, err := tr.Executor(ctx, a.db).Exec(ctx, query, m.ID, m.Email, m.PasswordHash, m.CreatedAt); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	return nil
}

func (a *AdminRepo) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	query := `SELECT id, email, password_hash, created_at FROM admins WHERE email = $1;`

	var m converter.AdminModel
	if err := tr.Executor(ctx, a.db).QueryRow(ctx, query, email).
		Scan(&m.ID, &m.Email, &m.PasswordHash, &m.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrAdminNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return a.conv.ToEntity(&m), nil
}
