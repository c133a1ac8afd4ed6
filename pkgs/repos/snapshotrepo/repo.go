package snapshotrepo

import (
	"context"
	"database/sql"

	"github.com/edamsoft/xconnect/pkgs/model"
	"github.com/jmoiron/sqlx"
)

type Repo struct{}

func New() *Repo {
	return &Repo{}
}

////////////////////////////////////////////////////////////////////////////////

func (r *Repo) Create(ctx context.Context, db *sqlx.DB, snap *model.RelationSnapshot) error {
	stmt := `INSERT INTO relation_snapshots(user_id, kind, member_ids, member_count)
			VALUES(:user_id, :kind, :member_ids, :member_count)`
	res, err := db.NamedExecContext(ctx, stmt, snap)
	if err != nil {
		return err
	}

	lastId, err := res.LastInsertId()
	if err != nil {
		// postgres does not support LastInsertId, the row is still written
		return nil
	}
	snap.Id = int32(lastId)
	return nil
}

// GetLatest returns the most recent snapshot of the given user and kind,
// nil when none has been taken yet
func (r *Repo) GetLatest(ctx context.Context, db *sqlx.DB, userId, kind string) (*model.RelationSnapshot, error) {
	stmt := `SELECT * FROM relation_snapshots WHERE user_id=? AND kind=? ORDER BY id DESC LIMIT 1`
	result := &model.RelationSnapshot{}
	err := db.GetContext(ctx, result, db.Rebind(stmt), userId, kind)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ListByUser returns every snapshot taken for a user, oldest first
func (r *Repo) ListByUser(ctx context.Context, db *sqlx.DB, userId string) ([]*model.RelationSnapshot, error) {
	stmt := `SELECT * FROM relation_snapshots WHERE user_id=? ORDER BY id ASC`
	result := []*model.RelationSnapshot{}
	if err := db.SelectContext(ctx, &result, db.Rebind(stmt), userId); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *Repo) DeleteByUser(ctx context.Context, db *sqlx.DB, userId string) error {
	stmt := `DELETE FROM relation_snapshots WHERE user_id=?`
	_, err := db.ExecContext(ctx, db.Rebind(stmt), userId)
	return err
}
