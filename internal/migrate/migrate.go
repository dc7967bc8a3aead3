package migrate

import (
	"github.com/martinvojtus/mv-backend/internal/post"
	"github.com/martinvojtus/mv-backend/internal/shared/db"
)

func AutoMigrateAll(store *db.Store) error {
	return store.Base.AutoMigrate(
		&post.Post{},
	)
}
