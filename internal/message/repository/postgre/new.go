package postgre

import (
	"database/sql"

	"insight-srv/internal/message/repository"
	"insight-srv/pkg/encrypter"
	"insight-srv/pkg/log"
)

type implRepository struct {
	db  *sql.DB
	enc encrypter.Encrypter
	l   log.Logger
}

// New returns the Postgres message store. Message text is encrypted with enc
// before it is written and decrypted after it is read.
func New(db *sql.DB, enc encrypter.Encrypter, l log.Logger) repository.PostgresRepository {
	return &implRepository{
		db:  db,
		enc: enc,
		l:   l,
	}
}
