package database

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	core "CollectKeeper/pkg/models"
)

const templateCacheSize = 128

// Store is the persistence layer for collections, templates, items and
// their values. All multi-row mutations run inside one transaction on
// the single database handle.
type Store struct {
	db        *gorm.DB
	templates *lru.Cache[uint, core.Template]
	log       zerolog.Logger
}

func NewStore(db *gorm.DB, log zerolog.Logger) (*Store, error) {
	templates, err := lru.New[uint, core.Template](templateCacheSize)
	if err != nil {
		return nil, err
	}

	return &Store{
		db:        db,
		templates: templates,
		log:       log,
	}, nil
}
