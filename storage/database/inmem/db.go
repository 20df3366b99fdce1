package inmem

import (
	"sync"

	"github.com/dineshpandey3618-web/Rank1/core/catalog"
	"github.com/dineshpandey3618-web/Rank1/core/user"
)

// DB is an in-memory stand-in for the real store, used in tests and local
// dev. Insertion order is preserved in the slices so listings behave like
// serial-keyed SQL tables.
type (
	DB struct {
		user      *userTable
		catalog   *catalogTable
		appConfig *appConfigTable
	}

	userTable struct {
		t     map[string]*user.User // keyed by ID
		mutex sync.RWMutex
	}

	catalogTable struct {
		subjects  []catalog.Subject
		chapters  []catalog.Chapter
		materials []catalog.Material
		tests     []catalog.Test
		pkCount   int
		mutex     sync.RWMutex
	}

	appConfigTable struct {
		t     map[string]string
		mutex sync.RWMutex
	}
)

func Open() *DB {
	return &DB{
		user:      &userTable{t: make(map[string]*user.User)},
		catalog:   &catalogTable{},
		appConfig: &appConfigTable{t: make(map[string]string)},
	}
}
