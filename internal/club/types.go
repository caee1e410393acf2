package club

import (
	"database/sql"
	"errors"
	"sync"
)

var (
	ErrMemberNotFound = errors.New("member not found")
	ErrGameNotFound   = errors.New("game not found")
)

// dateLayout is how calendar dates are stored.
const dateLayout = "2006-01-02"

// store handles all database operations for the club.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}
