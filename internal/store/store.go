// Package store is the data-access layer. A single Store is constructed at
// process start and passed explicitly into each handler; there is no
// module-level database state.
package store

import "gorm.io/gorm"

type Store struct {
	db *gorm.DB
}

func New(gdb *gorm.DB) *Store {
	return &Store{db: gdb}
}
