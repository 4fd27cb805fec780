// Package db manages the backing store for the back office. The service
// runs against either MongoDB or Postgres, chosen by DB_TYPE; both
// connections satisfy the same lifecycle interface.
package db

import "context"

type DBType string

const (
	Postgres DBType = "postgres"
	Mongo    DBType = "mongo"
)

// DB is the connection lifecycle shared by both backends.
type DB interface {
	Connect() error
	Disconnect() error
	GetContext() context.Context
}
