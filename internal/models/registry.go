package models

// ModelRegistry lists every model covered by --auto-migrate in development.
// Production schema changes go through the versioned SQL migrations.
var ModelRegistry = []interface{}{
	&Lead{},
}
