package repository

import "errors"

// ErrNotFound is returned when a lookup or delete matches no document.
var ErrNotFound = errors.New("not found")

// noIDProjection hides Mongo's own _id; records are addressed by their "id" field.
var noIDProjection = map[string]int{"_id": 0}
