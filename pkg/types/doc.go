// Package types defines the persisted entity types, standard errors, and
// value rules for the simbolos storage system. Entities are pure data;
// all persistence lives in internal/sqlite.
package types
