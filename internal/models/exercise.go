// ABOUTME: Exercise model for the flat exercise catalog.
// ABOUTME: Seeded from the bundled reference list, user-extendable afterward.
package models

// Exercise is a catalog entry. IDs are stable and referenced by routine and
// workout link rows.
type Exercise struct {
	ID   int64  `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}
