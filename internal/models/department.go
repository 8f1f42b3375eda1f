package models

import "time"

// Department is an organizational unit referenced by name from faculty records.
// Existence is checked at write time only; faculty rows are not revisited when a
// department is later removed.
type Department struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Code      string    `db:"code" json:"code"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
