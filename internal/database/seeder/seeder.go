// Package seeder prepares a database for local development and first
// deploys: schema, the canonical skill vocabulary, and demo data.
package seeder

import (
	"context"

	"talentmatch/internal/database"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}
