package migrations

import "embed"

// FS holds the SQL migrations of the activity log, read by golang-migrate
// through the iofs source driver.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version the console expects.
const Version = 1
