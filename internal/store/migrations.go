package store

// migration holds a single schema migration with its target version and SQL.
type migration struct {
	version int
	sql     string
}

// dialect bundles the driver-specific schema pieces.
type dialect struct {
	name              string
	versionTableQuery string
	migrations        []migration
}

// Each migration's version must be sequential starting from 1.
var sqliteDialect = dialect{
	name:              "sqlite",
	versionTableQuery: "SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	migrations: []migration{
		{
			version: 1,
			sql: `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS project (
	project_id      INTEGER PRIMARY KEY AUTOINCREMENT,
	project_name    TEXT NOT NULL,
	estimated_hours TEXT,
	actual_hours    TEXT,
	difficulty      INTEGER CHECK(difficulty BETWEEN 1 AND 5),
	notes           TEXT
);

CREATE INDEX IF NOT EXISTS idx_project_name ON project(project_name);

INSERT INTO schema_version (version) VALUES (1);
`,
		},
	},
}

var postgresDialect = dialect{
	name:              "postgres",
	versionTableQuery: "SELECT COUNT(*) FROM information_schema.tables WHERE table_schema = current_schema() AND table_name = 'schema_version'",
	migrations: []migration{
		{
			version: 1,
			sql: `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS project (
	project_id      SERIAL PRIMARY KEY,
	project_name    VARCHAR(128) NOT NULL,
	estimated_hours DECIMAL(7, 2),
	actual_hours    DECIMAL(7, 2),
	difficulty      INTEGER CHECK(difficulty BETWEEN 1 AND 5),
	notes           TEXT
);

CREATE INDEX IF NOT EXISTS idx_project_name ON project(project_name);

INSERT INTO schema_version (version) VALUES (1);
`,
		},
	},
}
