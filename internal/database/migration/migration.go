package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_table_clients",
		SQL: `CREATE TABLE IF NOT EXISTS clients (
  id           TEXT        PRIMARY KEY,
  name         TEXT        NOT NULL,
  description  TEXT        NOT NULL DEFAULT '',
  website      TEXT        NOT NULL DEFAULT '',
  x            TEXT        NOT NULL DEFAULT '',
  linkedin     TEXT        NOT NULL DEFAULT '',
  logo_id      TEXT        NOT NULL,
  logo_url     TEXT        NOT NULL,
  member_ids   JSONB       NOT NULL DEFAULT '[]',
  project_ids  JSONB       NOT NULL DEFAULT '[]',
  document_ids JSONB       NOT NULL DEFAULT '[]',
  created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_members",
		SQL: `CREATE TABLE IF NOT EXISTS members (
  id                 TEXT        PRIMARY KEY,
  account_id         TEXT        NOT NULL DEFAULT '',
  profile_id         TEXT        NOT NULL DEFAULT '',
  email              TEXT        NOT NULL DEFAULT '',
  email_verification BOOLEAN     NOT NULL DEFAULT false,
  first_name         TEXT        NOT NULL DEFAULT '',
  last_name          TEXT        NOT NULL DEFAULT '',
  role               TEXT        NOT NULL DEFAULT '',
  status             TEXT        NOT NULL DEFAULT '',
  contract_signed    BOOLEAN     NOT NULL DEFAULT false,
  imported_answers   BOOLEAN     NOT NULL DEFAULT false,
  timezone           TEXT        NOT NULL DEFAULT '',
  avatar_id          TEXT        NOT NULL DEFAULT '',
  avatar_url         TEXT        NOT NULL DEFAULT '',
  created_at         TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_members_account_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_members_account_id ON members (account_id);`,
	},
	{
		Name: "create_table_profiles",
		SQL: `CREATE TABLE IF NOT EXISTS profiles (
  id             TEXT        PRIMARY KEY,
  member_id      TEXT        NOT NULL DEFAULT '',
  primary_role   TEXT        NOT NULL DEFAULT '',
  bio            TEXT        NOT NULL DEFAULT '',
  portfolio_link TEXT        NOT NULL DEFAULT '',
  created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_projects",
		SQL: `CREATE TABLE IF NOT EXISTS projects (
  id           TEXT        PRIMARY KEY,
  client_id    TEXT        NOT NULL,
  title        TEXT        NOT NULL,
  spark_rep    TEXT        NOT NULL DEFAULT '',
  brief_link   TEXT        NOT NULL DEFAULT '',
  roadmap_link TEXT        NOT NULL DEFAULT '',
  status       TEXT        NOT NULL DEFAULT 'in progress',
  created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_projects_client_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_projects_client_id ON projects (client_id);`,
	},
	{
		Name: "create_table_opportunities",
		SQL: `CREATE TABLE IF NOT EXISTS opportunities (
  id                 TEXT        PRIMARY KEY,
  client_id          TEXT        NOT NULL,
  project_id         TEXT        NOT NULL,
  member_id          TEXT        NOT NULL DEFAULT '',
  status             TEXT        NOT NULL DEFAULT '',
  role               TEXT        NOT NULL DEFAULT '',
  start_date         TIMESTAMPTZ,
  background         TEXT        NOT NULL DEFAULT '',
  description        TEXT        NOT NULL DEFAULT '',
  duration           TEXT        NOT NULL DEFAULT '',
  type               TEXT        NOT NULL DEFAULT '',
  estimated_earnings TEXT        NOT NULL DEFAULT '',
  responsibilities   TEXT        NOT NULL DEFAULT '',
  created_at         TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_opportunities_client_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_opportunities_client_id ON opportunities (client_id);`,
	},
	{
		Name: "create_index_opportunities_project_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_opportunities_project_id ON opportunities (project_id);`,
	},
	{
		Name: "create_table_milestones",
		SQL: `CREATE TABLE IF NOT EXISTS milestones (
  id         TEXT        PRIMARY KEY,
  project_id TEXT        NOT NULL,
  title      TEXT        NOT NULL,
  status     TEXT        NOT NULL DEFAULT '',
  created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_milestones_project_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_milestones_project_id ON milestones (project_id);`,
	},
	{
		Name: "create_table_milestone_updates",
		SQL: `CREATE TABLE IF NOT EXISTS milestone_updates (
  id           TEXT        PRIMARY KEY,
  milestone_id TEXT        NOT NULL,
  title        TEXT        NOT NULL DEFAULT '',
  status       TEXT        NOT NULL DEFAULT '',
  created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_milestone_updates_milestone_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_milestone_updates_milestone_id ON milestone_updates (milestone_id);`,
	},
	{
		Name: "create_table_feedback",
		SQL: `CREATE TABLE IF NOT EXISTS feedback (
  id         TEXT        PRIMARY KEY,
  update_id  TEXT        NOT NULL,
  text       TEXT        NOT NULL DEFAULT '',
  created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_feedback_update_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_feedback_update_id ON feedback (update_id);`,
	},
	{
		Name: "create_table_documents",
		SQL: `CREATE TABLE IF NOT EXISTS documents (
  id         TEXT        PRIMARY KEY,
  client_id  TEXT        NOT NULL,
  title      TEXT        NOT NULL,
  link       TEXT        NOT NULL DEFAULT '',
  status     TEXT        NOT NULL DEFAULT '',
  stripe_id  TEXT        NOT NULL DEFAULT '',
  eukapay_id TEXT        NOT NULL DEFAULT '',
  invoice    BOOLEAN     NOT NULL DEFAULT false,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_documents_client_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_documents_client_id ON documents (client_id);`,
	},
	{
		Name: "create_table_requests",
		SQL: `CREATE TABLE IF NOT EXISTS requests (
  id         TEXT        PRIMARY KEY,
  member_id  TEXT        NOT NULL DEFAULT '',
  subject    TEXT        NOT NULL DEFAULT '',
  status     TEXT        NOT NULL DEFAULT '',
  created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_feedback_requests",
		SQL: `CREATE TABLE IF NOT EXISTS feedback_requests (
  id         TEXT        PRIMARY KEY,
  member_id  TEXT        NOT NULL DEFAULT '',
  subject    TEXT        NOT NULL DEFAULT '',
  status     TEXT        NOT NULL DEFAULT '',
  created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_stakeholders",
		SQL: `CREATE TABLE IF NOT EXISTS stakeholders (
  id         TEXT        PRIMARY KEY,
  client_id  TEXT        NOT NULL DEFAULT '',
  email      TEXT        NOT NULL DEFAULT '',
  first_name TEXT        NOT NULL DEFAULT '',
  last_name  TEXT        NOT NULL DEFAULT '',
  status     TEXT        NOT NULL DEFAULT '',
  created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_stakeholders_client_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_stakeholders_client_id ON stakeholders (client_id);`,
	},
}

// EnsureMigrated checks if the 'clients' table exists and runs migrations if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, logger *zap.Logger) error {
	start := time.Now()

	var exists bool
	query := "SELECT to_regclass('public.clients') IS NOT NULL"
	if err := db.QueryRowContext(ctx, query).Scan(&exists); err != nil {
		logger.Error("migration sentinel check failed", zap.Error(err))
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		logger.Info("schema already exists, skipping migration",
			zap.Duration("elapsed", time.Since(start)))
		return nil
	}

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			logger.Error("migration step failed",
				zap.String("step", step.Name),
				zap.Error(err))
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}
		logger.Info("migration step applied",
			zap.String("step", step.Name),
			zap.Duration("elapsed", time.Since(stepStart)))
	}

	logger.Info("migration complete", zap.Duration("elapsed", time.Since(start)))
	return nil
}
