package main

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"

	"clienthub/internal/config"
	"clienthub/internal/database"
	"clienthub/internal/database/migration"
	"clienthub/internal/model"
	"clienthub/internal/repository/postgres"
)

// Seeds the database with a small working data set: one client with a
// project, an accepted opportunity and an invoice document, plus the member
// behind them. Intended for an empty development database.
func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg := config.Load()

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := migration.EnsureMigrated(ctx, db, logger); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}

	if err := seed(ctx, db); err != nil {
		logger.Fatal("failed to seed database", zap.Error(err))
	}
	logger.Info("seed complete")
}

func seed(ctx context.Context, db *sql.DB) error {
	now := time.Now().UTC()

	profiles := postgres.NewProfilePostgres(db)
	profile, err := profiles.Create(ctx, &model.Profile{
		ID:          uuid.New().String(),
		PrimaryRole: "Product Engineer",
		Bio:         "Full-stack engineer focused on client delivery.",
		CreatedAt:   now,
	})
	if err != nil {
		return err
	}

	members := postgres.NewMemberPostgres(db)
	member, err := members.Create(ctx, &model.Member{
		ID:                uuid.New().String(),
		AccountID:         uuid.New().String(),
		ProfileID:         profile.ID,
		Email:             "ada@clienthub.dev",
		EmailVerification: true,
		FirstName:         "Ada",
		LastName:          "Lovelace",
		Role:              "admin",
		Status:            "active",
		ContractSigned:    true,
		Timezone:          "America/Toronto",
		CreatedAt:         now,
	})
	if err != nil {
		return err
	}

	clients := postgres.NewClientPostgres(db)
	client, err := clients.Create(ctx, &model.Client{
		ID:        uuid.New().String(),
		Name:      "Acme Corp",
		Website:   "https://acme.example.com",
		MemberIDs: []string{member.ID},
		CreatedAt: now,
	})
	if err != nil {
		return err
	}

	projects := postgres.NewProjectPostgres(db)
	project, err := projects.Create(ctx, &model.Project{
		ID:        uuid.New().String(),
		ClientID:  client.ID,
		Title:     "Marketing site rebuild",
		Status:    model.ProjectStatusInProgress,
		CreatedAt: now,
	})
	if err != nil {
		return err
	}

	opportunities := postgres.NewOpportunityPostgres(db)
	if _, err := opportunities.Create(ctx, &model.Opportunity{
		ID:        uuid.New().String(),
		ClientID:  client.ID,
		ProjectID: project.ID,
		MemberID:  member.ID,
		Status:    model.OpportunityStatusAccepted,
		Role:      "Tech Lead",
		CreatedAt: now,
	}); err != nil {
		return err
	}

	milestones := postgres.NewMilestonePostgres(db)
	milestone, err := milestones.Create(ctx, &model.Milestone{
		ID:        uuid.New().String(),
		ProjectID: project.ID,
		Title:     "Design handoff",
		Status:    "in progress",
		CreatedAt: now,
	})
	if err != nil {
		return err
	}

	updates := postgres.NewMilestoneUpdatePostgres(db)
	if _, err := updates.Create(ctx, &model.MilestoneUpdate{
		ID:          uuid.New().String(),
		MilestoneID: milestone.ID,
		Title:       "Wireframes approved",
		Status:      "done",
		CreatedAt:   now,
	}); err != nil {
		return err
	}

	documents := postgres.NewDocumentPostgres(db)
	if _, err := documents.Create(ctx, &model.Document{
		ID:        uuid.New().String(),
		ClientID:  client.ID,
		Title:     "Kickoff invoice",
		Status:    "sent",
		EukapayID: "INV-0001",
		Invoice:   true,
		CreatedAt: now,
	}); err != nil {
		return err
	}

	stakeholders := postgres.NewStakeholderPostgres(db)
	if _, err := stakeholders.Create(ctx, &model.Stakeholder{
		ID:        uuid.New().String(),
		ClientID:  client.ID,
		Email:     "cto@acme.example.com",
		FirstName: "Grace",
		LastName:  "Hopper",
		Status:    "active",
		CreatedAt: now,
	}); err != nil {
		return err
	}

	return nil
}
