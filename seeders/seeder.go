package seeders

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"gearguard/internal/entities"
	"gearguard/pkg/utils"
)

func adminUser(passwordHash string, now time.Time) *entities.User {
	u := &entities.User{
		ID:           utils.NewID("usr"),
		Name:         "Admin",
		Email:        "admin@gearguard.local",
		PasswordHash: passwordHash,
		Role:         entities.RoleManager,
	}
	u.CreatedAt = now
	u.UpdatedAt = now
	return u
}

// SeedCore truncates and refills the reference tables: teams, technicians
// and their membership links.
func SeedCore(db *pgxpool.Pool) error {
	ctx := context.Background()
	log.Println("seeding teams and technicians...")

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "TRUNCATE TABLE team_members, teams, technicians CASCADE"); err != nil {
		return err
	}

	for _, t := range teamsData {
		if _, err := tx.Exec(ctx,
			"INSERT INTO teams (id, name) VALUES ($1, $2)", t.ID, t.Name); err != nil {
			return fmt.Errorf("insert team %s: %w", t.ID, err)
		}
	}
	for _, t := range techniciansData {
		if _, err := tx.Exec(ctx,
			"INSERT INTO technicians (id, name, workload) VALUES ($1, $2, $3)",
			t.ID, t.Name, t.Workload); err != nil {
			return fmt.Errorf("insert technician %s: %w", t.ID, err)
		}
	}
	for teamID, members := range teamMembersData {
		for _, technicianID := range members {
			if _, err := tx.Exec(ctx,
				"INSERT INTO team_members (team_id, technician_id) VALUES ($1, $2)",
				teamID, technicianID); err != nil {
				return fmt.Errorf("link %s to %s: %w", technicianID, teamID, err)
			}
		}
	}

	return tx.Commit(ctx)
}

// SeedEquipment refills the equipment catalog and its demo request history.
func SeedEquipment(db *pgxpool.Pool) error {
	ctx := context.Background()
	now := time.Now().UTC()
	log.Println("seeding equipment and requests...")

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "TRUNCATE TABLE maintenance_requests, equipments CASCADE"); err != nil {
		return err
	}

	for _, e := range equipmentsData {
		if _, err := tx.Exec(ctx, `
			INSERT INTO equipments (id, name, serial_number, location, department,
				assigned_employee, maintenance_team_id, default_technician_id,
				is_scrapped, maintenance_frequency, image_url, image_hint)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
			e.ID, e.Name, e.SerialNumber, e.Location, e.Department,
			e.AssignedEmployee, e.MaintenanceTeamID, e.DefaultTechnicianID,
			e.IsScrapped, e.MaintenanceFrequency, e.ImageURL, e.ImageHint); err != nil {
			return fmt.Errorf("insert equipment %s: %w", e.ID, err)
		}
	}
	for _, seed := range requestsData {
		r := seed.toEntity(now)
		if _, err := tx.Exec(ctx, `
			INSERT INTO maintenance_requests (id, subject, equipment_id, team_id,
				technician_id, type, status, priority, scheduled_date, duration,
				root_cause, created_by)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
			r.ID, r.Subject, r.EquipmentID, r.TeamID, r.TechnicianID,
			string(r.Type), string(r.Status), string(r.Priority),
			r.ScheduledDate, r.Duration, r.RootCause, r.CreatedBy); err != nil {
			return fmt.Errorf("insert request %s: %w", r.ID, err)
		}
	}

	return tx.Commit(ctx)
}

// SeedAdmin creates the bootstrap manager account if no user holds its email.
func SeedAdmin(db *pgxpool.Pool) error {
	ctx := context.Background()
	now := time.Now().UTC()
	log.Println("seeding admin user...")

	hash, err := utils.HashPassword("changeme123")
	if err != nil {
		return err
	}
	admin := adminUser(hash, now)

	_, err = db.Exec(ctx, `
		INSERT INTO users (id, name, email, password_hash, role)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (email) DO NOTHING`,
		admin.ID, admin.Name, admin.Email, admin.PasswordHash, string(admin.Role))
	return err
}
