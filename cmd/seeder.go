package cmd

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample data for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		db, _, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		defer db.Close()

		if clearData {
			for _, table := range []string{"activities", "comments", "votes", "ideas", "users"} {
				if _, err := db.Exec("DELETE FROM " + table); err != nil {
					log.Fatalf("failed to clear %s: %v", table, err)
				}
			}
			fmt.Println("Cleared existing data")
		}

		password := "password"
		hash, _ := bcrypt.GenerateFromPassword([]byte(password), cfg.Security.BCryptCost)

		users := []struct {
			Name       string
			EmployeeID string
			Email      string
			Role       string
			Gender     string
		}{
			{"Admin", "EMP001", "admin@company.test", "admin", "female"},
			{"Sari", "EMP002", "sari@company.test", "employee", "female"},
			{"Budi", "EMP003", "budi@company.test", "employee", "male"},
		}

		for _, u := range users {
			var exists int
			if err := db.QueryRow("SELECT 1 FROM users WHERE employee_id = $1", u.EmployeeID).Scan(&exists); err == nil {
				fmt.Printf("user %s already exists, skipping\n", u.EmployeeID)
				continue
			}

			if _, err := db.Exec(
				`INSERT INTO users (id, name, employee_id, email, password_hash, role, gender, created_at, updated_at)
				 VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())`,
				uuid.NewString(), u.Name, u.EmployeeID, u.Email, string(hash), u.Role, u.Gender,
			); err != nil {
				log.Fatalf("failed to insert user %s: %v", u.EmployeeID, err)
			}
			fmt.Printf("Seeded user %s (%s)\n", u.Name, u.EmployeeID)
		}

		var ownerID string
		if err := db.QueryRow("SELECT id FROM users WHERE employee_id = $1", "EMP002").Scan(&ownerID); err != nil {
			log.Fatalf("failed to lookup seed idea owner: %v", err)
		}

		ideas := []struct {
			Title       string
			Description string
			Category    string
			Impact      string
		}{
			{"Meeting-free Fridays", "Block Fridays for focused work across all teams.", "Process Improvement", "medium"},
			{"Self-service onboarding portal", "Let new hires complete paperwork and setup before day one.", "Technology", "high"},
		}

		for _, i := range ideas {
			var exists int
			if err := db.QueryRow("SELECT 1 FROM ideas WHERE title = $1", i.Title).Scan(&exists); err == nil {
				continue
			}

			if _, err := db.Exec(
				`INSERT INTO ideas (title, description, category, impact_level, anonymous_id, user_id, status, created_at, updated_at)
				 VALUES ($1, $2, $3, $4, $5, $6, 'pending', now(), now())`,
				i.Title, i.Description, i.Category, i.Impact, "anon-"+uuid.NewString()[:8], ownerID,
			); err != nil {
				log.Fatalf("failed to insert idea %q: %v", i.Title, err)
			}
			fmt.Printf("Seeded idea: %s\n", i.Title)
		}

		fmt.Println("Seeding complete. Login with EMP001 / password")
	},
}
