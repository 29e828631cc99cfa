// Admin CLI for account provisioning and demo seeding. Accounts here
// are what the portal login exchanges for a session token.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"hostelhub/backend/internal/config"
	"hostelhub/backend/internal/models"
	"hostelhub/backend/internal/storage"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	godotenv.Load()
	cfg := config.Load()

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	store := storage.NewStorageService(db, nil, nil) // no redis needed for admin CLI

	if len(os.Args) < 2 {
		fmt.Println("Usage: admin <command> [args]")
		fmt.Println("Commands: add-user, seed")
		os.Exit(1)
	}

	switch os.Args[1] {
	case "add-user":
		if len(os.Args) < 6 {
			fmt.Println("Usage: admin add-user <name> <email> <role> <room-or-department>")
			os.Exit(1)
		}
		if err := addUser(store, os.Args[2], os.Args[3], os.Args[4], os.Args[5]); err != nil {
			log.Fatalf("Error adding user: %v", err)
		}
		fmt.Printf("User %s (%s) created.\n", os.Args[2], os.Args[4])
	case "seed":
		if err := seed(store); err != nil {
			log.Fatalf("Error seeding demo data: %v", err)
		}
		fmt.Println("Demo data seeded.")
	default:
		fmt.Println("Unknown command")
		os.Exit(1)
	}
}

func addUser(s storage.Storage, name, email, role, place string) error {
	user := &models.User{Name: name, Email: email, Role: role}
	if role == models.RoleStudent {
		user.RoomNumber = place
	} else {
		user.Department = place
	}
	return s.SaveUser(user)
}

// seed provisions one account per role plus a starter notice board, so
// a fresh install has something to log into.
func seed(s storage.Storage) error {
	users := []*models.User{
		{Name: "John Doe", Email: "john@hostel.edu", Role: models.RoleStudent, RoomNumber: "A-101"},
		{Name: "Dr. Smith", Email: "warden@hostel.edu", Role: models.RoleWarden, Department: "Administration", Designation: "Chief Warden"},
		{Name: "Maria Garcia", Email: "housekeeping@hostel.edu", Role: models.RoleHousekeeping, Department: "Housekeeping", Designation: "Supervisor"},
		{Name: "Robert Singh", Email: "security@hostel.edu", Role: models.RoleSecurity, Department: "Security", Designation: "Head Guard"},
	}
	for _, u := range users {
		if err := s.SaveUser(u); err != nil {
			return err
		}
	}

	expiry := time.Now().AddDate(0, 0, 14)
	notices := []*models.Notice{
		{
			Title:      "Mess Menu Updated",
			Content:    "New breakfast menu includes continental options. Breakfast: 7:30 AM - 10:00 AM, Lunch: 12:30 PM - 3:00 PM, Dinner: 7:30 PM - 10:00 PM.",
			Category:   "mess",
			CreatedBy:  "Dr. Smith",
			CreatedAt:  time.Now(),
			ExpiryDate: &expiry,
		},
		{
			Title:     "Wi-Fi Maintenance",
			Content:   "Wi-Fi will be temporarily unavailable on the 16th from 2:00 PM to 4:00 PM for maintenance work.",
			Category:  "maintenance",
			CreatedBy: "IT Team",
			CreatedAt: time.Now(),
		},
	}
	for _, n := range notices {
		if err := s.SaveNotice(n); err != nil {
			return err
		}
	}
	return nil
}
