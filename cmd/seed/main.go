// Command main runs the database seeder for Quill.
package main

import (
	"flag"
	"log"

	"quill/internal/config"
	"quill/internal/database"
	"quill/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 10, "Number of users to create")
	numPosts := flag.Int("posts", 50, "Number of posts to create")
	shouldClean := flag.Bool("clean", false, "Clean database before seeding")
	adminOnly := flag.Bool("admin-only", false, "Only ensure the admin account exists")
	adminPassword := flag.String("admin-password", seed.DefaultAdminPassword, "Password for the admin account")
	manifestPath := flag.String("manifest", "", "Seed from a YAML manifest instead of generating random data")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	s := seed.NewSeeder(db)

	if *shouldClean {
		if err := s.ClearAll(); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
	}

	if *adminOnly {
		if _, err := s.EnsureAdmin("admin", "admin@example.com", *adminPassword); err != nil {
			log.Fatalf("Admin seeding failed: %v", err)
		}
		return
	}

	if *manifestPath != "" {
		m, err := seed.LoadManifest(*manifestPath)
		if err != nil {
			log.Fatalf("Manifest load failed: %v", err)
		}
		if err := s.ApplyManifest(m); err != nil {
			log.Fatalf("Manifest seeding failed: %v", err)
		}
		log.Println("Manifest seeding complete")
		return
	}

	if err := s.Run(*numUsers, *numPosts); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Println("Seeding complete")
}
