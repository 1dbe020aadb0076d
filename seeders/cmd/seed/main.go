package main

import (
	"flag"
	"log"

	"gearguard/migrations"
	"gearguard/pkg/config"
	"gearguard/pkg/database/postgresql"
	"gearguard/seeders"
)

func main() {
	runCore := flag.Bool("core", false, "seed teams, technicians and memberships")
	runEquipment := flag.Bool("equipment", false, "seed equipment and demo requests")
	runAdmin := flag.Bool("admin", false, "create the bootstrap admin user")
	runAll := flag.Bool("all", false, "run every seeder")
	flag.Parse()

	if !*runCore && !*runEquipment && !*runAdmin && !*runAll {
		log.Println("no seeder selected")
		flag.PrintDefaults()
		return
	}

	cfg := config.New()
	if err := postgresql.Migrate(cfg.Postgres.DSN, migrations.FS); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}

	dbPool := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer dbPool.Close()

	if *runAll || *runCore {
		if err := seeders.SeedCore(dbPool); err != nil {
			log.Fatalf("core seeding failed: %v", err)
		}
	}
	if *runAll || *runEquipment {
		if err := seeders.SeedEquipment(dbPool); err != nil {
			log.Fatalf("equipment seeding failed: %v", err)
		}
	}
	if *runAll || *runAdmin {
		if err := seeders.SeedAdmin(dbPool); err != nil {
			log.Fatalf("admin seeding failed: %v", err)
		}
	}

	log.Println("seeding complete")
}
