package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"vinolog/internal/config"
	"vinolog/internal/db"
	"vinolog/internal/model"
	"vinolog/internal/repository"
)

const (
	demoEmail    = "demo@vinolog.local"
	demoPassword = "tastewine"
)

// Seeds a demo user with a small catalog and a few tastings for local
// development.
func main() {
	log.Println("Starting seed script...")

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Wine{},
		&model.Tasting{},
		&model.VisualAnalysis{},
		&model.OlfactoryAnalysis{},
		&model.GustatoryAnalysis{},
		&model.Upload{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	wineRepo := repository.NewWineRepository(gormDB)
	tastingRepo := repository.NewTastingRepository(gormDB)

	if _, err := userRepo.FindByEmail(ctx, demoEmail); err == nil {
		log.Printf("Demo user %s already exists, nothing to do", demoEmail)
		return
	} else if err != gorm.ErrRecordNotFound {
		log.Fatalf("Failed to check demo user: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), 10)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	user := &model.User{
		Email:        demoEmail,
		PasswordHash: string(hash),
		Role:         model.RoleUser,
	}
	if err := userRepo.Create(ctx, user); err != nil {
		log.Fatalf("Failed to create demo user: %v", err)
	}
	log.Printf("Created demo user %s (id=%d)", user.Email, user.ID)

	wines := []*model.Wine{
		{
			UserID:   user.ID,
			Name:     "Barolo Riserva",
			Year:     intPtr(2015),
			Type:     "red",
			Region:   "Piedmont",
			Alcohol:  floatPtr(14.5),
			Price:    decimalPtr("45.00"),
			Producer: "Cantina Mascarello",
		},
		{
			UserID:   user.ID,
			Name:     "Chablis Premier Cru",
			Year:     intPtr(2020),
			Type:     "white",
			Region:   "Burgundy",
			Alcohol:  floatPtr(12.5),
			Price:    decimalPtr("32.50"),
			Producer: "Domaine Laroche",
		},
		{
			UserID: user.ID,
			Name:   "House Rosato",
			Type:   "rose",
		},
	}
	for _, wine := range wines {
		if err := wineRepo.Create(ctx, wine); err != nil {
			log.Fatalf("Failed to create wine %q: %v", wine.Name, err)
		}
	}
	log.Printf("Created %d wines", len(wines))

	tasting := &model.Tasting{
		UserID:      user.ID,
		WineID:      wines[0].ID,
		TastingDate: time.Now().UTC().AddDate(0, 0, -7),
		Location:    "Home",
		Description: "Opened an hour early, big tannins but silky finish.",
		VisualAnalysis: &model.VisualAnalysis{
			Color:        model.ColorRed,
			ColorDensity: model.DensityDeep,
			Clarity:      model.ClarityClear,
		},
		OlfactoryAnalysis: &model.OlfactoryAnalysis{
			Intensity:      model.LevelHigh,
			Complexity:     model.ComplexityComplex,
			Quality:        model.QualityExcellent,
			DominantAromas: "cherry, tar, rose",
		},
		GustatoryAnalysis: &model.GustatoryAnalysis{
			TanninQty:   model.LevelHigh,
			Body:        model.BodyFull,
			Persistence: model.PersistenceLong,
			Quality:     model.QualityExcellent,
		},
	}
	if err := tastingRepo.CreateWithAnalyses(ctx, tasting); err != nil {
		log.Fatalf("Failed to create tasting: %v", err)
	}
	log.Printf("Created tasting %d with analyses", tasting.ID)

	log.Println("Seed completed successfully!")
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func decimalPtr(v string) *decimal.Decimal {
	d, err := decimal.NewFromString(v)
	if err != nil {
		log.Fatalf("invalid decimal %q: %v", v, err)
	}
	return &d
}
