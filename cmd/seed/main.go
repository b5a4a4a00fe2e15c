package main

import (
	"context"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"storefront/internal/config"
	"storefront/internal/db"
	"storefront/internal/model"
	"storefront/internal/repository"
)

// Fixture rows pin their IDs. A reseeded database keeps its advanced
// auto-increment counter after the delete, so the product rows must not rely
// on freshly assigned category IDs to satisfy their foreign keys.
var seedCategories = []model.Category{
	{ID: 1, Name: "elektronik"},
	{ID: 2, Name: "fashion"},
	{ID: 3, Name: "food"},
}

var seedProducts = []model.Product{
	{ID: 1, Name: "HP", Price: 1000000, Image: "example.com", CategoryID: 1},
	{ID: 2, Name: "Baju", Price: 20000, Image: "example.com", CategoryID: 2},
	{ID: 3, Name: "Nasi", Price: 4000, Image: "example.com", CategoryID: 3},
}

var seedUsers = []model.User{
	{Username: "irfiyanda", Email: "irfi@mail.com", PhoneNumber: "555-0100"},
	{Username: "yanda", Email: "yanda@mail.com", PhoneNumber: "555-0101"},
	{Username: "abidin", Email: "abidin@mail.com", PhoneNumber: "555-0102"},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Product{},
		&model.CartItem{},
		&model.TransactionItem{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()

	categories, products, err := seedCatalog(ctx, gormDB)
	if err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}

	users, err := seedDemoUsers(ctx, repository.NewUserRepository(gormDB))
	if err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}

	log.Println("Seed completed successfully!")
	log.Printf("  - Categories created: %d", categories)
	log.Printf("  - Products created: %d", products)
	log.Printf("  - Users created: %d", users)
}

// seedCatalog replaces the catalog tables with the demo data set.
func seedCatalog(ctx context.Context, gormDB *gorm.DB) (categories int, products int, err error) {
	err = gormDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.Product{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&model.Category{}).Error; err != nil {
			return err
		}

		for i := range seedCategories {
			category := seedCategories[i]
			if err := tx.Create(&category).Error; err != nil {
				return err
			}
			categories++
		}
		for i := range seedProducts {
			product := seedProducts[i]
			if err := tx.Create(&product).Error; err != nil {
				return err
			}
			products++
		}
		return nil
	})
	return categories, products, err
}

// seedDemoUsers creates the demo users, skipping any that already exist.
// All demo accounts share the password "secret".
func seedDemoUsers(ctx context.Context, users repository.UserRepository) (int, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("secret"), 10)
	if err != nil {
		return 0, err
	}

	created := 0
	for i := range seedUsers {
		user := seedUsers[i]
		if _, err := users.FindByUsername(ctx, user.Username); err == nil {
			log.Printf("User %q already exists, skipping", user.Username)
			continue
		} else if err != gorm.ErrRecordNotFound {
			return created, err
		}

		user.PasswordHash = string(hashed)
		if err := users.Create(ctx, &user); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}
