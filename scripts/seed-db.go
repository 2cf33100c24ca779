package main

import (
	"fmt"
	"log"

	"crm_backend/internal/auth"
	"crm_backend/internal/config"
	"crm_backend/internal/database"
	"crm_backend/internal/models"
	"crm_backend/internal/repository"

	"github.com/shopspring/decimal"
)

// Seeds the demo dataset. Safe to run repeatedly; it bails out as soon
// as any user exists.
func main() {
	fmt.Println("Seeding database...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	userRepo := repository.NewUserRepository(db)
	count, err := userRepo.Count()
	if err != nil {
		log.Fatal("Failed to check existing users:", err)
	}
	if count > 0 {
		fmt.Println("Database already seeded. Skipping...")
		return
	}

	type seedUser struct {
		id, name, email, password, role string
	}
	users := []seedUser{
		{"U001", "Priya S.", "priya@renuga.com", "password123", models.RoleFrontDesk},
		{"U002", "Ravi K.", "ravi@renuga.com", "password123", models.RoleSales},
		{"U003", "Muthu R.", "muthu@renuga.com", "password123", models.RoleOperations},
		{"U004", "Admin", "admin@renuga.com", "admin123", models.RoleAdmin},
	}
	for _, u := range users {
		hash, err := auth.HashPassword(u.password)
		if err != nil {
			log.Fatal("Failed to hash password:", err)
		}
		user := models.User{
			ID:           u.id,
			Name:         u.name,
			Email:        u.email,
			PasswordHash: hash,
			Role:         u.role,
			IsActive:     true,
		}
		if err := db.Create(&user).Error; err != nil {
			log.Fatal("Failed to seed user:", err)
		}
	}
	fmt.Println("Users seeded")

	products := []models.Product{
		{ID: "P001", Name: "Color Coated Roofing Sheet", Category: models.CategoryRoofingSheet, Unit: "Sq.ft", Price: decimal.NewFromInt(45), AvailableQuantity: 5000, ThresholdQuantity: 2500},
		{ID: "P002", Name: "GI Plain Sheet", Category: models.CategoryRoofingSheet, Unit: "Sq.ft", Price: decimal.NewFromInt(38), AvailableQuantity: 2000, ThresholdQuantity: 2000},
		{ID: "P003", Name: "Polycarbonate Sheet", Category: models.CategoryRoofingSheet, Unit: "Sq.ft", Price: decimal.NewFromInt(85), AvailableQuantity: 3000, ThresholdQuantity: 1500},
		{ID: "P004", Name: "Clay Roof Tile", Category: models.CategoryTile, Unit: "Piece", Price: decimal.NewFromInt(12), AvailableQuantity: 800, ThresholdQuantity: 1000},
		{ID: "P005", Name: "Cement Roof Tile", Category: models.CategoryTile, Unit: "Piece", Price: decimal.NewFromInt(18), AvailableQuantity: 2500, ThresholdQuantity: 1000},
		{ID: "P006", Name: "Ridge Cap", Category: models.CategoryAccessories, Unit: "Piece", Price: decimal.NewFromInt(150), AvailableQuantity: 300, ThresholdQuantity: 200},
		{ID: "P007", Name: "Self Drilling Screw", Category: models.CategoryAccessories, Unit: "Kg", Price: decimal.NewFromInt(280), AvailableQuantity: 50, ThresholdQuantity: 100},
		{ID: "P008", Name: "Turbo Ventilator", Category: models.CategoryAccessories, Unit: "Piece", Price: decimal.NewFromInt(1200), AvailableQuantity: 25, ThresholdQuantity: 20},
	}
	for i := range products {
		products[i].IsActive = true
		products[i].RecomputeStatus()
		if err := db.Create(&products[i]).Error; err != nil {
			log.Fatal("Failed to seed product:", err)
		}
	}
	fmt.Println("Products seeded")

	str := func(s string) *string { return &s }
	customers := []models.Customer{
		{ID: "C001", Name: "Kumar", Mobile: "9876543210", Email: str("kumar@email.com"), Address: str("45, Anna Nagar, Trichy"), TotalOrders: 2, TotalValue: decimal.NewFromInt(85000)},
		{ID: "C002", Name: "Raja", Mobile: "9876543211", Email: str("raja@email.com"), Address: str("78, KK Nagar, Trichy"), TotalOrders: 1, TotalValue: decimal.NewFromInt(45000)},
		{ID: "C003", Name: "Senthil Builders", Mobile: "9876543212", Email: str("senthil@builders.com"), Address: str("12, Thillai Nagar, Trichy"), TotalOrders: 5, TotalValue: decimal.NewFromInt(320000)},
		{ID: "C004", Name: "Lakshmi Constructions", Mobile: "9876543213", Address: str("99, Woraiyur, Trichy"), TotalOrders: 3, TotalValue: decimal.NewFromInt(175000)},
		{ID: "C005", Name: "Murugan", Mobile: "9876543214", Address: str("33, Srirangam, Trichy"), TotalOrders: 1, TotalValue: decimal.NewFromInt(28000)},
	}
	for i := range customers {
		if err := db.Create(&customers[i]).Error; err != nil {
			log.Fatal("Failed to seed customer:", err)
		}
	}
	fmt.Println("Customers seeded")

	fmt.Println("Database seeding completed successfully!")
}
