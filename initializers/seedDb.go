package initializers

import (
	"log"
	"os"

	"github.com/fashionstore/fashionstore-api/models"
	"github.com/fashionstore/fashionstore-api/utils"
	"gorm.io/datatypes"
)

var seedProducts = []models.Product{
	{
		Title:          "Classic White Shirt",
		Price:          2499,
		Description:    "A timeless white shirt crafted from premium cotton. Perfect for both casual and formal occasions.",
		Category:       "men",
		Subcategory:    "Shirts",
		Brand:          "Fashion Brand",
		Material:       "100% Premium Cotton",
		Care:           "Machine wash cold, tumble dry low",
		Sizes:          datatypes.JSON([]byte(`["XS","S","M","L","XL","XXL"]`)),
		AvailableSizes: datatypes.JSON([]byte(`["S","M","L","XL"]`)),
		Image:          "https://images.unsplash.com/photo-1603252109303-2751441dd157?auto=format&fit=crop&w=500&q=60",
		Stock:          40,
	},
	{
		Title:          "Slim Fit Jeans",
		Price:          3499,
		Description:    "Modern slim-fit jeans with perfect stretch and comfort. Made with premium denim for durability and style.",
		Category:       "men",
		Subcategory:    "Pants",
		Brand:          "Denim Co",
		Material:       "98% Cotton, 2% Elastane",
		Care:           "Machine wash cold, tumble dry medium",
		Sizes:          datatypes.JSON([]byte(`["28","30","32","34","36","38"]`)),
		AvailableSizes: datatypes.JSON([]byte(`["30","32","34","36"]`)),
		Image:          "https://images.unsplash.com/photo-1542272604-787c3835535d?auto=format&fit=crop&w=500&q=60",
		Stock:          25,
	},
	{
		Title:          "Floral Print Kurti",
		Price:          1999,
		Description:    "Beautiful floral print kurti made from soft cotton fabric. Features a contemporary design with traditional elements.",
		Category:       "women",
		Subcategory:    "Kurtis",
		Brand:          "Ethnic Wear",
		Material:       "100% Cotton",
		Care:           "Machine wash cold, gentle cycle",
		Sizes:          datatypes.JSON([]byte(`["XS","S","M","L","XL"]`)),
		AvailableSizes: datatypes.JSON([]byte(`["S","M","L"]`)),
		Image:          "https://images.unsplash.com/photo-1572804013309-59a88b7e92f1?auto=format&fit=crop&w=500&q=60",
		Stock:          30,
	},
}

// SeedDatabase bootstraps the catalog and an admin account on an empty
// database. Controlled by SEED_DB so production restarts do not reseed.
func SeedDatabase() {
	if os.Getenv("SEED_DB") != "true" {
		return
	}

	var productCount int64
	DB.Model(&models.Product{}).Count(&productCount)
	if productCount == 0 {
		if err := DB.Create(&seedProducts).Error; err != nil {
			log.Println("Product seeding failed:", err)
		} else {
			log.Printf("Seeded %d products.", len(seedProducts))
		}
	}

	adminEmail := models.NormalizeEmail(os.Getenv("ADMIN_EMAIL"))
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminEmail == "" || adminPassword == "" {
		return
	}

	var adminCount int64
	DB.Model(&models.User{}).Where("email = ?", adminEmail).Count(&adminCount)
	if adminCount > 0 {
		return
	}

	hashed, err := utils.HashPassword(adminPassword)
	if err != nil {
		log.Println("Admin password hashing failed:", err)
		return
	}

	admin := models.User{
		Name:     "Store Admin",
		Email:    adminEmail,
		Password: hashed,
		Role:     models.RoleAdmin,
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Println("Admin seeding failed:", err)
	} else {
		log.Println("Admin account seeded:", adminEmail)
	}
}
