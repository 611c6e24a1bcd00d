package db

import (
	"github.com/mithramani/vivaha-backend/internal/app/model"
	"github.com/mithramani/vivaha-backend/pkg/logger"
	"gorm.io/gorm"
)

// SeedReferenceData inserts the reference tables and demo vendors. Every
// insert is guarded by an existence check on the natural key (slug, or
// city+state for locations), so running the seed repeatedly never
// duplicates or overwrites rows.
func SeedReferenceData(database *gorm.DB) error {
	logger.Info("Seeding reference data...")

	if err := seedCategories(database); err != nil {
		logger.Error("Failed to seed categories", err)
		return err
	}
	if err := seedLocations(database); err != nil {
		logger.Error("Failed to seed locations", err)
		return err
	}
	if err := seedVendors(database); err != nil {
		logger.Error("Failed to seed vendors", err)
		return err
	}

	logger.Info("Reference data seeded successfully")
	return nil
}

func seedCategories(database *gorm.DB) error {
	categories := []model.Category{
		{
			Name:        "Photographers",
			Slug:        "photographers",
			Description: "Professional wedding photographers",
			Icon:        "📸",
		},
		{
			Name:        "Makeup Artists",
			Slug:        "makeup-artists",
			Description: "Bridal makeup and hair styling",
			Icon:        "💄",
		},
	}

	inserted := 0
	for _, category := range categories {
		var count int64
		if err := database.Model(&model.Category{}).Where("slug = ?", category.Slug).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := database.Create(&category).Error; err != nil {
			return err
		}
		inserted++
	}

	logger.Info("Categories seeded", map[string]interface{}{
		"inserted": inserted,
	})
	return nil
}

func seedLocations(database *gorm.DB) error {
	locations := []model.Location{
		{City: "Bangalore", State: "Karnataka", Country: "India"},
		{City: "Chennai", State: "Tamil Nadu", Country: "India"},
		{City: "Coimbatore", State: "Tamil Nadu", Country: "India"},
		{City: "Madurai", State: "Tamil Nadu", Country: "India"},
		{City: "Tiruchirappalli", State: "Tamil Nadu", Country: "India"},
	}

	inserted := 0
	for _, location := range locations {
		var count int64
		if err := database.Model(&model.Location{}).
			Where("city = ? AND state = ?", location.City, location.State).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := database.Create(&location).Error; err != nil {
			return err
		}
		inserted++
	}

	logger.Info("Locations seeded", map[string]interface{}{
		"inserted": inserted,
	})
	return nil
}

func seedVendors(database *gorm.DB) error {
	var photographers, makeupArtists model.Category
	if err := database.Where("slug = ?", "photographers").First(&photographers).Error; err != nil {
		return err
	}
	if err := database.Where("slug = ?", "makeup-artists").First(&makeupArtists).Error; err != nil {
		return err
	}

	var chennai, bangalore model.Location
	if err := database.Where("city = ?", "Chennai").First(&chennai).Error; err != nil {
		return err
	}
	if err := database.Where("city = ?", "Bangalore").First(&bangalore).Error; err != nil {
		return err
	}

	vendors := []model.Vendor{
		{
			Name:           "Photovea Studio",
			Slug:           "photovea-studio",
			Email:          "info@photoveastudio.com",
			Phone:          "+91 98765 43210",
			Whatsapp:       "+91 98765 43210",
			Description:    "Professional wedding photography studio specializing in candid and traditional wedding shoots. We capture your special moments with creativity and passion.",
			Experience:     "10 years",
			EventsDone:     500,
			Rating:         4.8,
			ReviewCount:    1250,
			CategoryID:     photographers.ID,
			LocationID:     chennai.ID,
			Image:          "📸",
			Website:        "https://photoveastudio.com",
			IsVerified:     true,
			IsActive:       true,
			PaymentPolicy:  "50% advance payment, balance on event day",
			AdditionalInfo: "Specializing in wedding photography, pre-wedding shoots, and candid photography",
			Services: []model.VendorService{
				{Name: "Wedding Photography", Description: "Complete wedding day coverage", Price: "₹50,000"},
				{Name: "Pre-wedding Shoot", Description: "Engagement and pre-wedding photography", Price: "₹25,000"},
				{Name: "Candid Photography", Description: "Natural moment capture during wedding", Price: "₹35,000"},
			},
			Packages: []model.Package{
				{
					Name:        "Basic Package",
					Description: "Essential wedding photography coverage",
					Price:       "₹25,000",
					Features:    model.StringArray{"4 hours coverage", "200 edited photos", "1 photographer", "Online gallery"},
				},
				{
					Name:        "Premium Package",
					Description: "Comprehensive wedding photography with extras",
					Price:       "₹45,000",
					Features:    model.StringArray{"8 hours coverage", "400 edited photos", "2 photographers", "Printed album", "Drone shots"},
				},
				{
					Name:        "Luxury Package",
					Description: "Full wedding day coverage with cinematic elements",
					Price:       "₹75,000",
					Features:    model.StringArray{"Full day coverage", "600 edited photos", "3 photographers", "Cinematic video", "Luxury album"},
				},
			},
			Reviews: []model.Review{
				{Rating: 5, Comment: "Amazing work! The candid shots were stunning and the team was very professional throughout the wedding.", CustomerName: "Priya S.", Service: "Wedding Photography"},
				{Rating: 5, Comment: "Our pre-wedding shoot exceeded expectations. Highly recommended.", CustomerName: "Karthik R.", Service: "Pre-wedding Shoot"},
				{Rating: 4, Comment: "Great coverage of the full day, photos delivered on time.", CustomerName: "Divya M.", Service: "Candid Photography"},
			},
			Portfolio: []model.PortfolioItem{
				{Title: "Traditional Wedding", Description: "Beautiful traditional wedding ceremony", ImageURL: "https://images.unsplash.com/photo-1606216794074-735e91aa2c92?w=400"},
				{Title: "Candid Moments", Description: "Candid shots capturing real emotions", ImageURL: "https://images.unsplash.com/photo-1519741497674-611481863552?w=400"},
				{Title: "Pre-wedding Shoot", Description: "Romantic pre-wedding photoshoot", ImageURL: "https://images.unsplash.com/photo-1511285560929-80b456fea0bc?w=400"},
			},
		},
		{
			Name:           "Fehmax Makeup And Hair",
			Slug:           "fehmax-makeup-and-hair",
			Email:          "fehmax.makeup@gmail.com",
			Phone:          "+91 98765 43210",
			Whatsapp:       "+91 98765 43210",
			Description:    "Professional bridal makeup artist with 12+ years of experience specializing in HD makeup, airbrush makeup, and traditional bridal looks.",
			Experience:     "12 years",
			EventsDone:     100,
			Rating:         4.9,
			ReviewCount:    1250,
			CategoryID:     makeupArtists.ID,
			LocationID:     bangalore.ID,
			IsVerified:     true,
			IsActive:       true,
			PaymentPolicy:  "50% payment on booking, 50% payment on event date, Non-refundable booking amount",
			AdditionalInfo: "Brands: MAC, PAC, Huda Beauty, Kryolan, NARS, Lakme | Travel: Yes | Trial: Yes (Separately Paid)",
			Services: []model.VendorService{
				{Name: "Bridal Makeup", Description: "Complete bridal makeup with hair styling", Price: "₹8,000"},
				{Name: "Guest/Family Makeup", Description: "Makeup for bridesmaids and family members", Price: "₹6,000"},
				{Name: "Bridal Airbrush", Description: "Premium airbrush makeup for flawless finish", Price: "₹18,000"},
				{Name: "HD Makeup", Description: "High-definition makeup for photos/videos", Price: "₹12,000"},
			},
			Reviews: []model.Review{
				{Rating: 5, Comment: "Absolutely amazing work! Very professional and the makeup lasted throughout the day.", CustomerName: "Priya S.", Service: "Bridal Makeup"},
				{Rating: 5, Comment: "The airbrush makeup was flawless and everyone complimented how natural it looked.", CustomerName: "Kavita M.", Service: "Bridal Airbrush"},
				{Rating: 4, Comment: "Very talented artist. Did makeup for my entire family and everyone was happy.", CustomerName: "Anjali R.", Service: "Family Makeup"},
			},
			Portfolio: []model.PortfolioItem{
				{Title: "Traditional South Indian Bridal Look", Description: "Beautiful traditional makeup with intricate designs", ImageURL: "/portfolio/fehmax-bridal-1.jpg"},
				{Title: "Modern Bridal Makeup", Description: "Contemporary bridal look with natural finish", ImageURL: "/portfolio/fehmax-bridal-2.jpg"},
				{Title: "Airbrush Bridal Look", Description: "Flawless airbrush makeup for special occasions", ImageURL: "/portfolio/fehmax-bridal-4.jpg"},
			},
		},
	}

	inserted := 0
	for _, vendor := range vendors {
		var count int64
		if err := database.Model(&model.Vendor{}).Where("slug = ?", vendor.Slug).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		// Create with nested associations runs in a single transaction, so
		// a failure never leaves a partially-created vendor behind.
		if err := database.Create(&vendor).Error; err != nil {
			return err
		}
		inserted++
	}

	logger.Info("Vendors seeded", map[string]interface{}{
		"inserted": inserted,
	})
	return nil
}
