package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/mithramani/vivaha-backend/config"
	"github.com/mithramani/vivaha-backend/internal/app/model"
	"github.com/mithramani/vivaha-backend/internal/app/repository"
	"github.com/mithramani/vivaha-backend/internal/db"
	"github.com/xuri/excelize/v2"
)

// Bulk vendor importer. Expects an XLSX with a header row and columns:
// name, email, phone, category slug, location city, description.
func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run cmd/seed/main.go <xlsx_file_path>")
	}

	filePath := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	database, err := db.Connect(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close(database)

	if err := db.Migrate(database); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}
	if err := db.SeedReferenceData(database); err != nil {
		log.Fatal("Failed to seed reference data:", err)
	}

	vendorRepo := repository.NewVendorRepository(database)
	categoryRepo := repository.NewCategoryRepository(database)
	locationRepo := repository.NewLocationRepository(database)

	fmt.Printf("Reading XLSX file: %s\n", filePath)
	vendors, err := readVendorsFromXLSX(filePath, categoryRepo, locationRepo)
	if err != nil {
		log.Fatal("Failed to read XLSX:", err)
	}

	fmt.Printf("Total vendors to import: %d\n", len(vendors))

	fmt.Print("Do you want to proceed with the import? (yes/no): ")
	var confirm string
	fmt.Scanln(&confirm)
	if confirm != "yes" && confirm != "y" {
		fmt.Println("Import cancelled.")
		return
	}

	batchSize := 500
	fmt.Printf("Starting bulk import with batch size: %d\n", batchSize)
	if err := vendorRepo.BulkCreate(vendors, batchSize); err != nil {
		log.Fatal("Failed to bulk create vendors:", err)
	}

	fmt.Println("Import completed successfully!")
	fmt.Printf("Total vendors imported: %d\n", len(vendors))
}

func readVendorsFromXLSX(
	filePath string,
	categoryRepo repository.CategoryRepository,
	locationRepo repository.LocationRepository,
) ([]model.Vendor, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("no sheets found in XLSX file")
	}

	fmt.Printf("Reading sheet: %s\n", sheetName)

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("no data found in XLSX file")
	}

	// Reference lookups are cached per file; imports repeat the same
	// handful of categories and cities thousands of times.
	categoryIDs := make(map[string]uint)
	locationIDs := make(map[string]uint)

	var vendors []model.Vendor
	seenVendors := make(map[string]bool)
	slugCounter := make(map[string]int)
	skippedCount := 0
	unknownRefCount := 0

	for i, row := range rows {
		if i == 0 {
			fmt.Printf("Headers: %v\n", row)
			continue
		}

		if len(row) < 5 {
			skippedCount++
			continue
		}

		name := strings.TrimSpace(row[0])
		email := strings.TrimSpace(row[1])
		phone := strings.TrimSpace(row[2])
		categorySlug := strings.TrimSpace(row[3])
		locationCity := strings.TrimSpace(row[4])
		description := ""
		if len(row) > 5 {
			description = strings.TrimSpace(row[5])
		}

		if name == "" || email == "" || categorySlug == "" || locationCity == "" {
			skippedCount++
			continue
		}

		categoryID, ok := categoryIDs[categorySlug]
		if !ok {
			category, err := categoryRepo.FindBySlug(categorySlug)
			if err != nil {
				unknownRefCount++
				skippedCount++
				continue
			}
			categoryID = category.ID
			categoryIDs[categorySlug] = categoryID
		}

		locationID, ok := locationIDs[locationCity]
		if !ok {
			location, err := locationRepo.FindByCity(locationCity)
			if err != nil {
				unknownRefCount++
				skippedCount++
				continue
			}
			locationID = location.ID
			locationIDs[locationCity] = locationID
		}

		// Duplicate check (name + city)
		key := fmt.Sprintf("%s|%s", name, locationCity)
		if seenVendors[key] {
			skippedCount++
			continue
		}
		seenVendors[key] = true

		// Pre-generate slugs so batch inserts never collide in-file
		baseSlug := model.VendorSlug(name)
		slug := baseSlug
		if count, exists := slugCounter[baseSlug]; exists {
			slugCounter[baseSlug] = count + 1
			slug = fmt.Sprintf("%s-%d", baseSlug, count+1)
		} else {
			slugCounter[baseSlug] = 1
		}

		vendors = append(vendors, model.Vendor{
			Name:        name,
			Slug:        slug,
			Email:       email,
			Phone:       phone,
			Description: description,
			CategoryID:  categoryID,
			LocationID:  locationID,
			IsActive:    true,
		})

		if len(vendors)%500 == 0 {
			fmt.Printf("Processed %d vendors...\n", len(vendors))
		}
	}

	fmt.Printf("\nSummary:\n")
	fmt.Printf("  Total rows: %d\n", len(rows)-1)
	fmt.Printf("  Valid vendors: %d\n", len(vendors))
	fmt.Printf("  Skipped rows: %d\n", skippedCount)
	fmt.Printf("  Rows with unknown category/location: %d\n", unknownRefCount)

	return vendors, nil
}
