package db

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	seedReligions = []string{"hindu", "muslim", "christian", "sikh", "jain"}
	seedCastes    = []string{"brahmin", "kshatriya", "vaishya", "maratha", "nair"}
	seedEducation = []string{"bachelors", "masters", "doctorate", "diploma"}
	seedDiets     = []string{"vegetarian", "non_vegetarian", "eggetarian", "vegan"}
	seedCities    = []string{"Mumbai", "Pune", "Bengaluru", "Chennai", "Delhi"}
	seedStates    = []string{"Maharashtra", "Maharashtra", "Karnataka", "Tamil Nadu", "Delhi"}
)

// SeedDemoData resets the database and populates it with demo profiles,
// preferences and interactions.
//
// Behavior:
//  1. Clears existing rows in all matching tables.
//  2. Creates 20 approved profiles (10 male, 10 female) with hashed
//     passwords and randomized demographics; every 5th is premium.
//  3. Creates partner preferences for each profile.
//  4. Generates likes with ~70% probability, and every 3rd ensures a
//     mutual like so matches exist out of the box.
//
// Compatible with both MySQL and SQLite.
func SeedDemoData(gdb *gorm.DB) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	// --- Fresh start ---
	for _, table := range []string{
		"chat_requests", "interest_requests", "matches",
		"blocked_profiles", "passes", "likes",
		"partner_preferences", "profiles",
	} {
		if err := gdb.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	switch gdb.Dialector.Name() {
	case "mysql":
		gdb.Exec("ALTER TABLE profiles AUTO_INCREMENT = 1")
		gdb.Exec("ALTER TABLE matches AUTO_INCREMENT = 1")
	case "sqlite":
		gdb.Exec("DELETE FROM sqlite_sequence WHERE name IN ('profiles', 'matches')")
	}

	log.Println("Cleared existing data")

	// --- Seed Profiles (10 male, 10 female) ---
	for i := 1; i <= 20; i++ {
		hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}

		gender := GenderMale
		if i > 10 {
			gender = GenderFemale
		}

		ci := r.Intn(len(seedCities))
		profile := Profile{
			Email:         fmt.Sprintf("member%d@example.com", i),
			PasswordHash:  string(hash),
			FullName:      fmt.Sprintf("Member %d", i),
			Gender:        gender,
			DateOfBirth:   time.Date(1988+r.Intn(12), time.Month(1+r.Intn(12)), 1+r.Intn(28), 0, 0, 0, 0, time.UTC),
			HeightCM:      150 + r.Intn(45),
			Religion:      seedReligions[r.Intn(len(seedReligions))],
			Caste:         seedCastes[r.Intn(len(seedCastes))],
			Education:     seedEducation[r.Intn(len(seedEducation))],
			Profession:    "engineer",
			City:          seedCities[ci],
			State:         seedStates[ci],
			Country:       "India",
			Diet:          seedDiets[r.Intn(len(seedDiets))],
			MaritalStatus: "never_married",
			Active:        true,
			Approved:      true,
			Premium:       i%5 == 0,
		}
		if err := gdb.Create(&profile).Error; err != nil {
			return fmt.Errorf("failed to seed profile: %w", err)
		}

		prefs := PartnerPreference{
			ProfileID:     profile.ID,
			AgeFrom:       24,
			AgeTo:         34,
			HeightFrom:    150,
			HeightTo:      190,
			Religion:      StringList{profile.Religion},
			CasteNoBar:    r.Intn(2) == 0,
			Education:     StringList{"bachelors", "masters", "doctorate"},
			Diet:          nil, // no diet constraint
			MaritalStatus: StringList{"never_married"},
		}
		if err := gdb.Create(&prefs).Error; err != nil {
			return fmt.Errorf("failed to seed preferences: %w", err)
		}
	}
	log.Println("Seeded 20 profiles with preferences.")

	// --- Seed Likes ---
	counter := 0
	for fromID := uint64(1); fromID <= 20; fromID++ {
		for j := 0; j < 8; j++ {
			toID := uint64(r.Intn(20) + 1)
			if fromID == toID {
				continue
			}

			var from, to Profile
			if err := gdb.First(&from, fromID).Error; err != nil {
				continue
			}
			if err := gdb.First(&to, toID).Error; err != nil {
				continue
			}
			if from.Gender == to.Gender {
				continue
			}

			// like probability 70%
			if r.Intn(100) >= 70 {
				continue
			}

			// guarantee mutual likes every 3rd pair
			if counter%3 == 0 {
				recip := Like{FromID: toID, ToID: fromID, LikeType: LikeTypeLike}
				gdb.Clauses(clause.OnConflict{DoNothing: true}).Create(&recip)
			}

			like := Like{FromID: fromID, ToID: toID, LikeType: LikeTypeLike}
			if err := gdb.Clauses(clause.OnConflict{DoNothing: true}).Create(&like).Error; err != nil {
				return fmt.Errorf("failed to seed like: %w", err)
			}

			counter++
		}
	}
	log.Printf("Seeded %d likes.", counter)

	return nil
}
