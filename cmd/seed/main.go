package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"unvaultd/pkg/config"
	"unvaultd/pkg/database"
	"unvaultd/pkg/logger"
	"unvaultd/pkg/models"
	"unvaultd/pkg/s3"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type seedListing struct {
	brand       string
	garmentType string
	color       string
	sizeFit     string
	website     string
	description string
}

var seedMembers = []struct {
	email    string
	name     string
	username string
	listings []seedListing
}{
	{"mika@test.com", "Mika", "mika_archive", []seedListing{
		{"Comme des Garcons", "Blazer", "Black", "M, boxy", "https://www.comme-des-garcons.com", "Deconstructed wool blazer, AW98."},
		{"Yohji Yamamoto", "Trousers", "Navy", "3, wide leg", "", "Gabardine trousers with a drop crotch."},
	}},
	{"jun@test.com", "Jun", "jun_vault", []seedListing{
		{"Issey Miyake", "Pleated Top", "Ivory", "One size", "https://www.isseymiyake.com", "Pleats Please long sleeve."},
		{"Helmut Lang", "Bomber", "Olive", "48, true to size", "", "Astro biker bomber, 1999."},
	}},
	{"ren@test.com", "Ren", "ren_cuts", []seedListing{
		{"Raf Simons", "Parka", "Khaki", "L, oversized", "", "Riot Riot Riot parka."},
		{"Maison Margiela", "Tabi Boots", "Black", "EU 42", "https://www.maisonmargiela.com", "Split-toe leather boots."},
	}},
	{"sol@test.com", "", "", nil},
}

func main() {
	var withImages bool
	flag.BoolVar(&withImages, "images", true, "Download placeholder images and upload them to object storage")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New().Named("seed")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	var s3Client *s3.Client
	if withImages {
		s3Client, err = s3.NewClient(cfg)
		if err != nil {
			log.Error("Failed to create S3 client: %v", err)
			panic(err)
		}
	}

	if err := seedDatabase(db, s3Client, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(db *gorm.DB, s3Client *s3.Client, log *logger.Logger) error {
	httpClient := &http.Client{Timeout: 30 * time.Second}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	userIDs := make([]string, 0, len(seedMembers))
	var postIDs []string

	for _, member := range seedMembers {
		var existing models.User
		if err := db.Where("email = ?", member.email).First(&existing).Error; err == nil {
			log.Info("Member %s already exists, skipping", member.email)
			userIDs = append(userIDs, existing.ID)
			continue
		}

		user := &models.User{
			Email:    member.email,
			Password: string(hashedPassword),
			Name:     member.name,
		}
		if member.username != "" {
			username := member.username
			user.Username = &username
		}

		if err := db.Create(user).Error; err != nil {
			log.Error("Failed to create member %s: %v", member.email, err)
			continue
		}
		log.Info("Created member: %s", member.email)
		userIDs = append(userIDs, user.ID)

		for i, listing := range member.listings {
			postID, err := createListing(db, s3Client, httpClient, user.ID, i, listing, log)
			if err != nil {
				log.Error("Failed to create listing %d for %s: %v", i+1, member.email, err)
				continue
			}
			postIDs = append(postIDs, postID)
		}
	}

	// Everyone follows the next member; each member likes and saves the first listings.
	for i, followerID := range userIDs {
		followingID := userIDs[(i+1)%len(userIDs)]
		if followerID == followingID {
			continue
		}
		follow := &models.Follow{FollowerID: followerID, FollowingID: followingID}
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(follow).Error; err != nil {
			log.Error("Failed to create follow: %v", err)
		}
	}

	for i, userID := range userIDs {
		for j, postID := range postIDs {
			if (i+j)%2 == 0 {
				like := &models.Like{PostID: postID, UserID: userID}
				if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(like).Error; err != nil {
					log.Error("Failed to create like: %v", err)
				}
			}
			if (i+j)%3 == 0 {
				save := &models.Save{PostID: postID, UserID: userID}
				if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(save).Error; err != nil {
					log.Error("Failed to create save: %v", err)
				}
			}
		}
	}

	log.Info("Created follows, likes and saves for %d members and %d listings", len(userIDs), len(postIDs))
	return nil
}

func createListing(db *gorm.DB, s3Client *s3.Client, httpClient *http.Client, userID string, index int, listing seedListing, log *logger.Logger) (string, error) {
	post := &models.Post{
		UserID:      userID,
		Brand:       listing.brand,
		GarmentType: listing.garmentType,
		Color:       listing.color,
		SizeFit:     listing.sizeFit,
		Description: listing.description,
	}
	if listing.website != "" {
		website := listing.website
		post.BrandWebsite = &website
	}

	images := make([]models.PostImage, 0, 2)
	for i := 0; i < 2; i++ {
		seed := fmt.Sprintf("%s-%d-%d", strings.ToLower(strings.ReplaceAll(listing.brand, " ", "-")), index, i)
		imageURL, key, err := placeholderImage(s3Client, httpClient, userID, seed, log)
		if err != nil {
			return "", err
		}
		images = append(images, models.PostImage{ImageURL: imageURL, StorageKey: key, OrderIndex: i})
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(post).Error; err != nil {
			return fmt.Errorf("failed to create listing: %w", err)
		}
		for i := range images {
			images[i].PostID = post.ID
		}
		return tx.Create(&images).Error
	})
	if err != nil {
		return "", err
	}

	log.Info("Created listing: %s %s", post.Brand, post.GarmentType)
	return post.ID, nil
}

// placeholderImage stores a downloaded placeholder in object storage, or links
// it directly when storage is disabled.
func placeholderImage(s3Client *s3.Client, httpClient *http.Client, userID, seed string, log *logger.Logger) (string, string, error) {
	sourceURL := fmt.Sprintf("https://picsum.photos/seed/%s/800/1000", seed)
	if s3Client == nil {
		return sourceURL, "", nil
	}

	resp, err := httpClient.Get(sourceURL)
	if err != nil {
		return "", "", fmt.Errorf("failed to fetch placeholder image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", "", fmt.Errorf("placeholder service returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", "", fmt.Errorf("failed to read image data: %w", err)
	}
	if len(data) == 0 {
		return "", "", fmt.Errorf("received empty image data")
	}

	key := fmt.Sprintf("post-images/%s/seed-%s.jpg", userID, seed)
	imageURL, err := s3Client.UploadFile(key, bytes.NewReader(data), "image/jpeg")
	if err != nil {
		return "", "", fmt.Errorf("failed to upload image: %w", err)
	}

	log.Debug("Uploaded seed image %s (%d bytes)", key, len(data))
	return imageURL, key, nil
}
