package seed

import (
	"context"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"cuddlecrafts/internal/domain/model"
	repo "cuddlecrafts/internal/repository"
)

// Run は初回起動時のデータ投入。
// 商品と配送オプションはテーブルが空のときだけ入れる。
func Run(ctx context.Context, db *gorm.DB, credRepo repo.AdminCredentialRepository, adminPassword string) error {
	if err := seedProducts(ctx, db); err != nil {
		return err
	}
	if err := seedShippingOptions(ctx, db); err != nil {
		return err
	}
	return seedAdminCredential(ctx, credRepo, adminPassword)
}

func seedProducts(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).Model(&model.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	products := sampleProducts()
	return db.WithContext(ctx).Create(&products).Error
}

func seedShippingOptions(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).Model(&model.ShippingOption{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	options := defaultShippingOptions()
	return db.WithContext(ctx).Create(&options).Error
}

// 管理者パスワードはハッシュだけ保存する。既にあれば触らない。
func seedAdminCredential(ctx context.Context, credRepo repo.AdminCredentialRepository, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return err
	}
	return credRepo.EnsureExists(ctx, string(hash))
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func priceP(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func defaultShippingOptions() []model.ShippingOption {
	return []model.ShippingOption{
		{
			Name:           "Standard Shipping",
			Cost:           price("5.99"),
			EstimatedDays:  "5-7",
			MinOrderAmount: priceP("0"),
			IsActive:       true,
		},
		{
			Name:           "Express Shipping",
			Cost:           price("12.99"),
			EstimatedDays:  "2-3",
			MinOrderAmount: priceP("0"),
			IsActive:       true,
		},
		{
			Name:           "Free Shipping",
			Cost:           price("0"),
			EstimatedDays:  "7-10",
			MinOrderAmount: priceP("50"),
			IsActive:       true,
		},
	}
}

func sampleProducts() []model.Product {
	return []model.Product{
		{
			Name:        "Cuddly Brown Bear",
			Description: "A super soft and huggable brown teddy bear perfect for bedtime cuddles. Made with premium plush material that's gentle on sensitive skin.",
			Price:       price("29.99"),
			Category:    "Bears",
			AgeGroup:    "0-10 years",
			Material:    "Premium Plush, Polyester",
			Size:        "12 inches",
			Images: []string{
				"https://images.unsplash.com/photo-1541781774459-bb2af2f05b55?w=800&h=800&fit=crop",
				"https://images.unsplash.com/photo-1601925260368-ae2f83f341ce?w=800&h=800&fit=crop",
				"https://images.unsplash.com/photo-1534361960057-19889dbdf1bb?w=800&h=800&fit=crop",
			},
			Features:         []string{"Washable", "Hypoallergenic", "Handmade", "CE Certified"},
			CareInstructions: "Machine wash cold, gentle cycle. Air dry. Do not bleach.",
			CharacterStory:   "Meet Barnaby, the gentle guardian of dreams. Born in a cozy forest cottage, Barnaby has spent years learning the art of comfort. With his warm embrace and soft fur, he's the perfect companion for bedtime adventures. Every night, he shares stories of magical forests and helps little ones drift into peaceful slumber. His kind eyes and gentle nature make him a trusted friend for life.",
			Badge:            "best-seller",
		},
		{
			Name:        "Fluffy White Rabbit",
			Description: "An adorable white bunny with long floppy ears and a fluffy tail. This charming rabbit is perfect for children who love soft, cuddly companions.",
			Price:       price("24.99"),
			Category:    "Rabbits",
			AgeGroup:    "0-8 years",
			Material:    "Soft Velvet, Cotton Filling",
			Size:        "10 inches",
			Images: []string{
				"https://images.unsplash.com/photo-1518791841217-8f162f1e1131?w=800&h=800&fit=crop",
				"https://images.unsplash.com/photo-1522770179533-24471fcdba45?w=800&h=800&fit=crop",
				"https://images.unsplash.com/photo-1518791841217-8f162f1e1131?w=800&h=800&fit=crop",
			},
			Features:         []string{"Eco-friendly", "Washable", "Soft & Safe", "Perfect Gift"},
			CareInstructions: "Hand wash recommended. Air dry in shade.",
			CharacterStory:   "Luna the rabbit is a graceful explorer of moonlit gardens. With her silky white fur that glows in the starlight, she brings magic to every moment. Luna loves to hop through fields of wildflowers and dance under the stars. She teaches children about the beauty of nature and the wonder of nighttime adventures. Her gentle spirit and playful nature make her a beloved companion.",
			Badge:            "new",
		},
		{
			Name:        "Playful Panda Friend",
			Description: "A cute black and white panda with a friendly smile. This lovable panda is made with extra soft materials and is perfect for playtime and bedtime.",
			Price:       price("34.99"),
			Category:    "Pandas",
			AgeGroup:    "0-12 years",
			Material:    "Premium Plush, Organic Cotton",
			Size:        "14 inches",
			Images: []string{
				"https://images.unsplash.com/photo-1528164344705-47542687000d?w=800&h=800&fit=crop",
				"https://images.unsplash.com/photo-1534567110760-2e5c8ceb3086?w=800&h=800&fit=crop",
				"https://images.unsplash.com/photo-1528164344705-47542687000d?w=800&h=800&fit=crop",
			},
			Features:         []string{"Organic Materials", "Hypoallergenic", "Durable", "CE Certified"},
			CareInstructions: "Machine wash on gentle cycle. Tumble dry low.",
			CharacterStory:   "Pippin the panda is a playful friend from the bamboo forests. With his infectious smile and boundless energy, he brings joy to every playtime. Pippin loves to tumble, play hide-and-seek, and share bamboo treats with friends. His adventurous spirit and caring heart make him the perfect playmate for children who love to explore and imagine. Every day with Pippin is a new adventure!",
		},
		{
			Name:        "Adorable Fox Plush",
			Description: "A charming orange fox with bright eyes and a bushy tail. This playful fox is perfect for imaginative play and makes a wonderful gift.",
			Price:       price("27.99"),
			Category:    "Wildlife",
			AgeGroup:    "3-12 years",
			Material:    "Soft Plush, Polyester Filling",
			Size:        "11 inches",
			Images: []string{
				"https://images.unsplash.com/photo-1517849845537-4d257902454a?w=800&h=800&fit=crop",
				"https://images.unsplash.com/photo-1518791841217-8f162f1e1131?w=800&h=800&fit=crop",
				"https://images.unsplash.com/photo-1517849845537-4d257902454a?w=800&h=800&fit=crop",
			},
			Features:         []string{"Colorful Design", "Washable", "Safe for Kids", "Handcrafted"},
			CareInstructions: "Spot clean or gentle hand wash. Air dry.",
			CharacterStory:   "Fenwick the fox is a clever and curious explorer of the enchanted woods. With his bright orange coat and twinkling eyes, he's always ready for a new adventure. Fenwick loves solving mysteries, helping friends, and discovering hidden treasures. His quick wit and kind heart make him a wonderful companion for imaginative play. Together, you'll explore magical forests and create unforgettable memories.",
		},
		{
			Name:        "Gentle Elephant Buddy",
			Description: "A sweet gray elephant with floppy ears and a friendly trunk. Made with ultra-soft materials, this elephant is perfect for comforting little ones.",
			Price:       price("32.99"),
			Category:    "Wildlife",
			AgeGroup:    "0-10 years",
			Material:    "Premium Velvet, Hypoallergenic Filling",
			Size:        "13 inches",
			Images: []string{
				"https://images.unsplash.com/photo-1534188753412-3e9336736ed7?w=800&h=800&fit=crop",
				"https://images.unsplash.com/photo-1518791841217-8f162f1e1131?w=800&h=800&fit=crop",
				"https://images.unsplash.com/photo-1534188753412-3e9336736ed7?w=800&h=800&fit=crop",
			},
			Features:         []string{"Extra Soft", "Hypoallergenic", "Washable", "Perfect Size"},
			CareInstructions: "Machine wash cold. Lay flat to dry.",
			CharacterStory:   "Ellie the elephant is a wise and gentle giant with a heart full of love. Her floppy ears are perfect for listening to secrets, and her soft trunk gives the warmest hugs. Ellie comes from a family of storytellers and loves sharing tales of faraway lands and magical journeys. Her calm presence brings comfort during difficult moments, and her playful nature brings laughter to happy times.",
		},
		{
			Name:        "Rainbow Unicorn Magic",
			Description: "A magical unicorn with a rainbow mane and tail, sparkling horn, and dreamy eyes. This enchanting friend brings joy and imagination to playtime.",
			Price:       price("39.99"),
			Category:    "Fantasy",
			AgeGroup:    "3-12 years",
			Material:    "Shimmer Plush, Polyester Filling",
			Size:        "15 inches",
			Images: []string{
				"https://images.unsplash.com/photo-1518717758536-85ae29035b6d?w=800&h=800&fit=crop",
				"https://images.unsplash.com/photo-1522770179533-24471fcdba45?w=800&h=800&fit=crop",
				"https://images.unsplash.com/photo-1518717758536-85ae29035b6d?w=800&h=800&fit=crop",
			},
			Features:         []string{"Sparkly Design", "Colorful", "Washable", "Magical Gift"},
			CareInstructions: "Hand wash recommended. Air dry to preserve sparkle.",
			CharacterStory:   "Stardust the unicorn lives in a realm of rainbows and dreams. With her shimmering rainbow mane and magical horn, she brings wonder and enchantment wherever she goes. Stardust can grant wishes, create rainbows, and make dreams come true. Her gentle magic teaches children about kindness, imagination, and believing in the impossible. Every day with Stardust is filled with sparkles and joy!",
			Badge:            "new",
		},
		{
			Name:        "Cozy Penguin Pal",
			Description: "A cute black and white penguin with a warm scarf. This friendly penguin is perfect for winter cuddles and makes a great companion for bedtime stories.",
			Price:       price("26.99"),
			Category:    "Birds",
			AgeGroup:    "0-10 years",
			Material:    "Soft Plush, Cotton Filling",
			Size:        "10 inches",
			Images: []string{
				"https://images.unsplash.com/photo-1519904981063-b0cf448d479e?w=800&h=800&fit=crop",
				"https://images.unsplash.com/photo-1518791841217-8f162f1e1131?w=800&h=800&fit=crop",
				"https://images.unsplash.com/photo-1519904981063-b0cf448d479e?w=800&h=800&fit=crop",
			},
			Features:         []string{"Winter Theme", "Washable", "Soft & Cuddly", "Perfect Gift"},
			CareInstructions: "Machine wash gentle cycle. Air dry.",
			CharacterStory:   "Penny the penguin is a cheerful friend from the snowy Antarctic. With her cozy scarf and warm heart, she brings the magic of winter to every season. Penny loves sliding on ice, building snow forts, and sharing stories of her polar adventures. Her friendly nature and winter wisdom make her the perfect companion for cozy cuddles and imaginative play. She teaches that every day is an adventure, even in the coldest weather!",
		},
		{
			Name:        "Sleepy Sloth Friend",
			Description: "A relaxed sloth with a gentle smile and long arms perfect for hugging. This peaceful friend is ideal for quiet time and relaxation.",
			Price:       price("31.99"),
			Category:    "Wildlife",
			AgeGroup:    "3-12 years",
			Material:    "Premium Plush, Memory Foam Filling",
			Size:        "12 inches",
			Images: []string{
				"https://images.unsplash.com/photo-1526318896980-cf78c088247c?w=800&h=800&fit=crop",
				"https://images.unsplash.com/photo-1534567110760-2e5c8ceb3086?w=800&h=800&fit=crop",
				"https://images.unsplash.com/photo-1526318896980-cf78c088247c?w=800&h=800&fit=crop",
			},
			Features:         []string{"Relaxing Design", "Extra Soft", "Washable", "Calming"},
			CareInstructions: "Hand wash or gentle machine wash. Air dry.",
			CharacterStory:   "Sage the sloth is the master of mindfulness and peaceful moments. With his slow, gentle movements and calming presence, he teaches children the art of taking things one step at a time. Sage loves hanging in his favorite tree, watching sunsets, and sharing quiet moments of reflection. His long arms give the most comforting hugs, and his peaceful nature helps children find calm in busy days. He's the perfect friend for quiet time and relaxation.",
		},
		{
			Name:        "Cute Koala Companion",
			Description: "An adorable gray koala with big round eyes and fluffy ears. Made with the softest materials, this koala is perfect for snuggling and comfort.",
			Price:       price("28.99"),
			Category:    "Wildlife",
			AgeGroup:    "0-10 years",
			Material:    "Ultra Soft Plush, Hypoallergenic Filling",
			Size:        "11 inches",
			Images: []string{
				"https://images.unsplash.com/photo-1534567110760-2e5c8ceb3086?w=800&h=800&fit=crop",
				"https://images.unsplash.com/photo-1518791841217-8f162f1e1131?w=800&h=800&fit=crop",
				"https://images.unsplash.com/photo-1534567110760-2e5c8ceb3086?w=800&h=800&fit=crop",
			},
			Features:         []string{"Ultra Soft", "Hypoallergenic", "Washable", "CE Certified"},
			CareInstructions: "Machine wash cold. Tumble dry low heat.",
			CharacterStory:   "Koko the koala is a gentle tree-dweller with a heart full of love. With her big, round eyes and fluffy ears, she's always ready for a cuddle. Koko lives high in the eucalyptus trees and loves to share stories of her forest home. Her calm and nurturing nature makes her the perfect companion for bedtime stories and quiet moments. She teaches children about the beauty of nature and the importance of rest.",
		},
		{
			Name:        "Happy Hippo Hugger",
			Description: "A cheerful purple hippo with a big smile and friendly eyes. This jolly friend brings laughter and joy to playtime and makes a wonderful gift.",
			Price:       price("30.99"),
			Category:    "Wildlife",
			AgeGroup:    "0-12 years",
			Material:    "Soft Plush, Polyester Filling",
			Size:        "13 inches",
			Images: []string{
				"https://images.unsplash.com/photo-1574158622682-e40e69881006?w=800&h=800&fit=crop",
				"https://images.unsplash.com/photo-1522770179533-24471fcdba45?w=800&h=800&fit=crop",
				"https://images.unsplash.com/photo-1574158622682-e40e69881006?w=800&h=800&fit=crop",
			},
			Features:         []string{"Colorful", "Washable", "Durable", "Fun Design"},
			CareInstructions: "Machine wash on gentle cycle. Air dry.",
			CharacterStory:   "Hugo the hippo is a joyful friend from the African rivers. With his big smile and playful spirit, he brings laughter and fun to every moment. Hugo loves splashing in water, playing games, and making everyone around him smile. His cheerful personality and warm hugs make him the perfect companion for playtime adventures. He teaches children about friendship, joy, and finding happiness in the simple things.",
		},
	}
}
