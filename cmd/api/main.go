package main

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/joho/godotenv"

	"cuddlecrafts/internal/config"
	"cuddlecrafts/internal/domain/model"
	"cuddlecrafts/internal/handler"
	"cuddlecrafts/internal/infra/cache"
	"cuddlecrafts/internal/infra/db"
	"cuddlecrafts/internal/infra/event"
	"cuddlecrafts/internal/infra/image"
	infraRepo "cuddlecrafts/internal/infra/repository"
	repo "cuddlecrafts/internal/repository"
	"cuddlecrafts/internal/seed"
	"cuddlecrafts/internal/server"
	"cuddlecrafts/internal/usecase"
	"cuddlecrafts/internal/validator"
)

type jwtIssuer struct {
	secret []byte
	ttl    time.Duration
}

func (i *jwtIssuer) Issue(now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(i.ttl)

	claims := jwt.MapClaims{
		"role": "admin",
		"iat":  now.Unix(),
		"exp":  expiresAt.Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

func main() {
	// .envは無くても動く
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	//DB接続
	gormDB, err := db.Connect()
	if err != nil {
		log.Fatal(err)
	}
	if err := gormDB.AutoMigrate(
		&model.Product{},
		&model.CartItem{},
		&model.Coupon{},
		&model.ShippingOption{},
		&model.Order{},
		&model.Review{},
		&model.AdminCredential{},
	); err != nil {
		log.Fatal(err)
	}

	//Repository（GORM実装）生成
	var productRepo repo.ProductRepository = infraRepo.NewProductGormRepository(gormDB)
	cartRepo := infraRepo.NewCartGormRepository(gormDB)
	couponRepo := infraRepo.NewCouponGormRepository(gormDB)
	shippingRepo := infraRepo.NewShippingGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	reviewRepo := infraRepo.NewReviewGormRepository(gormDB)
	credRepo := infraRepo.NewAdminCredentialGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//初期データ
	if err := seed.Run(context.Background(), gormDB, credRepo, cfg.AdminPassword); err != nil {
		log.Fatal(err)
	}

	//Redisがあれば商品読み取りをキャッシュする
	if cfg.RedisAddr != "" {
		rdb := cache.NewClient(cfg.RedisAddr)
		productRepo = cache.NewProductCacheRepository(productRepo, rdb, 10*time.Minute)
	}

	//Kafkaがあれば注文イベントを発行する
	var publisher usecase.OrderEventPublisher = event.NoopPublisher{}
	if cfg.KafkaBrokers != "" {
		producer := event.NewProducer(strings.Split(cfg.KafkaBrokers, ","), cfg.ServiceName, 256)
		producer.Start(context.Background())
		defer func() {
			producer.Close()
			producer.WaitClosed()
		}()
		publisher = producer
	}

	//Cloudinaryが無ければ画像アップロードAPIは503を返す
	var uploader usecase.ImageUploader
	if cfg.CloudinaryURL != "" {
		up, err := image.NewCloudinaryFromURL(cfg.CloudinaryURL)
		if err != nil {
			log.Fatal(err)
		}
		uploader = up
	}

	//JWT issuer
	issuer := &jwtIssuer{secret: []byte(cfg.JWTSecret), ttl: 24 * time.Hour}

	//Usecase生成
	catalogUC := usecase.NewCatalogUsecase(productRepo)
	cartUC := usecase.NewCartUsecase(cartRepo, productRepo, shippingRepo)
	couponUC := usecase.NewCouponUsecase(cartRepo, productRepo, couponRepo)
	shippingUC := usecase.NewShippingUsecase(shippingRepo)
	checkoutUC := usecase.NewCheckoutUsecase(txManager, validator.NewCheckoutValidator(), publisher)
	reviewUC := usecase.NewReviewUsecase(reviewRepo, productRepo)
	adminAuthUC := usecase.NewAdminAuthUsecase(credRepo, issuer, 12)
	adminProductUC := usecase.NewAdminProductUsecase(productRepo, uploader)
	adminOrderUC := usecase.NewAdminOrderUsecase(orderRepo)
	adminCouponUC := usecase.NewAdminCouponUsecase(couponRepo)
	adminShippingUC := usecase.NewAdminShippingUsecase(shippingRepo)

	//Server起動
	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}

	if err := server.Start(addr,
		handler.NewProductHandler(catalogUC),
		handler.NewCartHandler(cartUC),
		handler.NewCouponHandler(couponUC),
		handler.NewShippingHandler(shippingUC),
		handler.NewCheckoutHandler(checkoutUC),
		handler.NewReviewHandler(reviewUC),
		handler.NewAdminAuthHandler(adminAuthUC, cfg),
		handler.NewAdminProductHandler(adminProductUC, cfg),
		handler.NewAdminOrderHandler(adminOrderUC, cfg),
		handler.NewAdminCouponHandler(adminCouponUC, cfg),
		handler.NewAdminShippingHandler(adminShippingUC, cfg),
		handler.NewAdminReviewHandler(reviewUC, cfg),
	); err != nil {
		log.Fatal(err)
	}
}
