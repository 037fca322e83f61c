package main

import (
	"context"
	"time"

	"github.com/qosme/appGameZone-010V-Grupo3/internal/client"
	"github.com/qosme/appGameZone-010V-Grupo3/internal/config"
	"github.com/qosme/appGameZone-010V-Grupo3/internal/domain/model"
	"github.com/qosme/appGameZone-010V-Grupo3/internal/handler"
	"github.com/qosme/appGameZone-010V-Grupo3/internal/infra/db"
	infraRepo "github.com/qosme/appGameZone-010V-Grupo3/internal/infra/repository"
	"github.com/qosme/appGameZone-010V-Grupo3/internal/pubsub"
	"github.com/qosme/appGameZone-010V-Grupo3/internal/seed"
	"github.com/qosme/appGameZone-010V-Grupo3/internal/usecase"
	"github.com/qosme/appGameZone-010V-Grupo3/internal/validator"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

type jwtIssuer struct {
	secret    []byte
	accessTTL time.Duration
}

func (i *jwtIssuer) Issue(email string, isAdmin bool) (string, int, error) {
	now := time.Now()
	expiresAt := now.Add(i.accessTTL)

	claims := jwt.MapClaims{
		"sub":      email,
		"is_admin": isAdmin,
		"iat":      now.Unix(),
		"exp":      expiresAt.Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(i.secret)
	if err != nil {
		return "", 0, err
	}

	return signed, int(i.accessTTL.Seconds()), nil
}

func main() {
	//.envがあれば読む（無くてもよい）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	//DB接続
	gormDB, err := db.Connect(cfg.DBPath)
	if err != nil {
		panic(err)
	}
	if err := gormDB.AutoMigrate(
		&model.Game{},
		&model.Cart{},
		&model.CartItem{},
		&model.Order{},
		&model.OrderItem{},
		&model.User{},
	); err != nil {
		panic(err)
	}

	//Repository（GORM実装）生成
	gameRepo := infraRepo.NewGameGormRepository(gormDB)
	cartRepo := infraRepo.NewCartGormRepository(gormDB)
	cartItemRepo := infraRepo.NewCartItemGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	orderItemRepo := infraRepo.NewOrderItemGormRepository(gormDB)
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//初期カタログ投入（同じidは上書き）
	if err := gameRepo.CreateBatch(context.Background(), seed.Games()); err != nil {
		panic(err)
	}

	//usecaseに渡す部品
	idGen := &uuidGenerator{}
	clock := &realClock{}
	hub := pubsub.NewHub()
	issuer := &jwtIssuer{
		secret:    []byte(cfg.JWTSecret),
		accessTTL: 15 * time.Minute,
	}
	seedClient := client.NewUserSeedClient(cfg.SeedUsersURL)

	//Usecase生成
	catalogUC := usecase.NewCatalogUsecase(gameRepo, hub)
	cartUC := usecase.NewCartUsecase(cartRepo, cartItemRepo, gameRepo, idGen, hub)
	checkoutUC := usecase.NewCheckoutUsecase(txManager, idGen, clock, hub)
	orderUC := usecase.NewOrderUsecase(orderRepo, orderItemRepo)
	authUC := usecase.NewAuthUsecase(userRepo, validator.NewAuthValidator(userRepo), issuer)
	profileUC := usecase.NewProfileUsecase(userRepo)
	adminUserUC := usecase.NewAdminUserUsecase(userRepo, seedClient)

	//Handler生成
	e := echo.New()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	handler.NewAuthHandler(authUC).RegisterRoutes(e)
	handler.NewGameHandler(catalogUC).RegisterRoutes(e)
	handler.NewAdminGameHandler(catalogUC).RegisterRoutes(e, cfg)
	handler.NewCartHandler(cartUC).RegisterRoutes(e, cfg)
	handler.NewCheckoutHandler(checkoutUC).RegisterRoutes(e, cfg)
	handler.NewOrderHandler(orderUC).RegisterRoutes(e, cfg)
	handler.NewAdminOrderHandler(orderUC).RegisterRoutes(e, cfg)
	handler.NewProfileHandler(profileUC).RegisterRoutes(e, cfg)
	handler.NewAdminUserHandler(adminUserUC).RegisterRoutes(e, cfg)

	//Server起動
	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}
	e.Logger.Fatal(e.Start(addr))
}
