package appcontext

import (
	"context"
	"log"
	"time"

	"github.com/RoyceAzure/lab/stadiumorder/internal/config"
	"github.com/RoyceAzure/lab/stadiumorder/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/stadiumorder/internal/infra/repository/redis_decorator"
	"github.com/RoyceAzure/lab/stadiumorder/internal/infra/repository/redis_repo"
	"github.com/RoyceAzure/lab/stadiumorder/internal/service"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// 快取只是read model副本, 短TTL即可, 真相永遠在db
const orderCacheTTL = 5 * time.Minute

type ApplicationContext struct {
	Cf             *config.Config
	DbConn         *gorm.DB
	DbDao          *db.DbDao
	RedisClient    *redis.Client
	CatalogRepo    db.ICatalogRepository
	OrderRepo      db.IOrderRepository
	CatalogService service.ICatalogService
	OrderService   service.IOrderService
}

func NewApplicationContext(cf *config.Config) (*ApplicationContext, error) {
	app := ApplicationContext{
		Cf: cf,
	}
	err := app.Init()

	if err != nil {
		return nil, err
	}

	return &app, nil
}

func (app *ApplicationContext) Init() error {
	err := app.setUpDbConn()
	if err != nil {
		return err
	}

	err = app.setUpDbDao()
	if err != nil {
		return err
	}

	err = app.setUpRedis()
	if err != nil {
		return err
	}

	app.setUpRepos()
	app.setUpServices()

	return nil
}

func (app *ApplicationContext) setUpDbConn() error {
	log.Printf("Start setup db connection")
	conn, err := db.GetDbConn(app.Cf.DbName, app.Cf.DbHost, app.Cf.DbPort, app.Cf.DbUser, app.Cf.DbPas)
	if err != nil {
		return err
	}
	app.DbConn = conn
	log.Printf("Finish setup db connection")
	return nil
}

func (app *ApplicationContext) setUpDbDao() error {
	app.DbDao = db.NewDbDao(app.DbConn)

	err := app.DbDao.InitMigrate()
	if err != nil {
		return err
	}

	if app.Cf.SeedCatalog {
		log.Printf("seeding catalog...")
		if err := app.DbDao.SeedCatalog(context.Background()); err != nil {
			return err
		}
		log.Printf("seeding catalog completed")
	}
	return nil
}

func (app *ApplicationContext) setUpRedis() error {
	if !app.Cf.EnableOrderCache {
		return nil
	}

	log.Printf("Start setup redis client")
	app.RedisClient = redis.NewClient(&redis.Options{
		Addr:     app.Cf.RedisAddr,
		Password: app.Cf.RedisPassword,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.RedisClient.Ping(ctx).Err(); err != nil {
		return err
	}
	log.Printf("Finish setup redis client")
	return nil
}

func (app *ApplicationContext) setUpRepos() {
	app.CatalogRepo = db.NewCatalogRepo(app.DbDao)

	orderRepo := db.IOrderRepository(db.NewOrderRepo(app.DbDao))
	if app.RedisClient != nil {
		orderRedisRepo := redis_repo.NewOrderRedisRepo(app.RedisClient, orderCacheTTL)
		orderRepo = redis_decorator.NewCacheAsideOrderRepo(orderRepo, orderRedisRepo)
	}
	app.OrderRepo = orderRepo
}

func (app *ApplicationContext) setUpServices() {
	app.CatalogService = service.NewCatalogService(app.CatalogRepo)
	app.OrderService = service.NewOrderService(app.OrderRepo, app.CatalogRepo, app.Cf.StrictStatusTransition)
}

func (app *ApplicationContext) Shutdown(ctx context.Context) error {
	if app.RedisClient != nil {
		if err := app.RedisClient.Close(); err != nil {
			return err
		}
	}

	if app.DbConn != nil {
		sqlDB, err := app.DbConn.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}
