package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/wyfcoding/pkg/cache"
	"github.com/wyfcoding/pkg/config"
	"github.com/wyfcoding/pkg/database"
	"github.com/wyfcoding/pkg/logging"
	"github.com/wyfcoding/pkg/metrics"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	catalogapp "github.com/wyfcoding/groceryplatform/internal/catalog/application"
	catalogdomain "github.com/wyfcoding/groceryplatform/internal/catalog/domain"
	catalogmysql "github.com/wyfcoding/groceryplatform/internal/catalog/infrastructure/persistence/mysql"
	cataloghttp "github.com/wyfcoding/groceryplatform/internal/catalog/interfaces/http"
	inventorydomain "github.com/wyfcoding/groceryplatform/internal/inventory/domain"
	orderapp "github.com/wyfcoding/groceryplatform/internal/order/application"
	ordermemory "github.com/wyfcoding/groceryplatform/internal/order/infrastructure/persistence/memory"
	"github.com/wyfcoding/groceryplatform/internal/order/infrastructure/messaging"
	orderhttp "github.com/wyfcoding/groceryplatform/internal/order/interfaces/http"
	userapp "github.com/wyfcoding/groceryplatform/internal/user/application"
	usermysql "github.com/wyfcoding/groceryplatform/internal/user/infrastructure/persistence/mysql"
	userredis "github.com/wyfcoding/groceryplatform/internal/user/infrastructure/persistence/redis"
	userhttp "github.com/wyfcoding/groceryplatform/internal/user/interfaces/http"
)

var configPath = flag.String("config", "configs/server/config.toml", "config file path")

// Config extends the shared service config with grocery-specific settings.
type Config struct {
	config.Config `mapstructure:",squash"`
	Grocery       GroceryConfig `mapstructure:"grocery"`
}

type GroceryConfig struct {
	KafkaBrokers []string `mapstructure:"kafka_brokers"`
	EventTopic   string   `mapstructure:"event_topic"`
}

func main() {
	flag.Parse()

	var cfg Config
	if err := config.Load(*configPath, &cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	logCfg := &logging.Config{Service: cfg.Server.Name, Level: cfg.Log.Level}
	logger := logging.NewFromConfig(logCfg)
	slog.SetDefault(logger.Logger)

	metricsImpl := metrics.NewMetrics(cfg.Server.Name)

	db, err := database.NewDB(cfg.Data.Database, cfg.CircuitBreaker, logger, metricsImpl)
	if err != nil {
		slog.Error("failed to connect database", "error", err)
		os.Exit(1)
	}
	if cfg.Server.Environment == "dev" {
		if err := db.RawDB().AutoMigrate(&catalogdomain.Product{}, &usermysql.CustomerModel{}); err != nil {
			slog.Error("failed to migrate database", "error", err)
		}
	}

	redisCache, err := cache.NewRedisCache(&cfg.Data.Redis, cfg.CircuitBreaker, logger, metricsImpl)
	if err != nil {
		slog.Error("failed to init redis", "error", err)
		os.Exit(1)
	}

	// Repositories. The catalog and credentials persist; the order ledger is
	// in-memory on purpose: pending carts do not survive a restart.
	productRepo := catalogmysql.NewProductRepository(db.RawDB())
	credRepo := usermysql.NewCredentialRepository(db.RawDB())
	sessionRepo := userredis.NewSessionRepository(redisCache.GetClient())
	ledger := ordermemory.NewOrderLedger()

	publisher := messaging.NewKafkaEventPublisher(cfg.Grocery.KafkaBrokers, cfg.Grocery.EventTopic)
	defer publisher.Close()

	// Application services.
	stock := inventorydomain.NewStockManager(productRepo)
	catalogSvc := catalogapp.NewCatalogApplicationService(productRepo)
	orderSvc := orderapp.NewOrderApplicationService(stock, ledger, publisher)
	authSvc := userapp.NewAuthApplicationService(credRepo, sessionRepo)

	// Interface layer.
	grpcSrv := grpc.NewServer()
	healthpb.RegisterHealthServer(grpcSrv, health.NewServer())
	reflection.Register(grpcSrv)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	cataloghttp.NewCatalogHandler(catalogSvc).RegisterRoutes(r.Group(""))
	orderhttp.NewOrderHandler(orderSvc).RegisterRoutes(r.Group(""))
	userhttp.NewAuthHandler(authSvc).RegisterRoutes(r.Group(""))

	g, ctx := errgroup.WithContext(context.Background())

	g.Go(func() error {
		addr := fmt.Sprintf(":%d", cfg.Server.GRPC.Port)
		lis, err := net.Listen("tcp", addr)
		if err != nil {
			return err
		}
		slog.Info("gRPC server starting", "addr", addr)
		return grpcSrv.Serve(lis)
	})

	g.Go(func() error {
		addr := fmt.Sprintf(":%d", cfg.Server.HTTP.Port)
		server := &http.Server{Addr: addr, Handler: r}
		slog.Info("HTTP server starting", "addr", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		select {
		case <-quit:
			slog.Info("shutting down servers...")
		case <-ctx.Done():
			slog.Info("context cancelled, shutting down...")
		}
		grpcSrv.GracefulStop()
		return nil
	})

	if err := g.Wait(); err != nil {
		slog.Error("server exited with error", "error", err)
	}
}
