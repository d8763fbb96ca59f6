package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/x-xyz/marketclient/base/countdown"
	"github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/base/database/redisclient"
	"github.com/x-xyz/marketclient/base/env"
	"github.com/x-xyz/marketclient/base/log"
	"github.com/x-xyz/marketclient/base/metrics"
	"github.com/x-xyz/marketclient/base/tracker"
	bValidator "github.com/x-xyz/marketclient/base/validator"
	"github.com/x-xyz/marketclient/domain"
	"github.com/x-xyz/marketclient/domain/market"
	mmiddleware "github.com/x-xyz/marketclient/middleware"
	"github.com/x-xyz/marketclient/service/aptos"
	"github.com/x-xyz/marketclient/service/cache"
	"github.com/x-xyz/marketclient/service/cache/provider/compound"
	"github.com/x-xyz/marketclient/service/cache/provider/primitive"
	"github.com/x-xyz/marketclient/service/cache/provider/redis"
	"github.com/x-xyz/marketclient/service/wallet"
	asset_delivery "github.com/x-xyz/marketclient/stores/asset/delivery/http"
	asset_repository "github.com/x-xyz/marketclient/stores/asset/repository"
	auth_usecase "github.com/x-xyz/marketclient/stores/auth/usecase"
	hc_delivery "github.com/x-xyz/marketclient/stores/healthcheck/delivery/http"
	hc_repo "github.com/x-xyz/marketclient/stores/healthcheck/repository"
	hc_usecase "github.com/x-xyz/marketclient/stores/healthcheck/usecase"
	market_delivery "github.com/x-xyz/marketclient/stores/market/delivery/http"
	market_repository "github.com/x-xyz/marketclient/stores/market/repository"
	market_usecase "github.com/x-xyz/marketclient/stores/market/usecase"
	marketplace_delivery "github.com/x-xyz/marketclient/stores/marketplace/delivery/http"
	marketplace_repository "github.com/x-xyz/marketclient/stores/marketplace/repository"
	marketplace_usecase "github.com/x-xyz/marketclient/stores/marketplace/usecase"
	offer_repository "github.com/x-xyz/marketclient/stores/offer/repository"
	tx_delivery "github.com/x-xyz/marketclient/stores/transaction/delivery/http"
	tx_usecase "github.com/x-xyz/marketclient/stores/transaction/usecase"
)

func init() {
	pflag.String("config", "infra/configs/marketd/config.yaml", "config file")
	pflag.Int("port", 0, "http port, overrides the config")
	pflag.Bool("print-token", false, "print a bearer token for the wallet account and exit")
	pflag.Parse()
	viper.BindPFlags(pflag.CommandLine)

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	file := viper.GetString("config")
	if f := env.ConfigFile(); f != "" {
		file = f
	}
	viper.SetConfigType("yaml")
	viper.SetConfigFile(file)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if err := log.Init(viper.GetString("log_level")); err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	context, cancel := ctx.WithCancel(ctx.Background())
	defer cancel()

	marketAddr := domain.Address(viper.GetString("marketplace.address")).Canonical()

	// init ledger client
	context.Info("init ledger client")
	ledgerClient := aptos.NewClient(&aptos.ClientCfg{
		HttpClient: http.Client{},
		Endpoint:   viper.GetString("ledger.endpoint"),
		Timeout:    viper.GetDuration("ledger.timeout"),
	})
	ledger := aptos.NewThrottled(ledgerClient, viper.GetInt("ledger.concurrency"))

	ledgerClock := tracker.NewLedgerClock(&tracker.LedgerClockCfg{
		Ledger:   ledger,
		Interval: viper.GetDuration("clock.interval"),
	})
	if err := ledgerClock.Sync(context); err != nil {
		context.WithField("err", err).Warn("ledgerClock.Sync failed, using local time")
	}

	// init wallet
	context.Info("init wallet")
	w, err := wallet.NewLocal(&wallet.LocalCfg{
		Client:       ledger,
		PrivateKey:   viper.GetString("wallet.private_key"),
		Address:      domain.Address(viper.GetString("wallet.address")),
		MaxGasAmount: viper.GetUint64("wallet.max_gas_amount"),
		GasUnitPrice: viper.GetUint64("wallet.gas_unit_price"),
		Expiration:   viper.GetDuration("wallet.expiration"),
		Clock:        ledgerClock,
	})
	if err != nil {
		context.WithField("err", err).Error("wallet.NewLocal failed")
		os.Exit(1)
	}
	account := *w.Account()

	auth := auth_usecase.New(&auth_usecase.AuthUseCaseCfg{
		JwtSecret: viper.GetString("jwt_secret"),
		Account:   account,
	})
	if viper.GetBool("print-token") {
		tkn, err := auth.SignToken(context, account)
		if err != nil {
			context.WithField("err", err).Error("auth.SignToken failed")
			os.Exit(1)
		}
		fmt.Println(tkn)
		return
	}

	// init caches
	// read caches are shared between replicas when redis is configured
	readCache := primitive.NewPrimitive("read", viper.GetInt("cache.size_mb"))
	if uri := viper.GetString("redis.uri"); uri != "" {
		context.Info("init redis cache")
		pool, err := redisclient.ConnectRedis(context, uri, viper.GetString("redis.password"), redisclient.RedisParam{
			PoolMultiplier: viper.GetFloat64("redis.pool_multiplier"),
			Retry:          true,
		})
		if err != nil {
			context.WithField("err", err).Error("redisclient.ConnectRedis failed")
			os.Exit(1)
		}
		defer pool.Close()
		readCache = compound.NewCompound(readCache, redis.NewRedis(pool))
	}
	mmiddleware.SetupCache(readCache)

	store := market_repository.NewStore()
	assetRepo := asset_repository.NewRepo(&asset_repository.RepoCfg{
		Ledger:      ledger,
		Market:      marketAddr,
		Concurrency: viper.GetInt("ledger.concurrency"),
		Gifts: cache.New(cache.ServiceConfig{
			Ttl:   time.Minute,
			Pfx:   "gift",
			Cache: readCache,
		}),
		Metrics: metrics.New("asset"),
	})
	offerRepo := offer_repository.NewRepo(&offer_repository.RepoCfg{
		Ledger:      ledger,
		Market:      marketAddr,
		Concurrency: viper.GetInt("ledger.concurrency"),
		Metrics:     metrics.New("offer"),
	})
	marketplace := marketplace_usecase.NewMarketplaceUseCase(&marketplace_usecase.MarketplaceUseCaseCfg{
		Repo:  marketplace_repository.NewRepo(ledger, marketAddr),
		Owner: marketAddr,
		Cache: cache.New(cache.ServiceConfig{
			Ttl:   marketplace_usecase.StatsTtl,
			Pfx:   "stats",
			Cache: readCache,
		}),
	})

	// syncer is assigned below, the watcher only fires after Start
	var syncer *tracker.SyncManager
	watcher := countdown.NewWatcher(&countdown.WatcherCfg{
		Clock: ledgerClock,
		OnExpire: func(c ctx.Ctx, e countdown.Entry) {
			scope, err := market_usecase.ScopeOfCountdownKey(e.Key)
			if err != nil {
				c.WithFields(log.Fields{"err": err, "key": e.Key}).Warn("ScopeOfCountdownKey failed")
				return
			}
			syncer.Trigger(scope)
		},
	})
	marketUC := market_usecase.NewMarketUseCase(&market_usecase.MarketUseCaseCfg{
		Store:   store,
		Assets:  assetRepo,
		Offers:  offerRepo,
		Clock:   ledgerClock,
		Watcher: watcher,
		Metrics: metrics.New("sync"),
	})
	syncer = tracker.NewSyncManager(&tracker.SyncManagerCfg{
		Usecase: marketUC,
		Intervals: map[market.ScopeKind]time.Duration{
			market.ScopeMarket: viper.GetDuration("sync.market_interval"),
			market.ScopeOwned:  viper.GetDuration("sync.owned_interval"),
			market.ScopeOffers: viper.GetDuration("sync.offers_interval"),
		},
		IdleTimeout: viper.GetDuration("sync.idle_timeout"),
		MaxScopes:   viper.GetInt("sync.max_scopes"),
		Clock:       ledgerClock,
	})

	txs := tx_usecase.NewTxUseCase(&tx_usecase.TxUseCaseCfg{
		Market:          marketUC,
		Marketplace:     marketplace,
		Ledger:          ledger,
		Wallet:          w,
		Clock:           ledgerClock,
		Metrics:         metrics.New("tx"),
		ConfirmTimeout:  viper.GetDuration("tx.confirm_timeout"),
		RefetchAttempts: viper.GetInt("tx.refetch_attempts"),
		RefetchBackoff:  viper.GetDuration("tx.refetch_backoff"),
	})
	sweeper := tracker.NewSweeper(&tracker.SweeperCfg{
		Market:   marketUC,
		Tx:       txs,
		Wallet:   w,
		Interval: viper.GetDuration("sweeper.interval"),
	})

	hc := hc_usecase.New(hc_repo.New(ledger, readCache))

	// start background loops
	syncer.Mount(context, market.Market())
	syncer.Start(context)
	watcher.Start(context)
	ledgerClock.Start(context)
	sweeper.Start(context)

	// init echo
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	middL := mmiddleware.InitMiddleware(auth)
	e.Use(middL.AddContext())
	e.Use(middL.ResponseLogger())
	e.Use(middL.CORS())
	e.Validator = bValidator.NewCustomValidator(bValidator.New())

	hc_delivery.New(e, hc)
	market_delivery.New(e, marketUC, syncer, ledgerClock)
	asset_delivery.New(e, assetRepo)
	marketplace_delivery.New(e, marketplace)
	tx_delivery.New(e, txs, middL)

	go func() {
		addr := fmt.Sprintf(":%d", viper.GetInt("port"))
		context.WithFields(log.Fields{"addr": addr, "app": env.AppName(), "market": marketAddr}).Info("start server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")

	shutdownCtx, shutdownCancel := ctx.WithTimeout(ctx.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	}

	cancel()
	sweeper.Wait()
	ledgerClock.Wait()
	watcher.Wait()
	syncer.Wait()
	w.Disconnect()
	log.Log().Info("shutdown server successfully")
}
