package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/getsentry/sentry-go"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"googlemaps.github.io/maps"

	wilayahWorker "github.com/fluwatch/fluwatch-api/background/wilayah"
	"github.com/fluwatch/fluwatch-api/external/cadence"
	"github.com/fluwatch/fluwatch-api/geo"
	"github.com/fluwatch/fluwatch-api/store"
)

var logger *zap.Logger

func init() {
	logger = buildLogger()
}

func buildLogger() *zap.Logger {
	config := zap.NewDevelopmentConfig()
	config.Level.SetLevel(zapcore.InfoLevel)

	logger, err := config.Build()
	if err != nil {
		panic("Failed to setup logger")
	}

	return logger
}

func initSentry() {
	logger.Info("Initializing sentry")
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
		Dist:             viper.GetString("sentry.dist"),
	}); err != nil {
		logger.Panic("fail to initialize sentry", zap.Error(err))
	}
}

func loadConfig(file string) {
	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("fluwatch")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

// buildResolver chains the offline centroid lookup before the paid geocoding API
func buildResolver(mongoStore store.MongoStore) geo.WilayahResolver {
	resolvers := []geo.WilayahResolver{geo.NewMongodbResolver(mongoStore)}

	if key := viper.GetString("map.key"); key != "" {
		mapClient, err := maps.NewClient(maps.WithAPIKey(key))
		if err != nil {
			logger.Panic("create google maps client with error", zap.Error(err))
		}
		resolvers = append(resolvers, geo.NewGeocodingResolver(mapClient))
	} else {
		logger.Warn("map.key is empty, reverse geocoding is disabled")
	}

	return geo.NewMultipleResolver(resolvers...)
}

func main() {
	var configFile string
	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)
	initSentry()

	ormDB, err := gorm.Open("postgres", viper.GetString("orm.conn"))
	if err != nil {
		logger.Panic("connect postgres with error", zap.Error(err))
	}

	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	opts.SetMaxPoolSize(viper.GetUint64("mongo.pool"))
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		logger.Panic("create mongo client with error", zap.Error(err))
	}

	err = mongoClient.Connect(context.Background())
	if nil != err {
		logger.Panic("connect mongo database with error", zap.Error(err))
	}

	mongoStore := store.NewMongoStore(mongoClient, viper.GetString("mongo.database"))

	worker := wilayahWorker.NewWilayahWorker(
		viper.GetString("cadence.domain"),
		store.NewFluWatchStore(ormDB),
		buildResolver(mongoStore),
	)
	worker.Register()
	service, err := cadence.ServiceClient(viper.GetString("cadence.conn"))
	if err != nil {
		logger.Panic("connect cadence with error", zap.Error(err))
	}
	worker.Start(service, logger)
}
