package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/RichardKnop/machinery/v1"
	machineryconf "github.com/RichardKnop/machinery/v1/config"
	"github.com/getsentry/sentry-go"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/fluwatch/fluwatch-api/api"
	"github.com/fluwatch/fluwatch-api/consts"
	"github.com/fluwatch/fluwatch-api/external/cadence"
	"github.com/fluwatch/fluwatch-api/external/googleauth"
	"github.com/fluwatch/fluwatch-api/external/openrouter"
	"github.com/fluwatch/fluwatch-api/store"
	"github.com/fluwatch/fluwatch-api/utils"
)

var (
	server      *api.Server
	ormDB       *gorm.DB
	mongoClient *mongo.Client
)

// initGate holds back the shutdown handler while main is still
// initializing. abort cancels an unfinished initialization and waits for
// main to give up the gate.
type initGate struct {
	mu       sync.Mutex
	finished int32
	cancel   context.CancelFunc
}

func newInitGate(parent context.Context) (context.Context, *initGate) {
	ctx, cancel := context.WithCancel(parent)
	g := &initGate{cancel: cancel}
	g.mu.Lock()
	return ctx, g
}

func (g *initGate) done() {
	atomic.StoreInt32(&g.finished, 1)
	g.mu.Unlock()
}

// abort reports whether the initialization was still running
func (g *initGate) abort() bool {
	running := atomic.LoadInt32(&g.finished) == 0
	if running {
		g.cancel()
	}
	g.mu.Lock()
	return running
}

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

	var output io.Writer = os.Stdout
	if file := viper.GetString("log.file"); file != "" {
		output = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   file,
			MaxSize:    viper.GetInt("log.size"),
			MaxBackups: viper.GetInt("log.count"),
			Compress:   true,
		})
	}
	log.SetOutput(output)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func loadConfig(file string) {
	viper.SetDefault("server.port", "5000")
	viper.SetDefault("mongo.database", "fluwatch")
	viper.SetDefault("i18n.dir", "i18n")
	viper.SetDefault("jwt.expire", consts.DefaultJWTExpire)
	viper.SetDefault("openrouter.url", openrouter.DefaultURL)
	viper.SetDefault("openrouter.model", openrouter.DefaultModel)

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

func main() {
	var configFile string

	initialCtx, gate := newInitGate(context.Background())

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("Server is preparing to shutdown")

		if gate.abort() {
			log.Info("Cancelled initialization")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if server != nil {
			log.Info("Shutdown api server")
			if err := server.Shutdown(ctx); err != nil {
				log.Error("Server Shutdown:", err)
			}
		}

		if mongoClient != nil {
			log.Info("Disconnecting mongo client")
			if err := mongoClient.Disconnect(ctx); err != nil {
				log.Error(err)
			}
		}

		if ormDB != nil {
			log.Info("Shutting down db store")
			if err := ormDB.Close(); err != nil {
				log.Error(err)
			}
		}

		os.Exit(1)
	}()

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	// Sentry
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
		Dist:             viper.GetString("sentry.dist"),
		Release:          viper.GetString("server.version"),
	}); err != nil {
		log.Error(err)
	}
	log.WithField("prefix", "init").Info("Initialized sentry")

	utils.InitI18NBundle()
	log.WithField("prefix", "init").Info("Loaded i18n bundle")

	jwtSecret := viper.GetString("jwt.secret")
	if jwtSecret == "" {
		log.Panic("jwt.secret is required")
	}

	// Init redis
	var conf = &machineryconf.Config{
		Broker:        viper.GetString("redis.conn"),
		DefaultQueue:  consts.BackgroundQueue,
		ResultBackend: viper.GetString("redis.conn"),
	}
	machineryServer, err := machinery.NewServer(conf)
	if err != nil {
		log.Panic(err)
	}

	ormDB, err = gorm.Open("postgres", viper.GetString("orm.conn"))
	if err != nil {
		log.Panic(err)
	}

	// initialise mongodb connections
	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	opts.SetMaxPoolSize(viper.GetUint64("mongo.pool"))
	mongoClient, err = mongo.NewClient(opts)
	if nil != err {
		log.Panicf("create mongo client with error: %s", err)
	}

	err = mongoClient.Connect(initialCtx)
	if nil != err {
		log.Panicf("connect mongo database with error: %s", err)
	}

	var cadenceClient cadence.WorkflowStarter
	if hostPort := viper.GetString("cadence.conn"); hostPort != "" {
		cc, err := cadence.NewClient(hostPort, viper.GetString("cadence.domain"))
		if err != nil {
			log.Panic(err)
		}
		cadenceClient = cc
		log.WithField("prefix", "init").Info("Initialized cadence client")
	}

	ai := openrouter.New(
		viper.GetString("openrouter.key"),
		viper.GetString("openrouter.url"),
		viper.GetString("openrouter.model"),
		viper.GetString("app.url"),
	)
	if !ai.Configured() {
		log.WithField("prefix", "init").Warn("openrouter key is not set, analisis is disabled")
	}

	// Init http server
	server = api.NewServer(
		store.NewFluWatchStore(ormDB),
		store.NewMongoStore(mongoClient, viper.GetString("mongo.database")),
		jwtSecret,
		ai,
		googleauth.New(viper.GetString("google.client_id")),
		machineryServer,
		cadenceClient)
	log.WithField("prefix", "init").Info("Initialized http server")

	gate.done()

	log.Fatal(server.Run(":" + viper.GetString("server.port")))
}
