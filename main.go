package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"googlemaps.github.io/maps"

	"github.com/RichardKnop/machinery/v1"
	machineryconf "github.com/RichardKnop/machinery/v1/config"
	"github.com/getsentry/sentry-go"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/uber-go/tally"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/sabi-health/sabi-api/api"
	"github.com/sabi-health/sabi-api/background"
	"github.com/sabi-health/sabi-api/consts"
	"github.com/sabi-health/sabi-api/dispatch"
	"github.com/sabi-health/sabi-api/external/gemini"
	"github.com/sabi-health/sabi-api/external/openmeteo"
	"github.com/sabi-health/sabi-api/external/twilio"
	"github.com/sabi-health/sabi-api/external/yarngpt"
	"github.com/sabi-health/sabi-api/geo"
	"github.com/sabi-health/sabi-api/message"
	"github.com/sabi-health/sabi-api/schema"
	"github.com/sabi-health/sabi-api/store"
	"github.com/sabi-health/sabi-api/utils"
	"github.com/sabi-health/sabi-api/weather"
)

var (
	server *api.Server
	ormDB  *gorm.DB
)

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stdout)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
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
	viper.SetEnvPrefix("sabi")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	var configFile string
	var runWorker bool

	initialCtx, cancelInitialization := context.WithCancel(context.Background())

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("Server is preparing to shutdown")

		if initialCtx != nil && cancelInitialization != nil {
			log.Info("Cancelling initialization")
			cancelInitialization()
			<-initialCtx.Done()
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if server != nil {
			log.Info("Shutdown api server")
			if err := server.Shutdown(ctx); err != nil {
				log.Error("Server Shutdown:", err)
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
	flag.BoolVar(&runWorker, "w", false, "run the background worker instead of the api server")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	// Sentry
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
		Dist:             viper.GetString("sentry.dist"),
	}); err != nil {
		log.Error(err)
	}
	log.WithField("prefix", "init").Info("Initialized sentry")

	// Voice prompt catalogs
	utils.InitI18NBundle()
	log.WithField("prefix", "init").Info("Loaded voice prompt catalogs")

	// Init redis
	var conf = &machineryconf.Config{
		Broker:        viper.GetString("redis.conn"),
		DefaultQueue:  "sabi_background",
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
	ormDB.AutoMigrate(
		&schema.User{},
		&schema.Log{},
		&schema.SymptomRecord{},
		&schema.NotificationMessage{},
	)

	// initialise mongodb connections
	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	opts.SetMaxPoolSize(viper.GetUint64("mongo.pool"))
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		log.Panicf("create mongo client with error: %s", err)
	}

	err = mongoClient.Connect(context.Background())
	if nil != err {
		log.Panicf("connect mongo database with error: %s", err)
	}

	mongoStore := store.NewMongoStore(mongoClient, viper.GetString("mongo.database"))

	indexer := schema.NewMongoDBIndexer(viper.GetString("mongo.conn"), viper.GetString("mongo.database"))
	indexer.IndexAll()
	if err := mongoStore.SeedFacilities(consts.AllDefaultFacilities()); err != nil {
		log.WithField("prefix", "init").Errorf("seed facilities: %s", err)
	}

	// Geocoding falls back to the static gazetteer when no key is set
	// or the lookup fails.
	if mapKey := viper.GetString("maps.key"); mapKey != "" {
		mapClient, err := maps.NewClient(maps.WithAPIKey(mapKey))
		if err != nil {
			log.Panic(err)
		}
		geo.SetLocationResolver(geo.NewMultipleLocationResolver(
			geo.NewGeocodingLocationResolver(mapClient),
			geo.NewStaticLocationResolver(),
		))
		log.WithField("prefix", "init").Info("Initialized geocoding resolver")
	} else {
		geo.SetLocationResolver(geo.NewStaticLocationResolver())
	}

	sabiStore := store.NewSabiStore(ormDB)

	mockRain := weather.NewMockRainSwitch()
	gauge := weather.NewGauge(openmeteo.New(viper.GetString("openmeteo.endpoint")), mockRain)

	var generator message.Generator
	if key := viper.GetString("gemini.key"); key != "" {
		generator = gemini.New(key, viper.GetString("gemini.endpoint"))
	}
	composer := message.NewComposer(generator)

	var synthesizer yarngpt.Synthesizer
	if key := viper.GetString("yarngpt.key"); key != "" {
		synthesizer = yarngpt.New(
			key,
			viper.GetString("yarngpt.endpoint"),
			viper.GetString("audio.dir"),
			viper.GetString("server.domain"),
		)
	}

	var caller twilio.Caller
	if sid := viper.GetString("twilio.sid"); sid != "" {
		caller = twilio.New(
			sid,
			viper.GetString("twilio.token"),
			viper.GetString("twilio.from"),
			viper.GetString("twilio.endpoint"),
		)
	}

	dispatcher := dispatch.NewDispatcher(
		sabiStore,
		composer,
		synthesizer,
		caller,
		viper.GetString("server.domain"),
		tally.NoopScope,
	)

	manager := background.New(sabiStore, dispatcher, gauge, machineryServer)
	if err := manager.RegisterTasks(); err != nil {
		log.Panic(err)
	}

	if runWorker {
		initialCtx = nil
		cancelInitialization = nil

		log.WithField("prefix", "init").Info("Starting background worker")
		if _, err := manager.StartScheduler(); err != nil {
			log.Panic(err)
		}
		log.Fatal(manager.RunWorker())
	}

	// Init http server
	server = api.NewServer(
		sabiStore,
		mongoStore,
		dispatcher,
		gauge,
		mockRain,
		tally.NoopScope,
	)
	log.WithField("prefix", "init").Info("Initialized http server")

	// Remove initial context
	initialCtx = nil
	cancelInitialization = nil

	log.Fatal(server.Run(":" + viper.GetString("server.port")))
}
