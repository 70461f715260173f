package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fluwatch/fluwatch-api/schema"
	"github.com/fluwatch/fluwatch-api/store"
)

func loadConfig(file string) {
	viper.SetDefault("mongo.database", "fluwatch")

	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		fmt.Println("No config file. Read config from env.")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("fluwatch")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

// statements run after the automatic migration. Every statement can be
// run again on a migrated database.
var statements = []string{
	`ALTER TABLE laporan_influenza ALTER COLUMN nama_wilayah TYPE varchar(255)`,
	`ALTER TABLE laporan_influenza DROP CONSTRAINT IF EXISTS laporan_keparahan_check`,
	`ALTER TABLE laporan_influenza ADD CONSTRAINT laporan_keparahan_check
		CHECK (tingkat_keparahan BETWEEN 1 AND 10)`,
	`ALTER TABLE laporan_influenza DROP CONSTRAINT IF EXISTS laporan_durasi_check`,
	`ALTER TABLE laporan_influenza ADD CONSTRAINT laporan_durasi_check
		CHECK (durasi_hari IS NULL OR durasi_hari BETWEEN 1 AND 30)`,
	`ALTER TABLE laporan_influenza DROP CONSTRAINT IF EXISTS laporan_usia_check`,
	`ALTER TABLE laporan_influenza ADD CONSTRAINT laporan_usia_check
		CHECK (kelompok_usia IN ('anak','remaja','dewasa','lansia'))`,
	`ALTER TABLE pengguna DROP CONSTRAINT IF EXISTS pengguna_role_check`,
	`ALTER TABLE pengguna ADD CONSTRAINT pengguna_role_check
		CHECK (role IN ('pengguna','admin'))`,
	`CREATE INDEX IF NOT EXISTS idx_laporan_lat_lng ON laporan_influenza (lat, lng)`,
	`CREATE INDEX IF NOT EXISTS idx_laporan_ip_hash ON laporan_influenza (ip_hash)`,
}

func main() {
	var configFile string
	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)

	db, err := gorm.Open("postgres", viper.GetString("orm.conn"))
	if err != nil {
		panic(err)
	}
	defer db.Close()

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		panic(err)
	}

	if err := db.AutoMigrate(
		&schema.Pengguna{},
		&schema.Laporan{},
	).Error; err != nil {
		panic(err)
	}

	// reports outlive the account which sent them
	if err := db.Model(&schema.Laporan{}).
		AddForeignKey("user_id", schema.PenggunaTable+"(id)", "SET NULL", "CASCADE").Error; err != nil {
		fmt.Println("foreign key user_id: ", err)
	}

	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			panic(err)
		}
	}
	fmt.Println("postgres schema is ready")

	schema.NewMongoDBIndexer(viper.GetString("mongo.conn"), viper.GetString("mongo.database")).IndexAll()
	fmt.Println("mongo indexes are ready")

	if err := migrateWilayah(); err != nil {
		panic(err)
	}
}

func migrateWilayah() error {
	ctx := context.Background()
	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	opts.SetMaxPoolSize(1)
	client, err := mongo.NewClient(opts)
	if err != nil {
		return err
	}
	if err := client.Connect(ctx); err != nil {
		return err
	}

	mongoStore := store.NewMongoStore(client, viper.GetString("mongo.database"))
	defer mongoStore.Close()

	wilayah := make([]schema.Wilayah, 0, len(schema.DaftarKluster))
	for _, k := range schema.DaftarKluster {
		wilayah = append(wilayah, k.Wilayah())
	}

	fmt.Println("initialize wilayah collection")
	return mongoStore.UpsertWilayah(wilayah)
}
