package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fluwatch/fluwatch-api/share/geojson"
	"github.com/fluwatch/fluwatch-api/store"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("fluwatch")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.SetDefault("mongo.database", "fluwatch")
}

func main() {
	var file, property string
	flag.StringVar(&file, "f", "wilayah.json", "geojson file of the neighbourhoods")
	flag.StringVar(&property, "p", "nama", "feature property holding the name")
	flag.Parse()

	ctx := context.Background()
	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	client, err := mongo.NewClient(opts)
	if err != nil {
		panic(err)
	}
	if err := client.Connect(ctx); err != nil {
		panic(err)
	}

	mongoStore := store.NewMongoStore(client, viper.GetString("mongo.database"))
	defer mongoStore.Close()

	count, err := geojson.ImportWilayah(mongoStore, file, property)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%d wilayah imported from %s\n", count, file)
}
