package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	CORS     CORSConfig
	Mirror   MirrorConfig
	Shop     ShopConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

type DatabaseConfig struct {
	Path string
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

// MirrorConfig locates the tabular export workbooks.
type MirrorConfig struct {
	Dir string
}

// ShopConfig is the letterhead printed on every estimation bill.
type ShopConfig struct {
	Name      string
	BillTitle string
	Address   string
	Contacts  []string
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "billing-api")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "5001")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("DB_PATH", "billing.db")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", []string{})
	viper.SetDefault("CORS_ALLOWED_METHODS", []string{})
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("MIRROR_DIR", ".")
	viper.SetDefault("SHOP_NAME", "RK JEWELLERS")
	viper.SetDefault("SHOP_BILL_TITLE", "ESTIMATION BILL")
	viper.SetDefault("SHOP_ADDRESS", "Address: MAIN ROAD, OLD BAZAR, ACHAMPET, 509375")
	viper.SetDefault("SHOP_CONTACTS", []string{"+91 9440370408", "+91 9490324969"})

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Port:  viper.GetString("APP_PORT"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		Database: DatabaseConfig{
			Path: viper.GetString("DB_PATH"),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		Mirror: MirrorConfig{
			Dir: viper.GetString("MIRROR_DIR"),
		},
		Shop: ShopConfig{
			Name:      viper.GetString("SHOP_NAME"),
			BillTitle: viper.GetString("SHOP_BILL_TITLE"),
			Address:   viper.GetString("SHOP_ADDRESS"),
			Contacts:  viper.GetStringSlice("SHOP_CONTACTS"),
		},
	}
}
