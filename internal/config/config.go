package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App struct {
		Port string `mapstructure:"port"`
		Env  string `mapstructure:"env"`
	} `mapstructure:"app"`
	Store struct {
		Path string `mapstructure:"path"`
	} `mapstructure:"store"`
	Publish struct {
		Dir string `mapstructure:"dir"`
	} `mapstructure:"publish"`
	Sync struct {
		URL string `mapstructure:"url"`
	} `mapstructure:"sync"`
	Redis struct {
		Addr     string `mapstructure:"addr"`
		Password string `mapstructure:"password"`
	} `mapstructure:"redis"`
	Kafka struct {
		Brokers []string `mapstructure:"brokers"`
	} `mapstructure:"kafka"`
	Cloudinary struct {
		CloudName string `mapstructure:"cloud_name"`
		ApiKey    string `mapstructure:"api_key"`
		ApiSecret string `mapstructure:"api_secret"`
	} `mapstructure:"cloudinary"`
	Contact struct {
		Endpoint string `mapstructure:"endpoint"`
		RelayURL string `mapstructure:"relay_url"`
		Email    string `mapstructure:"email"`
	} `mapstructure:"contact"`
}

func LoadConfig() (cfg Config, err error) {

	err = godotenv.Load()
	if err != nil {
		log.Println("warning: .env file not found, use default.")
	}

	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	if err = viper.ReadInConfig(); err != nil {
		log.Printf("note: config.yaml not found, read .env only. Error: %v", err)
	}

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.BindEnv("app.port", "APP_PORT")
	viper.BindEnv("app.env", "APP_ENV")
	viper.BindEnv("store.path", "STORE_PATH")
	viper.BindEnv("publish.dir", "PUBLISH_DIR")
	viper.BindEnv("sync.url", "SYNC_URL")
	viper.BindEnv("redis.addr", "REDIS_ADDR")
	viper.BindEnv("redis.password", "REDIS_PASSWORD")
	viper.BindEnv("kafka.brokers", "KAFKA_BROKERS")

	viper.BindEnv("cloudinary.cloud_name", "CLOUDINARY_CLOUD_NAME")
	viper.BindEnv("cloudinary.api_key", "CLOUDINARY_API_KEY")
	viper.BindEnv("cloudinary.api_secret", "CLOUDINARY_API_SECRET")

	viper.BindEnv("contact.endpoint", "CONTACT_ENDPOINT")
	viper.BindEnv("contact.relay_url", "CONTACT_RELAY_URL")
	viper.BindEnv("contact.email", "CONTACT_EMAIL")

	viper.SetDefault("app.port", "8080")
	viper.SetDefault("store.path", "data/portfolio-store.json")
	viper.SetDefault("publish.dir", "public/data")

	err = viper.Unmarshal(&cfg)
	return
}
