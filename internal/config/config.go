package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Port                          string `mapstructure:"PORT"`
	DatabasePath                  string `mapstructure:"DATABASE_PATH"`
	JWTSecret                     string `mapstructure:"JWT_SECRET"`
	EnableCORS                    bool   `mapstructure:"ENABLE_CORS"`
	DiscordBotToken               string `mapstructure:"DISCORD_BOT_TOKEN"`
	DiscordAnnouncementsChannelID string `mapstructure:"DISCORD_ANNOUNCEMENTS_CHANNEL_ID"`
	SeedAdminPassword             string `mapstructure:"SEED_ADMIN_PASSWORD"`
	SeedStudentPassword           string `mapstructure:"SEED_STUDENT_PASSWORD"`
}

func LoadConfig() *Config {
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DATABASE_PATH", "council.db")
	viper.SetDefault("JWT_SECRET", "default_secret")
	viper.SetDefault("SEED_ADMIN_PASSWORD", "admin123")
	viper.SetDefault("SEED_STUDENT_PASSWORD", "student123")

	viper.BindEnv("JWT_SECRET")
	viper.BindEnv("ENABLE_CORS")
	viper.BindEnv("DISCORD_BOT_TOKEN")
	viper.BindEnv("DISCORD_ANNOUNCEMENTS_CHANNEL_ID")
	viper.BindEnv("SEED_ADMIN_PASSWORD")
	viper.BindEnv("SEED_STUDENT_PASSWORD")

	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}

	return &config
}
