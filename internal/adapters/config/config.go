package config

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/viper"
	postgresStorage "github.com/uoftclubs/clubs-backend/internal/adapters/database/postgres"
	redisAdapter "github.com/uoftclubs/clubs-backend/internal/adapters/database/redis"
	"github.com/uoftclubs/clubs-backend/pkg/logger"
	"github.com/uoftclubs/clubs-backend/pkg/storage"
	"gopkg.in/gomail.v2"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

type Config struct {
	Database   *gorm.DB
	Redis      *redisAdapter.Client
	SMTPDialer *gomail.Dialer
	S3         *storage.S3
}

func initConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		panic(err)
	}
}

func Get() *Config {
	initConfig()

	timezone := viper.GetString("settings.timezone")
	location, err := time.LoadLocation(timezone)
	if err != nil {
		location = time.UTC
	}

	err = logger.Init(logger.Config{
		Debug:        viper.GetBool("settings.debug"),
		TimeLocation: location,
		LogToFile:    viper.GetBool("settings.log-to-file"),
		LogsDir:      viper.GetString("settings.logs-dir"),
	})
	if err != nil {
		panic(err)
	}

	var gormConfig *gorm.Config
	if viper.GetBool("settings.debug") {
		newLogger := gormLogger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			gormLogger.Config{
				SlowThreshold: time.Second,
				LogLevel:      gormLogger.Info,
				Colorful:      true,
			},
		)
		gormConfig = &gorm.Config{
			Logger: newLogger,
		}
	} else {
		gormConfig = &gorm.Config{}
	}

	dsn := fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%d sslmode=disable",
		viper.GetString("service.database.user"),
		viper.GetString("service.database.password"),
		viper.GetString("service.database.name"),
		viper.GetString("service.database.host"),
		viper.GetInt("service.database.port"),
	)

	database, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		logger.Log.Panicf("Failed to connect to the database: %v", err)
	} else {
		logger.Log.Info("Successfully connected to the database")
	}

	errMigrate := database.AutoMigrate(postgresStorage.Migrations...)
	if errMigrate != nil {
		logger.Log.Panicf("Failed to migrate database: %v", errMigrate)
	}

	redisClient, err := redisAdapter.New(redisAdapter.Options{
		Host:     viper.GetString("service.redis.host"),
		Port:     viper.GetString("service.redis.port"),
		Password: viper.GetString("service.redis.password"),
	})
	if err != nil {
		logger.Log.Panicf("Failed to connect to redis: %v", err)
	} else {
		logger.Log.Info("Successfully connected to redis")
	}

	dialer := gomail.NewDialer(
		viper.GetString("service.smtp.host"),
		viper.GetInt("service.smtp.port"),
		viper.GetString("service.smtp.email"),
		viper.GetString("service.smtp.password"),
	)

	storageLogger, err := logger.Named("storage")
	if err != nil {
		logger.Log.Panicf("Failed to create storage logger: %v", err)
	}
	s3Client, err := storage.NewS3(context.Background(), storage.S3Config{
		Region:          viper.GetString("service.s3.region"),
		AccessKeyID:     viper.GetString("service.s3.access-key-id"),
		SecretAccessKey: viper.GetString("service.s3.secret-access-key"),
		Bucket:          viper.GetString("service.s3.bucket"),
	}, storageLogger)
	if err != nil {
		logger.Log.Panicf("Failed to create s3 client: %v", err)
	}

	return &Config{
		Database:   database,
		Redis:      redisClient,
		SMTPDialer: dialer,
		S3:         s3Client,
	}
}
