package config

import (
	"time"

	"github.com/spf13/viper"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/print-sms-notifier/internal/model"
)

// Config holds the main configuration for the notifier.
type Config struct {
	Enabled     bool              `mapstructure:"enabled"`
	PrinterName string            `mapstructure:"printer_name"`
	Region      string            `mapstructure:"region" validate:"len=2"` // default phone region for parsing
	From        string            `mapstructure:"from"`                    // sender number, raw
	Recipients  string            `mapstructure:"recipients"`              // comma-joined raw numbers
	Twilio      Twilio            `mapstructure:"twilio"`
	Events      []model.EventRule `mapstructure:"events"`
	Webcam      Webcam            `mapstructure:"webcam"`
	Upload      Upload            `mapstructure:"upload"`
}

// Twilio holds SMS gateway credentials.
type Twilio struct {
	AccountSID string        `mapstructure:"account_sid"`
	AuthToken  string        `mapstructure:"auth_token"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

// Webcam holds snapshot capture and post-processing configuration. An empty
// snapshot URL disables the picture feature entirely.
type Webcam struct {
	SnapshotURL      string         `mapstructure:"snapshot_url"`
	FlipH            bool           `mapstructure:"flip_h"`
	FlipV            bool           `mapstructure:"flip_v"`
	Rotate90         bool           `mapstructure:"rotate_90"`
	FFmpegPath       string         `mapstructure:"ffmpeg_path"`
	PixelFormat      string         `mapstructure:"pixel_format"`
	FetchTimeout     time.Duration  `mapstructure:"fetch_timeout"`
	TransformTimeout time.Duration  `mapstructure:"transform_timeout"`
	Retry            retry.Strategy `mapstructure:"retry"`
}

// Upload holds image-hosting provider selection and per-provider settings.
type Upload struct {
	Provider   string        `mapstructure:"provider" validate:"oneof=none aws_s3 cloudinary uploads.im"`
	Timeout    time.Duration `mapstructure:"timeout"`
	S3         S3            `mapstructure:"s3"`
	Cloudinary Cloudinary    `mapstructure:"cloudinary"`
	UploadsIm  UploadsIm     `mapstructure:"uploads_im"`
}

// S3 holds settings for the S3-compatible provider. URLPolicy selects between
// a long-lived public URL built from BaseURL and a short-lived presigned URL.
type S3 struct {
	Endpoint      string        `mapstructure:"endpoint"`
	AccessKey     string        `mapstructure:"access_key"`
	SecretKey     string        `mapstructure:"secret_key"`
	Secure        bool          `mapstructure:"secure"`
	Bucket        string        `mapstructure:"bucket"`
	KeyPrefix     string        `mapstructure:"key_prefix"`
	BaseURL       string        `mapstructure:"base_url"`
	URLPolicy     string        `mapstructure:"url_policy" validate:"oneof=public presigned"`
	PresignExpiry time.Duration `mapstructure:"presign_expiry"`
}

// Cloudinary holds settings for unsigned cloudinary uploads.
type Cloudinary struct {
	APIBase      string `mapstructure:"api_base"`
	CloudName    string `mapstructure:"cloud_name"`
	UploadPreset string `mapstructure:"upload_preset"`
}

// UploadsIm holds settings for the uploads.im provider.
type UploadsIm struct {
	Endpoint string `mapstructure:"endpoint"`
}

// mustBindEnv binds secret-bearing environment variables to Viper keys.
//
// It panics if any environment variable cannot be bound.
func mustBindEnv() {
	bindings := map[string]string{
		"twilio.account_sid": "TWILIO_ACCOUNT_SID",
		"twilio.auth_token":  "TWILIO_AUTH_TOKEN",

		"from":       "SMS_FROM_NUMBER",
		"recipients": "SMS_RECIPIENT_NUMBERS",

		"upload.s3.access_key": "S3_ACCESS_KEY",
		"upload.s3.secret_key": "S3_SECRET_KEY",
	}

	for key, env := range bindings {
		if err := viper.BindEnv(key, env); err != nil {
			zlog.Logger.Panic().Err(err).Msgf("failed to bind env %s", env)
		}
	}
}

func setDefaults() {
	viper.SetDefault("region", "US")
	viper.SetDefault("twilio.timeout", 15*time.Second)

	viper.SetDefault("webcam.pixel_format", "yuv420p")
	viper.SetDefault("webcam.fetch_timeout", 10*time.Second)
	viper.SetDefault("webcam.transform_timeout", 30*time.Second)
	viper.SetDefault("webcam.retry.attempts", 1)
	viper.SetDefault("webcam.retry.delay", 500*time.Millisecond)
	viper.SetDefault("webcam.retry.backoff", 2.0)

	viper.SetDefault("upload.provider", "none")
	viper.SetDefault("upload.timeout", 30*time.Second)
	viper.SetDefault("upload.s3.url_policy", "public")
	viper.SetDefault("upload.s3.presign_expiry", time.Hour)
	viper.SetDefault("upload.cloudinary.api_base", "https://api.cloudinary.com")
	viper.SetDefault("upload.cloudinary.upload_preset", "snapshot")
	viper.SetDefault("upload.uploads_im.endpoint", "http://uploads.im/api")
}

// Must loads the configuration from file and environment variables.
//
// It panics if configuration cannot be read or unmarshalled.
func Must() *Config {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		zlog.Logger.Panic().Err(err).Msg("failed to read config")
	}

	mustBindEnv()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		zlog.Logger.Panic().Err(err).Msgf("failed to unmarshal config: %v", err)
	}

	return &cfg
}
