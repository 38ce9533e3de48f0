package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "10MB"
	defaultHost               = "127.0.0.1"
	defaultPort               = 5173

	defaultAPIBaseURL     = "http://localhost:5000/api"
	defaultAPIUploadsURL  = "http://localhost:5000/uploads"
	defaultAPITimeout     = 30 * time.Second
	defaultLoginCountdown = 180 * time.Second
	defaultRegCountdown   = 30 * time.Second
	defaultFallbackDelay  = time.Second
	defaultImageCacheTTL  = 10 * time.Minute
	defaultStorageDir     = ".growguard"
	defaultLanguage       = "en"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Host               string `json:"host" yaml:"host"`
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// API configures the backend REST client
	API *APIConfig `json:"api" yaml:"api"`

	// Storage configures durable client state (token, profile, language)
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	OTP *OTPConfig `json:"otp" yaml:"otp"`

	Camera *CameraConfig `json:"camera" yaml:"camera"`

	ImageCache *ImageCacheConfig `json:"imageCache" yaml:"imageCache"`

	// QRCode configuration for report share codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	Language *LanguageConfig `json:"language" yaml:"language"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// APIConfig defines how the backend is reached
type APIConfig struct {
	BaseURL    string          `json:"baseUrl" yaml:"baseUrl"`
	UploadsURL string          `json:"uploadsUrl" yaml:"uploadsUrl"`
	Timeout    time.Duration   `json:"timeout" yaml:"timeout"`
	RateLimit  RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`
}

// RateLimitConfig throttles outgoing requests. Zero means unlimited.
type RateLimitConfig struct {
	RequestsPerSecond float64 `json:"requestsPerSecond" yaml:"requestsPerSecond"`
	Burst             int     `json:"burst" yaml:"burst"`
}

// StorageConfig selects the blob bucket used for client state.
// URL takes precedence (e.g. "mem://"); otherwise Dir is opened as a file bucket.
type StorageConfig struct {
	URL string `json:"url" yaml:"url"`
	Dir string `json:"dir" yaml:"dir"`
}

// OTPConfig defines the validity countdowns shown on the OTP screens
type OTPConfig struct {
	LoginCountdown        time.Duration `json:"loginCountdown" yaml:"loginCountdown"`
	RegistrationCountdown time.Duration `json:"registrationCountdown" yaml:"registrationCountdown"`
}

// CameraConfig defines the external still-capture command.
// The command must write a single JPEG frame to stdout.
type CameraConfig struct {
	Command       string        `json:"command" yaml:"command"`
	Args          []string      `json:"args" yaml:"args"`
	FallbackDelay time.Duration `json:"fallbackDelay" yaml:"fallbackDelay"`
}

type ImageCacheConfig struct {
	TTL             time.Duration `json:"ttl" yaml:"ttl"`
	CleanupInterval time.Duration `json:"cleanupInterval" yaml:"cleanupInterval"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

type LanguageConfig struct {
	Default string `json:"default" yaml:"default"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// API_BASEURL -> api.baseUrl, aligned with the YAML key casing.
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	return cfg, nil
}

// applyDefaults fills every zero value the rest of the program relies on.
func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.HTTP.Host == "" {
		cfg.HTTP.Host = defaultHost
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = defaultPort
	}

	if cfg.API == nil {
		cfg.API = &APIConfig{}
	}
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = defaultAPIBaseURL
	}
	cfg.API.BaseURL = strings.TrimRight(cfg.API.BaseURL, "/")
	if cfg.API.UploadsURL == "" {
		cfg.API.UploadsURL = defaultAPIUploadsURL
	}
	cfg.API.UploadsURL = strings.TrimRight(cfg.API.UploadsURL, "/")
	if cfg.API.Timeout <= 0 {
		cfg.API.Timeout = defaultAPITimeout
	}

	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{}
	}
	if cfg.Storage.URL == "" && cfg.Storage.Dir == "" {
		cfg.Storage.Dir = defaultStorageDir
	}

	if cfg.OTP == nil {
		cfg.OTP = &OTPConfig{}
	}
	if cfg.OTP.LoginCountdown <= 0 {
		cfg.OTP.LoginCountdown = defaultLoginCountdown
	}
	if cfg.OTP.RegistrationCountdown <= 0 {
		cfg.OTP.RegistrationCountdown = defaultRegCountdown
	}

	if cfg.Camera == nil {
		cfg.Camera = &CameraConfig{}
	}
	if cfg.Camera.FallbackDelay <= 0 {
		cfg.Camera.FallbackDelay = defaultFallbackDelay
	}

	if cfg.ImageCache == nil {
		cfg.ImageCache = &ImageCacheConfig{}
	}
	if cfg.ImageCache.TTL <= 0 {
		cfg.ImageCache.TTL = defaultImageCacheTTL
	}
	if cfg.ImageCache.CleanupInterval <= 0 {
		cfg.ImageCache.CleanupInterval = 2 * cfg.ImageCache.TTL
	}

	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{Size: 256, ErrorCorrectionLevel: "M"}
	}

	if cfg.Language == nil {
		cfg.Language = &LanguageConfig{}
	}
	if cfg.Language.Default == "" {
		cfg.Language.Default = defaultLanguage
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
