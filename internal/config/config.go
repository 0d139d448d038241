package config

import (
	"os"
	"strings"
)

type Config struct {
	Port             string
	MongoURI         string
	MongoDB          string
	JWTSecret        string
	AllowedOrigins   []string
	Env              string
	ImageKitKey      string
	ImageKitUpload   string
	ImageKitAPI      string
}

func Load() Config {
	return Config{
		Port:           getenv("PORT", "5000"),
		MongoURI:       getenv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:        getenv("MONGO_DB", "sharknutrition"),
		JWTSecret:      getenv("JWT_SECRET", "MY_SECRET_KEY"),
		AllowedOrigins: splitCSV(getenv("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:5174")),
		Env:            getenv("APP_ENV", "development"),
		ImageKitKey:    os.Getenv("IMAGEKIT_PRIVATE_KEY"),
		ImageKitUpload: getenv("IMAGEKIT_UPLOAD_URL", "https://upload.imagekit.io/api/v1/files/upload"),
		ImageKitAPI:    getenv("IMAGEKIT_API_URL", "https://api.imagekit.io/v1"),
	}
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
