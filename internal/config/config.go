package config

import (
	"fmt"
	"os"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	DBPath string // SQLiteファイルパス

	JWTSecret string // JWT署名シークレット

	SeedUsersURL string // テストユーザー取得元API
}

// Loadは環境変数
func Load() (Config, error) {
	cfg := Config{
		Port:         os.Getenv("PORT"),
		DBPath:       os.Getenv("DB_PATH"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		SeedUsersURL: os.Getenv("SEED_USERS_URL"),
	}

	//必須チェック
	if cfg.Port == "" {
		return Config{}, fmt.Errorf("PORT is required")
	}
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}

	//デフォルト
	if cfg.DBPath == "" {
		cfg.DBPath = "gamezone.db"
	}
	if cfg.SeedUsersURL == "" {
		cfg.SeedUsersURL = "https://randomuser.me/api/"
	}

	return cfg, nil
}
