package db

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect はローカルのSQLiteファイルに接続して *gorm.DB を返す。
// 外部キー制約を有効にしないとCASCADEが効かないので _fk=1 を必ず付ける。
func Connect(path string) (*gorm.DB, error) {
	dsn := path + "?_fk=1&_busy_timeout=5000"
	// unique違反をgorm.ErrDuplicatedKeyとして受け取れるようにする
	return gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
}
