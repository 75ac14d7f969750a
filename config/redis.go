package config

type Redis struct {
	// 啟用後，衝突檢查與寫入會在同一個 scope 鎖內執行
	Enabled  bool   `mapstructure:"ENABLED" json:"enabled" yaml:"enabled"`
	Host     string `mapstructure:"HOST" json:"host" yaml:"host"`
	Port     int    `mapstructure:"PORT" json:"port" yaml:"port"`
	Password string `mapstructure:"PASSWORD" json:"password" yaml:"password"`
	DB       int    `mapstructure:"DB" json:"db" yaml:"db"`
	// scope 鎖存活時間（毫秒）
	LockTTL int64 `mapstructure:"LOCK_TTL_MS" json:"lockTTL" yaml:"lockTTL"`
}
