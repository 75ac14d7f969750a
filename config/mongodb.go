package config

type MongoDB struct {
	URI     string `mapstructure:"URI" json:"uri" yaml:"uri"`
	Options string `mapstructure:"OPTIONS" json:"options" yaml:"options"`
	// 未設定時使用 core.MongoDBStundenmanager
	Database string `mapstructure:"DATABASE" json:"database" yaml:"database"`
}
