package config

type Cors struct {
	// 空值代表 "*"
	AllowOrigins []string `mapstructure:"ALLOW_ORIGINS" json:"allowOrigins" yaml:"allowOrigins"`
}
