package config

type Identity struct {
	// cron 表達式（含秒），例如 "0 */10 * * * *"；空字串代表不排程
	ReconcileSchedule string `mapstructure:"RECONCILE_SCHEDULE" json:"reconcileSchedule" yaml:"reconcileSchedule"`
	// 建立超過此分鐘數仍沒有 user 文件的 identity 視為孤兒
	OrphanGraceMinutes int `mapstructure:"ORPHAN_GRACE_MINUTES" json:"orphanGraceMinutes" yaml:"orphanGraceMinutes"`
}
