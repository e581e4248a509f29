package settings

import "time"

type Config struct {
	Logger   Logger   `mapstructure:"logger" yaml:"logger"`
	Pipeline Pipeline `mapstructure:"pipeline" yaml:"pipeline"`
}

// Logger is the configuration for the logger
type Logger struct {
	LogLevel    string `mapstructure:"log_level" yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
	FileLogName string `mapstructure:"file_log_name" yaml:"file_log_name"`
	MaxBackups  int    `mapstructure:"max_backups" yaml:"max_backups" validate:"min=0"`
	MaxAge      int    `mapstructure:"max_age" yaml:"max_age" validate:"min=0"`   // Days
	MaxSize     int    `mapstructure:"max_size" yaml:"max_size" validate:"min=0"` // Megabytes
	Compress    bool   `mapstructure:"compress" yaml:"compress"`
}

// Pipeline is the configuration for the demo worker graph
type Pipeline struct {
	Resources       int `mapstructure:"resources" yaml:"resources" validate:"min=1"`                           // Number of items
	Capacity        int `mapstructure:"capacity" yaml:"capacity" validate:"omitempty,gtefield=Resources"`      // 0 means unbounded
	PollInterval    int `mapstructure:"poll_interval" yaml:"poll_interval" validate:"min=1"`                   // Milliseconds
	MonitorInterval int `mapstructure:"monitor_interval" yaml:"monitor_interval" validate:"min=1"`             // Milliseconds
	WorkDelayMin    int `mapstructure:"work_delay_min" yaml:"work_delay_min" validate:"min=0"`                 // Milliseconds
	WorkDelayMax    int `mapstructure:"work_delay_max" yaml:"work_delay_max" validate:"gtefield=WorkDelayMin"` // Milliseconds
}

// PollDuration returns PollInterval as a time.Duration.
func (p Pipeline) PollDuration() time.Duration {
	return time.Duration(p.PollInterval) * time.Millisecond
}

// MonitorDuration returns MonitorInterval as a time.Duration.
func (p Pipeline) MonitorDuration() time.Duration {
	return time.Duration(p.MonitorInterval) * time.Millisecond
}

// WorkDelayRange returns the bounds of the simulated per-item work.
func (p Pipeline) WorkDelayRange() (lo, hi time.Duration) {
	return time.Duration(p.WorkDelayMin) * time.Millisecond, time.Duration(p.WorkDelayMax) * time.Millisecond
}
