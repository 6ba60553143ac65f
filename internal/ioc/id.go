package ioc

import (
	"time"

	"github.com/gotomicro/ego/core/econf"
	"github.com/sony/sonyflake"
)

// InitIDGenerator 站内信 ID，多实例部署时必须配置不同的 machineID
func InitIDGenerator() *sonyflake.Sonyflake {
	type Config struct {
		MachineID uint16 `yaml:"machineID"`
	}
	var cfg Config
	err := econf.UnmarshalKey("idGenerator", &cfg)
	if err != nil {
		panic(err)
	}
	settings := sonyflake.Settings{
		StartTime: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	if cfg.MachineID != 0 {
		settings.MachineID = func() (uint16, error) {
			return cfg.MachineID, nil
		}
	}
	sf := sonyflake.NewSonyflake(settings)
	if sf == nil {
		panic("sonyflake 初始化失败")
	}
	return sf
}
