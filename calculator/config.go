package calculator

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"

	"wellplot/model"
)

const DefaultConfigPath = "conf/config.ini"

type Config struct {
	Well    model.Params
	Workers int

	Render RenderConfig
	Server ServerConfig
}

type RenderConfig struct {
	Width      int
	Height     int
	View       model.View
	OutDir     string
	Profile    bool // 是否输出截面曲线
	Terminal   bool // 是否在终端打印截面预览
	SpinFrames int  // 旋转动画帧数，0 表示不输出
}

type ServerConfig struct {
	Enable bool
	Addr   string
	Step   int // 推送数据的降采样步长
}

// LoadConfig 读取配置文件，文件不存在时使用默认值
func LoadConfig(path string) (Config, error) {
	file, err := ini.Load(path)
	if err != nil {
		log.WithFields(log.Fields{
			"path": path,
			"err":  err,
		}).Warn("配置文件读取错误，使用默认配置")
		file = ini.Empty()
	}

	cfg := loadCfg(file)
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig 从内存中的 ini 数据解析配置
func ParseConfig(data []byte) (Config, error) {
	file, err := ini.Load(data)
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	cfg := loadCfg(file)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadCfg(file *ini.File) Config {
	well := file.Section("well")
	grid := file.Section("grid")
	render := file.Section("render")
	server := file.Section("server")

	return Config{
		Well: model.Params{
			WidthX:  well.Key("WidthX").MustFloat64(1),
			WidthY:  well.Key("WidthY").MustFloat64(1),
			N:       well.Key("N").MustInt(8),
			Samples: grid.Key("Samples").MustInt(1000),
			Levels:  grid.Key("Levels").MustInt(50),
		},
		Workers: grid.Key("Workers").MustInt(1),
		Render: RenderConfig{
			Width:  render.Key("Width").MustInt(800),
			Height: render.Key("Height").MustInt(600),
			View: model.View{
				Azimuth:   render.Key("Azimuth").MustFloat64(-60),
				Elevation: render.Key("Elevation").MustFloat64(30),
			},
			OutDir:     render.Key("OutDir").MustString("out"),
			Profile:    render.Key("Profile").MustBool(false),
			Terminal:   render.Key("Terminal").MustBool(false),
			SpinFrames: render.Key("SpinFrames").MustInt(0),
		},
		Server: ServerConfig{
			Enable: server.Key("Enable").MustBool(false),
			Addr:   server.Key("Addr").MustString(":9000"),
			Step:   server.Key("Step").MustInt(10),
		},
	}
}

func (c Config) Validate() error {
	if err := ValidateParams(c.Well); err != nil {
		return err
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers %d: must be at least 1", c.Workers)
	}
	if c.Render.Width <= 0 || c.Render.Height <= 0 {
		return fmt.Errorf("figure size %dx%d: must be positive", c.Render.Width, c.Render.Height)
	}
	if c.Render.SpinFrames < 0 {
		return fmt.Errorf("spin frames %d: must not be negative", c.Render.SpinFrames)
	}
	if c.Server.Step < 1 {
		return fmt.Errorf("server step %d: must be at least 1", c.Server.Step)
	}
	return nil
}

// ValidateParams 检查势阱参数
func ValidateParams(p model.Params) error {
	if !(p.WidthX > 0) || !(p.WidthY > 0) {
		return fmt.Errorf("%w: %gx%g", ErrInvalidWidth, p.WidthX, p.WidthY)
	}
	if p.N < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidQuantumNumber, p.N)
	}
	if p.Samples < 2 {
		return fmt.Errorf("%w: %d", ErrInvalidSamples, p.Samples)
	}
	if p.Levels < 1 || p.Levels > MaxLevels {
		return fmt.Errorf("%w: %d", ErrInvalidLevels, p.Levels)
	}
	return nil
}
