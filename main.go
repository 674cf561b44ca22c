package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"wellplot/calculator"
	"wellplot/render"
	"wellplot/server"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

func main() {
	confPath := flag.String("conf", calculator.DefaultConfigPath, "配置文件路径")
	flag.Parse()

	cfg, err := calculator.LoadConfig(*confPath)
	if err != nil {
		log.WithError(err).Fatal("加载配置失败")
	}

	c, err := calculator.NewCalculator(cfg.Well, cfg.Workers)
	if err != nil {
		log.WithError(err).Fatal("初始化计算失败")
	}
	res := c.Run()

	figures := render.Figures(res)
	if err := writeFigures(cfg.Render, figures); err != nil {
		log.WithError(err).Fatal("绘图失败")
	}
	if err := writeExtras(cfg.Render, res, figures); err != nil {
		log.WithError(err).Fatal("输出附加图失败")
	}

	if !cfg.Server.Enable {
		return
	}
	d, err := server.NewDisplay(res, figures, cfg.Render.Width, cfg.Render.Height, cfg.Server.Step, cfg.Render.View)
	if err != nil {
		log.WithError(err).Fatal("初始化显示失败")
	}
	upgrader.CheckOrigin = func(r *http.Request) bool {
		return true
	}
	s := server.NewServer(cfg.Server.Addr, upgrader, d)
	if err := s.Serve(); err != nil {
		log.WithError(err).Fatal("ListenAndServe")
	}
}

// writeFigures 依次输出两张图，每张图写完即释放
func writeFigures(cfg calculator.RenderConfig, figures map[string]*render.Figure) error {
	for _, name := range render.FigureNames {
		img, err := figures[name].Render(cfg.Width, cfg.Height, cfg.View)
		if err != nil {
			return fmt.Errorf("render %s: %w", name, err)
		}
		path := filepath.Join(cfg.OutDir, name+".png")
		if err := render.SavePNG(path, img); err != nil {
			return err
		}
		log.WithField("path", path).Info("输出图像")
	}
	return nil
}

func writeExtras(cfg calculator.RenderConfig, res *calculator.Result, figures map[string]*render.Figure) error {
	fields := map[string]*calculator.Field{
		render.FigureWavefunction: res.Psi,
		render.FigureProbability:  res.Prob,
	}
	for _, name := range render.FigureNames {
		diagonal := fields[name].Diagonal()
		caption := fmt.Sprintf("%s along x = y, n = %d", name, res.Params.N)

		if cfg.Terminal {
			fmt.Println(render.Terminal(caption, diagonal))
		}
		if cfg.Profile {
			path := filepath.Join(cfg.OutDir, name+"_profile.png")
			if err := writeFile(path, func(f *os.File) error {
				return render.Profile(f, caption, "x", name, res.Mesh.X[:len(diagonal)], diagonal, cfg.Width, cfg.Height)
			}); err != nil {
				return err
			}
		}
		if cfg.SpinFrames > 0 {
			path := filepath.Join(cfg.OutDir, name+"_spin.gif")
			if err := writeFile(path, func(f *os.File) error {
				return render.Spin(f, figures[name], cfg.Width, cfg.Height, cfg.View, cfg.SpinFrames)
			}); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeFile(path string, write func(f *os.File) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create dir for %s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	log.WithField("path", path).Info("输出文件")
	return f.Close()
}
