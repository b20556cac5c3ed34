// plimport 在命令行导入一份损益表并打印指标卡片
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"pldash/internal/calculator"
	"pldash/internal/config"
	"pldash/internal/importer"
	"pldash/internal/present"
	"pldash/internal/state"
	"pldash/internal/store"
)

var (
	file    = flag.String("file", "", "损益表文件 (.xlsx / .xls)")
	sheet   = flag.String("sheet", "", "工作表名称，默认第一个")
	dataDir = flag.String("dataDir", "", "数据目录；为空时读取 "+config.EnvDataDir+"，仍为空则不写入数据库")
	asJSON  = flag.Bool("json", false, "以 JSON 输出全部指标")
)

// cliOptions 单次导入参数
type cliOptions struct {
	File    string
	Sheet   string
	DataDir string
	JSON    bool
}

func main() {
	flag.Parse()
	if *file == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, _, err := config.LoadConfigWithInfo()
	if err != nil {
		log.Printf("加载配置失败，使用默认配置: %v", err)
		cfg = config.DefaultConfig()
	}

	// .env 在加载配置时才写入环境变量
	dir := *dataDir
	if dir == "" {
		dir = os.Getenv(config.EnvDataDir)
	}

	if err := run(cfg, cliOptions{File: *file, Sheet: *sheet, DataDir: dir, JSON: *asJSON}, os.Stdout, os.Stderr); err != nil {
		log.Printf("导入失败: %v", err)
		os.Exit(1)
	}
}

// run 导入文件并输出结果；返回前关闭文件与数据库
func run(cfg *config.AppConfig, opts cliOptions, stdout, stderr io.Writer) error {
	var st *store.Store
	if opts.DataDir != "" {
		if err := os.MkdirAll(opts.DataDir, 0755); err != nil {
			return fmt.Errorf("创建数据目录失败: %w", err)
		}
		var err error
		st, err = store.New(config.DBPath(cfg, opts.DataDir))
		if err != nil {
			return fmt.Errorf("打开数据库失败: %w", err)
		}
		defer func() { _ = st.Close() }()
	}

	f, err := os.Open(opts.File)
	if err != nil {
		return fmt.Errorf("打开文件失败: %w", err)
	}
	defer f.Close()

	var size int64
	if fi, err := f.Stat(); err == nil {
		size = fi.Size()
	}

	dashboard := state.NewDashboard()
	coord := importer.NewCoordinator(st, dashboard, importer.Options{
		HeaderLabel: cfg.Upload.HeaderLabel,
		MaxRows:     cfg.Upload.MaxRows,
	})

	var importErr error
	for evt := range coord.Import(importer.ImportOptions{
		Filename:  opts.File,
		FileSize:  size,
		Reader:    f,
		SheetName: opts.Sheet,
	}) {
		switch evt.Type {
		case importer.EventError:
			importErr = errors.New(evt.Message)
		case importer.EventDone:
			fmt.Fprintln(stderr, evt.Message)
		default:
			fmt.Fprintf(stderr, "[%s] %s\n", evt.Type, evt.Message)
		}
	}
	if importErr != nil {
		return importErr
	}

	ds, err := dashboard.Snapshot()
	if err != nil {
		return fmt.Errorf("读取数据失败: %w", err)
	}
	metrics := calculator.CalculateAll(ds.Matrix)

	if opts.JSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(metrics)
	}

	thresholds := present.Thresholds{
		PrimeCost:     cfg.Thresholds.PrimeCost,
		COGSPercent:   cfg.Thresholds.COGSPercent,
		LaborPercent:  cfg.Thresholds.LaborPercent,
		Productivity:  cfg.Thresholds.Productivity,
		OvertimeHours: cfg.Thresholds.OvertimeHours,
	}
	for _, section := range present.BuildSections(metrics, thresholds) {
		fmt.Fprintf(stdout, "\n== %s ==\n", section.Title)
		for _, c := range section.Cards {
			line := fmt.Sprintf("  %-28s %s", c.Label, c.Value)
			if c.Detail != "" {
				line += "  " + c.Detail
			}
			if c.Delta != "" {
				line += "  " + c.Delta
			}
			if c.Badge != "" {
				line += "  [" + c.Badge + "]"
			}
			fmt.Fprintln(stdout, line)
		}
	}
	return nil
}
