package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// 环境变量
const (
	EnvPort    = "PLDASH_PORT"
	EnvDataDir = "PLDASH_DATA_DIR"
	EnvDevMode = "PLDASH_DEV"
)

// AppConfig 应用配置
type AppConfig struct {
	Server     ServerConfig     `toml:"server"`
	Data       DataConfig       `toml:"data"`
	Upload     UploadConfig     `toml:"upload"`
	Thresholds ThresholdsConfig `toml:"thresholds"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port    int  `toml:"port"`
	DevMode bool `toml:"dev_mode"`
}

// DataConfig 数据配置
type DataConfig struct {
	DataDir string `toml:"data_dir"`
	DBName  string `toml:"db_name"`
}

// UploadConfig 上传解析配置
type UploadConfig struct {
	MaxBytes    int64  `toml:"max_bytes"`
	MaxRows     int    `toml:"max_rows"`
	HeaderLabel string `toml:"header_label"` // 表头行第 0 列的文字
}

// ThresholdsConfig 指标卡片着色阈值
type ThresholdsConfig struct {
	PrimeCost     float64 `toml:"prime_cost"`
	COGSPercent   float64 `toml:"cogs_percent"`
	LaborPercent  float64 `toml:"labor_percent"`
	Productivity  float64 `toml:"productivity"`
	OvertimeHours float64 `toml:"overtime_hours"`
}

// LoadConfigInfo 配置加载元信息
type LoadConfigInfo struct {
	Path          string
	PortSpecified bool
}

// DefaultConfig 默认配置
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:    20261,
			DevMode: false,
		},
		Data: DataConfig{
			DataDir: "data",
			DBName:  "pldash.db",
		},
		Upload: UploadConfig{
			MaxBytes:    20 << 20,
			MaxRows:     100000,
			HeaderLabel: "Ledger Account",
		},
		Thresholds: ThresholdsConfig{
			PrimeCost:     60,
			COGSPercent:   30,
			LaborPercent:  30,
			Productivity:  100,
			OvertimeHours: 5,
		},
	}
}

func isPortSpecifiedInToml(data []byte) bool {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return false
	}

	serverMap, ok := raw["server"].(map[string]any)
	if !ok {
		return false
	}
	_, ok = serverMap["port"]
	return ok
}

// GetExeDir 获取可执行文件所在目录
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// LoadConfigWithInfo 从可执行文件同目录的 config.toml 加载配置
func LoadConfigWithInfo() (*AppConfig, LoadConfigInfo, error) {
	exeDir, err := GetExeDir()
	if err != nil {
		// 无法获取可执行文件目录，使用当前目录
		exeDir = "."
	}
	return LoadFrom(exeDir)
}

// LoadFrom 从指定目录加载 config.toml 与 .env
func LoadFrom(dir string) (*AppConfig, LoadConfigInfo, error) {
	info := LoadConfigInfo{Path: filepath.Join(dir, "config.toml")}
	config := DefaultConfig()

	// .env 只补充未设置的环境变量
	if err := godotenv.Load(filepath.Join(dir, ".env")); err != nil && !os.IsNotExist(err) {
		return nil, info, fmt.Errorf("failed to load .env: %w", err)
	}

	data, err := os.ReadFile(info.Path)
	switch {
	case err == nil:
		info.PortSpecified = isPortSpecifiedInToml(data)
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, info, fmt.Errorf("failed to parse %s: %w", info.Path, err)
		}
	case os.IsNotExist(err):
		// 配置文件不存在，使用默认配置
	default:
		return nil, info, err
	}

	if err := applyEnv(config, &info); err != nil {
		return nil, info, err
	}
	return config, info, nil
}

// applyEnv 环境变量覆盖（用于 E2E / 本地运行）
func applyEnv(config *AppConfig, info *LoadConfigInfo) error {
	if v := os.Getenv(EnvPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 || port > 65535 {
			return fmt.Errorf("invalid %s: %q", EnvPort, v)
		}
		config.Server.Port = port
		info.PortSpecified = true
	}
	if v := os.Getenv(EnvDataDir); v != "" {
		config.Data.DataDir = v
	}
	if v := os.Getenv(EnvDevMode); v != "" {
		dev, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %q", EnvDevMode, v)
		}
		config.Server.DevMode = dev
	}
	return nil
}

// SaveConfig 保存配置到 config.toml
func SaveConfig(config *AppConfig, path string) error {
	data, err := toml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// EnsureDataDir 确保数据目录存在；相对路径基于可执行文件目录
func EnsureDataDir(config *AppConfig) (string, error) {
	dataDir := config.Data.DataDir
	if !filepath.IsAbs(dataDir) {
		exeDir, err := GetExeDir()
		if err != nil {
			exeDir = "."
		}
		dataDir = filepath.Join(exeDir, dataDir)
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}
	return dataDir, nil
}

// DBPath 数据库文件路径
func DBPath(config *AppConfig, dataDir string) string {
	name := config.Data.DBName
	if name == "" {
		name = "pldash.db"
	}
	return filepath.Join(dataDir, name)
}
