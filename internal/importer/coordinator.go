package importer

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"pldash/internal/calculator"
	"pldash/internal/model"
	"pldash/internal/parser"
	"pldash/internal/state"
	"pldash/internal/store"
)

// 事件类型
const (
	EventStart   = "start"
	EventInfo    = "info"
	EventWarning = "warning"
	EventDone    = "done"
	EventError   = "error"
)

// Options 协调器配置
type Options struct {
	HeaderLabel string // 表头定位标签，默认 Ledger Account
	MaxRows     int
}

// Coordinator 上传协调器：解析 → 持久化 → 替换看板 → 计算
type Coordinator struct {
	store     *store.Store
	dashboard *state.Dashboard
	opts      Options
}

// NewCoordinator 创建上传协调器，st 为 nil 时不做持久化
func NewCoordinator(st *store.Store, dashboard *state.Dashboard, opts Options) *Coordinator {
	if opts.HeaderLabel == "" {
		opts.HeaderLabel = calculator.LabelLedgerAccount
	}
	return &Coordinator{store: st, dashboard: dashboard, opts: opts}
}

// ImportOptions 单次上传参数
type ImportOptions struct {
	Filename  string
	FileSize  int64
	Reader    io.Reader
	SheetName string // 为空时取第一个工作表
}

// ProgressEvent 进度事件
type ProgressEvent struct {
	Type      string      `json:"type"`    // start/info/warning/done/error
	Message   string      `json:"message"` // 事件消息
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// Report 上传完成汇总
type Report struct {
	Upload      model.Upload         `json:"upload"`
	Sheets      []string             `json:"sheets"`
	SkippedRows int                  `json:"skippedRows"`
	Columns     calculator.Columns   `json:"columns"`
	Warnings    []calculator.Warning `json:"warnings"`
	Duration    time.Duration        `json:"duration"`
}

// Import 执行上传，返回进度通道；通道在 done 或 error 之后关闭
func (c *Coordinator) Import(opts ImportOptions) <-chan ProgressEvent {
	progressChan := make(chan ProgressEvent, 100)

	go func() {
		defer close(progressChan)
		c.doImport(opts, progressChan)
	}()

	return progressChan
}

// Run 同步执行上传，返回汇总与过程中的警告事件
func (c *Coordinator) Run(opts ImportOptions) (*Report, error) {
	var report *Report
	for evt := range c.Import(opts) {
		switch evt.Type {
		case EventError:
			return nil, errors.New(evt.Message)
		case EventDone:
			report, _ = evt.Data.(*Report)
		}
	}
	if report == nil {
		return nil, errors.New("import finished without report")
	}
	return report, nil
}

func (c *Coordinator) doImport(opts ImportOptions, ch chan ProgressEvent) {
	startTime := time.Now()
	filename := filepath.Base(opts.Filename)

	upload := model.Upload{
		ID:        uuid.NewString(),
		Filename:  filename,
		FileSize:  opts.FileSize,
		Status:    model.UploadProcessing,
		CreatedAt: startTime,
	}

	c.sendProgress(ch, ProgressEvent{
		Type:    EventStart,
		Message: "开始解析损益表",
		Data: map[string]interface{}{
			"upload_id": upload.ID,
			"filename":  filename,
		},
		Timestamp: time.Now(),
	})

	if c.store != nil {
		if err := c.store.CreateUpload(upload); err != nil {
			c.fail(ch, upload.ID, fmt.Sprintf("创建上传记录失败: %v", err))
			return
		}
	}

	if opts.Reader == nil {
		c.fail(ch, upload.ID, "没有上传文件")
		return
	}
	sheet, err := parser.ReadWorkbook(opts.Reader, filename, parser.ReadOptions{
		SheetName:   opts.SheetName,
		HeaderLabel: c.opts.HeaderLabel,
		MaxRows:     c.opts.MaxRows,
	})
	if err != nil {
		c.fail(ch, upload.ID, fmt.Sprintf("解析文件失败: %v", err))
		return
	}
	upload.SheetName = sheet.Name
	upload.RowCount = len(sheet.Matrix)

	c.sendProgress(ch, ProgressEvent{
		Type:    EventInfo,
		Message: fmt.Sprintf("读取工作表 \"%s\"：%d 行", sheet.Name, len(sheet.Matrix)),
		Data: map[string]interface{}{
			"sheet_name":   sheet.Name,
			"rows":         len(sheet.Matrix),
			"skipped_rows": sheet.SkippedRows,
		},
		Timestamp: time.Now(),
	})

	if c.store != nil {
		if err := c.store.SaveMatrix(upload.ID, sheet.Matrix); err != nil {
			c.fail(ch, upload.ID, fmt.Sprintf("保存数据失败: %v", err))
			return
		}
		if err := c.store.FinishUpload(upload.ID, sheet.Name, upload.RowCount, model.UploadSucceeded, ""); err != nil {
			c.fail(ch, upload.ID, fmt.Sprintf("更新上传记录失败: %v", err))
			return
		}
	}
	upload.Status = model.UploadSucceeded

	// 只有完整解析并保存成功后才替换看板
	if c.dashboard != nil {
		c.dashboard.Replace(upload, sheet.Matrix)
	}

	result := calculator.Calculate(sheet.Matrix)
	for _, w := range result.Warnings {
		c.sendProgress(ch, ProgressEvent{
			Type:      EventWarning,
			Message:   w.Message,
			Data:      w,
			Timestamp: time.Now(),
		})
	}

	c.sendFinal(ch, ProgressEvent{
		Type:    EventDone,
		Message: "上传完成",
		Data: &Report{
			Upload:      upload,
			Sheets:      sheet.Sheets,
			SkippedRows: sheet.SkippedRows,
			Columns:     result.Columns,
			Warnings:    result.Warnings,
			Duration:    time.Since(startTime),
		},
		Timestamp: time.Now(),
	})
}

// Restore 启动时从数据库恢复最近一次成功的上传
func (c *Coordinator) Restore() (model.Upload, error) {
	if c.store == nil {
		return model.Upload{}, store.ErrNotFound
	}
	upload, err := c.store.LatestUpload()
	if err != nil {
		return model.Upload{}, err
	}
	m, err := c.store.LoadMatrix(upload.ID)
	if err != nil {
		return model.Upload{}, err
	}
	if c.dashboard != nil {
		c.dashboard.Replace(upload, m)
	}
	return upload, nil
}

func (c *Coordinator) fail(ch chan ProgressEvent, uploadID, message string) {
	if c.store != nil {
		// 记录失败原因；上传记录本身可能未创建成功
		_ = c.store.FinishUpload(uploadID, "", 0, model.UploadFailed, message)
	}
	c.sendFinal(ch, ProgressEvent{
		Type:      EventError,
		Message:   message,
		Timestamp: time.Now(),
	})
}

// sendProgress 发送进度事件
func (c *Coordinator) sendProgress(ch chan ProgressEvent, event ProgressEvent) {
	select {
	case ch <- event:
	default:
		// 通道已满，丢弃事件
	}
}

// sendFinal 终止事件必须送达
func (c *Coordinator) sendFinal(ch chan ProgressEvent, event ProgressEvent) {
	ch <- event
}
