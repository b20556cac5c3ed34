package model

import "time"

// UploadStatus 上传处理状态
type UploadStatus string

const (
	UploadProcessing UploadStatus = "processing"
	UploadSucceeded  UploadStatus = "succeeded"
	UploadFailed     UploadStatus = "failed"
)

// Upload 一次上传记录
type Upload struct {
	ID           string       `json:"id"`
	Filename     string       `json:"filename"`
	FileSize     int64        `json:"fileSize"`
	SheetName    string       `json:"sheetName"`
	RowCount     int          `json:"rowCount"`
	Status       UploadStatus `json:"status"`
	ErrorMessage string       `json:"errorMessage,omitempty"`
	CreatedAt    time.Time    `json:"createdAt"`
}
