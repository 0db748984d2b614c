package controller

import (
	"github.com/gin-gonic/gin"

	"github.com/makeoo/recipe-api/internal/logger"
	"github.com/makeoo/recipe-api/pkg/response"
)

// UploadController 上传控制器，接口先占位
type UploadController struct{}

// NewUploadController 创建上传控制器
func NewUploadController() *UploadController {
	return &UploadController{}
}

// Upload 文件上传
// POST /api/v1/upload
// TODO: 实现基于multipart的文件上传和图片压缩
func (ctl *UploadController) Upload(c *gin.Context) {
	logger.Info("文件上传接口被调用（未实现）")
	response.NotImplemented(c, "文件上传功能尚未实现")
}

// UploadImages 图片优化上传
// POST /api/v1/upload/images
func (ctl *UploadController) UploadImages(c *gin.Context) {
	logger.Info("图片上传接口被调用（未实现）")
	response.NotImplemented(c, "图片上传功能尚未实现")
}
