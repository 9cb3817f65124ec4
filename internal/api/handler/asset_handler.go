package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AssetHandler 启动时加载的静态资源
type AssetHandler struct {
	stylesheet []byte
}

// NewAssetHandler 创建 AssetHandler，stylesheet 为空时返回空样式表
func NewAssetHandler(stylesheet []byte) *AssetHandler {
	return &AssetHandler{stylesheet: stylesheet}
}

// Stylesheet 返回 --style 指定的样式表
// GET /assets/styles.css
func (h *AssetHandler) Stylesheet(c *gin.Context) {
	c.Data(http.StatusOK, "text/css; charset=utf-8", h.stylesheet)
}
