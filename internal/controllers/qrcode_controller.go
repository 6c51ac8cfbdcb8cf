package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"
)

type QRCodeController struct {
	rootURL string
}

func NewQRCodeController(rootURL string) *QRCodeController {
	return &QRCodeController{
		rootURL: rootURL,
	}
}

// GenerateQRCode handles GET /api/v1/qrcode/:id - generates a QR code for a
// short link
func (qc *QRCodeController) GenerateQRCode(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Identifier is required",
		})
		return
	}

	shortURL := qc.rootURL + "/" + id

	// 256x256 pixels, medium error recovery
	qrCode, err := qrcode.New(shortURL, qrcode.Medium)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate QR code",
		})
		return
	}

	pngData, err := qrCode.PNG(256)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate QR code image",
		})
		return
	}

	c.Header("Content-Disposition", "inline; filename=qrcode.png")
	c.Data(http.StatusOK, "image/png", pngData)
}
