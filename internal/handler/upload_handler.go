package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kkcy/ticketcare/internal/storage"
	"github.com/kkcy/ticketcare/pkg/logger"
	"github.com/kkcy/ticketcare/pkg/response"
)

// maxUploadSize caps multipart uploads at 10 MiB
const maxUploadSize = 10 << 20

// UploadResponse is the upload endpoint response shape
type UploadResponse struct {
	Success  bool   `json:"success"`
	URL      string `json:"url"`
	Pathname string `json:"pathname"`
}

// UploadHandler handles file uploads to blob storage
type UploadHandler struct {
	store storage.BlobStore
	log   *logger.Logger
}

// NewUploadHandler creates a new UploadHandler
func NewUploadHandler(store storage.BlobStore, log *logger.Logger) *UploadHandler {
	return &UploadHandler{
		store: store,
		log:   log,
	}
}

// Upload handles POST /api/upload - multipart form with a `file` part and
// an optional `access` field. Requires a valid session, enforced by
// middleware on the route.
func (h *UploadHandler) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("No file provided"))
		return
	}

	access := storage.AccessPrivate
	if c.PostForm("access") == string(storage.AccessPublic) {
		access = storage.AccessPublic
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Failed to read file"))
		return
	}
	defer file.Close()

	result, err := h.store.Upload(c.Request.Context(),
		fileHeader.Filename, fileHeader.Header.Get("Content-Type"), file, access)
	if err != nil {
		h.log.WithContext(c.Request.Context()).Error("file upload failed",
			zap.String("filename", fileHeader.Filename),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, response.Error(response.ErrCodeUploadFailed, "Failed to store file"))
		return
	}

	c.JSON(http.StatusOK, &UploadResponse{
		Success:  true,
		URL:      result.URL,
		Pathname: result.Pathname,
	})
}
