package media

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/martinvojtus/mv-backend/internal/shared/httpx"
)

var (
	uploadsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "image_uploads_total",
		Help: "Image uploads attempted.",
	})
	uploadsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "image_uploads_failed_total",
		Help: "Image uploads that returned an error.",
	})
)

type UploadResponse struct {
	ImageURL string `json:"image_url"`
	ImageKey string `json:"image_key"`
}

type Handler struct{ svc Service }

func NewHandler(svc Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) error {
	if err := r.ParseMultipartForm(20 << 20); err != nil { // 20MB
		return httpx.BadRequestf("invalid multipart body: %v", err)
	}
	file, hdr, err := r.FormFile("file")
	if err != nil {
		return httpx.BadRequestf("missing file field: %v", err)
	}
	defer file.Close()

	uploadsTotal.Inc()
	out, err := h.svc.Upload(r.Context(), hdr.Filename, hdr.Header.Get("Content-Type"), file, hdr.Size)
	if err != nil {
		uploadsFailed.Inc()
		return err
	}
	httpx.WriteJSON(w, out, http.StatusCreated)
	return nil
}
