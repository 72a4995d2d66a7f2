package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sparkleclean/sparkleclean/backend/go-services/internal/booking"
	"github.com/sparkleclean/sparkleclean/backend/go-services/internal/booking/service"
	"github.com/sparkleclean/sparkleclean/backend/go-services/pkg/logger"
	"github.com/sparkleclean/sparkleclean/backend/go-services/pkg/metrics"
)

// SnapshotUploader is the optional backup sink for the admin backup route.
type SnapshotUploader interface {
	UploadSnapshot(ctx context.Context, data []byte) (string, error)
}

// RegisterBookingRoutes wires the public submission endpoint and the
// token-guarded admin endpoints. publicMW (may be nil) is applied to the
// public route only — typically the rate limiter; admin routes carry just
// the guard. uploader may be nil when backup storage is not configured.
func RegisterBookingRoutes(r *gin.Engine, svc service.Service, guard gin.HandlerFunc, publicMW gin.HandlerFunc, uploader SnapshotUploader) {
	public := r.Group("/api")
	if publicMW != nil {
		public.Use(publicMW)
	}

	public.POST("/bookings", func(c *gin.Context) {
		var b booking.Booking
		if err := c.ShouldBindJSON(&b); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body"})
			return
		}
		id, err := svc.Create(c.Request.Context(), &b)
		if err != nil {
			logger.Errorf("create booking: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to save booking"})
			return
		}
		metrics.BookingsCreated.Inc()
		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"message":   "Booking received! We'll confirm your slot shortly.",
			"bookingId": id,
		})
	})

	adm := r.Group("/api/admin", guard)

	adm.GET("/bookings", func(c *gin.Context) {
		list, err := svc.ListAll(c.Request.Context())
		if err != nil {
			logger.Errorf("list bookings: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to load bookings"})
			return
		}
		if list == nil {
			list = []booking.Booking{}
		}
		c.JSON(http.StatusOK, list)
	})

	adm.PATCH("/bookings/:id", func(c *gin.Context) {
		var req struct {
			Status string `json:"status"`
			Notes  string `json:"notes"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body"})
			return
		}
		b, err := svc.UpdateStatusAndNotes(c.Request.Context(), c.Param("id"), req.Status, req.Notes)
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "booking not found"})
			return
		}
		if err != nil {
			logger.Errorf("update booking %s: %v", c.Param("id"), err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to update booking"})
			return
		}
		metrics.BookingsUpdated.Inc()
		c.JSON(http.StatusOK, gin.H{"success": true, "booking": b})
	})

	adm.DELETE("/bookings/:id", func(c *gin.Context) {
		err := svc.Delete(c.Request.Context(), c.Param("id"))
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "booking not found"})
			return
		}
		if err != nil {
			logger.Errorf("delete booking %s: %v", c.Param("id"), err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to delete booking"})
			return
		}
		metrics.BookingsDeleted.Inc()
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	adm.GET("/stats", func(c *gin.Context) {
		st, err := svc.Stats(c.Request.Context())
		if err != nil {
			logger.Errorf("compute stats: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to compute stats"})
			return
		}
		c.JSON(http.StatusOK, st)
	})

	adm.POST("/backup", func(c *gin.Context) {
		if uploader == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "error": "backup storage not configured"})
			return
		}
		list, err := svc.ListAll(c.Request.Context())
		if err != nil {
			logger.Errorf("backup: load bookings: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to load bookings"})
			return
		}
		data, err := json.MarshalIndent(list, "", "  ")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to encode snapshot"})
			return
		}
		key, err := uploader.UploadSnapshot(c.Request.Context(), data)
		if err != nil {
			logger.Errorf("backup upload: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to upload snapshot"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "key": key})
	})
}
