package controller

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/msp-tools/tenant-console/internal/audit"
)

const defaultLimit = 50

type CallLog interface {
	GetCalls(ctx *gin.Context)
}

var (
	callLog CallLog
	once    sync.Once
)

type CallLogController struct {
	recorder audit.Recorder
}

func NewController() CallLog {
	once.Do(func() {
		callLog = &CallLogController{
			recorder: audit.GetRecorder(),
		}
	})
	return callLog
}

// GetCalls lists recent call log entries, newest first. Supports
// ?limit=N and ?operation=<name> filters.
func (cl *CallLogController) GetCalls(ctx *gin.Context) {
	limit := defaultLimit
	if raw := ctx.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	operation := ctx.Query("operation")

	var entries interface{}
	var err error
	if operation != "" {
		entries, err = cl.recorder.RecentByOperation(operation, limit)
	} else {
		entries, err = cl.recorder.Recent(limit)
	}
	if err != nil {
		log.Error().Err(err).Msg("Failed to read call log")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read call log"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": entries})
}
