package http

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

func int64Query(ctx *gin.Context, name string) (int64, bool) {
	raw := ctx.Query(name)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func boolQuery(ctx *gin.Context, name string) (bool, bool) {
	raw := ctx.Query(name)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}
