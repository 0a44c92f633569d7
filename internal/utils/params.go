package utils

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ParamID parses a numeric id from a path parameter.
func ParamID(ctx *gin.Context, name string) (uint, error) {
	value := ctx.Param(name)

	if value == "" {
		return 0, errors.New("missing " + name)
	}

	id, err := strconv.ParseUint(value, 10, 32)

	if err != nil {
		return 0, errors.New("invalid " + name)
	}

	return uint(id), nil
}

// ParamInt parses an integer path parameter, for cell coordinates.
func ParamInt(ctx *gin.Context, name string) (int, error) {
	value := ctx.Param(name)

	if value == "" {
		return 0, errors.New("missing " + name)
	}

	n, err := strconv.Atoi(value)

	if err != nil {
		return 0, errors.New("invalid " + name)
	}

	return n, nil
}
