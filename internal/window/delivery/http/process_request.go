package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processOpenReq(c *gin.Context) (openReq, error) {
	var req openReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errWrongBody
	}
	return req, nil
}

func (h *handler) processInputReq(c *gin.Context) (inputReq, error) {
	var req inputReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errWrongBody
	}
	req.WindowID = c.Param("id")
	return req, nil
}

func (h *handler) processChangeReq(c *gin.Context) (changeReq, error) {
	var req changeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errWrongBody
	}
	req.WindowID = c.Param("id")
	return req, nil
}

func (h *handler) processSyncReq(c *gin.Context) (syncReq, error) {
	var req syncReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errWrongBody
	}
	req.WindowID = c.Param("id")
	return req, nil
}
