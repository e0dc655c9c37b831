package http

import (
	"github.com/gin-gonic/gin"

	"table-checkbox-sync/pkg/response"
)

// Open godoc
// @Summary     Open a window
// @Description Opens an editing window on a document, creating or seeding it when text is given.
// @Tags        Windows
// @Accept      json
// @Produce     json
// @Param       body body openReq true "Document to open"
// @Success     200  {object} openResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/windows [POST]
func (h *handler) Open(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processOpenReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Open(ctx, req.toInput())
	if err != nil {
		h.fail(c, "uc.Open", err)
		return
	}

	response.OK(c, h.newOpenResp(output))
}

// Close godoc
// @Summary     Close a window
// @Description Detaches the checkbox listeners of a window and forgets it.
// @Tags        Windows
// @Produce     json
// @Param       id path string true "Window ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Window not found"
// @Router      /api/v1/windows/{id} [DELETE]
func (h *handler) Close(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Close(ctx, c.Param("id")); err != nil {
		h.fail(c, "uc.Close", err)
		return
	}

	response.OK(c, nil)
}

// Input godoc
// @Summary     Deliver a text insertion
// @Description Reports typed text at a cursor position. Typing "]" that completes "- [ ]" inside a table row converts it into a checkbox control.
// @Tags        Windows
// @Accept      json
// @Produce     json
// @Param       id   path string   true "Window ID"
// @Param       body body inputReq true "Insertion"
// @Success     200  {object} eventResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     404  {object} response.Resp "Window not found"
// @Failure     422  {object} response.Resp "Line out of range"
// @Router      /api/v1/windows/{id}/input [POST]
func (h *handler) Input(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processInputReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Input(ctx, req.toInput())
	if err != nil {
		h.fail(c, "uc.Input", err)
		return
	}

	response.OK(c, h.newEventResp(output))
}

// Change godoc
// @Summary     Deliver a control state change
// @Description Reports that a rendered checkbox was toggled so the document source is updated.
// @Tags        Windows
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Window ID"
// @Param       body body changeReq true "Changed element"
// @Success     200  {object} eventResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     404  {object} response.Resp "Window not found"
// @Router      /api/v1/windows/{id}/change [POST]
func (h *handler) Change(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChangeReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Change(ctx, req.toInput())
	if err != nil {
		h.fail(c, "uc.Change", err)
		return
	}

	response.OK(c, h.newEventResp(output))
}

// Document godoc
// @Summary     Get window document
// @Tags        Windows
// @Produce     json
// @Param       id path string true "Window ID"
// @Success     200 {object} documentResp
// @Failure     404 {object} response.Resp "Window not found"
// @Router      /api/v1/windows/{id}/document [GET]
func (h *handler) Document(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Document(ctx, c.Param("id"))
	if err != nil {
		h.fail(c, "uc.Document", err)
		return
	}

	response.OK(c, h.newDocumentResp(output))
}

// Stats godoc
// @Summary     Get checkbox statistics
// @Description Counts the checkbox controls of the window's document.
// @Tags        Windows
// @Produce     json
// @Param       id path string true "Window ID"
// @Success     200 {object} statsResp
// @Failure     404 {object} response.Resp "Window not found"
// @Router      /api/v1/windows/{id}/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Stats(ctx, c.Param("id"))
	if err != nil {
		h.fail(c, "uc.Stats", err)
		return
	}

	response.OK(c, h.newStatsResp(output))
}

// Sync godoc
// @Summary     Sync window document
// @Description Replaces the document with the text shown by the host. Send it after edits the service did not make, before reporting the next insertion.
// @Tags        Windows
// @Accept      json
// @Produce     json
// @Param       id   path string  true "Window ID"
// @Param       body body syncReq true "Host text"
// @Success     200  {object} documentResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     404  {object} response.Resp "Window not found"
// @Router      /api/v1/windows/{id}/document [PUT]
func (h *handler) Sync(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSyncReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Sync(ctx, req.toInput())
	if err != nil {
		h.fail(c, "uc.Sync", err)
		return
	}

	response.OK(c, h.newDocumentResp(output))
}

func (h *handler) fail(c *gin.Context, op string, err error) {
	if he := h.mapError(err); he != nil {
		response.Error(c, he, nil)
		return
	}
	h.l.Errorf(c.Request.Context(), "%s: %v", op, err)
	response.InternalError(c, err)
}
