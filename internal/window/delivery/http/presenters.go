package http

import (
	"table-checkbox-sync/internal/checkbox"
	"table-checkbox-sync/internal/model"
	"table-checkbox-sync/internal/window"
)

// --- Request DTOs ---

type openReq struct {
	DocumentID string  `json:"document_id" binding:"required"`
	Text       *string `json:"text"`
}

func (r openReq) toInput() window.OpenInput {
	return window.OpenInput{DocumentID: r.DocumentID, Text: r.Text}
}

// ---

type inputReq struct {
	WindowID string `json:"-"` // populated from URI param
	Text     string `json:"text" binding:"required"`
	Line     int    `json:"line" binding:"min=0"`
	Ch       int    `json:"ch"   binding:"min=0"`
}

func (r inputReq) toInput() window.InputInput {
	return window.InputInput{
		WindowID: r.WindowID,
		Text:     r.Text,
		Position: model.Position{Line: r.Line, Ch: r.Ch},
	}
}

// ---

type changeReq struct {
	WindowID   string            `json:"-"`
	Tag        string            `json:"tag" binding:"required"`
	Attributes map[string]string `json:"attributes"`
	Checked    bool              `json:"checked"`
	HTML       string            `json:"html"`
}

func (r changeReq) toInput() window.ChangeInput {
	return window.ChangeInput{
		WindowID:   r.WindowID,
		Tag:        r.Tag,
		Attributes: r.Attributes,
		Checked:    r.Checked,
		HTML:       r.HTML,
	}
}

// ---

type syncReq struct {
	WindowID string  `json:"-"`
	Text     *string `json:"text" binding:"required"`
}

func (r syncReq) toInput() window.SyncInput {
	return window.SyncInput{WindowID: r.WindowID, Text: *r.Text}
}

// --- Response DTOs ---

type openResp struct {
	WindowID   string `json:"window_id"`
	DocumentID string `json:"document_id"`
}

func (h *handler) newOpenResp(o window.OpenOutput) openResp {
	return openResp{WindowID: o.WindowID, DocumentID: o.DocumentID}
}

type eventResp struct {
	Handled bool           `json:"handled"`
	Edits   []model.Edit   `json:"edits"`
	Cursor  model.Position `json:"cursor"`
	Notices []model.Notice `json:"notices"`
}

func (h *handler) newEventResp(o window.EventOutput) eventResp {
	resp := eventResp{
		Handled: o.Handled,
		Edits:   o.Edits,
		Cursor:  o.Cursor,
		Notices: o.Notices,
	}
	if resp.Edits == nil {
		resp.Edits = []model.Edit{}
	}
	if resp.Notices == nil {
		resp.Notices = []model.Notice{}
	}
	return resp
}

type documentResp struct {
	DocumentID string `json:"document_id"`
	Text       string `json:"text"`
	Revision   int    `json:"revision,omitempty"`
}

func (h *handler) newDocumentResp(o window.DocumentOutput) documentResp {
	return documentResp{DocumentID: o.DocumentID, Text: o.Text, Revision: o.Revision}
}

type statsResp struct {
	Total     int     `json:"total"`
	Completed int     `json:"completed"`
	Pending   int     `json:"pending"`
	Progress  float64 `json:"progress"`
}

func (h *handler) newStatsResp(s checkbox.Stats) statsResp {
	return statsResp{
		Total:     s.Total,
		Completed: s.Completed,
		Pending:   s.Pending,
		Progress:  s.Progress,
	}
}
